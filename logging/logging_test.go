package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painter3d/logging"
)

const canary = "lololololololol"

func TestRedirect(t *testing.T) {
	buf := &bytes.Buffer{}
	fixup := logging.Redirect(buf)
	logging.Info(canary, "frame", 3)
	fixup()

	assert.Contains(t, buf.String(), canary)
	assert.Contains(t, buf.String(), "frame=3")

	logging.Info("after undo")
	assert.NotContains(t, buf.String(), "after undo")
}

func TestBracket(t *testing.T) {
	t.Run("at error blocks trace", func(t *testing.T) {
		buf := &bytes.Buffer{}
		fixup := logging.Redirect(buf)
		logging.Bracket(slog.LevelError, func() {
			logging.Trace(canary)
			logging.Warn(canary)
		})
		fixup()

		assert.NotContains(t, buf.String(), canary)
	})

	t.Run("trace bracket emits trace", func(t *testing.T) {
		buf := &bytes.Buffer{}
		fixup := logging.Redirect(buf)
		logging.TraceBracket(func() {
			logging.Trace(canary)
		})
		logging.Trace("outside")
		fixup()

		assert.Contains(t, buf.String(), canary)
		assert.Contains(t, buf.String(), "level=TRACE")
		assert.NotContains(t, buf.String(), "outside")
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"trace": logging.LevelTrace,
		"TRACE": logging.LevelTrace,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}
