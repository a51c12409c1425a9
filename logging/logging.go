package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// LevelTrace is below debug; it is used for per-frame chatter.
const LevelTrace = slog.LevelDebug - 4

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	logger.Store(newLogger(os.Stderr))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))
}

func DefaultLogger() *slog.Logger {
	return logger.Load()
}

func doLog(lvl slog.Level, msg string, args ...any) {
	l := logger.Load()
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(context.Background(), r)
}

func Trace(msg string, args ...any) {
	doLog(LevelTrace, msg, args...)
}

func Debug(msg string, args ...any) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	doLog(slog.LevelError, msg, args...)
}

// Redirect sends all logging output to w. The returned func undoes it.
func Redirect(w io.Writer) func() {
	old := logger.Swap(newLogger(w))
	return func() {
		logger.Store(old)
	}
}

// SetLogLevel changes the verbosity and returns a func restoring the old one.
func SetLogLevel(lvl slog.Level) func() {
	old := level.Level()
	level.Set(lvl)
	return func() {
		level.Set(old)
	}
}

// Bracket runs fn with messages at lvl and above propagated.
func Bracket(lvl slog.Level, fn func()) {
	fixup := SetLogLevel(lvl)
	defer fixup()
	fn()
}

func TraceBracket(fn func()) {
	Bracket(LevelTrace, fn)
}

// ParseLevel accepts trace, debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return LevelTrace, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("bad log level %q: %w", s, err)
	}
	return lvl, nil
}
