package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painter3d/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cam := cfg.NewCamera()
	assert.InDelta(t, math.Pi/4, cam.VisionAngle, 1e-12)
	assert.Equal(t, 0.0, cam.YRotation())
	assert.Equal(t, 1000.0, cfg.Projector().CameraRange)
	assert.Equal(t, 100, cfg.Counts().Triangles)
	assert.Equal(t, 200.0, cfg.Bounds().Depth)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
[window]
width = 640
height = 480

[camera]
vision_angle_deg = 30
y_rotation_deg = 90
range = 250

[world]
seed = 7
towers = 0

[render]
wireframe = true
background = [10, 20, 30]

[log]
level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "painter3d", cfg.Window.Title)
	assert.Equal(t, 250.0, cfg.Camera.Range)
	assert.Equal(t, 1.0, cfg.Camera.Speed)
	assert.Equal(t, uint64(7), cfg.World.Seed)
	assert.Equal(t, 0, cfg.World.Towers)
	assert.Equal(t, 20, cfg.World.Cubes)
	assert.True(t, cfg.Render.Wireframe)
	assert.Equal(t, [3]uint8{10, 20, 30}, cfg.Render.Background)
	assert.Equal(t, "debug", cfg.Log.Level)

	cam := cfg.NewCamera()
	assert.InDelta(t, math.Pi/6, cam.VisionAngle, 1e-12)
	assert.InDelta(t, math.Pi/2, cam.YRotation(), 1e-12)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "[camera]\nzoom = 2\n",
		"bad syntax":      "[camera\n",
		"zero fov":        "[camera]\nvision_angle_deg = 0\n",
		"negative range":  "[camera]\nrange = -1\n",
		"empty window":    "[window]\nwidth = 0\n",
		"flat world":      "[world]\nheight = 0\n",
		"negative counts": "[world]\ncubes = -3\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Range = 0
	cfg.World.Width = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "camera range")
	assert.Contains(t, err.Error(), "world size")
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "painter3d.toml")
	require.NoError(t, os.WriteFile(path, []byte("[world]\nmarkers = 3\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.World.Markers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
