package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"

	"painter3d/geom"
	"painter3d/scene"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Camera struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`

	// VisionAngleDeg is half the horizontal field of view.
	VisionAngleDeg float64 `toml:"vision_angle_deg"`
	YRotationDeg   float64 `toml:"y_rotation_deg"`
	Range          float64 `toml:"range"`

	// Speed is in world units per frame.
	Speed float64 `toml:"speed"`
	// TurnRate scales how far the pointer's offset from the window center
	// turns the camera each frame.
	TurnRate float64 `toml:"turn_rate"`
}

type World struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Depth     float64 `toml:"depth"`
	Seed      uint64  `toml:"seed"`
	Triangles int     `toml:"triangles"`
	Cubes     int     `toml:"cubes"`
	Pyramids  int     `toml:"pyramids"`
	Towers    int     `toml:"towers"`
	Markers   int     `toml:"markers"`
}

type Render struct {
	Wireframe  bool     `toml:"wireframe"`
	Background [3]uint8 `toml:"background"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	World  World  `toml:"world"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

// Default is a quarter-turn field of view looking into a
// 200x50x200 world full of shapes.
func Default() Config {
	return Config{
		Window: Window{Width: 1024, Height: 768, Title: "painter3d"},
		Camera: Camera{
			VisionAngleDeg: 45,
			Range:          geom.DefaultCameraRange,
			Speed:          1,
			TurnRate:       1.0 / 20,
		},
		World: World{
			Width: 200, Height: 50, Depth: 200,
			Seed:      1,
			Triangles: 100,
			Cubes:     20,
			Pyramids:  20,
			Towers:    20,
			Markers:   40,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a TOML file over the defaults. An empty path means defaults
// only.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown
// keys are an error.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Camera.VisionAngleDeg > 0 && c.Camera.VisionAngleDeg < 180, "vision_angle_deg %v must be in (0, 180)", c.Camera.VisionAngleDeg)
	check(c.Camera.Range > 0, "camera range %v must be positive", c.Camera.Range)
	check(c.Camera.Speed >= 0, "camera speed %v must not be negative", c.Camera.Speed)
	check(c.World.Width > 0 && c.World.Height > 0 && c.World.Depth > 0,
		"world size %vx%vx%v", c.World.Width, c.World.Height, c.World.Depth)
	check(c.World.Triangles >= 0 && c.World.Cubes >= 0 && c.World.Pyramids >= 0 &&
		c.World.Towers >= 0 && c.World.Markers >= 0, "object counts must not be negative")
	return errors.Join(errs...)
}

// NewCamera builds the starting camera.
func (c Config) NewCamera() *geom.Camera {
	return geom.NewCamera(
		geom.Vector3{X: c.Camera.X, Y: c.Camera.Y, Z: c.Camera.Z},
		mgl64.DegToRad(c.Camera.VisionAngleDeg),
		mgl64.DegToRad(c.Camera.YRotationDeg),
	)
}

func (c Config) Projector() geom.Projector {
	return geom.Projector{CameraRange: c.Camera.Range}
}

func (c Config) Bounds() scene.Bounds {
	return scene.Bounds{Width: c.World.Width, Height: c.World.Height, Depth: c.World.Depth}
}

func (c Config) Counts() scene.Counts {
	return scene.Counts{
		Triangles: c.World.Triangles,
		Cubes:     c.World.Cubes,
		Pyramids:  c.World.Pyramids,
		Towers:    c.World.Towers,
		Markers:   c.World.Markers,
	}
}
