package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"

	"painter3d/config"
	"painter3d/control"
	"painter3d/driver"
	"painter3d/logging"
)

type options struct {
	configPath string
	snapshot   string
	logLevel   string
	seed       uint64
	wireframe  bool

	flags *pflag.FlagSet
}

func parseFlags(args []string) (options, error) {
	var o options
	o.flags = pflag.NewFlagSet("painter3d", pflag.ContinueOnError)
	o.flags.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	o.flags.StringVar(&o.snapshot, "snapshot", "", "render one frame to this PNG file and exit")
	o.flags.StringVar(&o.logLevel, "log-level", "", "trace, debug, info, warn or error")
	o.flags.Uint64Var(&o.seed, "seed", 0, "world population seed")
	o.flags.BoolVar(&o.wireframe, "wireframe", false, "outline triangles instead of filling them")
	return o, o.flags.Parse(args)
}

// apply lays flags that were given on the command line over cfg.
func (o options) apply(cfg *config.Config) {
	if o.flags.Changed("seed") {
		cfg.World.Seed = o.seed
	}
	if o.flags.Changed("wireframe") {
		cfg.Render.Wireframe = o.wireframe
	}
	if o.flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
}

func main() {
	runtime.LockOSThread()

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		logging.Error("painter3d failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.SetLogLevel(lvl)

	app := driver.New(cfg)
	if opts.snapshot != "" {
		return snapshot(app, opts.snapshot)
	}
	return runWindow(app, cfg)
}

func snapshot(app *driver.App, path string) error {
	w, _ := app.Canvas.Size()
	stats := app.Frame(0, float64(w)/2, float64(w))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := app.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	logging.Info("snapshot written", "path", path, "drawn", stats.Drawn, "culled", stats.Culled)
	return nil
}

var keyBindings = map[glfw.Key]control.Keys{
	glfw.KeyLeft:       control.KeyLeft,
	glfw.KeyA:          control.KeyLeft,
	glfw.KeyRight:      control.KeyRight,
	glfw.KeyD:          control.KeyRight,
	glfw.KeyUp:         control.KeyForward,
	glfw.KeyW:          control.KeyForward,
	glfw.KeyDown:       control.KeyBack,
	glfw.KeyS:          control.KeyBack,
	glfw.KeySpace:      control.KeyUp,
	glfw.KeyLeftShift:  control.KeyDown,
	glfw.KeyRightShift: control.KeyDown,
}

func runWindow(app *driver.App, cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := cfg.Window.Title
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	logging.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	scr, err := newScreen()
	if err != nil {
		return err
	}
	defer scr.delete()

	held := map[glfw.Key]bool{}
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		if _, ok := keyBindings[key]; !ok {
			return
		}
		held[key] = action == glfw.Press
		app.Keys = 0
		for k, down := range held {
			if down {
				app.Keys |= keyBindings[k]
			}
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			app.TogglePause()
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		app.Resize(width, height)
	})

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	app.Resize(fbWidth, fbHeight)

	start := glfw.GetTime()
	lastTitle := start
	for !window.ShouldClose() {
		now := glfw.GetTime()

		cursorX, _ := window.GetCursorPos()
		winWidth, _ := window.GetSize()
		app.Frame(time.Duration((now-start)*float64(time.Second)), cursorX, float64(winWidth))

		if now-lastTitle >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | %s", title, app.Meter.String()))
			lastTitle = now
		}

		scr.draw(app.Canvas.Image())

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
