package driver

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"time"

	"painter3d/config"
	"painter3d/control"
	"painter3d/fps"
	"painter3d/logging"
	"painter3d/raster"
	"painter3d/scene"
)

const pausedBanner = "- P A U S E D -"

var (
	overlayColor = color.RGBA{200, 200, 200, 255}
	bannerColor  = color.RGBA{200, 255, 255, 255}
)

// App owns the world, the camera and the frame buffer, and advances them one
// frame at a time. It knows nothing about windows; the caller feeds it input
// and presents Canvas.Image() however it likes.
type App struct {
	Context    *scene.Context
	Canvas     *raster.Canvas
	Controller control.Controller
	Keys       control.Keys
	Meter      fps.Meter

	background  color.RGBA
	paused      bool
	bannerDrawn bool
	frames      int
}

// New populates the world described by cfg and sets up a canvas of the
// configured window size.
func New(cfg config.Config) *App {
	set := &scene.Set{}
	scene.NewPopulator(set, cfg.Bounds(), cfg.World.Seed).Populate(cfg.Counts())
	logging.Info("world populated", "entities", set.Len(), "seed", cfg.World.Seed)

	canvas := raster.New(cfg.Window.Width, cfg.Window.Height)
	canvas.Wireframe = cfg.Render.Wireframe

	bg := cfg.Render.Background
	return &App{
		Context: scene.NewContext(cfg.NewCamera(), set, cfg.Projector()),
		Canvas:  canvas,
		Controller: control.Controller{
			Speed:    cfg.Camera.Speed,
			TurnRate: cfg.Camera.TurnRate,
			Bounds:   cfg.Bounds(),
		},
		background: color.RGBA{bg[0], bg[1], bg[2], 255},
	}
}

func (a *App) Paused() bool {
	return a.paused
}

func (a *App) TogglePause() {
	a.paused = !a.paused
	a.bannerDrawn = false
	logging.Info("pause toggled", "paused", a.paused)
}

// Resize follows the output surface. The next frame is drawn at the new size.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.Canvas.Resize(width, height)
	a.bannerDrawn = false
	logging.Debug("resized", "width", width, "height", height)
}

// Frame advances one frame at time now. pointerX is the pointer position in
// a window windowWidth wide. While paused no geometry work is done; the last
// frame stays on the canvas under the pause banner.
func (a *App) Frame(now time.Duration, pointerX, windowWidth float64) scene.Stats {
	a.Meter.Tick(now)
	if a.paused {
		if !a.bannerDrawn {
			a.Canvas.DrawBanner(pausedBanner, bannerColor)
			a.bannerDrawn = true
		}
		return scene.Stats{}
	}

	a.Controller.Step(a.Context.Camera, a.Keys, pointerX, windowWidth)

	a.Canvas.Clear(a.background)
	stats := a.Context.Render(a.Canvas)

	w, _ := a.Canvas.Size()
	a.Canvas.DrawText(w-16, 16, a.Meter.String(), raster.AlignRight, overlayColor)

	a.frames++
	if a.frames%600 == 0 {
		cam := a.Context.Camera
		logging.Debug("frame",
			"n", a.frames,
			"fps", a.Meter.Display(),
			"drawn", stats.Drawn,
			"culled", stats.Culled,
			"camera", fmt.Sprintf("(%.1f, %.1f, %.1f)", cam.X, cam.Y, cam.Z),
			"heading", cam.YRotation())
	}
	return stats
}

// WritePNG encodes the current frame.
func (a *App) WritePNG(w io.Writer) error {
	if err := png.Encode(w, a.Canvas.Image()); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}
