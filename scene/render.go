package scene

import (
	"image/color"
	"math"

	"painter3d/geom"
	"painter3d/logging"
)

// Canvas is the drawing backend the scene paints through.
type Canvas interface {
	// Size is the current output size in pixels. It is read every frame.
	Size() (width, height int)
	FillTriangle(a, b, c geom.Point2, col color.RGBA)
	FillCircle(center geom.Point2, diameter float64, col color.RGBA)
}

// Stats counts what happened to the entities in one frame.
type Stats struct {
	Drawn  int
	Culled int
}

// Context is everything one frame of rendering needs. It is built once at
// startup; the frame loop moves the camera between calls to Render.
type Context struct {
	Camera    *geom.Camera
	Entities  *Set
	Projector geom.Projector
}

func NewContext(cam *geom.Camera, entities *Set, pr geom.Projector) *Context {
	return &Context{
		Camera:    cam,
		Entities:  entities,
		Projector: pr,
	}
}

// Render sorts the entities back to front for the current camera and paints
// them onto canvas in that order.
func (c *Context) Render(canvas Canvas) Stats {
	w, h := canvas.Size()
	surface := geom.Surface{Width: float64(w), Height: float64(h)}

	c.Entities.SortByDistance(c.Camera)

	var stats Stats
	for _, e := range c.Entities.Entities() {
		var drawn bool
		switch e.Kind {
		case KindPoint:
			drawn = c.renderPoint(canvas, surface, e.Point, e.Color)
		case KindTriangle:
			drawn = c.renderTriangle(canvas, surface, e.Triangle)
		}
		if drawn {
			stats.Drawn++
		} else {
			stats.Culled++
		}
	}
	logging.Trace("rendered frame", "drawn", stats.Drawn, "culled", stats.Culled)
	return stats
}

// renderTriangle draws t unless it is entirely off screen: its projected
// centroid is outside the circle around the surface and none of its vertices
// is in view.
func (c *Context) renderTriangle(canvas Canvas, surface geom.Surface, t *Triangle) bool {
	pr, cam := c.Projector, c.Camera
	a := pr.Project(t.A.Vector3, cam, surface)
	b := pr.Project(t.B.Vector3, cam, surface)
	d := pr.Project(t.C.Vector3, cam, surface)

	center := surface.Center()
	meanX := (a.X + b.X + d.X) / 3
	meanY := (a.Y + b.Y + d.Y) / 3
	meanOffscreen := math.Hypot(meanX-center.X, meanY-center.Y) > surface.HalfDiagonal()
	pointsHidden := !pr.ShouldRender(t.A.Vector3, cam) &&
		!pr.ShouldRender(t.B.Vector3, cam) &&
		!pr.ShouldRender(t.C.Vector3, cam)
	if meanOffscreen && pointsHidden {
		return false
	}

	canvas.FillTriangle(a, b, d, t.Color.RGBA())
	return true
}

// renderPoint draws p as a disc whose size falls off with distance.
func (c *Context) renderPoint(canvas Canvas, surface geom.Surface, p *geom.Point, col geom.Color) bool {
	pr, cam := c.Projector, c.Camera
	if !pr.ShouldRender(p.Vector3, cam) {
		return false
	}
	dist := p.DistanceToCamera(cam)
	if dist == 0 {
		return false
	}
	diameter := p.Radius / (dist * math.Sin(cam.VisionAngle)) * surface.HalfDiagonal()
	canvas.FillCircle(pr.Project(p.Vector3, cam, surface), diameter, col.RGBA())
	return true
}
