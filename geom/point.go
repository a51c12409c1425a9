package geom

import "image/color"

// Point is a renderable vertex. Radius is only used when the point is drawn
// on its own as a marker.
type Point struct {
	Vector3
	Radius float64
}

func NewPoint(x, y, z float64) *Point {
	return &Point{Vector3: Vector3{x, y, z}, Radius: 1}
}

func (p *Point) DistanceToCamera(cam *Camera) float64 {
	return p.Sub(cam.Vector3).Magnitude()
}

// Color holds straight (non-premultiplied) RGBA channels.
type Color struct {
	Red, Green, Blue, Alpha uint8
}

// RGBA converts to the premultiplied form image/draw expects.
func (c Color) RGBA() color.RGBA {
	a := uint32(c.Alpha)
	return color.RGBA{
		R: uint8(uint32(c.Red) * a / 255),
		G: uint8(uint32(c.Green) * a / 255),
		B: uint8(uint32(c.Blue) * a / 255),
		A: c.Alpha,
	}
}
