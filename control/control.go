package control

import (
	"math"

	"painter3d/geom"
	"painter3d/scene"
)

// Keys is the set of movement keys currently held.
type Keys uint8

const (
	KeyLeft Keys = 1 << iota
	KeyRight
	KeyForward
	KeyBack
	KeyUp
	KeyDown
)

func (k *Keys) Set(key Keys, down bool) {
	if down {
		*k |= key
	} else {
		*k &^= key
	}
}

func (k Keys) Has(key Keys) bool {
	return k&key != 0
}

// Controller moves the camera from input once per frame and keeps it inside
// the world.
type Controller struct {
	Speed    float64
	TurnRate float64
	Bounds   scene.Bounds
}

// Step applies one frame of input. pointerX is the pointer's horizontal
// position in a window width pixels wide; the further it is from the center
// the faster the camera turns.
func (c Controller) Step(cam *geom.Camera, keys Keys, pointerX, width float64) {
	if width > 0 {
		cam.Turn((pointerX/width - 0.5) * c.TurnRate)
	}

	heading := cam.YRotation()
	walk := func(direction float64) {
		cam.TranslateBy(math.Cos(direction)*c.Speed, 0, math.Sin(direction)*c.Speed)
	}
	if keys.Has(KeyLeft) {
		walk(heading - math.Pi/2)
	}
	if keys.Has(KeyRight) {
		walk(heading + math.Pi/2)
	}
	if keys.Has(KeyForward) {
		walk(heading)
	}
	if keys.Has(KeyBack) {
		walk(heading + math.Pi)
	}
	if keys.Has(KeyUp) {
		cam.Y += c.Speed
	}
	if keys.Has(KeyDown) {
		cam.Y -= c.Speed
	}

	c.clamp(cam)
}

func (c Controller) clamp(cam *geom.Camera) {
	cam.X = clamp(cam.X, c.Bounds.Width/2)
	cam.Y = clamp(cam.Y, c.Bounds.Height/2)
	cam.Z = clamp(cam.Z, c.Bounds.Depth/2)
}

func clamp(v, half float64) float64 {
	return math.Max(-half, math.Min(half, v))
}
