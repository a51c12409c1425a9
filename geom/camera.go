package geom

import "math"

// Camera is the single viewpoint the scene is rendered from.
type Camera struct {
	Vector3

	// VisionAngle is half the horizontal field of view in radians.
	VisionAngle float64

	yRotation float64
}

func NewCamera(pos Vector3, visionAngle, yRotation float64) *Camera {
	return &Camera{
		Vector3:     pos,
		VisionAngle: visionAngle,
		yRotation:   wrap(yRotation, 2*math.Pi),
	}
}

// YRotation is the horizontal facing angle in radians.
func (c *Camera) YRotation() float64 {
	return c.yRotation
}

// RotateYBy adds rotation to the facing angle and wraps the result into
// [0, π).
func (c *Camera) RotateYBy(rotation float64) {
	c.yRotation = wrap(c.yRotation+rotation, math.Pi)
}

// Turn adds rotation to the facing angle and wraps the result into [0, 2π),
// keeping the full heading. Mouse look uses this so turning past π does not
// flip the view.
func (c *Camera) Turn(rotation float64) {
	c.yRotation = wrap(c.yRotation+rotation, 2*math.Pi)
}

// Forward is the unit facing direction in the horizontal plane.
func (c *Camera) Forward() Vector3 {
	return Horizontal(c.yRotation)
}

// wrap maps a into [0, period).
func wrap(a, period float64) float64 {
	a = math.Mod(a, period)
	if a < 0 {
		a += period
	}
	if a >= period {
		// a tiny negative remainder plus period can round up to period
		a = 0
	}
	return a
}
