package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a position or direction in world space.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// TranslateBy moves the vector in place.
func (v *Vector3) TranslateBy(dx, dy, dz float64) {
	v.X += dx
	v.Y += dy
	v.Z += dz
}

// Magnitude returns the Euclidean norm.
func (v Vector3) Magnitude() float64 {
	return v.vec().Len()
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// RotateY rotates the vector around the Y axis. A positive angle turns +X
// towards -Z, so a heading built by Horizontal(a) becomes Horizontal(a-angle).
func (v Vector3) RotateY(angle float64) Vector3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Horizontal returns the unit vector in the XZ plane at the given heading.
func Horizontal(angle float64) Vector3 {
	return Vector3{X: math.Cos(angle), Z: math.Sin(angle)}
}

// Mean returns the arithmetic mean of the given vectors.
func Mean(vs ...Vector3) Vector3 {
	if len(vs) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vs)))
}
