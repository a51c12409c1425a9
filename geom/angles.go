package geom

import "math"

// Dot returns the scalar product of a and b.
func Dot(a, b Vector3) float64 {
	return a.vec().Dot(b.vec())
}

// AngleBetween returns the angle between a and b in [0, π].
//
// The cosine is clamped to [-1, 1] so rounding never yields NaN. If either
// vector has zero length there is no direction to compare and the angle is
// reported as 0.
func AngleBetween(a, b Vector3) float64 {
	mags := a.Magnitude() * b.Magnitude()
	if mags == 0 {
		return 0
	}
	return math.Acos(clampUnit(Dot(a, b) / mags))
}

func clampUnit(f float64) float64 {
	switch {
	case f > 1:
		return 1
	case f < -1:
		return -1
	}
	return f
}
