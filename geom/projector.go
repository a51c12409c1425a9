package geom

import "math"

// DefaultCameraRange is the distance beyond which nothing is rendered.
const DefaultCameraRange = 1000

// Point2 is a screen position in pixels, origin top-left, Y growing down.
type Point2 struct {
	X, Y float64
}

// Surface is the size of the output the scene is projected onto.
type Surface struct {
	Width, Height float64
}

func (s Surface) Center() Point2 {
	return Point2{s.Width / 2, s.Height / 2}
}

// HalfDiagonal is the radius of the circle circumscribing the surface. It is
// the global scale factor of the projection.
func (s Surface) HalfDiagonal() float64 {
	return math.Hypot(s.Width/2, s.Height/2)
}

// Projector maps world points to screen positions for a camera.
//
// The mapping is angular rather than a perspective divide: a point's distance
// from the screen center is proportional to its angle from the camera's
// forward direction, with the vision angle landing on the half-diagonal.
type Projector struct {
	CameraRange float64
}

func NewProjector() Projector {
	return Projector{CameraRange: DefaultCameraRange}
}

// ShouldRender reports whether p lies inside the camera's vision cone and
// within range.
func (pr Projector) ShouldRender(p Vector3, cam *Camera) bool {
	rel := p.Sub(cam.Vector3)
	if AngleBetween(rel, cam.Forward()) > cam.VisionAngle {
		return false
	}
	if rel.Magnitude() > pr.CameraRange {
		return false
	}
	return true
}

// Project returns the screen position of p as seen by cam.
//
// The bearing of p is located from two known angles: its angle to the forward
// direction and its angle to a second direction turned horizontally by the
// vision angle. Treating those angles as sides of a triangle whose third side
// is the vision angle, the Law of Cosines gives the direction of the bearing
// on screen. That leaves two mirror solutions, above and below the horizon;
// the point is put above when it is higher than the camera.
func (pr Projector) Project(p Vector3, cam *Camera, s Surface) Point2 {
	center := s.Center()
	rel := p.Sub(cam.Vector3)
	forward := cam.Forward()
	angle := AngleBetween(rel, forward)
	if angle == 0 {
		return center
	}

	va := cam.VisionAngle
	complement := forward.RotateY(-va)
	toComplement := AngleBetween(rel, complement)

	cosine := clampUnit((va*va + angle*angle - toComplement*toComplement) / (2 * va * angle))
	xProjection := angle * cosine / va
	yProjection := angle * math.Sin(math.Acos(cosine)) / va

	scale := s.HalfDiagonal()
	x := center.X + xProjection*scale
	if p.Y > cam.Y {
		return Point2{x, center.Y - yProjection*scale}
	}
	return Point2{x, center.Y + yProjection*scale}
}
