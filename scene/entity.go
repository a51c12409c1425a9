package scene

import "painter3d/geom"

// Triangle is a filled face. Its points are usually shared with the other
// faces of the same shape.
type Triangle struct {
	A, B, C *geom.Point
	Color   geom.Color
}

func NewTriangle(a, b, c *geom.Point, col geom.Color) *Triangle {
	return &Triangle{A: a, B: b, C: c, Color: col}
}

// Centroid is the mean of the three vertices.
func (t *Triangle) Centroid() geom.Vector3 {
	return geom.Mean(t.A.Vector3, t.B.Vector3, t.C.Vector3)
}

// DistanceToCamera measures to the centroid. It is only a depth key for
// ordering, not the distance to the nearest point of the face.
func (t *Triangle) DistanceToCamera(cam *geom.Camera) float64 {
	return t.Centroid().Sub(cam.Vector3).Magnitude()
}

type Kind uint8

const (
	KindPoint Kind = iota
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Entity is one renderable item: either a standalone point drawn as a disc
// or a triangle.
type Entity struct {
	Kind     Kind
	Point    *geom.Point
	Triangle *Triangle

	// Color of a standalone point. Triangles carry their own.
	Color geom.Color
}

func PointEntity(p *geom.Point, col geom.Color) Entity {
	return Entity{Kind: KindPoint, Point: p, Color: col}
}

func TriangleEntity(t *Triangle) Entity {
	return Entity{Kind: KindTriangle, Triangle: t}
}

func (e Entity) DistanceToCamera(cam *geom.Camera) float64 {
	switch e.Kind {
	case KindPoint:
		return e.Point.DistanceToCamera(cam)
	case KindTriangle:
		return e.Triangle.DistanceToCamera(cam)
	}
	panic("scene: bad entity kind " + e.Kind.String())
}
