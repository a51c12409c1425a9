package scene

import (
	"math/rand/v2"

	"painter3d/geom"
)

// Bounds is the size of the world box centered on the origin.
type Bounds struct {
	Width, Height, Depth float64
}

// Counts says how many of each kind of object Populate scatters.
type Counts struct {
	Triangles int
	Cubes     int
	Pyramids  int
	Towers    int
	Markers   int
}

// Populator builds shapes into a Set using its own random source, so the
// same seed always builds the same world.
type Populator struct {
	Set    *Set
	Bounds Bounds
	rng    *rand.Rand
}

func NewPopulator(set *Set, bounds Bounds, seed uint64) *Populator {
	return &Populator{
		Set:    set,
		Bounds: bounds,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Populate scatters the requested objects uniformly through the world box.
func (p *Populator) Populate(n Counts) {
	for i := 0; i < n.Triangles; i++ {
		p.RandomTriangle(p.randomPosition())
	}
	for i := 0; i < n.Cubes; i++ {
		p.Cube(p.randomPosition(), p.randomSide())
	}
	for i := 0; i < n.Pyramids; i++ {
		p.Pyramid(p.randomPosition(), p.randomSide())
	}
	for i := 0; i < n.Towers; i++ {
		p.Tower(p.randomPosition(), p.randomSide())
	}
	for i := 0; i < n.Markers; i++ {
		p.Marker(p.randomPosition(), 0.2+p.rng.Float64()*0.6)
	}
}

// centered returns a uniform sample in [-extent/2, extent/2).
func (p *Populator) centered(extent float64) float64 {
	return (p.rng.Float64() - 0.5) * extent
}

func (p *Populator) randomPosition() geom.Vector3 {
	return geom.Vector3{
		X: p.centered(p.Bounds.Width),
		Y: p.centered(p.Bounds.Height),
		Z: p.centered(p.Bounds.Depth),
	}
}

func (p *Populator) randomSide() float64 {
	return p.rng.Float64()*4 + 2
}

func (p *Populator) channel() uint8 {
	return uint8(155 + p.rng.IntN(100))
}

func (p *Populator) opaqueColor() geom.Color {
	return geom.Color{Red: p.channel(), Green: p.channel(), Blue: p.channel(), Alpha: 255}
}

// RandomTriangle adds a small translucent triangle with one corner at at.
func (p *Populator) RandomTriangle(at geom.Vector3) *Triangle {
	a := &geom.Point{Vector3: at, Radius: 1}
	b := &geom.Point{Vector3: at.Add(geom.Vector3{X: p.centered(8), Y: p.centered(8), Z: p.centered(8)}), Radius: 1}
	c := &geom.Point{Vector3: at.Add(geom.Vector3{X: p.centered(8), Y: p.centered(8), Z: p.centered(8)}), Radius: 1}
	col := geom.Color{Red: p.channel(), Green: p.channel(), Blue: p.channel(), Alpha: p.channel()}
	t := NewTriangle(a, b, c, col)
	p.Set.AddTriangle(t)
	return t
}

// Faces adds one opaque triangle per index triple, sharing the given points.
func (p *Populator) Faces(points []*geom.Point, faces [][3]int) {
	for _, f := range faces {
		p.Set.AddTriangle(NewTriangle(points[f[0]], points[f[1]], points[f[2]], p.opaqueColor()))
	}
}

var cubeFaces = [][3]int{
	{4, 5, 6}, {7, 5, 6}, // front
	{0, 1, 2}, {3, 1, 2}, // back
	{2, 3, 6}, {7, 3, 6}, // top
	{0, 1, 4}, {5, 1, 4}, // bottom
	{0, 2, 4}, {6, 2, 4}, // left
	{1, 3, 5}, {7, 3, 5}, // right
}

// Cube adds an axis-aligned cube of 12 triangles centered at c.
func (p *Populator) Cube(c geom.Vector3, side float64) {
	r := side / 2
	points := make([]*geom.Point, 0, 8)
	for _, z := range []float64{-r, r} {
		for _, y := range []float64{-r, r} {
			for _, x := range []float64{-r, r} {
				points = append(points, geom.NewPoint(c.X+x, c.Y+y, c.Z+z))
			}
		}
	}
	p.Faces(points, cubeFaces)
}

var pyramidFaces = [][3]int{
	{4, 0, 1}, // front
	{4, 2, 3}, // back
	{4, 0, 2}, // left
	{4, 1, 3}, // right
	{0, 1, 2}, // base
	{1, 2, 3},
}

// Pyramid adds a square pyramid of 6 triangles centered at c, apex up.
func (p *Populator) Pyramid(c geom.Vector3, side float64) {
	r := side / 2
	points := []*geom.Point{
		geom.NewPoint(c.X-r, c.Y-r, c.Z-r),
		geom.NewPoint(c.X+r, c.Y-r, c.Z-r),
		geom.NewPoint(c.X-r, c.Y-r, c.Z+r),
		geom.NewPoint(c.X+r, c.Y-r, c.Z+r),
		geom.NewPoint(c.X, c.Y+r, c.Z),
	}
	p.Faces(points, pyramidFaces)
}

// Tower adds a plus-shaped stack of seven cubes capped above and below by a
// pyramid.
func (p *Populator) Tower(c geom.Vector3, side float64) {
	offsets := []geom.Vector3{
		{}, {Y: side}, {Y: -side},
		{X: side}, {X: -side},
		{Z: side}, {Z: -side},
	}
	for _, o := range offsets {
		p.Cube(c.Add(o), side)
	}
	p.Pyramid(c.Add(geom.Vector3{Y: 2 * side}), side)
	p.Pyramid(c.Add(geom.Vector3{Y: -2 * side}), side)
}

// Marker adds a standalone point drawn as a disc.
func (p *Populator) Marker(at geom.Vector3, radius float64) *geom.Point {
	pt := &geom.Point{Vector3: at, Radius: radius}
	p.Set.Add(PointEntity(pt, p.opaqueColor()))
	return pt
}
