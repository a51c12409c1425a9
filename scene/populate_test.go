package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painter3d/geom"
	"painter3d/scene"
)

func TestShapeTriangleCounts(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *scene.Populator)
		want  int
	}{
		{"cube", func(p *scene.Populator) { p.Cube(geom.Vector3{}, 2) }, 12},
		{"pyramid", func(p *scene.Populator) { p.Pyramid(geom.Vector3{}, 2) }, 6},
		{"tower", func(p *scene.Populator) { p.Tower(geom.Vector3{}, 2) }, 7*12 + 2*6},
		{"random triangle", func(p *scene.Populator) { p.RandomTriangle(geom.Vector3{}) }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &scene.Set{}
			tt.build(testPopulator(set))
			assert.Equal(t, tt.want, set.Len())
			for _, e := range set.Entities() {
				assert.Equal(t, scene.KindTriangle, e.Kind)
			}
		})
	}
}

func TestCubeSharesVertices(t *testing.T) {
	set := &scene.Set{}
	testPopulator(set).Cube(geom.Vector3{X: 10, Y: 20, Z: 30}, 4)

	distinct := map[*geom.Point]bool{}
	for _, e := range set.Entities() {
		tri := e.Triangle
		distinct[tri.A], distinct[tri.B], distinct[tri.C] = true, true, true
	}
	require.Len(t, distinct, 8)
	for p := range distinct {
		assert.InDelta(t, 2, abs(p.X-10), 1e-12)
		assert.InDelta(t, 2, abs(p.Y-20), 1e-12)
		assert.InDelta(t, 2, abs(p.Z-30), 1e-12)
	}
}

func TestPyramidApex(t *testing.T) {
	set := &scene.Set{}
	testPopulator(set).Pyramid(geom.Vector3{}, 2)
	// every side face starts at the apex
	for i := 0; i < 4; i++ {
		assert.Equal(t, geom.Vector3{Y: 1}, set.At(i).Triangle.A.Vector3)
	}
}

func TestPopulate(t *testing.T) {
	counts := scene.Counts{Triangles: 100, Cubes: 20, Pyramids: 20, Towers: 20, Markers: 40}
	bounds := scene.Bounds{Width: 200, Height: 50, Depth: 200}

	a := &scene.Set{}
	scene.NewPopulator(a, bounds, 99).Populate(counts)
	assert.Equal(t, 100+20*12+20*6+20*96+40, a.Len())

	b := &scene.Set{}
	scene.NewPopulator(b, bounds, 99).Populate(counts)
	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		ea, eb := a.At(i), b.At(i)
		require.Equal(t, ea.Kind, eb.Kind)
		if ea.Kind == scene.KindTriangle {
			assert.Equal(t, ea.Triangle.Centroid(), eb.Triangle.Centroid())
			assert.Equal(t, ea.Triangle.Color, eb.Triangle.Color)
		} else {
			assert.Equal(t, *ea.Point, *eb.Point)
		}
	}

	markers := 0
	for _, e := range a.Entities() {
		switch e.Kind {
		case scene.KindPoint:
			markers++
			assert.LessOrEqual(t, abs(e.Point.X), 100.0)
			assert.LessOrEqual(t, abs(e.Point.Y), 25.0)
			assert.LessOrEqual(t, abs(e.Point.Z), 100.0)
			assert.GreaterOrEqual(t, e.Color.Red, uint8(155))
		case scene.KindTriangle:
			c := e.Triangle.Color
			assert.GreaterOrEqual(t, c.Red, uint8(155))
			assert.GreaterOrEqual(t, c.Green, uint8(155))
			assert.GreaterOrEqual(t, c.Blue, uint8(155))
			assert.GreaterOrEqual(t, c.Alpha, uint8(155))
		}
	}
	assert.Equal(t, 40, markers)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
