package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"painter3d/geom"
)

func TestDot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(32.0, geom.Dot(geom.Vector3{1, 2, 3}, geom.Vector3{4, 5, 6}))
	assert.Equal(0.0, geom.Dot(geom.Vector3{1, 0, 0}, geom.Vector3{0, 0, 1}))
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Vector3
		want float64
	}{
		{"same", geom.Vector3{1, 0, 0}, geom.Vector3{3, 0, 0}, 0},
		{"orthogonal", geom.Vector3{1, 0, 0}, geom.Vector3{0, 0, 2}, math.Pi / 2},
		{"opposite", geom.Vector3{1, 0, 0}, geom.Vector3{-5, 0, 0}, math.Pi},
		{"diagonal", geom.Vector3{1, 0, 0}, geom.Vector3{1, 1, 0}, math.Pi / 4},
		{"zero a", geom.Vector3{}, geom.Vector3{1, 0, 0}, 0},
		{"zero b", geom.Vector3{1, 2, 3}, geom.Vector3{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geom.AngleBetween(tt.a, tt.b), 1e-12)
		})
	}
}

func TestAngleBetweenNeverNaN(t *testing.T) {
	// Nearly parallel vectors whose cosine rounds above 1.
	a := geom.Vector3{0.1, 0.2, 0.3}
	for i := 0; i < 1000; i++ {
		b := a.Scale(float64(i) + 0.7)
		got := geom.AngleBetween(a, b)
		assert.False(t, math.IsNaN(got), "scale %v", float64(i)+0.7)
		assert.InDelta(t, 0, got, 1e-6)
	}
}

func TestVectorOps(t *testing.T) {
	assert := assert.New(t)

	v := geom.Vector3{1, 2, 3}
	v.TranslateBy(1, -2, 0.5)
	assert.Equal(geom.Vector3{2, 0, 3.5}, v)

	assert.Equal(5.0, geom.Vector3{3, 4, 0}.Magnitude())
	assert.Equal(geom.Vector3{1, 1, 1}, geom.Mean(geom.Vector3{0, 0, 0}, geom.Vector3{2, 2, 2}, geom.Vector3{1, 1, 1}))
	assert.Equal(geom.Vector3{}, geom.Mean())

	rotated := geom.Horizontal(0.3).RotateY(-0.5)
	want := geom.Horizontal(0.8)
	assert.InDelta(want.X, rotated.X, 1e-12)
	assert.InDelta(want.Y, rotated.Y, 1e-12)
	assert.InDelta(want.Z, rotated.Z, 1e-12)
}
