package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"painter3d/geom"
)

// Canvas is a software drawing surface backed by an *image.RGBA. Fills are
// anti-aliased and blended over what is already there.
type Canvas struct {
	// Wireframe makes FillTriangle draw outlines instead of filling.
	Wireframe bool

	img  *image.RGBA
	ras  vector.Rasterizer
	mask image.Alpha
	src  image.Uniform

	poly []geom.Point2
}

func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image is the frame drawn so far. It is replaced by Resize.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Resize reallocates the backing image if the size changed. The new image
// is blank.
func (c *Canvas) Resize(width, height int) {
	if w, h := c.Size(); w == width && h == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) Clear(col color.RGBA) {
	c.src.C = col
	draw.Draw(c.img, c.img.Bounds(), &c.src, image.Point{}, draw.Src)
}

func (c *Canvas) FillTriangle(a, b, d geom.Point2, col color.RGBA) {
	if c.Wireframe {
		c.StrokeTriangle(a, b, d, col)
		return
	}
	c.poly = append(c.poly[:0], a, b, d)
	c.fillPolygon(c.poly, col)
}

func (c *Canvas) FillCircle(center geom.Point2, diameter float64, col color.RGBA) {
	r := diameter / 2
	if !(r > 0) || math.IsInf(r, 0) {
		return
	}
	n := int(math.Ceil(r * 0.75))
	n = max(12, min(n, 96))
	c.poly = c.poly[:0]
	for i := 0; i < n; i++ {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		c.poly = append(c.poly, geom.Point2{X: center.X + r*co, Y: center.Y + r*s})
	}
	c.fillPolygon(c.poly, col)
}

func (c *Canvas) StrokeTriangle(a, b, d geom.Point2, col color.RGBA) {
	for _, p := range []geom.Point2{a, b, d} {
		if !finite(p) {
			return
		}
	}
	c.strokeSegment(a, b, col)
	c.strokeSegment(b, d, col)
	c.strokeSegment(d, a, col)
}

func (c *Canvas) strokeSegment(a, b geom.Point2, col color.RGBA) {
	w, h := c.Size()
	a, b, ok := clipSegment(a, b, 0, 0, float64(w-1), float64(h-1))
	if !ok {
		return
	}
	c.DrawLine(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), col)
}

func (c *Canvas) fillPolygon(poly []geom.Point2, col color.RGBA) {
	for _, p := range poly {
		if !finite(p) {
			return
		}
	}
	w, h := c.Size()
	clipped := clipPolygon(poly, 0, 0, float64(w), float64(h))
	if len(clipped) < 3 {
		return
	}

	minX, minY := clipped[0].X, clipped[0].Y
	maxX, maxY := minX, minY
	for _, p := range clipped[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}

	bw, bh := bounds.Dx(), bounds.Dy()
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	c.ras.Reset(bw, bh)
	c.ras.DrawOp = draw.Src
	c.ras.MoveTo(float32(clipped[0].X-ox), float32(clipped[0].Y-oy))
	for _, p := range clipped[1:] {
		c.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.ras.ClosePath()

	if cap(c.mask.Pix) < bw*bh {
		c.mask.Pix = make([]uint8, bw*bh)
	}
	c.mask.Pix = c.mask.Pix[:bw*bh]
	c.mask.Stride = bw
	c.mask.Rect = image.Rect(0, 0, bw, bh)
	c.ras.Draw(&c.mask, c.mask.Rect, image.Opaque, image.Point{})

	c.src.C = col
	draw.DrawMask(c.img, bounds, &c.src, image.Point{}, &c.mask, image.Point{}, draw.Over)
}

func finite(p geom.Point2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func point2(p image.Point) geom.Point2 {
	return geom.Point2{X: float64(p.X), Y: float64(p.Y)}
}
