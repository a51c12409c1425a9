package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var face = basicfont.Face7x13

// TextWidth is the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText draws a single line of s with its top edge at y, positioned
// horizontally around x according to align.
func (c *Canvas) DrawText(x, y int, s string, align Align, col color.RGBA) {
	switch align {
	case AlignCenter:
		x -= TextWidth(s) / 2
	case AlignRight:
		x -= TextWidth(s)
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// DrawBanner draws s centered on the canvas over a dark band.
func (c *Canvas) DrawBanner(s string, col color.RGBA) {
	w, h := c.Size()
	lineHeight := face.Metrics().Height.Ceil()
	band := image.Rect(0, h/2-lineHeight, w, h/2+lineHeight)
	c.poly = c.poly[:0]
	for _, p := range []image.Point{band.Min, {band.Max.X, band.Min.Y}, band.Max, {band.Min.X, band.Max.Y}} {
		c.poly = append(c.poly, point2(p))
	}
	c.fillPolygon(c.poly, color.RGBA{A: 192})
	c.DrawText(w/2, h/2-lineHeight/2, s, AlignCenter, col)
}
