package raster

import (
	"image/color"
	"math"
)

// DrawLine draws a one pixel wide line from (x1, y1) to (x2, y2) with a DDA
// walk. Pixels are overwritten, not blended, and anything off the canvas is
// skipped.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA) {
	img := c.img
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := float64(x1)
	y := float64(y1)
	bounds := img.Bounds()

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if ix >= bounds.Min.X && ix < bounds.Max.X && iy >= bounds.Min.Y && iy < bounds.Max.Y {
			offset := img.PixOffset(ix, iy)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}
