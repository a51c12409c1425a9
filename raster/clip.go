package raster

import "painter3d/geom"

// clipPolygon clips a convex or simple polygon to the rectangle
// [minX, maxX] x [minY, maxY] (Sutherland-Hodgman).
func clipPolygon(poly []geom.Point2, minX, minY, maxX, maxY float64) []geom.Point2 {
	out := poly
	edges := []struct {
		inside    func(p geom.Point2) bool
		intersect func(a, b geom.Point2) geom.Point2
	}{
		{
			func(p geom.Point2) bool { return p.X >= minX },
			func(a, b geom.Point2) geom.Point2 { return atX(a, b, minX) },
		},
		{
			func(p geom.Point2) bool { return p.X <= maxX },
			func(a, b geom.Point2) geom.Point2 { return atX(a, b, maxX) },
		},
		{
			func(p geom.Point2) bool { return p.Y >= minY },
			func(a, b geom.Point2) geom.Point2 { return atY(a, b, minY) },
		},
		{
			func(p geom.Point2) bool { return p.Y <= maxY },
			func(a, b geom.Point2) geom.Point2 { return atY(a, b, maxY) },
		},
	}

	var scratch, buf []geom.Point2
	for _, e := range edges {
		if len(out) == 0 {
			return out
		}
		in := out
		scratch, buf = buf[:0], scratch
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					scratch = append(scratch, e.intersect(prev, cur))
				}
				scratch = append(scratch, cur)
			case e.inside(prev):
				scratch = append(scratch, e.intersect(prev, cur))
			}
			prev = cur
		}
		out = scratch
	}
	return out
}

func atX(a, b geom.Point2, x float64) geom.Point2 {
	t := (x - a.X) / (b.X - a.X)
	return geom.Point2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b geom.Point2, y float64) geom.Point2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Point2{X: a.X + t*(b.X-a.X), Y: y}
}

// clipSegment clips the segment ab to the rectangle (Liang-Barsky). ok is
// false when nothing of it is inside.
func clipSegment(a, b geom.Point2, minX, minY, maxX, maxY float64) (geom.Point2, geom.Point2, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}
	return geom.Point2{X: a.X + t0*dx, Y: a.Y + t0*dy},
		geom.Point2{X: a.X + t1*dx, Y: a.Y + t1*dy},
		true
}
