// Package raster turns continuous strokes into discrete cells.
package raster

import "image"

// Line visits every cell of the straight line from start to end, both
// inclusive, using integer error accumulation only.
//
// The walk is 8-connected and visits each cell once. On every step the x
// decision is taken before the y decision, so identical endpoints always
// produce the identical sequence.
func Line(start, end image.Point, visit func(image.Point)) {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	dx, sx := abs(x1-x0), sign(x0, x1)
	dy, sy := abs(y1-y0), sign(y0, y1)
	err := dx - dy

	for {
		visit(image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Points collects the cells visited by Line.
func Points(start, end image.Point) []image.Point {
	var pts []image.Point
	Line(start, end, func(p image.Point) {
		pts = append(pts, p)
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
