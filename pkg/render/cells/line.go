package cells

import "image"

// Bresenham returns the integer points from (x0, y0) to (x1, y1), both
// endpoints included.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, max(dx, dy)+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar picks the box-drawing character for direction (dx, dy).
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
