package editor

import "image/color"

// Surface is a 2D drawing target with canvas-style path primitives. Angles
// are in radians; coordinates are surface pixels.
type Surface interface {
	Size() (width, height float64)
	ClearRect(x, y, w, h float64)
	BeginPath()
	Arc(x, y, r, start, end float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)
	Fill()
	Stroke()
}
