package editor

import (
	"image/color"
)

// disk is a vertex as drawn: centre, radius, fill and outline.
type disk struct {
	x, y, r      float64
	fill         color.Color
	outline      color.Color
	outlineWidth float64
}

// recorder is a Surface that records what was drawn on the last frame.
type recorder struct {
	w, h float64

	ops      []string
	segments [][4]float64
	disks    []disk
	frames   int

	fill, stroke color.Color
	width        float64
	pathStart    [2]float64
	pathEnd      [2]float64
	arc          *disk
}

func newRecorder(w, h float64) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.ops = []string{"clear"}
	r.segments = nil
	r.disks = nil
	r.frames++
}

func (r *recorder) BeginPath() {
	r.ops = append(r.ops, "begin")
	r.arc = nil
}

func (r *recorder) Arc(x, y, rad, start, end float64) {
	r.ops = append(r.ops, "arc")
	r.arc = &disk{x: x, y: y, r: rad}
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "move")
	r.pathStart = [2]float64{x, y}
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "line")
	r.pathEnd = [2]float64{x, y}
}

func (r *recorder) SetFillStyle(c color.Color)   { r.fill = c }
func (r *recorder) SetStrokeStyle(c color.Color) { r.stroke = c }
func (r *recorder) SetLineWidth(w float64)       { r.width = w }

func (r *recorder) Fill() {
	r.ops = append(r.ops, "fill")
	if r.arc != nil {
		r.arc.fill = r.fill
	}
}

func (r *recorder) Stroke() {
	r.ops = append(r.ops, "stroke")
	if r.arc != nil {
		r.arc.outline = r.stroke
		r.arc.outlineWidth = r.width
		r.disks = append(r.disks, *r.arc)
		r.arc = nil
		return
	}
	r.segments = append(r.segments, [4]float64{r.pathStart[0], r.pathStart[1], r.pathEnd[0], r.pathEnd[1]})
}

// diskAt returns the disk drawn at (x, y) on the last frame.
func (r *recorder) diskAt(x, y float64) (disk, bool) {
	for _, d := range r.disks {
		if d.x == x && d.y == y {
			return d, true
		}
	}
	return disk{}, false
}

var _ Surface = (*recorder)(nil)
