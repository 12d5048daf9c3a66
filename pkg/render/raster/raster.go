// Package raster implements an editor surface backed by an RGBA image and
// encodes it as PNG.
//
//	s := raster.New(500, 400)
//	editor.New(g, s)
//	err := s.WritePNG(w)
//
// [Render] does the same in one call for a stored vertex map.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/graphcanvas/pkg/editor"
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Surface draws with gg. Fill and Stroke keep the current path, matching
// canvas semantics; BeginPath starts a new one.
type Surface struct {
	dc         *gg.Context
	background color.Color
}

// Option configures a Surface.
type Option func(*Surface)

// WithBackground sets the colour ClearRect paints. The default is white;
// color.Transparent gives a transparent PNG.
func WithBackground(c color.Color) Option {
	return func(s *Surface) { s.background = c }
}

// New creates a w by h pixel surface.
func New(w, h int, opts ...Option) *Surface {
	s := &Surface{dc: gg.NewContext(w, h), background: editor.BackgroundColor}
	for _, opt := range opts {
		opt(s)
	}
	s.ClearRect(0, 0, float64(w), float64(h))
	return s
}

// Image returns the underlying image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// WritePNG encodes the current image.
func (s *Surface) WritePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// SavePNG writes the current image to path.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Size implements editor.Surface.
func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// ClearRect implements editor.Surface by painting the background colour.
func (s *Surface) ClearRect(x, y, w, h float64) {
	img, ok := s.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	draw.Draw(img, r, image.NewUniform(s.background), image.Point{}, draw.Src)
}

// BeginPath implements editor.Surface.
func (s *Surface) BeginPath() { s.dc.ClearPath() }

// Arc implements editor.Surface.
func (s *Surface) Arc(x, y, r, start, end float64) { s.dc.DrawArc(x, y, r, start, end) }

// MoveTo implements editor.Surface.
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo implements editor.Surface.
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// SetFillStyle implements editor.Surface.
func (s *Surface) SetFillStyle(c color.Color) { s.dc.SetFillStyle(gg.NewSolidPattern(c)) }

// SetStrokeStyle implements editor.Surface.
func (s *Surface) SetStrokeStyle(c color.Color) { s.dc.SetStrokeStyle(gg.NewSolidPattern(c)) }

// SetLineWidth implements editor.Surface.
func (s *Surface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }

// Fill implements editor.Surface.
func (s *Surface) Fill() { s.dc.FillPreserve() }

// Stroke implements editor.Surface.
func (s *Surface) Stroke() { s.dc.StrokePreserve() }

var _ editor.Surface = (*Surface)(nil)

// Render draws d on a w by h image and writes it as PNG. modelW and modelH
// give the model area mapped onto the image; zero values map the model
// 1:1.
func Render(out io.Writer, d graph.Data, w, h int, modelW, modelH float64, opts ...editor.Option) error {
	s := New(w, h)
	if modelW > 0 && modelH > 0 {
		opts = append(opts, editor.WithModelSize(modelW, modelH))
	}
	editor.New(graph.FromData(d.Clone()), s, opts...)
	return s.WritePNG(out)
}
