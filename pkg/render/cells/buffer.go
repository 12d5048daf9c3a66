// Package cells implements an editor surface on a character grid so graphs
// can be drawn and edited in a terminal.
//
// One surface unit is one cell. Edges are rasterized with Bresenham's
// algorithm using box-drawing characters; vertices are filled discs of '●'.
// A stroked vertex outline wider than one unit (a highlight) colours the
// disc's background. [Buffer.Render] merges runs of equally styled cells and
// renders each run with lipgloss.
//
// All runes are assumed to be single width.
package cells

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Vertex glyph.
const Dot = '●'

// Cell is one character with optional colours.
type Cell struct {
	Ch rune
	FG color.Color
	BG color.Color
}

// Buffer is a grid of cells that implements editor.Surface.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]

	fill, stroke color.Color
	lineWidth    float64

	cur      [2]float64
	segments [][4]float64
	disc     *disc
}

type disc struct {
	x, y, r float64
}

// New creates a blank w by h buffer.
func New(w, h int) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h), lineWidth: 1}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.ClearRect(0, 0, float64(w), float64(h))
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' '}
	}
	return b.Cells[y][x]
}

func (b *Buffer) set(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = c
	}
}

// Size implements editor.Surface.
func (b *Buffer) Size() (float64, float64) { return float64(b.W), float64(b.H) }

// ClearRect implements editor.Surface.
func (b *Buffer) ClearRect(x, y, w, h float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for r := max(y0, 0); r < min(y1, b.H); r++ {
		for c := max(x0, 0); c < min(x1, b.W); c++ {
			b.Cells[r][c] = Cell{Ch: ' '}
		}
	}
}

// BeginPath implements editor.Surface.
func (b *Buffer) BeginPath() {
	b.segments = b.segments[:0]
	b.disc = nil
}

// Arc implements editor.Surface. Only full discs are drawn; the angles are
// ignored.
func (b *Buffer) Arc(x, y, r, start, end float64) {
	b.disc = &disc{x: x, y: y, r: r}
}

// MoveTo implements editor.Surface.
func (b *Buffer) MoveTo(x, y float64) { b.cur = [2]float64{x, y} }

// LineTo implements editor.Surface.
func (b *Buffer) LineTo(x, y float64) {
	b.segments = append(b.segments, [4]float64{b.cur[0], b.cur[1], x, y})
	b.cur = [2]float64{x, y}
}

// SetFillStyle implements editor.Surface.
func (b *Buffer) SetFillStyle(c color.Color) { b.fill = c }

// SetStrokeStyle implements editor.Surface.
func (b *Buffer) SetStrokeStyle(c color.Color) { b.stroke = c }

// SetLineWidth implements editor.Surface.
func (b *Buffer) SetLineWidth(w float64) { b.lineWidth = w }

// Fill paints the current disc with Dot in the fill colour.
func (b *Buffer) Fill() {
	if b.disc == nil {
		return
	}
	b.eachDiscCell(func(x, y int) {
		c := b.At(x, y)
		b.set(x, y, Cell{Ch: Dot, FG: b.fill, BG: c.BG})
	})
}

// Stroke draws the current line segments, or highlights the current disc
// when the line width is above one.
func (b *Buffer) Stroke() {
	if b.disc != nil {
		if b.lineWidth > 1 {
			b.eachDiscCell(func(x, y int) {
				c := b.At(x, y)
				c.BG = b.stroke
				b.set(x, y, c)
			})
		}
		return
	}
	for _, s := range b.segments {
		x0, y0 := round(s[0]), round(s[1])
		x1, y1 := round(s[2]), round(s[3])
		ch := LineChar(x1-x0, y1-y0)
		for _, p := range Bresenham(x0, y0, x1, y1) {
			if b.At(p.X, p.Y).Ch == Dot {
				continue
			}
			b.set(p.X, p.Y, Cell{Ch: ch, FG: b.stroke})
		}
	}
}

// eachDiscCell visits the cells whose centres lie within the disc. A disc
// smaller than one cell covers its centre cell.
func (b *Buffer) eachDiscCell(fn func(x, y int)) {
	d := b.disc
	cx, cy := round(d.x), round(d.y)
	fn(cx, cy)
	reach := int(math.Ceil(d.r))
	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			if (x != cx || y != cy) && math.Hypot(float64(x)-d.x, float64(y)-d.y) <= d.r {
				fn(x, y)
			}
		}
	}
}

// Plain returns the buffer's characters without styling.
func (b *Buffer) Plain() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer as a styled string. Consecutive cells with the
// same colours are rendered as one run.
func (b *Buffer) Render() string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			chunk := make([]rune, x-start)
			for i := start; i < x; i++ {
				chunk[i-start] = row[i].Ch
			}
			sb.WriteString(style(row[start]).Render(string(chunk)))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func style(c Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.FG != nil {
		s = s.Foreground(lipgloss.Color(hex(c.FG)))
	}
	if c.BG != nil {
		s = s.Background(lipgloss.Color(hex(c.BG)))
	}
	return s
}

func sameStyle(a, b Cell) bool {
	return hex(a.FG) == hex(b.FG) && hex(a.BG) == hex(b.BG)
}

func hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func round(v float64) int { return int(math.Round(v)) }
