package cells

import (
	"image"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/editor"
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

func TestBresenham(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{0, 0, 3, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{0, 0, 0, -2, []image.Point{{0, 0}, {0, -1}, {0, -2}}},
		{0, 0, 2, 2, []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{1, 1, 1, 1, []image.Point{{1, 1}}},
	}
	for _, tt := range tests {
		got := Bresenham(tt.x0, tt.y0, tt.x1, tt.y1)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Bresenham(%d,%d,%d,%d) = %v, want %v", tt.x0, tt.y0, tt.x1, tt.y1, got, tt.want)
		}
	}
}

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{5, 0, '─'},
		{0, -3, '│'},
		{3, 3, '╲'},
		{3, -3, '╱'},
		{10, 1, '─'},
		{1, 10, '│'},
	}
	for _, tt := range tests {
		if got := LineChar(tt.dx, tt.dy); got != tt.want {
			t.Errorf("LineChar(%d, %d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestEditorOnCells(t *testing.T) {
	buf := New(12, 3)
	g := graph.New(graph.WithIDFunc(graph.SequentialIDs("v")))
	a := g.AddVertex(&graph.Vertex{Position: graph.Position{1, 1}})
	b := g.AddVertex(&graph.Vertex{Position: graph.Position{10, 1}})
	g.AddEdge(a, b)

	e := editor.New(g, buf, editor.WithRadius(0.5), editor.WithLogger(log.New(io.Discard)))

	want := strings.Join([]string{
		"            ",
		" ●────────● ",
		"            ",
	}, "\n")
	if got := buf.Plain(); got != want {
		t.Fatalf("frame:\n%s\nwant:\n%s", got, want)
	}

	e.SetMode(editor.ModeEditVertex)
	e.PointerDown(1, 1)
	if c := buf.At(1, 1); c.BG == nil {
		t.Error("selected vertex has no highlight background")
	}
	if c := buf.At(10, 1); c.BG != nil {
		t.Error("unselected vertex highlighted")
	}
	if buf.Render() == "" {
		t.Error("Render() returned nothing")
	}
}

func TestClearRectBounds(t *testing.T) {
	buf := New(3, 2)
	buf.Cells[0][0].Ch = 'x'
	buf.ClearRect(-5, -5, 100, 100)
	if buf.At(0, 0).Ch != ' ' {
		t.Error("ClearRect did not clear")
	}
	if buf.At(7, 7).Ch != ' ' {
		t.Error("out of bounds At should be blank")
	}
}

func TestFillLargeDisc(t *testing.T) {
	buf := New(5, 5)
	buf.BeginPath()
	buf.Arc(2, 2, 1, 0, 6.3)
	buf.Fill()
	want := strings.Join([]string{
		"     ",
		"  ●  ",
		" ●●● ",
		"  ●  ",
		"     ",
	}, "\n")
	if got := buf.Plain(); got != want {
		t.Errorf("disc:\n%s\nwant:\n%s", got, want)
	}
}
