package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphcanvas/pkg/graph"
)

func pair() graph.Data {
	return graph.Data{
		"a": {Neighbors: []string{"b"}, Position: graph.Position{10, 20}, Labels: graph.Labels{"red"}},
		"b": {Neighbors: []string{"a"}, Position: graph.Position{30.5, 40}},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(pair(), Options{})

	for _, want := range []string{
		"graph G {",
		"layout=neato",
		`"a" [pos="10.00,-20.00!"`,
		`"b" [pos="30.50,-40.00!"`,
		`fillcolor="#ff0000"`,
		`fillcolor="#000000"`,
		`label=""`,
		`"a" -- "b";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() wrote a directed edge")
	}
}

func TestToDOTEdgesOnce(t *testing.T) {
	d := graph.Data{
		"a": {Neighbors: []string{"b", "b", "a", "a"}},
		"b": {Neighbors: []string{"a", "a"}},
	}
	dot := ToDOT(d, Options{})
	if n := strings.Count(dot, `"a" -- "b"`); n != 2 {
		t.Errorf("parallel edges written %d times, want 2", n)
	}
	if n := strings.Count(dot, `"a" -- "a"`); n != 1 {
		t.Errorf("self-loop written %d times, want 1", n)
	}
	if n := strings.Count(dot, `"b" -- "a"`); n != 0 {
		t.Errorf("reverse edge written %d times", n)
	}
}

func TestToDOTLabels(t *testing.T) {
	dot := ToDOT(pair(), Options{Labels: true, Radius: 36})
	if !strings.Contains(dot, `label="a"`) {
		t.Error("ToDOT() with Labels missing vertex ID label")
	}
	if !strings.Contains(dot, "width=1.000") {
		t.Errorf("ToDOT() radius 36 should give width 1 inch:\n%s", dot)
	}
	if !strings.Contains(dot, `fontcolor="#ffffff"`) {
		t.Error("black node should get white text")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
