package families

import (
	"math"

	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Default radii, in model-space units.
const (
	DefaultRadius      = 100.0
	DefaultOuterRadius = 200.0
	DefaultInnerRadius = 75.0
)

// Size limits for a single generator call.
const (
	MaxVertices = 10_000
	MaxEdges    = 500_000
)

// Circular adds n vertices with empty neighbor lists, vertex i placed at angle
// 2πi/n and distance r from the graph's centre. It returns the new IDs in
// placement order.
func Circular(g *graph.Graph, n int, r float64) ([]string, error) {
	if err := checkCount("circular", "n", n); err != nil {
		return nil, err
	}
	if err := checkRadius("circular", r); err != nil {
		return nil, err
	}
	return circular(g, n, r), nil
}

func circular(g *graph.Graph, n int, r float64) []string {
	c := g.Center()
	ids := make([]string, 0, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := graph.Position{
			r*math.Cos(angle) + c.X(),
			r*math.Sin(angle) + c.Y(),
		}
		ids = append(ids, g.AddVertex(&graph.Vertex{Position: pos}))
	}
	return ids
}

// connect joins ids[i] and ids[j] unless they are the same index.
func connect(g *graph.Graph, ids []string, i, j int) {
	if i == j {
		return
	}
	g.AddEdge(ids[i], ids[j])
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
