package transform

import (
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

type edge struct {
	a, b string
}

func (e edge) touches(o edge) bool {
	return e.a == o.a || e.a == o.b || e.b == o.a || e.b == o.b
}

// LineGraph replaces g with its line graph.
func LineGraph(g *graph.Graph) {
	src := g.Vertices()
	edges := undirectedEdges(src)

	staged := make(graph.Data, len(edges))
	ids := make([]string, len(edges))
	for i, e := range edges {
		id := freshID(g, staged)
		ids[i] = id
		staged[id] = &graph.Vertex{
			Neighbors: []string{},
			Position:  src[e.a].Position.Midpoint(src[e.b].Position),
		}
	}

	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if !edges[i].touches(edges[j]) {
				continue
			}
			a, b := staged[ids[i]], staged[ids[j]]
			a.Neighbors = append(a.Neighbors, ids[j])
			b.Neighbors = append(b.Neighbors, ids[i])
		}
	}
	g.Replace(staged)
}

// undirectedEdges lists every edge once, in sorted vertex order. Each
// occurrence of w in v's neighbor list with v < w is one edge; a self-loop
// appears twice in its vertex's list and is counted once per pair.
func undirectedEdges(d graph.Data) []edge {
	var edges []edge
	for _, v := range d.IDs() {
		loops := 0
		for _, w := range d[v].Neighbors {
			switch {
			case w == v:
				loops++
			case v < w:
				if _, ok := d[w]; ok {
					edges = append(edges, edge{v, w})
				}
			}
		}
		for range loops / 2 {
			edges = append(edges, edge{v, v})
		}
	}
	return edges
}

// freshID draws IDs from g's generator until one is unused in both g and the
// staged set.
func freshID(g *graph.Graph, staged graph.Data) string {
	for {
		id := g.NextID()
		if _, taken := staged[id]; taken {
			continue
		}
		if g.Vertex(id) != nil {
			continue
		}
		return id
	}
}
