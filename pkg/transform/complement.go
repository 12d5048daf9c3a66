package transform

import (
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Complement replaces the edge set of g with its complement. Vertex IDs,
// positions and labels are kept.
func Complement(g *graph.Graph) {
	src := g.Vertices()
	ids := src.IDs()

	adjacent := make(map[string]map[string]bool, len(ids))
	staged := make(graph.Data, len(ids))
	for _, id := range ids {
		v := src[id]
		set := make(map[string]bool, len(v.Neighbors))
		for _, nb := range v.Neighbors {
			set[nb] = true
		}
		adjacent[id] = set

		nv := v.Clone()
		nv.Neighbors = []string{}
		staged[id] = nv
	}

	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if adjacent[a][b] || adjacent[b][a] {
				continue
			}
			staged[a].Neighbors = append(staged[a].Neighbors, b)
			staged[b].Neighbors = append(staged[b].Neighbors, a)
		}
	}
	g.Replace(staged)
}
