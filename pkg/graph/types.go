package graph

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Position is a point in model space, serialized as a two-element array [x, y].
type Position [2]float64

// X returns the horizontal coordinate.
func (p Position) X() float64 { return p[0] }

// Y returns the vertical coordinate.
func (p Position) Y() float64 { return p[1] }

// Midpoint returns the point halfway between p and q.
func (p Position) Midpoint(q Position) Position {
	return Position{(p[0] + q[0]) / 2, (p[1] + q[1]) / 2}
}

// Labels holds display attributes. The first element is conventionally a fill
// colour (CSS name or hex string) or a numeric class.
type Labels []any

// Color returns the first label if it is a non-empty string.
func (l Labels) Color() (string, bool) {
	if len(l) == 0 {
		return "", false
	}
	s, ok := l[0].(string)
	return s, ok && s != ""
}

// Vertex is a single graph vertex. Neighbors holds vertex IDs and may contain
// repeated entries when the same edge was added more than once.
type Vertex struct {
	Neighbors []string `json:"neighbors" bson:"neighbors"`
	Position  Position `json:"position" bson:"position"`
	Labels    Labels   `json:"labels,omitempty" bson:"labels,omitempty"`
}

// MarshalJSON encodes a missing neighbor list as [] rather than null.
func (v Vertex) MarshalJSON() ([]byte, error) {
	type plain Vertex
	p := plain(v)
	if p.Neighbors == nil {
		p.Neighbors = []string{}
	}
	return json.Marshal(p)
}

// Clone returns a deep copy of the vertex.
func (v *Vertex) Clone() *Vertex {
	if v == nil {
		return nil
	}
	return &Vertex{
		Neighbors: slices.Clone(v.Neighbors),
		Position:  v.Position,
		Labels:    slices.Clone(v.Labels),
	}
}

// Degree returns the number of neighbor entries.
func (v *Vertex) Degree() int { return len(v.Neighbors) }

// HasNeighbor reports whether id appears in the neighbor list.
func (v *Vertex) HasNeighbor(id string) bool { return slices.Contains(v.Neighbors, id) }

// Data is the plain vertex map exchanged with persistence and the HTTP
// boundary. It is keyed by vertex ID.
type Data map[string]*Vertex

// Clone returns a deep copy of the map and every vertex in it.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for id, v := range d {
		out[id] = v.Clone()
	}
	return out
}

// IDs returns the vertex IDs in sorted order.
func (d Data) IDs() []string {
	return slices.Sorted(maps.Keys(d))
}

// EdgeCount returns the number of undirected edges, counting each pair of
// matching neighbor entries once.
func (d Data) EdgeCount() int {
	n := 0
	for _, v := range d {
		if v != nil {
			n += len(v.Neighbors)
		}
	}
	return n / 2
}

// Validate checks that every neighbor reference resolves and that the
// neighbor relation is symmetric with matching multiplicity. It is meant for
// data arriving from outside the process; graphs built through [Graph]
// methods are symmetric by construction.
func (d Data) Validate() error {
	for _, id := range d.IDs() {
		v := d[id]
		if v == nil {
			return fmt.Errorf("vertex %q: %w", id, ErrNilVertex)
		}
		for _, nb := range v.Neighbors {
			other, ok := d[nb]
			if !ok || other == nil {
				return fmt.Errorf("vertex %q -> %q: %w", id, nb, ErrDanglingNeighbor)
			}
			if count(v.Neighbors, nb) != count(other.Neighbors, id) {
				return fmt.Errorf("vertex %q <-> %q: %w", id, nb, ErrAsymmetricEdge)
			}
		}
	}
	return nil
}

func count(ids []string, id string) int {
	n := 0
	for _, x := range ids {
		if x == id {
			n++
		}
	}
	return n
}
