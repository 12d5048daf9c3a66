package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrNilVertex is returned by [Data.Validate] when an entry holds no vertex.
	ErrNilVertex = errors.New("nil vertex")

	// ErrDanglingNeighbor is returned by [Data.Validate] when a neighbor list
	// references a vertex that is not in the map.
	ErrDanglingNeighbor = errors.New("neighbor references unknown vertex")

	// ErrAsymmetricEdge is returned by [Data.Validate] when b appears in the
	// neighbor list of a a different number of times than a appears in b's.
	ErrAsymmetricEdge = errors.New("asymmetric edge")
)

// DefaultCenter is the canvas centre used for absolute placement by the
// generators. It matches the middle of the 500x400 editing canvas.
var DefaultCenter = Position{250, 200}

// maxIDAttempts bounds how many fresh IDs AddVertex tries before giving up.
const maxIDAttempts = 8

// Graph is an undirected adjacency-list graph keyed by opaque string IDs.
//
// The neighbor relation is kept symmetric by every mutating method: if b is in
// the neighbor list of a then a is in the neighbor list of b. Parallel edges
// are allowed; AddEdge does not check for an existing edge.
//
// The zero value is not usable - use New or FromData.
// Graph is not safe for concurrent use.
type Graph struct {
	vertices Data
	center   Position
	newID    func() string
}

// Option configures a Graph.
type Option func(*Graph)

// WithIDFunc overrides the vertex ID generator. Tests use it to get
// deterministic IDs; the default is [NewID].
func WithIDFunc(fn func() string) Option {
	return func(g *Graph) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithCenter sets the placement centre used by generators.
func WithCenter(c Position) Option {
	return func(g *Graph) { g.center = c }
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices: make(Data),
		center:   DefaultCenter,
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromData creates a graph that takes ownership of d. The vertices are not
// copied: callers that need to keep d unchanged should pass d.Clone().
func FromData(d Data, opts ...Option) *Graph {
	g := New(opts...)
	for id, v := range d {
		if v != nil {
			g.vertices[id] = v
		}
	}
	return g
}

// Center returns the placement centre.
func (g *Graph) Center() Position { return g.center }

// NextID returns a fresh ID from the graph's generator. The ID is not
// reserved; use AddVertex to insert atomically.
func (g *Graph) NextID() string { return g.newID() }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.vertices.EdgeCount() }

// VerticesAsList returns all vertex IDs. The order is sorted so repeated calls
// on an unchanged graph enumerate identically.
func (g *Graph) VerticesAsList() []string {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Vertices returns the live vertex map. Mutating the returned vertices
// mutates the graph; use Data for a detached copy.
func (g *Graph) Vertices() Data { return g.vertices }

// Data returns a deep copy of the vertex map suitable for serialization.
func (g *Graph) Data() Data { return g.vertices.Clone() }

// Vertex returns the vertex with the given ID, or nil when id is empty or
// unknown. The returned pointer is the graph's own vertex.
func (g *Graph) Vertex(id string) *Vertex {
	if id == "" {
		return nil
	}
	return g.vertices[id]
}

// AddOrUpdateVertex stores v under id unconditionally.
func (g *Graph) AddOrUpdateVertex(id string, v *Vertex) {
	if v == nil {
		v = &Vertex{}
	}
	g.vertices[id] = v
}

// AddVertex inserts v under a freshly generated ID and returns that ID.
//
// A generated ID that is already taken is retried a bounded number of times.
// If every attempt collides the insert is skipped and the last ID is still
// returned, so callers must not assume the returned ID is present.
func (g *Graph) AddVertex(v *Vertex) string {
	var id string
	for range maxIDAttempts {
		id = g.newID()
		if _, taken := g.vertices[id]; !taken {
			g.AddOrUpdateVertex(id, v)
			return id
		}
	}
	return id
}

// UpdateVertex replaces the vertex stored under id. Unknown IDs are ignored.
func (g *Graph) UpdateVertex(id string, v *Vertex) {
	if g.Vertex(id) != nil {
		g.AddOrUpdateVertex(id, v)
	}
}

// DeleteVertex removes id and every reference to it from its neighbors'
// lists. Only the vertex's own neighbors are visited. Unknown IDs are ignored.
func (g *Graph) DeleteVertex(id string) {
	v := g.Vertex(id)
	if v == nil {
		return
	}
	for _, nb := range v.Neighbors {
		if nv := g.vertices[nb]; nv != nil && nb != id {
			nv.Neighbors = without(nv.Neighbors, id)
		}
	}
	delete(g.vertices, id)
}

// AddEdge appends b to a's neighbors and a to b's neighbors. It is a no-op
// when either endpoint is unknown. Existing edges are not checked, so adding
// the same pair twice produces a parallel edge.
func (g *Graph) AddEdge(a, b string) {
	va, vb := g.Vertex(a), g.Vertex(b)
	if va == nil || vb == nil {
		return
	}
	va.Neighbors = append(va.Neighbors, b)
	vb.Neighbors = append(vb.Neighbors, a)
}

// Edge returns both endpoints and true when a and b exist and b is a
// neighbor of a.
func (g *Graph) Edge(a, b string) (*Vertex, *Vertex, bool) {
	va, vb := g.Vertex(a), g.Vertex(b)
	if va == nil || vb == nil || !va.HasNeighbor(b) {
		return nil, nil, false
	}
	return va, vb, true
}

// DeleteEdge removes every occurrence of the pair from both neighbor lists.
// It is a no-op when either endpoint is unknown.
func (g *Graph) DeleteEdge(a, b string) {
	va, vb := g.Vertex(a), g.Vertex(b)
	if va == nil || vb == nil {
		return
	}
	va.Neighbors = without(va.Neighbors, b)
	vb.Neighbors = without(vb.Neighbors, a)
}

// Clear removes every vertex.
func (g *Graph) Clear() { g.vertices = make(Data) }

// ClearEdges empties every neighbor list and keeps vertices and positions.
func (g *Graph) ClearEdges() {
	for _, v := range g.vertices {
		v.Neighbors = nil
	}
}

// Replace swaps the whole vertex set for d in one step. Transforms stage
// their result and commit it through Replace so a failure never leaves the
// graph half-rewritten.
func (g *Graph) Replace(d Data) {
	g.Clear()
	for id, v := range d {
		if v != nil {
			g.vertices[id] = v
		}
	}
}

func without(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(s string) bool { return s == id })
}
