package families

import (
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Complete builds K_n on a circle of radius r. Each unordered pair of distinct
// vertices is joined exactly once.
func Complete(g *graph.Graph, n int, r float64) ([]string, error) {
	if err := checkArgs("complete", n, r); err != nil {
		return nil, err
	}
	if err := checkSize("complete", n, n*(n-1)/2); err != nil {
		return nil, err
	}
	ids := circular(g, n, r)
	for i := range n {
		for j := i + 1; j < n; j++ {
			connect(g, ids, i, j)
		}
	}
	return ids, nil
}

// Cyclic builds the n-cycle: vertex i is joined to vertex (i+1) mod n. It
// returns the IDs in ring order. With n == 1 the only pair is a self pair and
// no edge is added; with n == 2 the two vertices are joined twice.
func Cyclic(g *graph.Graph, n int, r float64) ([]string, error) {
	if err := checkArgs("cyclic", n, r); err != nil {
		return nil, err
	}
	if err := checkSize("cyclic", n, n); err != nil {
		return nil, err
	}
	return cyclic(g, n, r), nil
}

func cyclic(g *graph.Graph, n int, r float64) []string {
	ids := circular(g, n, r)
	for i := range n {
		connect(g, ids, i, (i+1)%n)
	}
	return ids
}

// GeneralizedPetersen builds GP(n, k): an outer n-cycle of radius outer, an
// inner ring of n vertices of radius inner, a spoke from inner i to outer i,
// and a chord from inner i to inner (i+k) mod n. GP(5, 2) is the Petersen graph.
func GeneralizedPetersen(g *graph.Graph, n, k int, outer, inner float64) error {
	const op = "generalizedPetersen"
	if err := checkArgs(op, n, outer); err != nil {
		return err
	}
	if err := checkRadius(op, inner); err != nil {
		return err
	}
	if err := checkSize(op, 2*n, 3*n); err != nil {
		return err
	}

	outerIDs := cyclic(g, n, outer)
	innerIDs := circular(g, n, inner)
	for i := range n {
		g.AddEdge(innerIDs[i], outerIDs[i])
		connect(g, innerIDs, i, mod(i+k, n))
	}
	return nil
}

// Wheel builds an n-cycle of radius r plus one hub vertex at the graph's
// centre joined to every rim vertex. It returns the hub ID.
func Wheel(g *graph.Graph, n int, r float64) (string, error) {
	if err := checkArgs("wheel", n, r); err != nil {
		return "", err
	}
	if err := checkSize("wheel", n+1, 2*n); err != nil {
		return "", err
	}
	rim := cyclic(g, n, r)
	hub := g.AddVertex(&graph.Vertex{Position: g.Center()})
	for _, id := range rim {
		g.AddEdge(id, hub)
	}
	return hub, nil
}

// Circulant builds C_n(offsets) on a circle of radius r: for each vertex i and
// each offset d, vertex i is joined to (i+d) mod n. Offsets are taken modulo
// n, so negative offsets count backwards. Symmetric offsets such as d and n-d
// produce parallel edges.
func Circulant(g *graph.Graph, n int, offsets []int, r float64) ([]string, error) {
	if err := checkArgs("circulant", n, r); err != nil {
		return nil, err
	}
	if err := checkSize("circulant", n, n*len(offsets)); err != nil {
		return nil, err
	}
	ids := circular(g, n, r)
	for i := range n {
		for _, d := range offsets {
			connect(g, ids, i, mod(i+d, n))
		}
	}
	return ids, nil
}

func checkArgs(op string, n int, r float64) error {
	if err := checkCount(op, "n", n); err != nil {
		return err
	}
	return checkRadius(op, r)
}

func checkCount(op, name string, n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "%s: %s must be at least 1, got %d", op, name, n)
	}
	if n > MaxVertices {
		return errors.New(errors.ErrCodeInvalidArgument, "%s: %s must be at most %d, got %d", op, name, MaxVertices, n)
	}
	return nil
}

// checkSize rejects a generator call that would add more than MaxVertices
// vertices or MaxEdges edges. Callers pass counts for n <= MaxVertices, so
// the products cannot overflow.
func checkSize(op string, vertices, edges int) error {
	if vertices > MaxVertices {
		return errors.New(errors.ErrCodeInvalidArgument, "%s: would add %d vertices, limit is %d", op, vertices, MaxVertices)
	}
	if edges > MaxEdges {
		return errors.New(errors.ErrCodeInvalidArgument, "%s: would add %d edges, limit is %d", op, edges, MaxEdges)
	}
	return nil
}

func checkRadius(op string, r float64) error {
	if r < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "%s: radius must not be negative, got %g", op, r)
	}
	return nil
}
