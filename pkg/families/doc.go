// Package families builds parametric families of undirected graphs into an
// existing [graph.Graph].
//
// Every generator starts from [Circular], which places n fresh vertices evenly
// on a circle around the graph's centre and returns their IDs in placement
// order. All index arithmetic (i+1 mod n, i+k mod n) refers to that order.
//
// # Families
//
//   - [Complete]: K_n, every pair of distinct vertices joined once
//   - [Cyclic]: the n-cycle C_n
//   - [GeneralizedPetersen]: GP(n, k), outer n-cycle, spokes, inner k-chords
//   - [Wheel]: C_n plus a hub at the centre joined to every rim vertex
//   - [Circulant]: C_n(S), vertex i joined to i+d mod n for each offset d
//
// # Self-loops and parallel edges
//
// No generator joins a vertex to itself: pairs that reduce to i == j (for
// example an offset that is a multiple of n) are skipped. Parallel edges are
// kept, matching [graph.Graph.AddEdge]: Circulant(6, [1, 5]) joins every
// neighbouring pair twice because 5 ≡ -1 (mod 6).
//
// # Validation
//
// Arguments are checked before the graph is touched. A count below one, a
// negative radius, or a call that would add more than [MaxVertices] vertices
// or [MaxEdges] edges fails with an INVALID_ARGUMENT error and leaves the
// graph unchanged. K_1000 is the largest complete graph that fits.
package families
