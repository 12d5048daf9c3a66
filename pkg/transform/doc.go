// Package transform rewrites the vertex and edge set of an existing graph.
//
// Both transforms compute the complete replacement [graph.Data] first and
// commit it with [graph.Graph.Replace], so the input graph is never observed
// half-cleared.
//
// # Line graph
//
// [LineGraph] creates one vertex per undirected edge, placed at the midpoint
// of its endpoints. Two new vertices are joined when their originating edges
// share an endpoint. Parallel edges each become their own vertex; a self-loop
// becomes a vertex at its endpoint's position.
//
// # Complement
//
// [Complement] keeps every vertex with its position and labels and joins two
// distinct vertices exactly when they were not adjacent before. Adjacency is
// tested by value against the original neighbor lists.
package transform
