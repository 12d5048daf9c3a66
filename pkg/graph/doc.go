// Package graph provides the undirected adjacency-list graph edited on the
// canvas and produced by the generators and transforms.
//
// # Overview
//
// A [Graph] maps opaque string IDs to [Vertex] values. Each vertex carries a
// neighbor list, a model-space [Position] and free-form [Labels] whose first
// element is conventionally a fill colour. The same map, as [Data], is the wire
// format exchanged with persistence and the HTTP API:
//
//	{
//	  "Xq3bT0aa": {"neighbors": ["k9PzE1bc"], "position": [350, 200], "labels": ["red"]},
//	  "k9PzE1bc": {"neighbors": ["Xq3bT0aa"], "position": [150, 200]}
//	}
//
// # Invariants
//
// The neighbor relation is symmetric after every mutating call: AddEdge writes
// both lists, DeleteEdge and DeleteVertex clean both sides. Parallel edges are
// allowed because AddEdge never checks for an existing entry.
//
// Mutations with unknown IDs are silent no-ops, and lookups of unknown IDs
// return nil rather than an error. This matches a forgiving direct-manipulation
// editor where clicking empty canvas simply does nothing.
//
// # Identity
//
// [Graph.AddVertex] draws 8-character alphanumeric IDs from [NewID]. Use
// [WithIDFunc] with [SequentialIDs] for reproducible fixtures.
//
// # Concurrency
//
// Graph is not safe for concurrent use. The editor and the operation runner
// each own their graph for the duration of a call.
package graph
