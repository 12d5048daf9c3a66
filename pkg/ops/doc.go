// Package ops exposes the graph generators and transforms by name.
//
// Operations are grouped into two independent sets:
//
//   - "class": generators that build a graph from scratch
//     (complete, cyclic, generalizedPetersen, wheel, circulant)
//   - "function": transforms that rewrite an input graph
//     (line, complement)
//
// Each set is an explicit [Registry] mapping a name to an [Operation].
// Lookup of an unknown name fails with an OPERATION_NOT_FOUND error that
// carries the name.
//
// # Arguments
//
// Operations take positional [Args]. Each argument is a number or a list of
// numbers, matching the JSON shape number | number[]. On the command line a
// token containing a comma is a list:
//
//	graphcanvas generate circulant 8 1,3 120
//
// # Running
//
// A [Runner] resolves the set and name, seeds a graph (empty for "class",
// a copy of the input for "function"), applies the operation and returns the
// resulting vertex map. The input is never modified. Results are cached
// through a [cache.Cache] keyed by set, name, arguments and input hash.
package ops
