// Package pkg provides the libraries behind graphcanvas, an editor for
// undirected graphs with positioned vertices.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Domain: [graph], [families], [transform], [ops]
//  2. Interaction and output: [editor], [render]
//  3. Infrastructure: [cache], [store], [config], [observability]
//  4. Support: [errors], [httputil], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	class/function name + args
//	         ↓
//	    [ops] registry (resolve the operation)
//	         ↓
//	    [families] / [transform] (mutate a [graph.Graph])
//	         ↓
//	    vertex map (JSON) → [store], [render], HTTP response
//
// [ops.Runner] adds caching in front of the registry, and [editor.Editor]
// turns pointer events into graph mutations on any [editor.Surface].
//
// # Quick Start
//
// Generate the Petersen graph, take its line graph and render it:
//
//	import (
//	    "github.com/matzehuels/graphcanvas/pkg/graph"
//	    "github.com/matzehuels/graphcanvas/pkg/ops"
//	    "github.com/matzehuels/graphcanvas/pkg/render/raster"
//	)
//
//	g := graph.New()
//	_ = ops.Apply(g, "class", "generalizedPetersen", ops.Args{ops.Number(5), ops.Number(2)})
//	_ = ops.Apply(g, "function", "line", nil)
//
//	f, _ := os.Create("line.png")
//	defer f.Close()
//	_ = raster.Render(f, g.Vertices(), 1000, 800, 500, 400)
//
// # Main Packages
//
//   - [graph]: vertices, positions, labels and JSON I/O
//   - [families]: complete, cyclic, wheel, generalized Petersen and circulant graphs
//   - [transform]: line graph and complement
//   - [ops]: named operation registry, argument parsing and the cached runner
//   - [editor]: interaction modes and drawing onto a [editor.Surface]
//   - [render]: PNG (raster), terminal (cells) and Graphviz (dot) back ends
//   - [store]: saved graphs in memory, on disk or in MongoDB
//   - [cache]: operation results on disk or in Redis
//   - [config]: TOML configuration
//
// [graph]: github.com/matzehuels/graphcanvas/pkg/graph
// [families]: github.com/matzehuels/graphcanvas/pkg/families
// [transform]: github.com/matzehuels/graphcanvas/pkg/transform
// [ops]: github.com/matzehuels/graphcanvas/pkg/ops
// [editor]: github.com/matzehuels/graphcanvas/pkg/editor
// [render]: github.com/matzehuels/graphcanvas/pkg/render
// [cache]: github.com/matzehuels/graphcanvas/pkg/cache
// [store]: github.com/matzehuels/graphcanvas/pkg/store
// [config]: github.com/matzehuels/graphcanvas/pkg/config
// [observability]: github.com/matzehuels/graphcanvas/pkg/observability
// [errors]: github.com/matzehuels/graphcanvas/pkg/errors
// [httputil]: github.com/matzehuels/graphcanvas/pkg/httputil
// [buildinfo]: github.com/matzehuels/graphcanvas/pkg/buildinfo
// [graph.Graph]: github.com/matzehuels/graphcanvas/pkg/graph#Graph
// [ops.Runner]: github.com/matzehuels/graphcanvas/pkg/ops#Runner
// [editor.Editor]: github.com/matzehuels/graphcanvas/pkg/editor#Editor
// [editor.Surface]: github.com/matzehuels/graphcanvas/pkg/editor#Surface
package pkg
