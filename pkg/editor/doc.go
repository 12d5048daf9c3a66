// Package editor implements the interactive canvas editor: a pointer-driven
// state machine that mutates a [graph.Graph] and repaints it on a [Surface].
//
// # Modes
//
// One [Mode] is active at a time and only the host changes it:
//
//   - add_vertex: pointer-down adds a vertex at the pointer
//   - add_edge: the first hit vertex becomes the pending start (yellow), the
//     second hit joins the two, or adds a self-loop when it is the start
//   - move_vertex: pointer-down on a vertex selects it and starts a drag
//   - edit_vertex: pointer-down selects the hit vertex; the selection
//     survives pointer-up so attribute edits can target it
//   - delete: pointer-down deletes the hit vertex
//
// Clicks and drags that miss every vertex are ignored.
//
// # Coordinates
//
// Pointer coordinates are surface coordinates. Vertex positions are model
// coordinates and are multiplied by the scale (sx, sy) before drawing. Hit
// testing happens in surface space against the scaled position, and a vertex
// is hit when the distance is at most the pick radius, which is also the
// drawn radius.
//
// # Rendering
//
// [Editor.Render] clears the surface, strokes one segment per adjacency entry
// and then fills every vertex, so edges always sit underneath vertices. Each
// mutating call re-renders before returning.
//
// # Handles
//
// Vertex positions and labels are edited through [Editor.Update], which hands
// the callback the graph's own vertex and repaints afterwards.
package editor
