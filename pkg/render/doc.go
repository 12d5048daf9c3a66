// Package render holds the output back ends for graphs.
//
//   - [raster]: an [editor.Surface] backed by an RGBA image, encoded as PNG
//   - [cells]: an [editor.Surface] on a character grid for terminals
//   - [dot]: Graphviz DOT export with SVG and PDF rendering
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool.
//
// [raster]: github.com/matzehuels/graphcanvas/pkg/render/raster
// [cells]: github.com/matzehuels/graphcanvas/pkg/render/cells
// [dot]: github.com/matzehuels/graphcanvas/pkg/render/dot
// [editor.Surface]: github.com/matzehuels/graphcanvas/pkg/editor#Surface
package render
