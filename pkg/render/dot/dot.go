package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/graphcanvas/pkg/editor"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/render"
)

// Options configures DOT export.
type Options struct {
	// Labels shows vertex IDs inside the nodes. When false nodes are plain
	// filled circles like on the canvas.
	Labels bool

	// Radius is the node radius in points. Zero uses the editor radius.
	Radius float64
}

// ToDOT converts a vertex map to an undirected DOT graph with pinned node
// positions. Each undirected edge is written once; parallel edges are kept.
func ToDOT(d graph.Data, opts Options) string {
	r := opts.Radius
	if r <= 0 {
		r = editor.DefaultRadius
	}
	size := strconv.FormatFloat(2*r/72, 'f', 3, 64)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%s, color=black, fontsize=8];\n", size)
	buf.WriteString("\n")

	ids := d.IDs()
	for _, id := range ids {
		v := d[id]
		label := ""
		if opts.Labels {
			label = id
		}
		fmt.Fprintf(&buf, "  %q [pos=\"%s,%s!\", fillcolor=%q, fontcolor=%q, label=%q];\n",
			id, fmtCoord(v.Position.X()), fmtCoord(-v.Position.Y()),
			fillHex(v.Labels), fontHex(v.Labels), label)
	}

	buf.WriteString("\n")
	for _, id := range ids {
		loops := 0
		for _, nb := range d[id].Neighbors {
			switch {
			case nb == id:
				loops++
			case id < nb:
				if _, ok := d[nb]; ok {
					fmt.Fprintf(&buf, "  %q -- %q;\n", id, nb)
				}
			}
		}
		for range loops / 2 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", id, id)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtCoord(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func fillHex(labels graph.Labels) string {
	c, _ := colorful.MakeColor(editor.FillColor(labels))
	return c.Hex()
}

// fontHex picks black or white text for legibility on the fill.
func fontHex(labels graph.Labels) string {
	c, _ := colorful.MakeColor(editor.FillColor(labels))
	if _, _, l := c.Hcl(); l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// RenderSVG lays out a DOT graph with neato and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPDF renders SVG with RenderSVG and converts it with rsvg-convert.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales cleanly when
// embedded.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
