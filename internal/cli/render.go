package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/pkg/editor"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/render/dot"
	"github.com/matzehuels/graphcanvas/pkg/render/raster"
)

// Output formats accepted by --format.
const (
	formatPNG = "png"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path
	formats []string // output formats: png, svg, pdf, dot
	width   int      // PNG width in pixels
	height  int      // PNG height in pixels
	radius  float64  // vertex radius; zero uses the configured canvas radius
	labels  bool     // print vertex IDs (DOT-based formats)
}

// renderCommand creates the render command for exporting a graph file.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{width: 1000, height: 800}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a graph to PNG, SVG, PDF or DOT",
		Long: `Render a graph JSON file.

PNG output draws the graph the way the editor canvas does, scaling the
configured canvas area onto the image. SVG and PDF go through Graphviz with
vertex positions pinned; PDF additionally needs rsvg-convert.`,
		Example: `  graphcanvas render petersen.json
  graphcanvas render petersen.json -f svg,pdf --labels
  graphcanvas render petersen.json -f png --width 500 --height 400 -o small.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "PNG width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "PNG height in pixels")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "vertex radius (default from config)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "show vertex IDs (svg, pdf, dot)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatPNG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatPNG: true, formatSVG: true, formatPDF: true, formatDOT: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'pdf', or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. A known format
// extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for format. A single format with an explicit
// output path is written there verbatim.
func outputPath(opts *renderOpts, input, format string) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return basePath(opts.output, input) + "." + format
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	d, err := readGraphData(os.Stdin, input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded %s: %d vertices, %d edges", input, len(d), d.EdgeCount())

	for _, format := range opts.formats {
		prog := newProgress(c.Logger)
		data, err := c.renderGraph(ctx, d, format, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		path := outputPath(opts, input, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		prog.done("Rendered", "format", format, "path", path)
	}
	return nil
}

// renderGraph renders d in one format.
func (c *CLI) renderGraph(ctx context.Context, d graph.Data, format string, opts *renderOpts) ([]byte, error) {
	radius := opts.radius
	if radius <= 0 {
		radius = c.Config.Canvas.Radius
	}

	switch format {
	case formatPNG:
		var buf bytes.Buffer
		sx := float64(opts.width) / c.Config.Canvas.Width
		err := raster.Render(&buf, d, opts.width, opts.height,
			c.Config.Canvas.Width, c.Config.Canvas.Height,
			editor.WithRadius(radius*sx), editor.WithLogger(c.Logger))
		return buf.Bytes(), err
	case formatDOT:
		return []byte(dot.ToDOT(d, dot.Options{Labels: opts.labels, Radius: radius})), nil
	case formatSVG:
		return spin(ctx, "Rendering SVG", "", func() ([]byte, error) {
			return dot.RenderSVG(ctx, dot.ToDOT(d, dot.Options{Labels: opts.labels, Radius: radius}))
		})
	case formatPDF:
		return spin(ctx, "Rendering PDF", "", func() ([]byte, error) {
			return dot.RenderPDF(ctx, dot.ToDOT(d, dot.Options{Labels: opts.labels, Radius: radius}))
		})
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}
