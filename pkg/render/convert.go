package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// rsvgConvert is the librsvg binary used for SVG conversion.
const rsvgConvert = "rsvg-convert"

// ToPDF converts an SVG document to PDF by piping it through rsvg-convert.
// It fails with UNSUPPORTED when librsvg is not installed
// (brew install librsvg, apt install librsvg2-bin).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "pdf output needs %s from librsvg", rsvgConvert)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--format", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgConvert, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
