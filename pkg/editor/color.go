package editor

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Default drawing colours.
var (
	DefaultFill     color.Color = colornames.Black
	DefaultOutline  color.Color = colornames.Black
	EdgeColor       color.Color = colornames.Black
	EdgeStartColor  color.Color = colornames.Yellow
	SelectedColor   color.Color = colornames.Red
	HoverColor      color.Color = colornames.Dodgerblue
	BackgroundColor color.Color = colornames.White
)

// ParseColor resolves a CSS colour name ("steelblue") or a hex string
// ("#4682b4", "#48b").
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	c, ok := colornames.Map[s]
	return c, ok
}

// ClassColor maps a numeric class label to a stable, well-separated hue.
func ClassColor(class float64) color.Color {
	hue := math.Mod(math.Abs(class)*137.508, 360)
	r, g, b := colorful.Hsv(hue, 0.65, 0.85).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// FillColor returns the fill colour encoded in a vertex's first label, or
// DefaultFill when the label is missing or unparseable.
func FillColor(labels graph.Labels) color.Color {
	if len(labels) == 0 {
		return DefaultFill
	}
	switch v := labels[0].(type) {
	case string:
		if c, ok := ParseColor(v); ok {
			return c
		}
	case float64:
		return ClassColor(v)
	case int:
		return ClassColor(float64(v))
	}
	return DefaultFill
}
