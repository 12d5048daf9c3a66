package editor

import (
	"image/color"
	"maps"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/ops"
)

const (
	// DefaultRadius is both the drawn vertex radius and the pick radius.
	DefaultRadius = 10.0

	// Outline widths for plain and highlighted vertices.
	outlineWidth   = 1.0
	highlightWidth = 3.0
	hoverWidth     = 2.0
)

// DefaultLabel is the label given to vertices created in add_vertex mode.
var DefaultLabel = graph.Labels{"black"}

// Highlight is a selection entry: the graph's vertex and its outline colour.
type Highlight struct {
	Vertex *graph.Vertex
	Color  color.Color
}

// Option configures an Editor.
type Option func(*Editor)

// WithRadius sets the vertex radius used for drawing and picking.
func WithRadius(r float64) Option {
	return func(e *Editor) {
		if r > 0 {
			e.radius = r
		}
	}
}

// WithScale sets a fixed model-to-surface scale.
func WithScale(sx, sy float64) Option {
	return func(e *Editor) {
		e.sx, e.sy = sx, sy
		e.modelW, e.modelH = 0, 0
	}
}

// WithModelSize maps a model area of w by h onto the whole surface, deriving
// the scale from the surface size on every call.
func WithModelSize(w, h float64) Option {
	return func(e *Editor) {
		if w > 0 && h > 0 {
			e.modelW, e.modelH = w, h
		}
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Editor) { e.mode = m }
}

// WithLogger sets the logger used for debug tracing of edits.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Editor couples a graph with a surface and turns pointer events into graph
// mutations. It is not safe for concurrent use.
type Editor struct {
	g       *graph.Graph
	surface Surface
	logger  *log.Logger

	mode           Mode
	radius         float64
	sx, sy         float64
	modelW, modelH float64

	selection map[string]Highlight
	selected  string
	edgeStart string
	dragging  bool
	hover     string
}

// New creates an editor for g drawing onto s and renders once.
func New(g *graph.Graph, s Surface, opts ...Option) *Editor {
	if g == nil {
		g = graph.New()
	}
	e := &Editor{
		g:         g,
		surface:   s,
		logger:    log.Default(),
		mode:      ModeAddVertex,
		radius:    DefaultRadius,
		sx:        1,
		sy:        1,
		selection: make(map[string]Highlight),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Render()
	return e
}

// Graph returns the edited graph.
func (e *Editor) Graph() *graph.Graph { return e.g }

// SetSurface swaps the drawing target, for example after a terminal resize,
// and repaints.
func (e *Editor) SetSurface(s Surface) {
	e.surface = s
	e.Render()
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode { return e.mode }

// Radius returns the vertex radius in surface pixels.
func (e *Editor) Radius() float64 { return e.radius }

// SetMode switches tools. The pending edge start, any drag and the current
// selection are dropped.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	e.resetInteraction()
	e.Render()
}

// Cancel drops the pending edge start, any drag and the current selection
// without switching tools.
func (e *Editor) Cancel() {
	e.resetInteraction()
	e.Render()
}

// Selected returns the selected vertex ID, if any.
func (e *Editor) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// EdgeStart returns the pending first endpoint in add_edge mode, if any.
func (e *Editor) EdgeStart() (string, bool) {
	return e.edgeStart, e.edgeStart != ""
}

// Dragging reports whether a vertex is being dragged.
func (e *Editor) Dragging() bool { return e.dragging }

// Hover returns the vertex under the pointer at the last move, if any.
func (e *Editor) Hover() (string, bool) { return e.hover, e.hover != "" }

// Selection returns a copy of the highlight set.
func (e *Editor) Selection() map[string]Highlight { return maps.Clone(e.selection) }

// Scale returns the current model-to-surface scale.
func (e *Editor) Scale() (sx, sy float64) {
	if e.modelW > 0 && e.modelH > 0 && e.surface != nil {
		w, h := e.surface.Size()
		return w / e.modelW, h / e.modelH
	}
	return e.sx, e.sy
}

// ToSurface maps a model position to surface coordinates.
func (e *Editor) ToSurface(p graph.Position) (x, y float64) {
	sx, sy := e.Scale()
	return p.X() * sx, p.Y() * sy
}

// ToModel maps surface coordinates to a model position.
func (e *Editor) ToModel(x, y float64) graph.Position {
	sx, sy := e.Scale()
	if sx == 0 || sy == 0 {
		return graph.Position{x, y}
	}
	return graph.Position{x / sx, y / sy}
}

// HitTest returns the first vertex, in ID order, whose drawn centre lies
// within the pick radius of (x, y).
func (e *Editor) HitTest(x, y float64) (string, bool) {
	vertices := e.g.Vertices()
	for _, id := range vertices.IDs() {
		vx, vy := e.ToSurface(vertices[id].Position)
		if math.Hypot(vx-x, vy-y) <= e.radius {
			return id, true
		}
	}
	return "", false
}

// PointerDown handles a press at surface coordinates (x, y).
func (e *Editor) PointerDown(x, y float64) {
	switch e.mode {
	case ModeAddVertex:
		id := e.g.AddVertex(&graph.Vertex{
			Neighbors: []string{},
			Position:  e.ToModel(x, y),
			Labels:    slices.Clone(DefaultLabel),
		})
		e.logger.Debug("added vertex", "id", id)

	case ModeAddEdge:
		hit, ok := e.HitTest(x, y)
		if !ok {
			return
		}
		if e.edgeStart == "" {
			e.edgeStart = hit
			e.highlight(hit, EdgeStartColor)
			break
		}
		// A second click on the start itself adds a self-loop.
		e.g.AddEdge(e.edgeStart, hit)
		e.logger.Debug("added edge", "from", e.edgeStart, "to", hit)
		e.clearEdgeStart()

	case ModeMoveVertex:
		hit, ok := e.HitTest(x, y)
		if !ok {
			return
		}
		e.selectVertex(hit)
		e.dragging = true

	case ModeEditVertex:
		e.clearSelected()
		if hit, ok := e.HitTest(x, y); ok {
			e.selectVertex(hit)
		}

	case ModeDelete:
		hit, ok := e.HitTest(x, y)
		if !ok {
			return
		}
		e.g.DeleteVertex(hit)
		e.forget(hit)
		e.logger.Debug("deleted vertex", "id", hit)

	default:
		return
	}
	e.Render()
}

// PointerMove handles motion to (x, y). While dragging in move_vertex mode
// the selected vertex follows the pointer; otherwise only the hover
// highlight is refreshed.
func (e *Editor) PointerMove(x, y float64) {
	if e.mode == ModeMoveVertex && e.dragging && e.selected != "" {
		if v := e.g.Vertex(e.selected); v != nil {
			v.Position = e.ToModel(x, y)
			e.Render()
		}
		return
	}
	hit, _ := e.HitTest(x, y)
	if hit != e.hover {
		e.hover = hit
		e.Render()
	}
}

// PointerUp ends a drag. The selection is cleared unless the mode is
// edit_vertex.
func (e *Editor) PointerUp(x, y float64) {
	e.dragging = false
	if e.mode != ModeEditVertex {
		e.clearSelected()
	}
	e.Render()
}

// Update calls fn with the graph's own vertex for id and re-renders. It
// reports false, without calling fn, when id is unknown.
func (e *Editor) Update(id string, fn func(v *graph.Vertex)) bool {
	v := e.g.Vertex(id)
	if v == nil {
		return false
	}
	fn(v)
	e.Render()
	return true
}

// SetColor sets the fill colour label of id. The colour must be a CSS name
// or a hex string.
func (e *Editor) SetColor(id, c string) error {
	if _, ok := ParseColor(c); !ok {
		return errors.New(errors.ErrCodeInvalidArgument, "unknown colour %q", c)
	}
	if !e.Update(id, func(v *graph.Vertex) {
		if len(v.Labels) == 0 {
			v.Labels = graph.Labels{c}
			return
		}
		v.Labels[0] = c
	}) {
		return errors.New(errors.ErrCodeNotFound, "vertex %q not found", id)
	}
	return nil
}

// Load replaces the graph contents with a copy of d and resets all
// interaction state.
func (e *Editor) Load(d graph.Data) error {
	if err := d.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGraph, err, "load graph")
	}
	e.g.Replace(d.Clone())
	e.resetInteraction()
	e.hover = ""
	e.Render()
	return nil
}

// Apply runs a named generator or transform on the edited graph and resets
// interaction state on success.
func (e *Editor) Apply(set, name string, args ops.Args) error {
	if err := ops.Apply(e.g, set, name, args); err != nil {
		return err
	}
	e.resetInteraction()
	e.hover = ""
	e.Render()
	return nil
}

// Clear removes every vertex.
func (e *Editor) Clear() {
	e.g.Clear()
	e.resetInteraction()
	e.hover = ""
	e.Render()
}

// Render repaints the whole graph.
func (e *Editor) Render() {
	s := e.surface
	if s == nil {
		return
	}
	w, h := s.Size()
	s.ClearRect(0, 0, w, h)

	vertices := e.g.Vertices()
	ids := vertices.IDs()

	s.SetStrokeStyle(EdgeColor)
	s.SetLineWidth(outlineWidth)
	for _, id := range ids {
		x0, y0 := e.ToSurface(vertices[id].Position)
		for _, nb := range vertices[id].Neighbors {
			other := vertices[nb]
			if other == nil {
				continue
			}
			x1, y1 := e.ToSurface(other.Position)
			s.BeginPath()
			s.MoveTo(x0, y0)
			s.LineTo(x1, y1)
			s.Stroke()
		}
	}

	for _, id := range ids {
		v := vertices[id]
		x, y := e.ToSurface(v.Position)
		s.BeginPath()
		s.Arc(x, y, e.radius, 0, 2*math.Pi)
		s.SetFillStyle(FillColor(v.Labels))
		s.Fill()

		outline, width := DefaultOutline, outlineWidth
		if hl, ok := e.selection[id]; ok {
			outline, width = hl.Color, highlightWidth
		} else if id == e.hover {
			outline, width = HoverColor, hoverWidth
		}
		s.SetStrokeStyle(outline)
		s.SetLineWidth(width)
		s.Stroke()
	}
}

func (e *Editor) highlight(id string, c color.Color) {
	if v := e.g.Vertex(id); v != nil {
		e.selection[id] = Highlight{Vertex: v, Color: c}
	}
}

func (e *Editor) selectVertex(id string) {
	e.selected = id
	e.highlight(id, SelectedColor)
}

func (e *Editor) clearSelected() {
	if e.selected == "" {
		return
	}
	if e.selected != e.edgeStart {
		delete(e.selection, e.selected)
	}
	e.selected = ""
}

func (e *Editor) clearEdgeStart() {
	if e.edgeStart == "" {
		return
	}
	if e.edgeStart != e.selected {
		delete(e.selection, e.edgeStart)
	}
	e.edgeStart = ""
}

// forget drops every reference to a deleted vertex.
func (e *Editor) forget(id string) {
	delete(e.selection, id)
	if e.selected == id {
		e.selected = ""
		e.dragging = false
	}
	if e.edgeStart == id {
		e.edgeStart = ""
	}
	if e.hover == id {
		e.hover = ""
	}
}

func (e *Editor) resetInteraction() {
	e.selected = ""
	e.edgeStart = ""
	e.dragging = false
	clear(e.selection)
}
