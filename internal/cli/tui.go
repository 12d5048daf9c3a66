package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/editor"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/ops"
	"github.com/matzehuels/graphcanvas/pkg/render/cells"
)

// Terminal vertex radius in cells. A disc this size covers one or two cells.
const cellRadius = 0.75

// Rows used by the header and status line around the canvas.
const chromeRows = 2

var (
	modeActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	modeIdleStyle   = lipgloss.NewStyle().Foreground(colorDim)
	promptStyle     = lipgloss.NewStyle().Foreground(colorText)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorErr)
)

// modeKeys maps number keys to editor modes.
var modeKeys = map[string]editor.Mode{
	"1": editor.ModeAddVertex,
	"2": editor.ModeAddEdge,
	"3": editor.ModeMoveVertex,
	"4": editor.ModeEditVertex,
	"5": editor.ModeDelete,
}

// =============================================================================
// editModel - Interactive graph editor
// =============================================================================

// editModel is the bubbletea model for the terminal graph editor. The
// canvas occupies the window below a one-line mode bar and above a status
// line.
type editModel struct {
	ed  *editor.Editor
	buf *cells.Buffer

	path   string // file written by ":w" without an argument
	status string
	err    error

	prompting bool
	input     string
	quitting  bool
}

// newEditModel creates an editor over g. The model area w by h is mapped
// onto whatever canvas the terminal provides.
func newEditModel(g *graph.Graph, path string, w, h float64, logger *log.Logger) *editModel {
	buf := cells.New(80, 22)
	return &editModel{
		ed: editor.New(g, buf,
			editor.WithModelSize(w, h),
			editor.WithRadius(cellRadius),
			editor.WithLogger(logger)),
		buf:    buf,
		path:   path,
		status: "1-5 switch tools  : command  q quit",
	}
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.buf = cells.New(msg.Width, max(msg.Height-chromeRows, 1))
		m.ed.SetSurface(m.buf)

	case tea.MouseMsg:
		if m.prompting {
			return m, nil
		}
		x, y := float64(msg.X), float64(msg.Y-1)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.ed.PointerDown(x, y)
			}
		case tea.MouseActionMotion:
			m.ed.PointerMove(x, y)
		case tea.MouseActionRelease:
			m.ed.PointerUp(x, y)
		}

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		key := msg.String()
		if mode, ok := modeKeys[key]; ok {
			m.ed.SetMode(mode)
			m.setStatus(nil, "mode "+mode.String())
			return m, nil
		}
		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case ":":
			m.prompting = true
			m.input = ""
		case "esc":
			m.ed.Cancel()
		}
	}
	return m, nil
}

func (m *editModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
	case tea.KeyEnter:
		m.prompting = false
		line := m.input
		m.input = ""
		quit, status, err := m.execute(line)
		m.setStatus(err, status)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// execute runs one prompt command:
//
//	class <name> [args...]     replace the graph with a generated one
//	function <name> [args...]  transform the graph
//	color <colour>             recolour the selected vertex
//	mode <mode>                switch tools by name
//	w [file]                   write the graph as JSON
//	e <file>                   load a graph from JSON
//	clear                      remove every vertex
//	q                          quit
func (m *editModel) execute(line string) (quit bool, status string, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, "", nil
	}
	switch cmd, rest := fields[0], fields[1:]; cmd {
	case string(ops.SetClass), string(ops.SetFunction):
		if len(rest) == 0 {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "usage: %s <name> [args...]", cmd)
		}
		args, err := ops.ParseArgs(rest[1:])
		if err != nil {
			return false, "", err
		}
		if err := m.ed.Apply(cmd, rest[0], args); err != nil {
			return false, "", err
		}
		d := m.ed.Graph().Vertices()
		return false, fmt.Sprintf("%s: %d vertices, %d edges", rest[0], len(d), d.EdgeCount()), nil

	case "color":
		id, ok := m.ed.Selected()
		if !ok {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "select a vertex first (mode 4)")
		}
		if len(rest) != 1 {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "usage: color <name|#hex>")
		}
		if err := m.ed.SetColor(id, rest[0]); err != nil {
			return false, "", err
		}
		return false, "coloured " + id, nil

	case "mode":
		if len(rest) != 1 {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "usage: mode <name>")
		}
		mode, err := editor.ParseMode(rest[0])
		if err != nil {
			return false, "", err
		}
		m.ed.SetMode(mode)
		return false, "mode " + mode.String(), nil

	case "w":
		path := m.path
		if len(rest) > 0 {
			path = rest[0]
		}
		if path == "" {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "usage: w <file>")
		}
		if err := graph.WriteFile(m.ed.Graph(), path); err != nil {
			return false, "", err
		}
		m.path = path
		return false, "wrote " + path, nil

	case "e":
		if len(rest) != 1 {
			return false, "", errors.New(errors.ErrCodeInvalidInput, "usage: e <file>")
		}
		g, err := graph.ReadFile(rest[0])
		if err != nil {
			return false, "", err
		}
		if err := m.ed.Load(g.Vertices()); err != nil {
			return false, "", err
		}
		m.path = rest[0]
		return false, "loaded " + rest[0], nil

	case "clear":
		m.ed.Clear()
		return false, "cleared", nil

	case "q", "quit":
		return true, "", nil
	}
	return false, "", errors.New(errors.ErrCodeInvalidInput, "unknown command %q", fields[0])
}

func (m *editModel) setStatus(err error, status string) {
	m.err = err
	if err == nil && status != "" {
		m.status = status
	}
}

func (m *editModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	for i, mode := range editor.Modes {
		if i > 0 {
			b.WriteString(" ")
		}
		label := fmt.Sprintf("%d %s", i+1, mode)
		if mode == m.ed.Mode() {
			b.WriteString(modeActiveStyle.Render("[" + label + "]"))
		} else {
			b.WriteString(modeIdleStyle.Render(" " + label + " "))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.buf.Render())
	b.WriteString("\n")

	switch {
	case m.prompting:
		b.WriteString(promptStyle.Render(":" + m.input))
	case m.err != nil:
		b.WriteString(statusErrStyle.Render(iconError + " " + errors.UserMessage(m.err)))
	default:
		d := m.ed.Graph().Vertices()
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d vertices · %d edges · %s", len(d), d.EdgeCount(), m.status)))
	}
	return b.String()
}
