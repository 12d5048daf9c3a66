package cli

import (
	stderrors "errors"
	"io"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// editCommand opens the interactive terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a graph interactively in the terminal",
		Long: `Open a graph in the terminal editor. A missing file starts an empty
graph that ":w" writes to that path.

Tools (number keys):
  1 add_vertex   click empty space to add a vertex
  2 add_edge     click two vertices to connect or disconnect them
  3 move_vertex  drag a vertex
  4 edit_vertex  select a vertex for ":color"
  5 delete       click a vertex to remove it

Commands (":" prompt):
  class <name> [args]     generate, e.g. ":class generalizedPetersen 5 2"
  function <name> [args]  transform, e.g. ":function line"
  color <name|#hex>       recolour the selected vertex
  w [file]  e <file>  clear  q`,
		Example: `  graphcanvas edit
  graphcanvas edit petersen.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			m, err := c.newEditModel(path)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			if m.path != "" {
				printInfo("Last file: %s", m.path)
			}
			return nil
		},
	}
}

// newEditModel loads path (if it exists) into a fresh editor model. The
// editor's debug log is discarded while the alternate screen is active.
func (c *CLI) newEditModel(path string) (*editModel, error) {
	g := graph.New()
	if path != "" {
		loaded, err := graph.ReadFile(path)
		switch {
		case err == nil:
			g = loaded
		case stderrors.Is(err, fs.ErrNotExist):
			c.Logger.Debug("Starting new graph", "path", path)
		default:
			return nil, err
		}
	}
	logger := log.New(io.Discard)
	return newEditModel(g, path, c.Config.Canvas.Width, c.Config.Canvas.Height, logger), nil
}
