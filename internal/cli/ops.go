package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/ops"
)

// opsCommand lists the registered generators and transforms.
func (c *CLI) opsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "ops [class|function]",
		Short:     "List available generators and transforms",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(ops.SetClass), string(ops.SetFunction)},
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := ops.Sets
			if len(args) == 1 {
				reg, err := ops.SetByName(args[0])
				if err != nil {
					return err
				}
				sets = []ops.Set{reg.Set()}
			}
			w := cmd.OutOrStdout()
			for i, set := range sets {
				reg, _ := ops.SetByName(string(set))
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, StyleTitle.Render(string(set)))
				for _, op := range reg.Operations() {
					fmt.Fprintln(w, formatKeyValue(op.Name, op.Usage))
				}
			}
			return nil
		},
	}
}

// generateCommand runs a generator from the "class" set.
func (c *CLI) generateCommand() *cobra.Command {
	var output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "generate <name> [args...]",
		Short: "Generate a graph family (complete, cyclic, wheel, ...)",
		Long: `Generate a graph from the "class" set and write its vertex map as JSON.

List arguments are comma separated. Run "graphcanvas ops class" for the
parameters of each generator.`,
		Example: `  graphcanvas generate complete 5
  graphcanvas generate generalizedPetersen 5 2 -o petersen.json
  graphcanvas generate circulant 8 1,2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOperation(cmd, ops.SetClass, args[0], args[1:], nil, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// transformCommand runs a transform from the "function" set.
func (c *CLI) transformCommand() *cobra.Command {
	var input, output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "transform <name> [args...]",
		Short: "Transform a graph (line, complement)",
		Long:  `Apply a transform from the "function" set to a graph read from a JSON file or stdin.`,
		Example: `  graphcanvas generate generalizedPetersen 5 2 | graphcanvas transform line
  graphcanvas transform complement -i k5.json -o empty.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readGraphData(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			return c.runOperation(cmd, ops.SetFunction, args[0], args[1:], d, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "input graph JSON (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runOperation(cmd *cobra.Command, set ops.Set, name string, tokens []string, input graph.Data, output string, noCache bool) error {
	args, err := ops.ParseArgs(tokens)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cmd.Context(), noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.InvokeWithCacheInfo(cmd.Context(), string(set), name, args, input)
	if err != nil {
		return err
	}
	prog.done("Ran operation", "set", set, "op", name, "cached", res.CacheHit)

	if err := writeGraphData(cmd.OutOrStdout(), res.Data, output); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Wrote %s", name)
		printFile(output)
		printStats(res.Data, res.CacheHit)
		printNextSteps(output)
	}
	return nil
}

// readGraphData reads a vertex map from path, or from stdin when path is
// "-" or empty.
func readGraphData(stdin io.Reader, path string) (graph.Data, error) {
	if path == "" || path == "-" {
		return graph.ReadData(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return graph.ReadData(f)
}

// writeGraphData writes d as JSON to path, or to stdout when path is empty.
func writeGraphData(stdout io.Writer, d graph.Data, path string) error {
	if path == "" {
		return graph.WriteData(d, stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.WriteData(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
