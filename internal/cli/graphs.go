package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

// graphsCommand manages saved graphs in the configured store.
func (c *CLI) graphsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graphs",
		Short: "Manage saved graphs",
		Long: `List, save, fetch and delete graphs in the configured store.

The default store keeps one JSON file per graph under
$XDG_DATA_HOME/graphcanvas/graphs. Set [store] backend = "mongo" in the
config file to share graphs with a server.`,
	}

	cmd.AddCommand(c.graphsListCommand())
	cmd.AddCommand(c.graphsGetCommand())
	cmd.AddCommand(c.graphsSaveCommand())
	cmd.AddCommand(c.graphsDeleteCommand())

	return cmd
}

func (c *CLI) graphsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(w, StyleDim.Render("No saved graphs"))
				return nil
			}
			for _, r := range recs {
				writeRecordSummary(w, r)
			}
			return nil
		},
	}
}

func (c *CLI) graphsGetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a saved graph's vertex map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			r, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := writeGraphData(cmd.OutOrStdout(), r.GraphData, output); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Fetched %s", r.Name)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) graphsSaveCommand() *cobra.Command {
	var name, description, id string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a graph file to the store",
		Long:  `Save a graph JSON file (or "-" for stdin) as a new record, or replace an existing record with --id.`,
		Example: `  graphcanvas graphs save petersen.json --name Petersen
  graphcanvas generate wheel 6 | graphcanvas graphs save - --name "Wheel W6"
  graphcanvas graphs save k5.json --id 3f0c... --name K5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readGraphData(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			rec := &store.Record{ID: id, Name: name, Description: description, GraphData: d}
			var saved *store.Record
			if id == "" {
				saved, err = st.Create(cmd.Context(), rec)
			} else {
				saved, err = st.Update(cmd.Context(), rec)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
			c.Logger.Info("Saved graph", "name", saved.Name, "vertices", len(saved.GraphData))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "graph name (required)")
	cmd.Flags().StringVar(&description, "description", "", "graph description")
	cmd.Flags().StringVar(&id, "id", "", "replace the record with this ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *CLI) graphsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.Logger.Info("Deleted graph", "id", args[0])
			return nil
		},
	}
}

// writeRecordSummary prints one line per record: ID, name and size.
func writeRecordSummary(w io.Writer, r *store.Record) {
	fmt.Fprintf(w, "%s  %s  %s\n",
		r.ID,
		StyleValue.Render(r.Name),
		StyleDim.Render(graphSize(r.GraphData)+" · "+r.CreatedAt.Format("2006-01-02 15:04")))
}

func graphSize(d graph.Data) string {
	return fmt.Sprintf("%d vertices, %d edges", len(d), d.EdgeCount())
}
