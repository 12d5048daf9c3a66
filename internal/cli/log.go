// Package cli implements the graphcanvas command-line interface.
//
// The CLI wraps the operation registry, renderers, graph store and HTTP API
// behind cobra commands, and hosts the interactive editor as a bubbletea
// program. Logging goes through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - ops: List registered generators and transforms
//   - generate, transform: Run an operation and write the vertex map as JSON
//   - render: Export a graph to PNG, SVG, PDF or DOT
//   - edit: Edit a graph interactively in the terminal
//   - serve: Run the HTTP API
//   - graphs: Manage saved graphs in the configured store
//   - cache, config: Inspect the operation cache and the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Without it
// the level comes from the [log] section of the config file.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamps as "15:04:05.00", filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step of a command and logs it with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and an "elapsed" field rounded
// to the millisecond.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
