package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/internal/api"
	"github.com/matzehuels/graphcanvas/pkg/observability"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve graph operations and saved graphs over HTTP",
		Long: `Start the HTTP API.

Operations are cached in the configured cache backend and graphs are saved
in the configured store. Use a redis cache and a mongo store to share state
between several servers.`,
		Example: `  graphcanvas serve
  graphcanvas serve --addr :8080
  curl localhost:5000/transform/class`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :5000)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable operation caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	hooks := &logHooks{logger: c.Logger}
	observability.SetOperationHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	srv := api.New(runner, st,
		api.WithLogger(c.Logger),
		api.WithCORSOrigins(c.Config.Server.CORSOrigins...))

	printInfo("Listening on %s", addr)
	printDetail("store: %s  cache: %s", c.Config.Store.Backend, cacheBackend(c.Config.Cache.Backend, noCache))
	return srv.ListenAndServe(ctx, addr)
}

func cacheBackend(backend string, noCache bool) string {
	if noCache || backend == "" {
		return "none"
	}
	return backend
}

// =============================================================================
// logHooks - Debug logging of operations and cache traffic
// =============================================================================

// logHooks reports operations and cache traffic to the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnOperationStart(ctx context.Context, set, name string) {}

func (h *logHooks) OnOperationComplete(ctx context.Context, set, name string, vertices int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("Operation failed", "set", set, "name", name, "err", err)
		return
	}
	h.logger.Debug("Operation", "set", set, "name", name, "vertices", vertices, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(ctx context.Context, set string) {
	h.logger.Debug("Cache hit", "set", set)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, set string) {}

func (h *logHooks) OnCacheSet(ctx context.Context, set string, size int) {
	h.logger.Debug("Cache set", "set", set, "bytes", size)
}
