package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphcanvas/pkg/buildinfo"
	"github.com/matzehuels/graphcanvas/pkg/cache"
	"github.com/matzehuels/graphcanvas/pkg/config"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/ops"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphcanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// FormatError renders err for the terminal without its error code prefix.
func FormatError(err error) string {
	msg := err.Error()
	if code := errors.GetCode(err); code != "" {
		msg = strings.TrimPrefix(msg, string(code)+": ")
	}
	return styleIconError.Render(iconError) + " " + msg
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphcanvas draws, generates and transforms undirected graphs",
		Long:         `Graphcanvas is an editor for undirected graphs with positioned vertices. It generates classic graph families, computes line graphs and complements, renders graphs to PNG, SVG, PDF and DOT, and serves the same operations over HTTP.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphcanvas/config.toml)")

	root.AddCommand(c.opsCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.graphsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file. The configured log level applies only
// while the logger is still at the info default, so --verbose wins.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.Logger.GetLevel() == LogInfo {
		c.Logger.SetLevel(cfg.LogLevel())
	}
	return nil
}

// =============================================================================
// Runner and Store Factories
// =============================================================================

// newRunner creates an operation runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*ops.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := ops.NewRunner(cc, c.Config.Keyer(), c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := c.Config.CacheOptions()
	if opts.Backend == cache.BackendFile && opts.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		opts.Dir = dir
	}
	return cache.Open(ctx, opts)
}

// openStore opens the configured graph store. A file store without a
// directory lives under the XDG data directory.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	opts := c.Config.StoreOptions()
	switch opts.Backend {
	case store.BackendFile:
		if opts.Dir == "" {
			dir, err := dataDir()
			if err != nil {
				return nil, err
			}
			opts.Dir = filepath.Join(dir, "graphs")
		}
	case store.BackendMongo:
		st, err := spin(ctx, "Connecting to MongoDB...", "MongoDB unavailable", func() (store.Store, error) {
			return store.Open(ctx, opts)
		})
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("Connected to MongoDB", "database", opts.Database, "collection", opts.Collection)
		return st, nil
	}
	return store.Open(ctx, opts)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphcanvas/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the data directory using XDG standard (~/.local/share/graphcanvas/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
