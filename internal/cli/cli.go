// Package cli implements the lanparty command-line interface.
//
// # Commands
//
//   - solve: count prefix triangles and find the LAN party password
//   - triangles: count or list triangles
//   - clique: print the largest clique, or every maximal clique
//   - render: draw the network with the largest clique highlighted
//   - serve: run the HTTP API
//   - cache: manage the local result cache
//
// # Configuration
//
// Settings come from $XDG_CONFIG_HOME/lanparty/config.toml (or --config)
// and are overridden by flags. See pkg/config for the file format.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Command results go to stdout so they can be piped.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nbourre/lanparty/pkg/buildinfo"
	"github.com/nbourre/lanparty/pkg/cache"
	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/config"
	pkgio "github.com/nbourre/lanparty/pkg/io"
	"github.com/nbourre/lanparty/pkg/netgraph"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "lanparty"

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

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "lanparty finds LAN parties in a network map",
		Long: `lanparty reads a network map of "a-b" connections and finds groups of
computers that are all connected to each other: triangles of three and
the largest fully connected set, whose sorted names form the password.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lanparty/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.trianglesCommand())
	root.AddCommand(c.cliqueCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "backend", cfg.Cache.Backend, "driver", cfg.Driver)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	r := pipeline.NewRunner(c.newCache(ctx, noCache), nil, c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r
}

// newCache opens the configured backend. A backend that cannot be opened
// degrades to no caching with a warning; caching never blocks a command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache()
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "err", err)
			return cache.NewNullCache()
		}
		return rc
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, continuing without cache", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cannot create cache directory, continuing without cache", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/lanparty/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// analysisFlags are the flags shared by commands that run an analysis.
type analysisFlags struct {
	prefix  string
	driver  string
	workers int
}

func (f *analysisFlags) register(cmd *cobra.Command, withPrefix bool) {
	if withPrefix {
		cmd.Flags().StringVarP(&f.prefix, "prefix", "p", pipeline.DefaultPrefix, "count triangles with a member whose name starts with this")
	}
	cmd.Flags().StringVar(&f.driver, "driver", string(clique.DriverPerNode), "clique search driver: per-node, single")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "goroutines for the per-node driver (0 = one per CPU)")
}

// options merges config values under any flags the user set explicitly.
func (c *CLI) options(cmd *cobra.Command, f analysisFlags) pipeline.Options {
	opts := pipeline.Options{
		Prefix:  c.Config.Prefix,
		Driver:  clique.Driver(c.Config.Driver),
		Workers: c.Config.Workers,
	}
	if cmd.Flags().Changed("prefix") {
		opts.Prefix = f.prefix
	}
	if cmd.Flags().Changed("driver") {
		opts.Driver = clique.Driver(f.driver)
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = f.workers
	}
	return opts
}

// loadGraph reads an edge list file, or stdin when path is "-".
func loadGraph(path string) (*netgraph.Graph, error) {
	if path == "-" {
		g, err := pkgio.ReadEdges(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return g, nil
	}
	g, err := pkgio.ImportEdges(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
