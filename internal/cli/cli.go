// Package cli implements the flowmark command-line interface.
//
// This package provides commands for formatting and validating flowchart
// markup, rendering diagrams to SVG, and serving diagrams over HTTP. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - fmt: Reformat flowchart markup to canonical form
//   - check: Validate markup and report diagram statistics
//   - render: Generate an SVG, locally via Graphviz or remotely via Kroki
//   - export: Emit the Graphviz DOT translation of a diagram
//   - serve: Run an HTTP API for storing and rendering diagrams
//   - explore: Browse a diagram interactively in the terminal
//   - cache: Manage the render artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowmark/flowmark/pkg/buildinfo"
	"github.com/flowmark/flowmark/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "flowmark"

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
	Config *Config
}

// New creates a new CLI instance with a default logger and configuration
// loaded from the user's config file (falling back to defaults).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "flowmark",
		Short:        "Flowmark formats and renders flowchart markup",
		Long:         `Flowmark is a CLI tool for working with flowchart markup: it parses diagram text, reformats it to a canonical form, validates structure, and renders diagrams to SVG locally or through a remote service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the artifact cache configured in the config file.
// A noCache override or any construction failure falls back to NullCache
// so commands keep working without a cache.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == cacheBackendNone {
		return cache.NewNullCache()
	}
	if c.Config.Cache.Backend == cacheBackendRedis {
		rc, err := cache.NewRedisCache(context.Background(), cache.RedisConfig{
			Addr:     c.Config.Cache.RedisAddr,
			Password: c.Config.Cache.RedisPassword,
			DB:       c.Config.Cache.RedisDB,
		})
		if err != nil {
			c.Logger.Warnf("redis cache unavailable, running uncached: %v", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warnf("file cache unavailable, running uncached: %v", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/flowmark/).
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
// Output Helpers
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
