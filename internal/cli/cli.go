// Package cli implements the treestack command-line interface.
//
// # Commands
//
//   - tui: interactive stack/tree session in the terminal
//   - run: execute a script of push/pop/peek/clear commands and render the
//     final state as SVG, DOT, JSON, PDF or PNG
//   - version, completion
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; the session and render hooks in
// pkg/observability are wired to the same logger.
//
// # Configuration
//
// An optional TOML file at $XDG_CONFIG_HOME/treestack/config.toml (or
// --config) sets the tree kind, duplicate policy, status timeout, layout
// spacing and default render formats. Flags override the file.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treestack/pkg/buildinfo"
	"github.com/matzehuels/treestack/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "treestack"
)

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

	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treestack visualizes a stack backed by a binary tree",
		Long:         `Treestack is an educational visualizer: every push onto the stack inserts into a binary search tree or a complete binary tree, and both structures are drawn side by side.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/treestack/config.toml)")

	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, attaches the logger to the command context and
// routes observability events to it.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg

	hooks := &logHooks{logger: c.Logger}
	observability.SetSessionHooks(hooks)
	observability.SetRenderHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
