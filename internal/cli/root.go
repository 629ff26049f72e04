// Package cli implements the deadpanda command-line interface.
//
// This package provides commands for serving the deadlock-analysis HTTP API
// and for running the same analyses locally over graph snapshot files. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: run the HTTP API
//   - analyze: deadlock analysis of a snapshot file
//   - sequence: Banker's-style safe-sequence calculation
//   - simulate: evaluate a hypothetical allocation
//   - render: DOT/SVG visualization of a snapshot
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the semantic version set via [SetVersion], or "dev".
func Version() string {
	if version == "" {
		return "dev"
	}
	return version
}

// Execute runs the deadpanda CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "deadpanda",
		Short:        "deadpanda analyzes resource-allocation graphs for deadlocks",
		Long:         `deadpanda models processes and shared resources as a resource-allocation graph and answers whether the current state deadlocks, whether a safe execution sequence exists, and whether a hypothetical allocation would be safe to grant.`,
		Version:      Version(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("deadpanda %s\ncommit: %s\nbuilt: %s\n", Version(), commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newSequenceCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
