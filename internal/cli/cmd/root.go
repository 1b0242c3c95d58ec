// Package cmd provides Cobra CLI commands for dumbterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli"
	"github.com/bnema/dumbterm/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dumbterm",
		Short: "A tiling terminal arrangement engine",
		Long: `dumbterm arranges terminals the way a tiling window manager arranges windows.

A window holds a tree of splits and tab groups whose leaves are terminals.
Terminals can be grouped so that typed input is broadcast to several of them,
and whole arrangements are stored as named layouts.

Features:
  - Horizontal and vertical splits with adjustable ratios
  - Tab groups, nested anywhere in the tree
  - Directional and cyclic focus navigation, zoom
  - Broadcast groups (off, group, all)
  - Named layouts stored in SQLite, importable from JSON, TOML and YAML
  - Profiles that bind a name to a command and a directory

Use 'dumbterm launch' to pick a stored layout, or explore the subcommands
to manage layouts and configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			if app.ConfigErr != nil {
				fmt.Fprintln(os.Stderr, app.Theme.RenderError(app.ConfigErr))
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
