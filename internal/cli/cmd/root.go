// Package cmd provides Cobra CLI commands for workbench.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "workbench",
		Short: "A keyboard-driven workbench layout shell",
		Long: `Workbench - side bars, a tabbed dock and a status bar in your terminal.

Widgets live in a left or right side bar, a top panel, or the main dock
area where they can be grouped into tabs and split in any direction.
Arrangements are saved as named layouts and restored on startup.

Use 'workbench demo' to open the interactive shell, or the layout
subcommands to inspect and manage stored layouts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
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

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// SetVersion sets the version printed by --version (called from main.go before Execute).
func SetVersion(v string) {
	rootCmd.Version = v
}
