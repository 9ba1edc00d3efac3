package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/bootstrap"
	"github.com/bnema/workbench/internal/cli/model"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/snapshot"
	"github.com/bnema/workbench/internal/logging"
)

var (
	demoLayout  string
	demoRestore bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive workbench shell",
	Long: `Open a workbench shell filled with sample editors and views.

The saved layout named by --layout (or the configured layout name) is
restored first; when none exists the sample content is laid out from
scratch. Restored widgets are recreated from their ids. Changes are saved
in the background when shell.autosave_interval_ms is set. Press ctrl+s inside the shell to save the current arrangement.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoLayout, "layout", "l", "", "layout name to restore and save (defaults to the configured name)")
	demoCmd.Flags().BoolVar(&demoRestore, "restore", true, "restore the saved layout on startup")
}

func runDemo(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	cfg := *a.Config
	if demoLayout != "" {
		cfg.Shell.LayoutName = demoLayout
	}
	cfg.Shell.RestoreOnStartup = false

	wb, err := bootstrap.Build(ctx, bootstrap.Input{Config: &cfg, Layouts: a.Layouts})
	if err != nil {
		return fmt.Errorf("build shell: %w", err)
	}

	restored := false
	if demoRestore {
		if restored, err = wb.Restore(ctx, ""); err != nil {
			return fmt.Errorf("restore layout: %w", err)
		}
	}
	if !restored {
		wb.PopulateDemo(ctx)
	}
	logging.FromContext(ctx).Debug().Bool("restored", restored).Str("layout", wb.LayoutName()).Msg("demo shell ready")

	// Always running so a config reload can turn autosave on.
	autosave := snapshot.NewService(a.SnapshotLayoutUC, wb.LayoutName(), cfg.Shell.AutosaveIntervalMs)
	autosave.SetInterval(cfg.Shell.AutosaveIntervalMs)
	autosave.Start(ctx)

	m := model.NewDemoModel(ctx, a.Theme, model.DemoModelConfig{Workbench: wb, Autosave: autosave})
	p := tea.NewProgram(m, tea.WithAltScreen())
	watchConfig(ctx, a.ConfigManager, p.Send)
	_, err = p.Run()

	if stopErr := autosave.Stop(ctx); stopErr != nil && err == nil {
		err = fmt.Errorf("save layout on exit: %w", stopErr)
	}
	return err
}

// watchConfig starts the config file watcher and hands every reloaded
// config to send. The shell is only touched by the program goroutine, so
// reloads travel as messages.
func watchConfig(ctx context.Context, mgr *config.Manager, send func(tea.Msg)) {
	log := logging.FromContext(ctx)
	if mgr == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	mgr.OnConfigChange(func(cfg *config.Config) {
		send(model.ConfigReloadedMsg{Config: cfg})
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}
	log.Debug().Str("file", mgr.ConfigFile()).Msg("config watcher initialized")
}
