// Package bootstrap wires the layout shell to its configuration and the
// layout store.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/component"
	"github.com/bnema/workbench/internal/ui/shell"
	"github.com/bnema/workbench/internal/ui/statusbar"
)

// Input holds what Build needs.
type Input struct {
	Config  *config.Config
	Layouts repository.LayoutRepository
	// SaveFunc is handed to every editor the factory creates. Optional.
	SaveFunc component.SaveFunc
}

// Workbench is a ready-to-use shell plus the layout persistence around it.
type Workbench struct {
	Shell   *shell.Shell
	Factory *component.Factory

	snapshotUC *usecase.SnapshotLayoutUseCase
	restoreUC  *usecase.RestoreLayoutUseCase
	layoutName string
	timer      *StartupTimer
}

// Build assembles a shell from cfg. When the configuration asks for it the
// stored layout is restored; a missing layout is not an error.
func Build(ctx context.Context, in Input) (*Workbench, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if in.Layouts == nil {
		return nil, errors.New("layout repository required")
	}
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	factory := component.NewFactory(in.SaveFunc)
	bar := statusbar.New()
	if cfg.Shell.StatusBarHidden {
		bar.Hide()
	}

	wb := &Workbench{
		Shell: shell.New(ctx, shell.Deps{
			Resolver:    factory,
			StatusBar:   bar,
			DefaultRank: cfg.Shell.DefaultRank,
		}),
		Factory:    factory,
		snapshotUC: usecase.NewSnapshotLayoutUseCase(in.Layouts),
		restoreUC:  usecase.NewRestoreLayoutUseCase(in.Layouts),
		layoutName: cfg.Shell.LayoutName,
		timer:      timer,
	}
	timer.Mark("shell")

	if cfg.Shell.RestoreOnStartup {
		restored, err := wb.Restore(ctx, wb.layoutName)
		if err != nil {
			return nil, fmt.Errorf("restore layout on startup: %w", err)
		}
		log.Debug().Bool("restored", restored).Str("layout", wb.layoutName).Msg("startup restore")
	}
	timer.Mark("restore")
	timer.LogDebug(ctx)

	return wb, nil
}

// ApplyConfig applies the hot-reloadable shell settings of cfg: status bar
// visibility and the default side bar rank. Must run on the UI goroutine.
func (wb *Workbench) ApplyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Shell.StatusBarHidden {
		wb.Shell.StatusBar().Hide()
	} else {
		wb.Shell.StatusBar().Show()
	}
	wb.Shell.SetDefaultRank(cfg.Shell.DefaultRank)

	logging.FromContext(ctx).Debug().
		Bool("status_bar_hidden", cfg.Shell.StatusBarHidden).
		Int("default_rank", cfg.Shell.DefaultRank).
		Msg("shell config applied")
}

// LayoutName returns the configured layout name.
func (wb *Workbench) LayoutName() string {
	return wb.layoutName
}

// Save snapshots the shell under name, or the configured name when empty.
func (wb *Workbench) Save(ctx context.Context, name string) error {
	return wb.SaveData(ctx, name, wb.Shell.LayoutData(ctx))
}

// SaveData stores an already captured layout under name, or the configured
// name when empty.
func (wb *Workbench) SaveData(ctx context.Context, name string, data *entity.LayoutData) error {
	if name == "" {
		name = wb.layoutName
	}
	return wb.snapshotUC.Execute(ctx, usecase.SnapshotLayoutInput{Name: name, Data: data})
}

// Restore applies the layout stored under name. It returns false when no
// such layout exists.
func (wb *Workbench) Restore(ctx context.Context, name string) (bool, error) {
	if name == "" {
		name = wb.layoutName
	}
	out, err := wb.restoreUC.Execute(ctx, usecase.RestoreLayoutInput{Name: name})
	if errors.Is(err, usecase.ErrLayoutNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	wb.Shell.SetLayoutData(ctx, out.Data)
	return true, nil
}

// StartupPhases returns the phases recorded while building.
func (wb *Workbench) StartupPhases() []string {
	return wb.timer.Phases()
}
