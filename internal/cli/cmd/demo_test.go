package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/bootstrap"
	"github.com/bnema/workbench/internal/cli/model"
	"github.com/bnema/workbench/internal/cli/styles"
	repomocks "github.com/bnema/workbench/internal/domain/repository/mocks"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/snapshot"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/component"
	"github.com/bnema/workbench/internal/ui/shell"
)

func TestWatchConfig_ReloadReachesRunningShell(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("WORKBENCH_LOG_LEVEL", "")
	t.Setenv("WORKBENCH_LOG_FORMAT", "")
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("error", "console"))

	dir := t.TempDir()
	mgr, err := config.NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Shell.RestoreOnStartup = false
	repo := repomocks.NewMockLayoutRepository(t)
	wb, err := bootstrap.Build(ctx, bootstrap.Input{Config: cfg, Layouts: repo})
	require.NoError(t, err)

	autosave := snapshot.NewService(usecase.NewSnapshotLayoutUseCase(repo), "default", cfg.Shell.AutosaveIntervalMs)
	var m tea.Model = model.NewDemoModel(ctx, styles.NewTheme(), model.DemoModelConfig{Workbench: wb, Autosave: autosave})
	require.True(t, wb.Shell.StatusBar().IsVisible())

	msgs := make(chan tea.Msg, 8)
	watchConfig(ctx, mgr, func(msg tea.Msg) { msgs <- msg })

	body := "[shell]\nstatus_bar_hidden = true\ndefault_rank = 5\nautosave_interval_ms = 0\n"
	staged := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(staged, []byte(body), 0o644))
	require.NoError(t, os.Rename(staged, filepath.Join(dir, "config.toml")))

	deadline := time.After(5 * time.Second)
	for wb.Shell.StatusBar().IsVisible() {
		select {
		case msg := <-msgs:
			reloaded, ok := msg.(model.ConfigReloadedMsg)
			require.True(t, ok, "unexpected message %T", msg)
			m, _ = m.Update(reloaded)
		case <-deadline:
			t.Fatal("config reload was not applied")
		}
	}

	assert.False(t, wb.Shell.StatusBar().IsVisible())
	assert.Zero(t, autosave.Interval())

	// New side bar widgets without a rank now sort before rank 10.
	wb.Shell.AddToLeftArea(ctx, component.NewView("view:ranked", "Ranked"), shell.WithRank(10))
	wb.Shell.AddToLeftArea(ctx, component.NewView("view:default", "Default"))
	widgets := wb.Shell.LeftBar().Widgets()
	require.Len(t, widgets, 2)
	assert.Equal(t, "view:default", string(widgets[0].ID()))
	assert.NotContains(t, m.View(), "config reloaded")
}

func TestWatchConfig_NilManager(t *testing.T) {
	assert.NotPanics(t, func() {
		watchConfig(context.Background(), nil, func(tea.Msg) {})
	})
}
