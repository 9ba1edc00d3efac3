// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Layouts       repository.LayoutRepository

	// Use cases
	SnapshotLayoutUC *usecase.SnapshotLayoutUseCase
	RestoreLayoutUC  *usecase.RestoreLayoutUseCase
	ManageLayoutsUC  *usecase.ManageLayoutsUseCase

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use so commands that never touch layouts stay cheap.
func NewApp() (*App, error) {
	const dataDirPerm = 0o755

	mgr, cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("WORKBENCH_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbFile), dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db := sqlite.NewLazyDB(dbFile)
	layouts := sqlite.NewLazyLayoutRepository(db)
	logger.Debug().Str("db_path", dbFile).Msg("layout store configured")

	return &App{
		Config:           cfg,
		ConfigManager:    mgr,
		Theme:            styles.NewTheme(),
		Layouts:          layouts,
		SnapshotLayoutUC: usecase.NewSnapshotLayoutUseCase(layouts),
		RestoreLayoutUC:  usecase.NewRestoreLayoutUseCase(layouts),
		ManageLayoutsUC:  usecase.NewManageLayoutsUseCase(layouts),
		db:               db,
		ctx:              ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager is nil
// when the config directory cannot be determined.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\nusing default configuration\n", err)
		return mgr, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
