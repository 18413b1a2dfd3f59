// Package cli wires configuration, themes, the layout store and the layout
// engine for the dockpane commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dockpane/internal/application/usecase"
	"github.com/bnema/dockpane/internal/cli/styles"
	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Themes *theme.Registry
	Theme  *styles.Theme

	// Use cases
	LayoutStates *usecase.LayoutStateUseCase

	db        *sqlite.LazyDB
	ctx       context.Context
	logger    zerolog.Logger
	logCloser io.Closer
}

// NewApp creates a new CLI application with all dependencies. The layout
// store is opened on first use.
func NewApp() (*App, error) {
	cfg := loadConfig()

	registry := theme.NewBuiltinRegistry()
	if err := registry.RegisterFromConfig(cfg); err != nil {
		return nil, fmt.Errorf("register themes: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	lazy := sqlite.NewLazyDB(dbFile)

	app := &App{
		Config:       cfg,
		Themes:       registry,
		LayoutStates: usecase.NewLayoutStateUseCase(sqlite.NewLazyLayoutStateRepository(lazy)),
		db:           lazy,
		ctx:          ctx,
		logger:       logger,
	}
	app.Theme = styles.NewTheme(app.Record(cfg.Appearance.Theme))
	return app, nil
}

// Record resolves name, falling back to the dark theme.
func (a *App) Record(name string) *theme.Record {
	if rec, err := a.Themes.Resolve(name); err == nil {
		return rec
	}
	rec, _ := a.Themes.Resolve(theme.NameDark)
	return rec
}

// Records returns every registered theme in name order.
func (a *App) Records() []*theme.Record {
	names := a.Themes.Names()
	records := make([]*theme.Record, 0, len(names))
	for _, name := range names {
		if rec, err := a.Themes.Resolve(name); err == nil {
			records = append(records, rec)
		}
	}
	return records
}

// ReloadThemes re-registers the configured palettes after a config change.
func (a *App) ReloadThemes(cfg *config.Config) error {
	if err := a.Themes.RegisterFromConfig(cfg); err != nil {
		return err
	}
	a.Config = cfg
	a.Theme = styles.NewTheme(a.Record(cfg.Appearance.Theme))
	return nil
}

// LogToFile redirects logging to a rotating file in the state directory.
// Used by commands that take over the terminal.
func (a *App) LogToFile() (string, error) {
	dir, err := config.GetStateDir()
	if err != nil {
		return "", err
	}
	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        dir,
		MaxSizeMB:  5,
		MaxBackups: 3,
		Compress:   true,
	})
	if err != nil {
		return "", err
	}

	a.logger = logging.New(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level),
		Format:     "json",
		TimeFormat: "15:04:05",
		Output:     rotator,
	})
	a.ctx = logging.WithContext(context.Background(), a.logger)
	a.logCloser = rotator
	return rotator.Path(), nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	if err := config.Init(); err != nil {
		// Commands still work on defaults without a readable config file
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.DefaultConfig()
	}
	return config.Get()
}
