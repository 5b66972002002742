// Package cli wires configuration, theming and logging for the hyprisland commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/cli/styles"
	"github.com/bnema/hyprisland/internal/config"
	"github.com/bnema/hyprisland/internal/domain/build"
	"github.com/bnema/hyprisland/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration from configFile (or the XDG location when
// empty) and creates a stderr logger for one-shot commands.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// UseFileLogger replaces the stderr logger with a rotating session log file
// under logging.log_dir. Used by the interactive overlay, which owns the terminal.
func (a *App) UseFileLogger() error {
	logCfg := a.Config.Logging
	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logCfg.Level), Format: "json"},
		logging.FileConfig{
			Dir:        logCfg.LogDir,
			MaxSizeMB:  logCfg.MaxSizeMB,
			MaxBackups: logCfg.MaxBackups,
			MaxAgeDays: logCfg.MaxAgeDays,
			Compress:   true,
		},
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewFrameConfig resolves the overlay settings of cfg.
func NewFrameConfig(cfg *config.Config) (usecase.FrameConfig, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return usecase.FrameConfig{}, err
	}
	return usecase.FrameConfig{
		GradientSteps: cfg.Gradient.Steps,
		InitialLabel:  cfg.Layout.InitialLabel,
		Palette:       palette,
		BorderWidth:   cfg.Appearance.BorderWidth,
	}, nil
}
