// Package config provides default configuration values for hyprisland.
package config

import (
	"github.com/bnema/hyprisland/internal/cache"
	"github.com/bnema/hyprisland/internal/domain/entity"
)

// Default configuration constants
const (
	// Layout defaults
	defaultMargin = 10 // pixels

	// Appearance defaults
	defaultBorderWidth = 3 // pixels

	// Terminal defaults
	defaultCellAspect     = 2.0 // cell height / width
	defaultTerminalMargin = 1   // cell widths

	// Snapshot defaults
	defaultSnapshotWidth  = 1280 // pixels
	defaultSnapshotHeight = 1280 // pixels
	defaultFontSize       = 14   // points

	// Logging defaults
	defaultMaxLogSizeMB  = 10 // MB
	defaultMaxBackups    = 3  // backup files
	defaultMaxLogAgeDays = 7  // days
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for hyprisland.
func DefaultConfig() *Config {
	palette := entity.DefaultPalette()

	return &Config{
		Gradient: GradientConfig{
			Steps: cache.DefaultGradientSteps,
		},
		Layout: LayoutConfig{
			Margin:       defaultMargin,
			InitialLabel: entity.DefaultInitialLabel,
		},
		Appearance: AppearanceConfig{
			Selected: GradientColors{
				Top:    palette.Selected.Top.Hex(),
				Bottom: palette.Selected.Bottom.Hex(),
			},
			Unselected: GradientColors{
				Top:    palette.Unselected.Top.Hex(),
				Bottom: palette.Unselected.Bottom.Hex(),
			},
			Backdrop:    palette.Backdrop.Hex(),
			Label:       palette.Label.Hex(),
			BorderWidth: defaultBorderWidth,
		},
		Keys: KeysConfig{
			Split: []string{"q"},
			Quit:  []string{"esc", "ctrl+c"},
		},
		Terminal: TerminalConfig{
			CellAspect: defaultCellAspect,
			Margin:     defaultTerminalMargin,
			Watch:      true,
		},
		Snapshot: SnapshotConfig{
			Width:    defaultSnapshotWidth,
			Height:   defaultSnapshotHeight,
			FontSize: defaultFontSize,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
	}
}
