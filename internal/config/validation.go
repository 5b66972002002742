package config

import (
	"fmt"
	"strings"

	"github.com/bnema/hyprisland/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Gradient.Steps < 2 {
		validationErrors = append(validationErrors, fmt.Sprintf("gradient.steps must be at least 2 (got: %d)", config.Gradient.Steps))
	}

	if config.Layout.Margin < 0 {
		validationErrors = append(validationErrors, "layout.margin must be non-negative")
	}

	// Colors
	validationErrors = append(validationErrors, validation.ValidateGradientPair("appearance.selected",
		config.Appearance.Selected.Top, config.Appearance.Selected.Bottom)...)
	validationErrors = append(validationErrors, validation.ValidateGradientPair("appearance.unselected",
		config.Appearance.Unselected.Top, config.Appearance.Unselected.Bottom)...)
	validationErrors = append(validationErrors, validation.ValidateColor("appearance.backdrop", config.Appearance.Backdrop)...)
	validationErrors = append(validationErrors, validation.ValidateColor("appearance.label", config.Appearance.Label)...)
	if config.Appearance.BorderWidth <= 0 {
		validationErrors = append(validationErrors, "appearance.border_width must be positive")
	}

	// Key bindings
	validationErrors = append(validationErrors, validation.ValidateKeyBindings("keys.split", config.Keys.Split)...)
	validationErrors = append(validationErrors, validation.ValidateKeyBindings("keys.quit", config.Keys.Quit)...)
	validationErrors = append(validationErrors, validation.ValidateDisjointBindings(map[string][]string{
		"keys.split": config.Keys.Split,
		"keys.quit":  config.Keys.Quit,
	})...)

	if config.Terminal.CellAspect <= 0 {
		validationErrors = append(validationErrors, "terminal.cell_aspect must be positive")
	}
	if config.Terminal.Margin < 0 {
		validationErrors = append(validationErrors, "terminal.margin must be non-negative")
	}

	if config.Snapshot.Width < 1 || config.Snapshot.Height < 1 {
		validationErrors = append(validationErrors, fmt.Sprintf("snapshot.width and snapshot.height must be at least 1 (got: %dx%d)", config.Snapshot.Width, config.Snapshot.Height))
	}
	if config.Snapshot.FontSize <= 0 {
		validationErrors = append(validationErrors, "snapshot.font_size must be positive")
	}
	validationErrors = append(validationErrors, validation.ValidateFontPath("snapshot.font_path", config.Snapshot.FontPath)...)

	// Validate logging values
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
