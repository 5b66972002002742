// Package config provides configuration management for hyprisland with Viper integration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/domain/validation"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for hyprisland.
type Config struct {
	Gradient   GradientConfig   `mapstructure:"gradient" toml:"gradient" json:"gradient"`
	Layout     LayoutConfig     `mapstructure:"layout" toml:"layout" json:"layout"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Keys       KeysConfig       `mapstructure:"keys" toml:"keys" json:"keys"`
	// Terminal controls the interactive overlay drawn in the terminal.
	Terminal TerminalConfig `mapstructure:"terminal" toml:"terminal" json:"terminal"`
	// Snapshot controls offline PNG rendering.
	Snapshot SnapshotConfig `mapstructure:"snapshot" toml:"snapshot" json:"snapshot"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// GradientConfig controls border gradients.
type GradientConfig struct {
	// Steps is the number of color bands per border (>= 2).
	Steps int `mapstructure:"steps" toml:"steps" json:"steps" jsonschema:"minimum=2"`
}

// LayoutConfig controls region geometry.
type LayoutConfig struct {
	// Margin shrinks every region on all four sides before drawing and hit-testing (pixels).
	Margin float64 `mapstructure:"margin" toml:"margin" json:"margin" jsonschema:"minimum=0"`
	// InitialLabel is shown on the seed region until its first split.
	InitialLabel string `mapstructure:"initial_label" toml:"initial_label" json:"initial_label"`
}

// GradientColors is a top/bottom color pair. Values are #RRGGBB, #RRGGBBAA or CSS names.
type GradientColors struct {
	Top    string `mapstructure:"top" toml:"top" json:"top"`
	Bottom string `mapstructure:"bottom" toml:"bottom" json:"bottom"`
}

// AppearanceConfig holds overlay colors and stroke width.
type AppearanceConfig struct {
	Selected    GradientColors `mapstructure:"selected" toml:"selected" json:"selected"`
	Unselected  GradientColors `mapstructure:"unselected" toml:"unselected" json:"unselected"`
	Backdrop    string         `mapstructure:"backdrop" toml:"backdrop" json:"backdrop"`
	Label       string         `mapstructure:"label" toml:"label" json:"label"`
	BorderWidth float64        `mapstructure:"border_width" toml:"border_width" json:"border_width" jsonschema:"exclusiveMinimum=0"`
}

// KeysConfig maps actions to Bubble Tea key names ("q", "ctrl+c", "esc").
type KeysConfig struct {
	Split []string `mapstructure:"split" toml:"split" json:"split"`
	Quit  []string `mapstructure:"quit" toml:"quit" json:"quit"`
}

// TerminalConfig holds settings for the terminal front-end.
type TerminalConfig struct {
	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect float64 `mapstructure:"cell_aspect" toml:"cell_aspect" json:"cell_aspect" jsonschema:"exclusiveMinimum=0"`
	// Margin replaces layout.margin in the terminal, in cell widths.
	Margin float64 `mapstructure:"margin" toml:"margin" json:"margin" jsonschema:"minimum=0"`
	// Watch reloads colors and margins when the config file changes.
	Watch bool `mapstructure:"watch" toml:"watch" json:"watch"`
}

// SnapshotConfig holds defaults for PNG rendering.
type SnapshotConfig struct {
	Width    int     `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height   int     `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	FontSize float64 `mapstructure:"font_size" toml:"font_size" json:"font_size" jsonschema:"exclusiveMinimum=0"`
	// FontPath is an optional TTF/OTF file; empty uses the embedded Go font.
	FontPath string `mapstructure:"font_path" toml:"font_path" json:"font_path"`
	// FontFamily is looked up with fontconfig when FontPath is empty.
	FontFamily string `mapstructure:"font_family" toml:"font_family" json:"font_family"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// Palette resolves the configured color strings.
func (c *Config) Palette() (entity.Palette, error) {
	var p entity.Palette
	fields := []struct {
		name  string
		value string
		dst   *entity.Color
	}{
		{"appearance.selected.top", c.Appearance.Selected.Top, &p.Selected.Top},
		{"appearance.selected.bottom", c.Appearance.Selected.Bottom, &p.Selected.Bottom},
		{"appearance.unselected.top", c.Appearance.Unselected.Top, &p.Unselected.Top},
		{"appearance.unselected.bottom", c.Appearance.Unselected.Bottom, &p.Unselected.Bottom},
		{"appearance.backdrop", c.Appearance.Backdrop, &p.Backdrop},
		{"appearance.label", c.Appearance.Label, &p.Label},
	}
	for _, f := range fields {
		col, err := validation.ParseColor(f.value)
		if err != nil {
			return entity.Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	explicit   bool
	configFile string
}

// NewManager creates a new configuration manager. When configFile is empty
// the XDG config directory and the working directory are searched for
// config.toml, and a default file is written on first run.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// HYPRISLAND_GRADIENT_STEPS, HYPRISLAND_LAYOUT_MARGIN, ...
	v.SetEnvPrefix("HYPRISLAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "HYPRISLAND_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind HYPRISLAND_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "HYPRISLAND_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind HYPRISLAND_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		callbacks:  make([]func(*Config), 0),
		explicit:   configFile != "",
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.explicit || !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		config.Logging.Level = "info"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	switch config.Logging.Format {
	case "console", "json":
	default:
		config.Logging.Format = "console"
	}

	config.Layout.InitialLabel = strings.TrimSpace(config.Layout.InitialLabel)
	if config.Layout.InitialLabel == "" {
		config.Layout.InitialLabel = entity.DefaultInitialLabel
	}

	config.Snapshot.FontPath = strings.TrimSpace(config.Snapshot.FontPath)
	config.Snapshot.FontFamily = strings.TrimSpace(config.Snapshot.FontFamily)
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// WriteTOML writes the effective settings (file, environment and defaults merged) as TOML.
func (m *Manager) WriteTOML(w io.Writer) error {
	m.mu.RLock()
	settings := m.viper.AllSettings()
	m.mu.RUnlock()

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("gradient.steps", defaults.Gradient.Steps)

	m.viper.SetDefault("layout.margin", defaults.Layout.Margin)
	m.viper.SetDefault("layout.initial_label", defaults.Layout.InitialLabel)

	m.viper.SetDefault("appearance.selected.top", defaults.Appearance.Selected.Top)
	m.viper.SetDefault("appearance.selected.bottom", defaults.Appearance.Selected.Bottom)
	m.viper.SetDefault("appearance.unselected.top", defaults.Appearance.Unselected.Top)
	m.viper.SetDefault("appearance.unselected.bottom", defaults.Appearance.Unselected.Bottom)
	m.viper.SetDefault("appearance.backdrop", defaults.Appearance.Backdrop)
	m.viper.SetDefault("appearance.label", defaults.Appearance.Label)
	m.viper.SetDefault("appearance.border_width", defaults.Appearance.BorderWidth)

	m.viper.SetDefault("keys.split", defaults.Keys.Split)
	m.viper.SetDefault("keys.quit", defaults.Keys.Quit)

	m.viper.SetDefault("terminal.cell_aspect", defaults.Terminal.CellAspect)
	m.viper.SetDefault("terminal.margin", defaults.Terminal.Margin)
	m.viper.SetDefault("terminal.watch", defaults.Terminal.Watch)

	m.viper.SetDefault("snapshot.width", defaults.Snapshot.Width)
	m.viper.SetDefault("snapshot.height", defaults.Snapshot.Height)
	m.viper.SetDefault("snapshot.font_size", defaults.Snapshot.FontSize)
	m.viper.SetDefault("snapshot.font_path", defaults.Snapshot.FontPath)
	m.viper.SetDefault("snapshot.font_family", defaults.Snapshot.FontFamily)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}
