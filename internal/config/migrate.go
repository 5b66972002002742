package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/hyprisland/internal/application/port"
)

// Migrator compares a user config file against the defaults and adds the
// keys it is missing. It implements port.ConfigMigrator.
type Migrator struct {
	configFile string
	// defaults holds a Viper instance with only defaults set.
	defaults *viper.Viper
}

var _ port.ConfigMigrator = (*Migrator)(nil)

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()

	return &Migrator{configFile: configFile, defaults: v}
}

// CheckMigration lists default keys missing from the user file and user keys
// hyprisland does not know. It returns nil when the file does not exist or is
// complete.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	userKeys, err := m.userKeys()
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	defaultKeys := m.defaults.AllKeys()
	slices.Sort(defaultKeys)

	var missing []string
	for _, k := range defaultKeys {
		if !keyOrRelatedExists(k, userKeys) {
			missing = append(missing, k)
		}
	}

	known := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		known[k] = true
	}
	var unknown []string
	for k := range userKeys {
		if !keyOrRelatedExists(k, known) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)

	if len(missing) == 0 && len(unknown) == 0 {
		return nil, nil
	}
	return &port.MigrationResult{
		MissingKeys: missing,
		UnknownKeys: unknown,
		ConfigFile:  m.configFile,
	}, nil
}

// Migrate writes the missing default keys into the user file and returns
// them. Existing values are kept; unknown keys are left in place.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil || len(result.MissingKeys) == 0 {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")
	(&Manager{viper: userViper}).setDefaults()

	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := userViper.WriteConfig(); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return result.MissingKeys, nil
}

// GetKeyInfo returns the type and default value of key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaults.Get(key)
	if value == nil {
		return port.KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return port.KeyInfo{Key: key, Type: typeName(value), DefaultValue: formatValue(value)}
}

// userKeys parses the user's TOML file into a set of dot-notation keys.
func (m *Migrator) userKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys, nil
}

func flattenKeys(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

// keyOrRelatedExists reports whether key, one of its parents or one of its
// children is in keys.
func keyOrRelatedExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}

	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i > 0; i-- {
		if keys[strings.Join(parts[:i], ".")] {
			return true
		}
	}

	prefix := key + "."
	for k := range keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func typeName(value any) string {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return reflect.TypeOf(value).String()
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case []string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
