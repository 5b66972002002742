package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys exist in the defaults but not in the user config.
	MissingKeys []string
	// UnknownKeys exist in the user config but are not recognized.
	UnknownKeys []string
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "snapshot.font_family").
	Key string
	// Type is the value kind (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration compares the user config with the defaults.
	// Returns nil if no migration is needed (config file doesn't exist or is complete).
	CheckMigration() (*MigrationResult, error)

	// Migrate adds missing default keys to the user's config file.
	// Returns the list of keys that were added.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo
}
