package usecase

import (
	"context"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/logging"
)

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// UnknownKeys lists user keys hyprisland ignores.
	UnknownKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AddedKeys contains the keys that were added.
	AddedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check checks if the user config is missing any default keys.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}
	if result == nil {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("unknown_keys", len(result.UnknownKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: len(keyInfos) > 0,
		MissingKeys:    keyInfos,
		UnknownKeys:    result.UnknownKeys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute adds missing default keys to the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, configFile string) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	added, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}
	if len(added) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{}, nil
	}

	log.Info().
		Int("added_keys", len(added)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{AddedKeys: added, ConfigFile: configFile}, nil
}
