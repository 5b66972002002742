package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/application/port/mocks"
)

func TestMigrateConfigUseCase_Check_NoMigrationNeeded(t *testing.T) {
	mockMigrator := mocks.NewMockConfigMigrator(t)
	mockMigrator.EXPECT().CheckMigration().Return(nil, nil)

	uc := NewMigrateConfigUseCase(mockMigrator)

	result, err := uc.Check(context.Background())

	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
	assert.Empty(t, result.MissingKeys)
}

func TestMigrateConfigUseCase_Check_MigrationNeeded(t *testing.T) {
	mockMigrator := mocks.NewMockConfigMigrator(t)
	mockMigrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{"gradient.steps", "terminal.watch"},
		UnknownKeys: []string{"legacy.option"},
		ConfigFile:  "/path/to/config.toml",
	}, nil)
	mockMigrator.EXPECT().GetKeyInfo("gradient.steps").Return(port.KeyInfo{
		Key: "gradient.steps", Type: "int", DefaultValue: "7",
	})
	mockMigrator.EXPECT().GetKeyInfo("terminal.watch").Return(port.KeyInfo{
		Key: "terminal.watch", Type: "bool", DefaultValue: "true",
	})

	uc := NewMigrateConfigUseCase(mockMigrator)

	result, err := uc.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, result.NeedsMigration)
	require.Len(t, result.MissingKeys, 2)
	assert.Equal(t, "int", result.MissingKeys[0].Type)
	assert.Equal(t, "bool", result.MissingKeys[1].Type)
	assert.Equal(t, []string{"legacy.option"}, result.UnknownKeys)
	assert.Equal(t, "/path/to/config.toml", result.ConfigFile)
}

func TestMigrateConfigUseCase_Check_OnlyUnknownKeys(t *testing.T) {
	mockMigrator := mocks.NewMockConfigMigrator(t)
	mockMigrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		UnknownKeys: []string{"legacy.option"},
		ConfigFile:  "/path/to/config.toml",
	}, nil)

	uc := NewMigrateConfigUseCase(mockMigrator)

	result, err := uc.Check(context.Background())

	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
	assert.Equal(t, []string{"legacy.option"}, result.UnknownKeys)
}

func TestMigrateConfigUseCase_Check_Error(t *testing.T) {
	mockMigrator := mocks.NewMockConfigMigrator(t)
	expectedErr := errors.New("check failed")
	mockMigrator.EXPECT().CheckMigration().Return(nil, expectedErr)

	uc := NewMigrateConfigUseCase(mockMigrator)

	result, err := uc.Check(context.Background())

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
}

func TestMigrateConfigUseCase_Execute(t *testing.T) {
	t.Run("adds keys", func(t *testing.T) {
		// Arrange
		mockMigrator := mocks.NewMockConfigMigrator(t)
		mockMigrator.EXPECT().Migrate().Return([]string{"terminal.watch"}, nil)
		uc := NewMigrateConfigUseCase(mockMigrator)

		// Act
		result, err := uc.Execute(context.Background(), "/path/to/config.toml")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"terminal.watch"}, result.AddedKeys)
		assert.Equal(t, "/path/to/config.toml", result.ConfigFile)
	})

	t.Run("nothing to add", func(t *testing.T) {
		mockMigrator := mocks.NewMockConfigMigrator(t)
		mockMigrator.EXPECT().Migrate().Return(nil, nil)
		uc := NewMigrateConfigUseCase(mockMigrator)

		result, err := uc.Execute(context.Background(), "/path/to/config.toml")

		require.NoError(t, err)
		assert.Empty(t, result.AddedKeys)
	})

	t.Run("migrate error", func(t *testing.T) {
		mockMigrator := mocks.NewMockConfigMigrator(t)
		expectedErr := errors.New("write failed")
		mockMigrator.EXPECT().Migrate().Return(nil, expectedErr)
		uc := NewMigrateConfigUseCase(mockMigrator)

		result, err := uc.Execute(context.Background(), "/path/to/config.toml")

		require.ErrorIs(t, err, expectedErr)
		assert.Nil(t, result)
	})
}
