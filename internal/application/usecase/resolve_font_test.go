package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/application/port/mocks"
	"github.com/bnema/hyprisland/internal/application/usecase"
)

func TestResolveFontUseCase_Execute(t *testing.T) {
	t.Run("explicit path wins without lookup", func(t *testing.T) {
		// Arrange
		locator := mocks.NewMockFontLocator(t)
		uc := usecase.NewResolveFontUseCase(locator)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ResolveFontInput{Path: " /fonts/a.ttf ", Family: "Inter"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/fonts/a.ttf", out.Path)
		assert.Equal(t, usecase.FontSourcePath, out.Source)
	})

	t.Run("family is located", func(t *testing.T) {
		// Arrange
		locator := mocks.NewMockFontLocator(t)
		locator.EXPECT().IsAvailable(mock.Anything).Return(true)
		locator.EXPECT().Locate(mock.Anything, "Inter").Return("/usr/share/fonts/Inter-Regular.ttf", nil)
		uc := usecase.NewResolveFontUseCase(locator)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ResolveFontInput{Family: "Inter"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/usr/share/fonts/Inter-Regular.ttf", out.Path)
		assert.Equal(t, usecase.FontSourceFamily, out.Source)
	})

	t.Run("missing family falls back to embedded", func(t *testing.T) {
		// Arrange
		locator := mocks.NewMockFontLocator(t)
		locator.EXPECT().IsAvailable(mock.Anything).Return(true)
		locator.EXPECT().Locate(mock.Anything, "Nope").Return("", errors.New("not found"))
		uc := usecase.NewResolveFontUseCase(locator)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ResolveFontInput{Family: "Nope"})

		// Assert
		require.NoError(t, err)
		assert.Empty(t, out.Path)
		assert.Equal(t, usecase.FontSourceEmbedded, out.Source)
	})

	t.Run("unavailable lookup falls back to embedded", func(t *testing.T) {
		// Arrange
		locator := mocks.NewMockFontLocator(t)
		locator.EXPECT().IsAvailable(mock.Anything).Return(false)
		uc := usecase.NewResolveFontUseCase(locator)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ResolveFontInput{Family: "Inter"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.FontSourceEmbedded, out.Source)
	})

	t.Run("nothing configured uses embedded", func(t *testing.T) {
		uc := usecase.NewResolveFontUseCase(nil)

		out, err := uc.Execute(context.Background(), usecase.ResolveFontInput{})

		require.NoError(t, err)
		assert.Equal(t, usecase.FontSourceEmbedded, out.Source)
	})

	t.Run("cancellation is returned", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithCancel(context.Background())
		locator := mocks.NewMockFontLocator(t)
		locator.EXPECT().IsAvailable(mock.Anything).Return(true)
		locator.EXPECT().Locate(mock.Anything, "Inter").
			RunAndReturn(func(context.Context, string) (string, error) {
				cancel()
				return "", context.Canceled
			})
		uc := usecase.NewResolveFontUseCase(locator)

		// Act
		_, err := uc.Execute(ctx, usecase.ResolveFontInput{Family: "Inter"})

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}
