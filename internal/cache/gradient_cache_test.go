package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

var (
	magenta = entity.RGB(255, 0, 255)
	cyan    = entity.RGB(0, 255, 255)
)

func TestNewGradientCache_RejectsFewerThanTwoSteps(t *testing.T) {
	for _, steps := range []int{-1, 0, 1} {
		c, err := NewGradientCache(steps)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidGradientSteps)
	}

	c, err := NewGradientCache(2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Steps())
}

func TestGetOrCreateGradient_DeterministicAndCached(t *testing.T) {
	c, err := NewGradientCache(DefaultGradientSteps)
	require.NoError(t, err)

	first := c.GetOrCreateGradient(magenta, cyan)
	second := c.GetOrCreateGradient(magenta, cyan)

	assert.Equal(t, first, second)
	assert.Len(t, first, 20)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Contains(cyan, magenta), "reversed pair must not be created by a lookup")
}

func TestGetOrCreateGradient_ReversedPairIsSeparateEntry(t *testing.T) {
	c, err := NewGradientCache(DefaultGradientSteps)
	require.NoError(t, err)

	forward := c.GetOrCreateGradient(magenta, cyan)
	reversed := c.GetOrCreateGradient(cyan, magenta)

	assert.Equal(t, 2, c.Len())
	assert.NotEqual(t, forward, reversed)
	assert.Equal(t, cyan, reversed[0])
	assert.Equal(t, magenta, reversed[len(reversed)-1])
}

func TestGetOrCreateGradient_EndpointsExact(t *testing.T) {
	pairs := []entity.GradientPair{
		{Top: magenta, Bottom: cyan},
		{Top: entity.RGB(64, 0, 64), Bottom: entity.RGB(0, 64, 64)},
		{Top: entity.RGB(1, 2, 3), Bottom: entity.RGB(250, 251, 252)},
		{Top: entity.RGB(0, 0, 0), Bottom: entity.RGB(0, 0, 0)},
	}

	for _, steps := range []int{2, 3, 7, 20, 256} {
		c, err := NewGradientCache(steps)
		require.NoError(t, err)

		for _, p := range pairs {
			g := c.GetOrCreateGradient(p.Top, p.Bottom)
			require.Len(t, g, steps)
			assert.Equal(t, p.Top, g[0])
			assert.Equal(t, p.Bottom, g[steps-1])
		}
	}
}

func TestGetOrCreateGradient_Interpolation(t *testing.T) {
	c, err := NewGradientCache(3)
	require.NoError(t, err)

	g := c.GetOrCreateGradient(entity.RGB(0, 100, 255), entity.RGB(255, 0, 0))

	// Midpoint: 127.5 rounds half away from zero.
	assert.Equal(t, entity.RGB(128, 50, 128), g[1])
}

func TestGetOrCreateGradient_OutputIsOpaque(t *testing.T) {
	c, err := NewGradientCache(5)
	require.NoError(t, err)

	g := c.GetOrCreateGradient(entity.RGBA(10, 20, 30, 0), entity.RGBA(40, 50, 60, 128))

	for _, col := range g {
		assert.Equal(t, uint8(0xff), col.A)
	}
}

func TestGetOrCreateGradient_ReturnsCopy(t *testing.T) {
	c, err := NewGradientCache(4)
	require.NoError(t, err)

	g := c.GetOrCreateGradient(magenta, cyan)
	g[0] = entity.RGB(1, 1, 1)

	again := c.GetOrCreateGradient(magenta, cyan)
	assert.Equal(t, magenta, again[0])
}

func TestGetOrCreateGradient_Concurrent(t *testing.T) {
	c, err := NewGradientCache(DefaultGradientSteps)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.GetOrCreateGradient(magenta, cyan)
			} else {
				c.GetOrCreateGradient(cyan, magenta)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, c.Len())
}
