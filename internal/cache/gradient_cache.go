// Package cache provides in-memory caches for render data.
package cache

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

// DefaultGradientSteps is the number of color bands per border gradient.
const DefaultGradientSteps = 20

// ErrInvalidGradientSteps is returned when a gradient cache is built with fewer than two steps.
var ErrInvalidGradientSteps = errors.New("gradient steps must be at least 2")

// GradientCache memoizes vertical border gradients keyed by their ordered
// (top, bottom) endpoints. Entries are never evicted: the set of palettes in
// use is small and static.
type GradientCache struct {
	mu      sync.Mutex
	steps   int
	entries map[entity.GradientPair][]entity.Color
}

// NewGradientCache creates a cache producing gradients of the given length.
func NewGradientCache(steps int) (*GradientCache, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidGradientSteps, steps)
	}
	return &GradientCache{
		steps:   steps,
		entries: make(map[entity.GradientPair][]entity.Color),
	}, nil
}

// Steps returns the gradient length.
func (c *GradientCache) Steps() int {
	return c.steps
}

// Len returns the number of cached gradients.
func (c *GradientCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Contains reports whether the ordered pair is already cached.
func (c *GradientCache) Contains(top, bottom entity.Color) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[entity.GradientPair{Top: top, Bottom: bottom}]
	return ok
}

// GetOrCreateGradient returns the gradient running from top to bottom,
// computing and storing it on first use. (a, b) and (b, a) are distinct
// entries. The returned slice is a copy; callers may modify it freely.
func (c *GradientCache) GetOrCreateGradient(top, bottom entity.Color) []entity.Color {
	key := entity.GradientPair{Top: top, Bottom: bottom}

	c.mu.Lock()
	defer c.mu.Unlock()

	gradient, ok := c.entries[key]
	if !ok {
		gradient = interpolate(top, bottom, c.steps)
		c.entries[key] = gradient
	}

	out := make([]entity.Color, len(gradient))
	copy(out, gradient)
	return out
}

// interpolate linearly blends the RGB channels from top to bottom over steps
// bands. Output colors are opaque.
func interpolate(top, bottom entity.Color, steps int) []entity.Color {
	gradient := make([]entity.Color, steps)
	last := float64(steps - 1)
	for i := range steps {
		t := float64(i) / last
		gradient[i] = entity.RGB(
			lerpChannel(top.R, bottom.R, t),
			lerpChannel(top.G, bottom.G, t),
			lerpChannel(top.B, bottom.B, t),
		)
	}
	return gradient
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round((1-t)*float64(a) + t*float64(b))
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
