package entity

import "fmt"

// Color is an 8-bit per channel RGBA color, not premultiplied.
// It is comparable and usable as a map key.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque returns c with alpha forced to 255.
func (c Color) Opaque() Color {
	c.A = 0xff
	return c
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Float returns the channels scaled to 0..1.
func (c Color) Float() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// GradientPair is the ordered (top, bottom) pair a border gradient runs between.
type GradientPair struct {
	Top    Color
	Bottom Color
}

// Palette holds the colors used to paint the overlay.
type Palette struct {
	Selected   GradientPair
	Unselected GradientPair
	Backdrop   Color
	Label      Color
}

// DefaultPalette returns the stock magenta/cyan island colors.
func DefaultPalette() Palette {
	return Palette{
		Selected:   GradientPair{Top: RGB(255, 0, 255), Bottom: RGB(0, 255, 255)},
		Unselected: GradientPair{Top: RGB(64, 0, 64), Bottom: RGB(0, 64, 64)},
		Backdrop:   RGBA(0, 0, 0, 64),
		Label:      RGB(255, 255, 255),
	}
}

// Pair returns the gradient endpoints for a region in the given selection state.
func (p Palette) Pair(selected bool) GradientPair {
	if selected {
		return p.Selected
	}
	return p.Unselected
}
