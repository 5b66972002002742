// Package entity defines domain entities for the overlay.
package entity

// Point is a position, either normalized (0..1) or absolute depending on context.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle given by its top-left (Min) and
// bottom-right (Max) corners. Y grows downward.
type Rect struct {
	Min, Max Point
}

// RectFromMinMax builds a rectangle from its two corners.
func RectFromMinMax(minPt, maxPt Point) Rect {
	return Rect{Min: minPt, Max: maxPt}
}

// RectFromSize builds a rectangle anchored at the origin.
func RectFromSize(w, h float64) Rect {
	return Rect{Max: Point{X: w, Y: h}}
}

// UnitRect returns the normalized rectangle covering the whole container.
func UnitRect() Rect {
	return RectFromSize(1, 1)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Contains reports whether p lies inside r. All four edges are inclusive.
// An inverted rectangle contains nothing.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Shrink moves every edge inward by amount. The result may be inverted
// when amount exceeds half of a dimension.
func (r Rect) Shrink(amount float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + amount, Y: r.Min.Y + amount},
		Max: Point{X: r.Max.X - amount, Y: r.Max.Y - amount},
	}
}

// Resolve maps a normalized rectangle onto an absolute container.
func (r Rect) Resolve(container Rect) Rect {
	w, h := container.Width(), container.Height()
	return Rect{
		Min: Point{X: container.Min.X + r.Min.X*w, Y: container.Min.Y + r.Min.Y*h},
		Max: Point{X: container.Min.X + r.Max.X*w, Y: container.Min.Y + r.Max.Y*h},
	}
}

// LeftTop returns the top-left corner.
func (r Rect) LeftTop() Point { return r.Min }

// RightTop returns the top-right corner.
func (r Rect) RightTop() Point { return Point{X: r.Max.X, Y: r.Min.Y} }

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Point { return Point{X: r.Min.X, Y: r.Max.Y} }

// RightBottom returns the bottom-right corner.
func (r Rect) RightBottom() Point { return r.Max }

// IsNormalized reports whether r is a non-degenerate rectangle inside the unit square.
func (r Rect) IsNormalized() bool {
	if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X > 1 || r.Max.Y > 1 {
		return false
	}
	return r.Width() > 0 && r.Height() > 0
}
