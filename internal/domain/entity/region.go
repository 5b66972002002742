package entity

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidRegionRect is returned when a tree is seeded with a rectangle that
// is inverted, degenerate, or outside the unit square.
var ErrInvalidRegionRect = errors.New("invalid region rect")

// DefaultInitialLabel is the label carried by the seed region until its first split.
const DefaultInitialLabel = "Initial Box"

// SplitDirection indicates how a region was divided.
type SplitDirection int

const (
	SplitHorizontal SplitDirection = iota // Left/right split
	SplitVertical                         // Top/bottom split
)

func (d SplitDirection) String() string {
	switch d {
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return fmt.Sprintf("SplitDirection(%d)", int(d))
	}
}

// Region is a single island: a normalized rectangle and its label.
type Region struct {
	RelativeRect Rect
	Label        string
}

// RegionSnapshot is a read-only view of a region, including its selection state.
type RegionSnapshot struct {
	RelativeRect Rect
	Selected     bool
	Label        string
}

// SplitResult describes what a split did.
type SplitResult struct {
	Index     int // Region that was split (keeps the first half and the selection)
	NewIndex  int // Appended region holding the second half
	Direction SplitDirection
	First     Rect
	Second    Rect
}

// RegionTree is the ordered collection of regions with a single selection.
// Selection is an index, so the tree can never hold zero or several selected
// regions. Regions are only ever appended.
type RegionTree struct {
	regions  []Region
	selected int
}

// NewRegionTree creates a tree holding one selected region covering rect.
func NewRegionTree(rect Rect, initialLabel string) (*RegionTree, error) {
	if !rect.IsNormalized() {
		return nil, fmt.Errorf("%w: min=(%g,%g) max=(%g,%g)",
			ErrInvalidRegionRect, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	if initialLabel == "" {
		initialLabel = DefaultInitialLabel
	}
	return &RegionTree{
		regions:  []Region{{RelativeRect: rect, Label: initialLabel}},
		selected: 0,
	}, nil
}

// NewInitialRegionTree creates a tree whose single region covers the unit square.
func NewInitialRegionTree(initialLabel string) *RegionTree {
	tree, err := NewRegionTree(UnitRect(), initialLabel)
	if err != nil {
		// UnitRect is always valid.
		panic(err)
	}
	return tree
}

// Len returns the number of regions.
func (t *RegionTree) Len() int {
	return len(t.regions)
}

// Selected returns the index of the selected region.
func (t *RegionTree) Selected() int {
	return t.selected
}

// Region returns a snapshot of the region at index i.
// Panics if i is out of range.
func (t *RegionTree) Region(i int) RegionSnapshot {
	r := t.regions[i]
	return RegionSnapshot{
		RelativeRect: r.RelativeRect,
		Selected:     i == t.selected,
		Label:        r.Label,
	}
}

// Regions yields (index, snapshot) pairs in insertion order. The sequence can
// be ranged over any number of times and never mutates the tree.
func (t *RegionTree) Regions() iter.Seq2[int, RegionSnapshot] {
	return func(yield func(int, RegionSnapshot) bool) {
		for i := range t.regions {
			if !yield(i, t.Region(i)) {
				return
			}
		}
	}
}

// Select makes index the only selected region.
// Panics if index is out of range.
func (t *RegionTree) Select(index int) {
	if index < 0 || index >= len(t.regions) {
		panic(fmt.Sprintf("region index %d out of range [0,%d)", index, len(t.regions)))
	}
	t.selected = index
}

// SelectAt selects the last region whose absolute rectangle contains p.
// rects[i] is the absolute, already shrunk rectangle of region i. Entries
// beyond the region count are ignored. Returns the hit index, or false when
// nothing was hit and the selection is unchanged.
func (t *RegionTree) SelectAt(p Point, rects []Rect) (int, bool) {
	hit := -1
	for i, r := range rects {
		if i >= len(t.regions) {
			break
		}
		// No early exit: later regions win on overlap.
		if r.Contains(p) {
			hit = i
		}
	}
	if hit < 0 {
		return 0, false
	}
	t.selected = hit
	return hit, true
}

// Split divides the selected region in two along its longer absolute side,
// measured against container. The selected region keeps the first half
// (left or top) and the selection; the second half is appended unselected.
func (t *RegionTree) Split(container Size) SplitResult {
	index := t.selected
	rel := t.regions[index].RelativeRect

	direction := SplitVertical
	if rel.Width()*container.W > rel.Height()*container.H {
		direction = SplitHorizontal
	}

	first, second := splitRect(rel, direction)

	t.regions[index] = Region{RelativeRect: first, Label: boxLabel(index + 1)}
	t.regions = append(t.regions, Region{RelativeRect: second})
	newIndex := len(t.regions) - 1
	t.regions[newIndex].Label = boxLabel(len(t.regions))

	return SplitResult{
		Index:     index,
		NewIndex:  newIndex,
		Direction: direction,
		First:     first,
		Second:    second,
	}
}

func splitRect(r Rect, direction SplitDirection) (first, second Rect) {
	mid := r.Center()
	if direction == SplitHorizontal {
		first = RectFromMinMax(r.Min, Pt(mid.X, r.Max.Y))
		second = RectFromMinMax(Pt(mid.X, r.Min.Y), r.Max)
		return first, second
	}
	first = RectFromMinMax(r.Min, Pt(r.Max.X, mid.Y))
	second = RectFromMinMax(Pt(r.Min.X, mid.Y), r.Max)
	return first, second
}

func boxLabel(n int) string {
	return fmt.Sprintf("Box %d", n)
}
