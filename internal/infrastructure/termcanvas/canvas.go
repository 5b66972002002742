// Package termcanvas rasterizes overlay draw commands onto a grid of
// terminal cells rendered with lipgloss.
//
// Container coordinates map to cells as follows: one unit of x is one cell
// width, and one cell is Aspect units tall. A cell (col, row) therefore covers
// x in [col, col+1) and y in [row*Aspect, (row+1)*Aspect).
package termcanvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

// Box-drawing connection bits.
const (
	connN uint8 = 1 << iota
	connS
	connE
	connW
)

var boxRunes = map[uint8]rune{
	connN | connS:                 '│',
	connE | connW:                 '─',
	connS | connE:                 '┌',
	connS | connW:                 '┐',
	connN | connE:                 '└',
	connN | connW:                 '┘',
	connN | connS | connE:         '├',
	connN | connS | connW:         '┤',
	connE | connW | connS:         '┬',
	connE | connW | connN:         '┴',
	connN | connS | connE | connW: '┼',
	connN:                         '│',
	connS:                         '│',
	connE:                         '─',
	connW:                         '─',
}

// Cell is one terminal character.
type Cell struct {
	Rune  rune
	Fg    entity.Color
	Bg    entity.Color
	HasFg bool
	HasBg bool

	conn     uint8
	vertical bool
	text     bool
}

// Canvas is a Cols x Rows grid of cells.
type Canvas struct {
	cols, rows int
	aspect     float64
	cells      []Cell
	base       colorful.Color
}

// New creates an empty canvas. aspect is the cell height in cell widths.
func New(cols, rows int, aspect float64) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if aspect <= 0 {
		aspect = 1
	}
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		aspect: aspect,
		cells:  make([]Cell, cols*rows),
		base:   colorful.Color{},
	}
	c.Clear()
	return c
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Container returns the container rectangle covering the whole canvas.
func (c *Canvas) Container() entity.Rect {
	return entity.RectFromSize(float64(c.cols), float64(c.rows)*c.aspect)
}

// CellCenter maps a cell position to its center in container coordinates.
func (c *Canvas) CellCenter(col, row int) entity.Point {
	return entity.Pt(float64(col)+0.5, (float64(row)+0.5)*c.aspect)
}

// Clear resets every cell to a blank space with no colors.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// Cell returns the cell at (col, row). Out-of-range positions return a blank cell.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inBounds(col, row) {
		return Cell{Rune: ' '}
	}
	return c.cells[row*c.cols+col]
}

// Draw paints commands in order.
func (c *Canvas) Draw(cmds []entity.DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case entity.DrawFilledRect:
			c.fillRect(cmd.Rect, cmd.Color)
		case entity.DrawLine:
			c.line(cmd.From, cmd.To, cmd.Color)
		case entity.DrawText:
			c.text(cmd.At, cmd.Text, cmd.Color)
		}
	}
}

// Lines returns the canvas characters without styling, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	var b strings.Builder
	for row := range c.rows {
		b.Reset()
		for col := range c.cols {
			b.WriteRune(c.cells[row*c.cols+col].Rune)
		}
		lines[row] = b.String()
	}
	return lines
}

// Render returns the canvas as styled terminal output. Adjacent cells with
// equal colors share one lipgloss style run.
func (c *Canvas) Render() string {
	var out strings.Builder
	var run strings.Builder
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		var runCell Cell
		for col := range c.cols {
			cell := c.cells[row*c.cols+col]
			if col > 0 && !sameStyle(cell, runCell) {
				out.WriteString(styleFor(runCell).Render(run.String()))
				run.Reset()
			}
			if run.Len() == 0 {
				runCell = cell
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(styleFor(runCell).Render(run.String()))
			run.Reset()
		}
	}
	return out.String()
}

func sameStyle(a, b Cell) bool {
	return a.HasFg == b.HasFg && a.HasBg == b.HasBg &&
		(!a.HasFg || a.Fg == b.Fg) && (!a.HasBg || a.Bg == b.Bg)
}

func styleFor(cell Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cell.HasFg {
		style = style.Foreground(lipgloss.Color(cell.Fg.Opaque().Hex()))
	}
	if cell.HasBg {
		style = style.Background(lipgloss.Color(cell.Bg.Opaque().Hex()))
	}
	return style
}

func (c *Canvas) inBounds(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *Canvas) at(col, row int) *Cell {
	return &c.cells[row*c.cols+col]
}

// colOf maps an x coordinate to the column containing it, clamped to the canvas.
func (c *Canvas) colOf(x float64) int {
	return clamp(int(math.Floor(x)), 0, c.cols-1)
}

// rowOf maps a y coordinate to the row containing it, clamped to the canvas.
func (c *Canvas) rowOf(y float64) int {
	return clamp(int(math.Floor(y/c.aspect)), 0, c.rows-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// fillRect blends color into the background of every cell whose center lies
// inside r, using the color's alpha as the blend factor.
func (c *Canvas) fillRect(r entity.Rect, col entity.Color) {
	if col.A == 0 {
		return
	}
	t := float64(col.A) / 255
	src := toColorful(col)
	for row := range c.rows {
		for x := range c.cols {
			if !r.Contains(c.CellCenter(x, row)) {
				continue
			}
			cell := c.at(x, row)
			dst := c.base
			if cell.HasBg {
				dst = toColorful(cell.Bg)
			}
			cell.Bg = fromColorful(dst.BlendRgb(src, t))
			cell.HasBg = true
		}
	}
}

// line draws an axis-aligned segment with box-drawing characters. Diagonal
// segments are not produced by the overlay and are ignored.
func (c *Canvas) line(from, to entity.Point, col entity.Color) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	switch {
	case from.X == to.X:
		x := c.colOf(from.X)
		r1, r2 := c.rowOf(math.Min(from.Y, to.Y)), c.rowOf(math.Max(from.Y, to.Y))
		for row := r1; row <= r2; row++ {
			cell := c.at(x, row)
			if row > r1 {
				cell.conn |= connN
			}
			if row < r2 {
				cell.conn |= connS
			}
			cell.vertical = true
			c.stroke(cell, col)
		}
	case from.Y == to.Y:
		row := c.rowOf(from.Y)
		c1, c2 := c.colOf(math.Min(from.X, to.X)), c.colOf(math.Max(from.X, to.X))
		for x := c1; x <= c2; x++ {
			cell := c.at(x, row)
			if x > c1 {
				cell.conn |= connW
			}
			if x < c2 {
				cell.conn |= connE
			}
			c.stroke(cell, col)
		}
	}
}

func (c *Canvas) stroke(cell *Cell, col entity.Color) {
	if cell.text {
		return
	}
	if r, ok := boxRunes[cell.conn]; ok {
		cell.Rune = r
	} else if cell.vertical {
		cell.Rune = '│'
	} else {
		cell.Rune = '─'
	}
	cell.Fg = col
	cell.HasFg = true
}

// text writes s on the row containing at, starting one column to the right
// of it so the label sits on a box's top border after its corner.
func (c *Canvas) text(at entity.Point, s string, col entity.Color) {
	if c.cols == 0 || c.rows == 0 || at.Y < 0 || at.Y >= float64(c.rows)*c.aspect {
		return
	}
	row := c.rowOf(at.Y)
	x := int(math.Floor(at.X)) + 1
	for _, r := range s {
		if x >= c.cols {
			break
		}
		if x >= 0 {
			cell := c.at(x, row)
			cell.Rune = r
			cell.Fg = col
			cell.HasFg = true
			cell.text = true
		}
		x++
	}
}

func toColorful(c entity.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) entity.Color {
	r, g, b := c.Clamped().RGB255()
	return entity.RGB(r, g, b)
}
