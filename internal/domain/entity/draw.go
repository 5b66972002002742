package entity

// DrawKind identifies the primitive a DrawCommand describes.
type DrawKind int

const (
	DrawLine       DrawKind = iota // Stroked segment From -> To
	DrawFilledRect                 // Solid rectangle Rect
	DrawText                       // Label anchored at its top-left corner At
)

func (k DrawKind) String() string {
	switch k {
	case DrawLine:
		return "line"
	case DrawFilledRect:
		return "filled_rect"
	case DrawText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCommand is a single render primitive in absolute container coordinates.
// Only the fields relevant to Kind are set.
type DrawCommand struct {
	Kind  DrawKind
	Color Color

	// DrawLine
	From, To Point
	Width    float64

	// DrawFilledRect
	Rect Rect

	// DrawText
	At   Point
	Text string
}

// Line builds a stroked segment command.
func Line(from, to Point, width float64, color Color) DrawCommand {
	return DrawCommand{Kind: DrawLine, From: from, To: to, Width: width, Color: color}
}

// FilledRect builds a solid rectangle command.
func FilledRect(r Rect, color Color) DrawCommand {
	return DrawCommand{Kind: DrawFilledRect, Rect: r, Color: color}
}

// Text builds a label command whose top-left corner sits at at.
func Text(at Point, text string, color Color) DrawCommand {
	return DrawCommand{Kind: DrawText, At: at, Text: text, Color: color}
}
