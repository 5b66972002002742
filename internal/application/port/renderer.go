package port

import (
	"context"

	"github.com/bnema/hyprisland/internal/domain/entity"
)

// Frame is one composed overlay image: the container size and the draw
// commands produced for it, in paint order.
type Frame struct {
	Size     entity.Size
	Commands []entity.DrawCommand
}

// FrameRenderer rasterizes a frame and writes it to dest.
// Implementations must be safe for concurrent use on distinct destinations.
type FrameRenderer interface {
	Render(ctx context.Context, frame Frame, dest string) error
}
