// Package raster draws overlay frames into PNG images with gogpu/gg.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/logging"
)

// DefaultFontSize is the label size in points when Options.FontSize is zero.
const DefaultFontSize = 14

// ErrEmptyFrame is returned for frames with a non-positive size.
var ErrEmptyFrame = errors.New("frame size must be positive")

// Options configures a Renderer.
type Options struct {
	// FontPath is a TTF/OTF file for labels. Empty uses the embedded Go Regular font.
	FontPath string
	FontSize float64
}

// Renderer implements port.FrameRenderer.
type Renderer struct {
	source   *text.FontSource
	fontSize float64
}

var _ port.FrameRenderer = (*Renderer)(nil)

// NewRenderer loads the label font.
func NewRenderer(opts Options) (*Renderer, error) {
	var (
		source *text.FontSource
		err    error
	)
	if opts.FontPath != "" {
		source, err = text.NewFontSourceFromFile(opts.FontPath)
	} else {
		source, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load font %q: %w", opts.FontPath, err)
	}

	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return &Renderer{source: source, fontSize: size}, nil
}

// Close releases the font.
func (r *Renderer) Close() error {
	return r.source.Close()
}

// Render implements port.FrameRenderer. Parent directories of dest are created.
func (r *Renderer) Render(ctx context.Context, frame port.Frame, dest string) error {
	log := logging.FromContext(ctx)

	dc, err := r.draw(frame)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := dc.SavePNG(dest); err != nil {
		return fmt.Errorf("failed to save %s: %w", dest, err)
	}

	log.Debug().Str("dest", dest).Msg("png written")
	return nil
}

// Image rasterizes a frame without writing it anywhere.
func (r *Renderer) Image(frame port.Frame) (image.Image, error) {
	dc, err := r.draw(frame)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dc.Close() }()
	return dc.Image(), nil
}

func (r *Renderer) draw(frame port.Frame) (*gg.Context, error) {
	w := int(math.Ceil(frame.Size.W))
	h := int(math.Ceil(frame.Size.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w (got %gx%g)", ErrEmptyFrame, frame.Size.W, frame.Size.H)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Transparent)
	dc.SetFont(r.source.Face(r.fontSize))

	for i, cmd := range frame.Commands {
		if err := r.paint(dc, cmd); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Kind, err)
		}
	}
	return dc, nil
}

func (r *Renderer) paint(dc *gg.Context, cmd entity.DrawCommand) error {
	dc.SetRGBA(cmd.Color.Float())

	switch cmd.Kind {
	case entity.DrawFilledRect:
		dc.DrawRectangle(cmd.Rect.Min.X, cmd.Rect.Min.Y, cmd.Rect.Width(), cmd.Rect.Height())
		return dc.Fill()
	case entity.DrawLine:
		dc.SetLineWidth(cmd.Width)
		dc.DrawLine(cmd.From.X, cmd.From.Y, cmd.To.X, cmd.To.Y)
		return dc.Stroke()
	case entity.DrawText:
		// At is the top-left corner; gg positions text by baseline.
		dc.DrawString(cmd.Text, cmd.At.X, cmd.At.Y+r.fontSize)
		return nil
	default:
		return fmt.Errorf("unsupported draw kind %d", int(cmd.Kind))
	}
}
