package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/hyprisland/internal/application/port"
	"github.com/bnema/hyprisland/internal/cache"
	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/logging"
)

var (
	// ErrNoSnapshotSizes is returned when no output size was requested.
	ErrNoSnapshotSizes = errors.New("at least one snapshot size is required")
	// ErrAmbiguousOutput is returned when several sizes would write to the same file.
	ErrAmbiguousOutput = errors.New("several sizes expand to the same output path")
)

// RenderSnapshotUseCase replays a script once per output size and hands each
// resulting frame to a renderer. Sizes render in parallel and share one
// gradient cache.
type RenderSnapshotUseCase struct {
	renderer port.FrameRenderer
	replay   *ReplayScriptUseCase
	frame    FrameConfig
}

// NewRenderSnapshotUseCase creates a new RenderSnapshotUseCase.
func NewRenderSnapshotUseCase(renderer port.FrameRenderer, frame FrameConfig) *RenderSnapshotUseCase {
	return &RenderSnapshotUseCase{
		renderer: renderer,
		replay:   NewReplayScriptUseCase(NewUpdateFrameUseCase()),
		frame:    frame,
	}
}

// RenderSnapshotInput describes one snapshot run.
type RenderSnapshotInput struct {
	Actions []Action
	Sizes   []entity.Size
	Margin  float64
	// OutputTemplate is the destination path; {w} and {h} expand to the requested size.
	OutputTemplate string
	// Concurrency caps parallel renders; 0 means one goroutine per size.
	Concurrency int
}

// SnapshotResult describes one rendered file.
type SnapshotResult struct {
	Size        entity.Size
	Dest        string
	RegionCount int
	Selected    int
}

// RenderSnapshotOutput lists results in the order sizes were requested.
type RenderSnapshotOutput struct {
	Results []SnapshotResult
}

// Execute renders every requested size. The first failure cancels the rest.
func (uc *RenderSnapshotUseCase) Execute(ctx context.Context, input RenderSnapshotInput) (*RenderSnapshotOutput, error) {
	if len(input.Sizes) == 0 {
		return nil, ErrNoSnapshotSizes
	}
	dests, err := expandDestinations(input.OutputTemplate, input.Sizes)
	if err != nil {
		return nil, err
	}

	gradients, err := cache.NewGradientCache(uc.frame.GradientSteps)
	if err != nil {
		return nil, fmt.Errorf("failed to create gradient cache: %w", err)
	}

	results := make([]SnapshotResult, len(input.Sizes))
	g, gctx := errgroup.WithContext(ctx)
	if input.Concurrency > 0 {
		g.SetLimit(input.Concurrency)
	}

	for i, size := range input.Sizes {
		g.Go(func() error {
			sctx := logging.WithSize(gctx, int(size.W), int(size.H))
			result, err := uc.renderOne(sctx, gradients, size, dests[i], input)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", formatSize(size), err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &RenderSnapshotOutput{Results: results}, nil
}

// expandDestinations expands template for every size. Renderers are only safe
// on distinct destinations, so two sizes sharing a path is an error.
func expandDestinations(template string, sizes []entity.Size) ([]string, error) {
	dests := make([]string, len(sizes))
	seen := make(map[string]entity.Size, len(sizes))
	for i, size := range sizes {
		dest := ExpandOutputTemplate(template, size)
		if prev, ok := seen[dest]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrAmbiguousOutput, formatSize(prev), formatSize(size), dest)
		}
		seen[dest] = size
		dests[i] = dest
	}
	return dests, nil
}

func (uc *RenderSnapshotUseCase) renderOne(ctx context.Context, gradients *cache.GradientCache, size entity.Size, dest string, input RenderSnapshotInput) (SnapshotResult, error) {
	log := logging.FromContext(ctx)

	state, err := NewFrameState(uc.frame, gradients)
	if err != nil {
		return SnapshotResult{}, err
	}

	replayed, err := uc.replay.Execute(ctx, state, ReplayScriptInput{
		Actions:   input.Actions,
		Container: entity.RectFromSize(size.W, size.H),
		Margin:    input.Margin,
	})
	if err != nil {
		return SnapshotResult{}, err
	}

	frame := port.Frame{
		Size:     replayed.Container.Size(),
		Commands: replayed.Frame.Commands,
	}
	if err := uc.renderer.Render(ctx, frame, dest); err != nil {
		return SnapshotResult{}, fmt.Errorf("failed to render %s: %w", dest, err)
	}

	log.Debug().Str("dest", dest).Int("commands", len(frame.Commands)).Msg("snapshot rendered")
	return SnapshotResult{
		Size:        size,
		Dest:        dest,
		RegionCount: replayed.Frame.RegionCount,
		Selected:    replayed.Frame.Selected,
	}, nil
}

// ExpandOutputTemplate substitutes {w} and {h} with the integer size.
func ExpandOutputTemplate(template string, size entity.Size) string {
	return strings.NewReplacer(
		"{w}", strconv.Itoa(int(size.W)),
		"{h}", strconv.Itoa(int(size.H)),
	).Replace(template)
}

func formatSize(size entity.Size) string {
	return fmt.Sprintf("%dx%d", int(size.W), int(size.H))
}
