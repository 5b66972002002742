package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/hyprisland/internal/cache"
	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/logging"
)

// ErrNilFrameState is returned when a frame is updated without a tree or cache.
var ErrNilFrameState = errors.New("frame state is not initialized")

// FrameConfig holds the settings a FrameState is built from.
type FrameConfig struct {
	GradientSteps int
	InitialLabel  string
	Palette       entity.Palette
	BorderWidth   float64
}

// FrameState is everything one overlay instance owns across frames.
// It is not safe for concurrent use; each front-end keeps its own.
type FrameState struct {
	Tree        *entity.RegionTree
	Cache       *cache.GradientCache
	Palette     entity.Palette
	BorderWidth float64
}

// NewFrameState creates a state holding a single full-container region.
// When shared is non-nil it is used as the gradient cache and
// cfg.GradientSteps is ignored.
func NewFrameState(cfg FrameConfig, shared *cache.GradientCache) (*FrameState, error) {
	gradients := shared
	if gradients == nil {
		var err error
		gradients, err = cache.NewGradientCache(cfg.GradientSteps)
		if err != nil {
			return nil, fmt.Errorf("failed to create gradient cache: %w", err)
		}
	}

	return &FrameState{
		Tree:        entity.NewInitialRegionTree(cfg.InitialLabel),
		Cache:       gradients,
		Palette:     cfg.Palette,
		BorderWidth: cfg.BorderWidth,
	}, nil
}

// Reconfigure applies new appearance settings without touching the regions.
// A new gradient cache is built only when the step count changes.
func (s *FrameState) Reconfigure(cfg FrameConfig) error {
	if s.Cache == nil || s.Cache.Steps() != cfg.GradientSteps {
		gradients, err := cache.NewGradientCache(cfg.GradientSteps)
		if err != nil {
			return fmt.Errorf("failed to create gradient cache: %w", err)
		}
		s.Cache = gradients
	}
	s.Palette = cfg.Palette
	s.BorderWidth = cfg.BorderWidth
	return nil
}

// FrameInput is what the front-end observed during one cycle.
type FrameInput struct {
	// Container is the absolute rectangle regions resolve against.
	Container entity.Rect
	// Pointer is nil when no pointer position is known.
	Pointer *entity.Point
	// PointerPressed is true only on the cycle the primary button went down.
	PointerPressed bool
	// SplitRequested is true only on the cycle the split key went down.
	SplitRequested bool
	// Margin shrinks every resolved region on all four sides.
	Margin float64
}

// FrameOutput is the result of one cycle.
type FrameOutput struct {
	// Commands are in paint order: backdrop first, then regions by index.
	Commands []entity.DrawCommand
	// Rects are the absolute, margin-shrunk region rectangles by index.
	Rects            []entity.Rect
	Selected         int
	RegionCount      int
	Split            *entity.SplitResult
	SelectionChanged bool
}

// UpdateFrameUseCase advances the overlay by one input cycle.
type UpdateFrameUseCase struct{}

// NewUpdateFrameUseCase creates a new UpdateFrameUseCase.
func NewUpdateFrameUseCase() *UpdateFrameUseCase {
	return &UpdateFrameUseCase{}
}

// Execute applies a pending split, resolves region geometry, hit-tests a
// pending press and returns the draw commands for the resulting state.
func (uc *UpdateFrameUseCase) Execute(ctx context.Context, state *FrameState, input FrameInput) (*FrameOutput, error) {
	if state == nil || state.Tree == nil || state.Cache == nil {
		return nil, ErrNilFrameState
	}
	log := logging.FromContext(ctx)
	out := &FrameOutput{}

	// 1. Split before geometry so the new halves are hit-testable this cycle.
	if input.SplitRequested {
		res := state.Tree.Split(input.Container.Size())
		out.Split = &res
		log.Debug().
			Int("index", res.Index).
			Int("new_index", res.NewIndex).
			Str("direction", res.Direction.String()).
			Msg("region split")
	}

	// 2. Resolve to absolute coordinates.
	out.Rects = resolveRects(state.Tree, input.Container, input.Margin)

	// 3. Hit-test.
	before := state.Tree.Selected()
	if input.PointerPressed && input.Pointer != nil {
		if idx, ok := state.Tree.SelectAt(*input.Pointer, out.Rects); ok && idx != before {
			out.SelectionChanged = true
			log.Debug().Int("from", before).Int("to", idx).Msg("selection changed")
		}
	}

	// 4. Draw.
	out.Commands = uc.drawCommands(ctx, state, input.Container, out.Rects)
	out.Selected = state.Tree.Selected()
	out.RegionCount = state.Tree.Len()
	return out, nil
}

func resolveRects(tree *entity.RegionTree, container entity.Rect, margin float64) []entity.Rect {
	rects := make([]entity.Rect, 0, tree.Len())
	for _, r := range tree.Regions() {
		rects = append(rects, r.RelativeRect.Resolve(container).Shrink(margin))
	}
	return rects
}

func (uc *UpdateFrameUseCase) drawCommands(ctx context.Context, state *FrameState, container entity.Rect, rects []entity.Rect) []entity.DrawCommand {
	log := logging.FromContext(ctx)
	steps := state.Cache.Steps()
	// backdrop + per region: 2 lines per step, top, bottom, label
	cmds := make([]entity.DrawCommand, 0, 1+len(rects)*(2*steps+3))

	cmds = append(cmds, entity.FilledRect(container, state.Palette.Backdrop))

	width := state.BorderWidth
	for i, region := range state.Tree.Regions() {
		rect := rects[i]
		pair := state.Palette.Pair(region.Selected)

		if !state.Cache.Contains(pair.Top, pair.Bottom) {
			log.Debug().Str("top", pair.Top.Hex()).Str("bottom", pair.Bottom.Hex()).Msg("gradient cache miss")
		}
		gradient := state.Cache.GetOrCreateGradient(pair.Top, pair.Bottom)
		stepHeight := rect.Height() / float64(len(gradient))

		for s, col := range gradient {
			y1 := rect.Min.Y + float64(s)*stepHeight
			y2 := y1 + stepHeight
			cmds = append(cmds,
				entity.Line(entity.Pt(rect.Min.X, y1), entity.Pt(rect.Min.X, y2), width, col),
				entity.Line(entity.Pt(rect.Max.X, y1), entity.Pt(rect.Max.X, y2), width, col),
			)
		}

		cmds = append(cmds,
			entity.Line(rect.LeftTop(), rect.RightTop(), width, pair.Top),
			entity.Line(rect.LeftBottom(), rect.RightBottom(), width, pair.Bottom),
			entity.Text(rect.Min, region.Label, state.Palette.Label),
		)
	}
	return cmds
}
