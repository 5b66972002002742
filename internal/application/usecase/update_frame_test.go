package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/cache"
	"github.com/bnema/hyprisland/internal/domain/entity"
)

func defaultFrameConfig() usecase.FrameConfig {
	return usecase.FrameConfig{
		GradientSteps: cache.DefaultGradientSteps,
		InitialLabel:  entity.DefaultInitialLabel,
		Palette:       entity.DefaultPalette(),
		BorderWidth:   3,
	}
}

func newState(t *testing.T) *usecase.FrameState {
	t.Helper()
	state, err := usecase.NewFrameState(defaultFrameConfig(), nil)
	require.NoError(t, err)
	return state
}

func commandsOfKind(cmds []entity.DrawCommand, kind entity.DrawKind) []entity.DrawCommand {
	var out []entity.DrawCommand
	for _, c := range cmds {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestUpdateFrame_InitialFrame(t *testing.T) {
	state := newState(t)
	uc := usecase.NewUpdateFrameUseCase()
	container := entity.RectFromSize(1280, 1280)

	out, err := uc.Execute(context.Background(), state, usecase.FrameInput{Container: container, Margin: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, out.RegionCount)
	assert.Equal(t, 0, out.Selected)
	assert.Nil(t, out.Split)
	assert.False(t, out.SelectionChanged)
	// backdrop + 2 lines per gradient step + top + bottom + label
	assert.Len(t, out.Commands, 1+2*cache.DefaultGradientSteps+3)

	backdrop := out.Commands[0]
	assert.Equal(t, entity.DrawFilledRect, backdrop.Kind)
	assert.Equal(t, container, backdrop.Rect)
	assert.Equal(t, entity.RGBA(0, 0, 0, 64), backdrop.Color)

	require.Len(t, out.Rects, 1)
	assert.Equal(t, entity.RectFromMinMax(entity.Pt(10, 10), entity.Pt(1270, 1270)), out.Rects[0])
}

func TestUpdateFrame_BorderGeometry(t *testing.T) {
	state := newState(t)
	uc := usecase.NewUpdateFrameUseCase()
	container := entity.RectFromSize(200, 400)

	out, err := uc.Execute(context.Background(), state, usecase.FrameInput{Container: container})
	require.NoError(t, err)

	lines := commandsOfKind(out.Commands, entity.DrawLine)
	require.Len(t, lines, 2*cache.DefaultGradientSteps+2)

	stepHeight := 400.0 / float64(cache.DefaultGradientSteps)
	for i := range cache.DefaultGradientSteps {
		left, right := lines[2*i], lines[2*i+1]
		y1 := float64(i) * stepHeight

		assert.Equal(t, 0.0, left.From.X)
		assert.Equal(t, 200.0, right.From.X)
		assert.InDelta(t, y1, left.From.Y, 1e-9)
		assert.InDelta(t, y1+stepHeight, left.To.Y, 1e-9)
		assert.Equal(t, left.Color, right.Color)
		assert.Equal(t, 3.0, left.Width)
	}
	assert.Equal(t, entity.RGB(255, 0, 255), lines[0].Color, "selected gradient starts magenta")
	assert.Equal(t, entity.RGB(0, 255, 255), lines[2*cache.DefaultGradientSteps-1].Color, "and ends cyan")

	top, bottom := lines[len(lines)-2], lines[len(lines)-1]
	assert.Equal(t, entity.Pt(0, 0), top.From)
	assert.Equal(t, entity.Pt(200, 0), top.To)
	assert.Equal(t, entity.RGB(255, 0, 255), top.Color)
	assert.Equal(t, entity.Pt(0, 400), bottom.From)
	assert.Equal(t, entity.Pt(200, 400), bottom.To)
	assert.Equal(t, entity.RGB(0, 255, 255), bottom.Color)

	texts := commandsOfKind(out.Commands, entity.DrawText)
	require.Len(t, texts, 1)
	assert.Equal(t, entity.DefaultInitialLabel, texts[0].Text)
	assert.Equal(t, entity.Pt(0, 0), texts[0].At)
	assert.Equal(t, entity.RGB(255, 255, 255), texts[0].Color)
}

func TestUpdateFrame_SplitThenClickSameCycle(t *testing.T) {
	state := newState(t)
	uc := usecase.NewUpdateFrameUseCase()
	pointer := entity.Pt(900, 400)

	out, err := uc.Execute(context.Background(), state, usecase.FrameInput{
		Container:      entity.RectFromSize(1280, 800),
		Pointer:        &pointer,
		PointerPressed: true,
		SplitRequested: true,
		Margin:         10,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Split)
	assert.Equal(t, entity.SplitHorizontal, out.Split.Direction)
	assert.Equal(t, 2, out.RegionCount)
	assert.Equal(t, 1, out.Selected)
	assert.True(t, out.SelectionChanged)
	assert.Equal(t, []entity.Rect{
		entity.RectFromMinMax(entity.Pt(10, 10), entity.Pt(630, 790)),
		entity.RectFromMinMax(entity.Pt(650, 10), entity.Pt(1270, 790)),
	}, out.Rects)
}

func TestUpdateFrame_DrawsSelectionAfterClick(t *testing.T) {
	state := newState(t)
	uc := usecase.NewUpdateFrameUseCase()
	container := entity.RectFromSize(1280, 800)
	_, err := uc.Execute(context.Background(), state, usecase.FrameInput{Container: container, SplitRequested: true})
	require.NoError(t, err)

	pointer := entity.Pt(1000, 400)
	out, err := uc.Execute(context.Background(), state, usecase.FrameInput{
		Container: container, Pointer: &pointer, PointerPressed: true,
	})
	require.NoError(t, err)

	texts := commandsOfKind(out.Commands, entity.DrawText)
	require.Len(t, texts, 2)
	assert.Equal(t, "Box 1", texts[0].Text)
	assert.Equal(t, "Box 2", texts[1].Text)

	lines := commandsOfKind(out.Commands, entity.DrawLine)
	perRegion := 2*cache.DefaultGradientSteps + 2
	assert.Equal(t, entity.RGB(64, 0, 64), lines[0].Color, "region 0 unselected")
	assert.Equal(t, entity.RGB(255, 0, 255), lines[perRegion].Color, "region 1 selected")
}

func TestUpdateFrame_PressIgnoredWithoutPointerOrOutsideRegions(t *testing.T) {
	tests := []struct {
		name    string
		pointer *entity.Point
		pressed bool
	}{
		{"no pointer", nil, true},
		{"pointer in margin gap", &entity.Point{X: 640, Y: 400}, true},
		{"hover without press", &entity.Point{X: 1000, Y: 400}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(t)
			uc := usecase.NewUpdateFrameUseCase()
			container := entity.RectFromSize(1280, 800)
			_, err := uc.Execute(context.Background(), state, usecase.FrameInput{Container: container, SplitRequested: true, Margin: 10})
			require.NoError(t, err)

			out, err := uc.Execute(context.Background(), state, usecase.FrameInput{
				Container: container, Pointer: tt.pointer, PointerPressed: tt.pressed, Margin: 10,
			})

			require.NoError(t, err)
			assert.Equal(t, 0, out.Selected)
			assert.False(t, out.SelectionChanged)
		})
	}
}

func TestUpdateFrame_ContainerOrigin(t *testing.T) {
	state := newState(t)
	uc := usecase.NewUpdateFrameUseCase()
	container := entity.RectFromMinMax(entity.Pt(100, 50), entity.Pt(1380, 850))

	out, err := uc.Execute(context.Background(), state, usecase.FrameInput{Container: container, SplitRequested: true})

	require.NoError(t, err)
	assert.Equal(t, entity.RectFromMinMax(entity.Pt(740, 50), entity.Pt(1380, 850)), out.Rects[1])
}

func TestUpdateFrame_NilState(t *testing.T) {
	uc := usecase.NewUpdateFrameUseCase()

	_, err := uc.Execute(context.Background(), nil, usecase.FrameInput{})
	assert.ErrorIs(t, err, usecase.ErrNilFrameState)

	_, err = uc.Execute(context.Background(), &usecase.FrameState{}, usecase.FrameInput{})
	assert.ErrorIs(t, err, usecase.ErrNilFrameState)
}

func TestNewFrameState_InvalidSteps(t *testing.T) {
	cfg := defaultFrameConfig()
	cfg.GradientSteps = 1

	_, err := usecase.NewFrameState(cfg, nil)

	assert.ErrorIs(t, err, cache.ErrInvalidGradientSteps)
}

func TestFrameState_Reconfigure(t *testing.T) {
	state := newState(t)
	state.Tree.Split(entity.Size{W: 100, H: 50})
	originalCache := state.Cache

	cfg := defaultFrameConfig()
	cfg.Palette.Backdrop = entity.RGBA(10, 10, 10, 10)
	require.NoError(t, state.Reconfigure(cfg))
	assert.Same(t, originalCache, state.Cache, "same step count keeps the cache")
	assert.Equal(t, entity.RGBA(10, 10, 10, 10), state.Palette.Backdrop)

	cfg.GradientSteps = 4
	require.NoError(t, state.Reconfigure(cfg))
	assert.NotSame(t, originalCache, state.Cache)
	assert.Equal(t, 4, state.Cache.Steps())
	assert.Equal(t, 2, state.Tree.Len(), "regions survive reconfiguration")

	cfg.GradientSteps = 0
	assert.Error(t, state.Reconfigure(cfg))
	assert.Equal(t, 4, state.Cache.Steps())
}
