package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/domain/entity"
)

func TestParseScript(t *testing.T) {
	script := `
# split the seed, then pick the right half
split
click 900 400 ; SPLIT
resize 800 1280   # portrait now
`
	actions, err := usecase.ParseScript(strings.NewReader(script))

	require.NoError(t, err)
	assert.Equal(t, []usecase.Action{
		{Kind: usecase.ActionSplit},
		{Kind: usecase.ActionClick, Point: entity.Pt(900, 400)},
		{Kind: usecase.ActionSplit},
		{Kind: usecase.ActionResize, Size: entity.Size{W: 800, H: 1280}},
	}, actions)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantMsg string
	}{
		{"unknown action", "jump", `unknown action "jump"`},
		{"split with args", "split 1", "split takes no arguments"},
		{"click missing y", "click 10", "click takes 2 numbers"},
		{"click not a number", "click a 1", "click:"},
		{"zero resize", "resize 0 10", "resize dimensions must be positive"},
		{"error on second line", "split\nresize 10", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecase.ParseScript(strings.NewReader(tt.script))

			require.Error(t, err)
			assert.ErrorIs(t, err, usecase.ErrInvalidScript)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseActions(t *testing.T) {
	actions, err := usecase.ParseActions([]string{"split", "click 1 2; split"})

	require.NoError(t, err)
	assert.Len(t, actions, 3)
}

func TestParseScript_Empty(t *testing.T) {
	actions, err := usecase.ParseScript(strings.NewReader("# nothing\n\n ; \n"))

	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestReplayScript_Execute(t *testing.T) {
	state := newState(t)
	uc := usecase.NewReplayScriptUseCase(usecase.NewUpdateFrameUseCase())
	actions, err := usecase.ParseActions([]string{
		"split",           // left/right on 1280x800
		"click 1000 400",  // select right half
		"resize 800 1280", // portrait
		"split",           // right half (400x1280) splits top/bottom
	})
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), state, usecase.ReplayScriptInput{
		Actions:   actions,
		Container: entity.RectFromSize(1280, 800),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Splits)
	assert.Equal(t, 3, out.Frame.RegionCount)
	assert.Equal(t, 1, out.Frame.Selected)
	assert.Equal(t, entity.RectFromSize(800, 1280), out.Container)
	assert.Equal(t, entity.RectFromMinMax(entity.Pt(0.5, 0), entity.Pt(1, 0.5)), state.Tree.Region(1).RelativeRect)
	assert.Equal(t, entity.RectFromMinMax(entity.Pt(0.5, 0.5), entity.Pt(1, 1)), state.Tree.Region(2).RelativeRect)
}

func TestReplayScript_ClickIsRelativeToContainerOrigin(t *testing.T) {
	state := newState(t)
	uc := usecase.NewReplayScriptUseCase(usecase.NewUpdateFrameUseCase())

	out, err := uc.Execute(context.Background(), state, usecase.ReplayScriptInput{
		Actions: []usecase.Action{
			{Kind: usecase.ActionSplit},
			{Kind: usecase.ActionClick, Point: entity.Pt(150, 10)},
		},
		Container: entity.RectFromMinMax(entity.Pt(1000, 1000), entity.Pt(1200, 1100)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Frame.Selected)
}

func TestReplayScript_NoActionsStillDraws(t *testing.T) {
	state := newState(t)
	uc := usecase.NewReplayScriptUseCase(usecase.NewUpdateFrameUseCase())

	out, err := uc.Execute(context.Background(), state, usecase.ReplayScriptInput{Container: entity.RectFromSize(10, 10)})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Frame.RegionCount)
	assert.NotEmpty(t, out.Frame.Commands)
}

func TestReplayScript_Cancelled(t *testing.T) {
	state := newState(t)
	uc := usecase.NewReplayScriptUseCase(usecase.NewUpdateFrameUseCase())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, state, usecase.ReplayScriptInput{
		Actions:   []usecase.Action{{Kind: usecase.ActionSplit}},
		Container: entity.RectFromSize(10, 10),
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, state.Tree.Len())
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "split", usecase.ActionSplit.String())
	assert.Equal(t, "click", usecase.ActionClick.String())
	assert.Equal(t, "resize", usecase.ActionResize.String())
	assert.Equal(t, "ActionKind(9)", usecase.ActionKind(9).String())
}
