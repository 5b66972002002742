package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/logging"
)

// ErrInvalidScript is returned for replay scripts that cannot be parsed.
var ErrInvalidScript = errors.New("invalid replay script")

// ActionKind is a replayable input event.
type ActionKind int

const (
	ActionSplit  ActionKind = iota // split the selected region
	ActionClick                    // press the pointer at X, Y
	ActionResize                   // change the container size to W x H
)

func (k ActionKind) String() string {
	switch k {
	case ActionSplit:
		return "split"
	case ActionClick:
		return "click"
	case ActionResize:
		return "resize"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one scripted input cycle. Click uses Point, resize uses Size.
type Action struct {
	Kind  ActionKind
	Point entity.Point
	Size  entity.Size
}

// ParseScript reads actions separated by newlines or semicolons:
//
//	split
//	click 320 200
//	resize 1920 1080
//	# comment
//
// Click coordinates are absolute, relative to the container origin.
func ParseScript(r io.Reader) ([]Action, error) {
	var actions []Action
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for stmt := range strings.SplitSeq(text, ";") {
			fields := strings.Fields(stmt)
			if len(fields) == 0 {
				continue
			}
			action, err := parseAction(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidScript, line, err)
			}
			actions = append(actions, action)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return actions, nil
}

// ParseActions parses inline statements, each using the script syntax.
func ParseActions(statements []string) ([]Action, error) {
	return ParseScript(strings.NewReader(strings.Join(statements, "\n")))
}

func parseAction(fields []string) (Action, error) {
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "split":
		if len(args) != 0 {
			return Action{}, fmt.Errorf("split takes no arguments")
		}
		return Action{Kind: ActionSplit}, nil
	case "click":
		x, y, err := parsePair(name, args)
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionClick, Point: entity.Pt(x, y)}, nil
	case "resize":
		w, h, err := parsePair(name, args)
		if err != nil {
			return Action{}, err
		}
		if w <= 0 || h <= 0 {
			return Action{}, fmt.Errorf("resize dimensions must be positive (got %gx%g)", w, h)
		}
		return Action{Kind: ActionResize, Size: entity.Size{W: w, H: h}}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}

func parsePair(name string, args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%s takes 2 numbers, got %d arguments", name, len(args))
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", name, err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", name, err)
	}
	return a, b, nil
}

// ReplayScriptUseCase drives UpdateFrame with scripted input, one action per cycle.
type ReplayScriptUseCase struct {
	update *UpdateFrameUseCase
}

// NewReplayScriptUseCase creates a new ReplayScriptUseCase.
func NewReplayScriptUseCase(update *UpdateFrameUseCase) *ReplayScriptUseCase {
	return &ReplayScriptUseCase{update: update}
}

// ReplayScriptInput contains the actions and the starting container.
type ReplayScriptInput struct {
	Actions   []Action
	Container entity.Rect
	Margin    float64
}

// ReplayScriptOutput is the state after the last action.
type ReplayScriptOutput struct {
	// Frame is an idle cycle run after the last action.
	Frame *FrameOutput
	// Container is the final container, after any resize actions.
	Container entity.Rect
	// Splits counts the split actions applied.
	Splits int
}

// Execute applies every action in order to state.
func (uc *ReplayScriptUseCase) Execute(ctx context.Context, state *FrameState, input ReplayScriptInput) (*ReplayScriptOutput, error) {
	log := logging.FromContext(ctx)
	container := input.Container
	out := &ReplayScriptOutput{}

	for i, action := range input.Actions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame := FrameInput{Container: container, Margin: input.Margin}
		switch action.Kind {
		case ActionSplit:
			frame.SplitRequested = true
			out.Splits++
		case ActionClick:
			p := entity.Pt(container.Min.X+action.Point.X, container.Min.Y+action.Point.Y)
			frame.Pointer = &p
			frame.PointerPressed = true
		case ActionResize:
			container = entity.RectFromMinMax(container.Min,
				entity.Pt(container.Min.X+action.Size.W, container.Min.Y+action.Size.H))
			frame.Container = container
		}

		if _, err := uc.update.Execute(ctx, state, frame); err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i+1, action.Kind, err)
		}
	}

	final, err := uc.update.Execute(ctx, state, FrameInput{Container: container, Margin: input.Margin})
	if err != nil {
		return nil, err
	}
	out.Frame = final
	out.Container = container

	log.Debug().
		Int("actions", len(input.Actions)).
		Int("regions", final.RegionCount).
		Int("selected", final.Selected).
		Msg("script replayed")
	return out, nil
}
