// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/cli"
	"github.com/bnema/hyprisland/internal/cli/styles"
	"github.com/bnema/hyprisland/internal/config"
	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/infrastructure/termcanvas"
	"github.com/bnema/hyprisland/internal/logging"
)

// ConfigReloadedMsg carries a configuration that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// OverlayModel is the Bubble Tea model drawing the region overlay in the terminal.
type OverlayModel struct {
	// UI components
	help help.Model
	keys styles.OverlayKeyMap

	// State
	canvas  *termcanvas.Canvas
	frame   *usecase.FrameState
	last    *usecase.FrameOutput
	pointer *entity.Point
	width   int
	height  int
	aspect  float64
	margin  float64
	err     error

	// Dependencies
	ctx    context.Context
	update *usecase.UpdateFrameUseCase
	theme  *styles.Theme
}

// NewOverlayModel creates the overlay with a single seed region.
func NewOverlayModel(ctx context.Context, theme *styles.Theme, cfg *config.Config) (OverlayModel, error) {
	frameCfg, err := cli.NewFrameConfig(cfg)
	if err != nil {
		return OverlayModel{}, fmt.Errorf("invalid appearance: %w", err)
	}
	state, err := usecase.NewFrameState(frameCfg, nil)
	if err != nil {
		return OverlayModel{}, err
	}

	return OverlayModel{
		help:   styles.NewHelpModel(theme),
		keys:   styles.NewOverlayKeyMap(cfg.Keys.Split, cfg.Keys.Quit),
		frame:  state,
		aspect: cfg.Terminal.CellAspect,
		margin: cfg.Terminal.Margin,
		ctx:    logging.WithComponent(ctx, "overlay"),
		update: usecase.NewUpdateFrameUseCase(),
		theme:  theme,
	}, nil
}

// Init implements tea.Model.
func (OverlayModel) Init() tea.Cmd {
	return nil
}

// Err returns the error that stopped the overlay, if any.
func (m OverlayModel) Err() error {
	return m.err
}

// LastFrame returns the output of the most recent frame cycle, or nil before
// the first one.
func (m OverlayModel) LastFrame() *usecase.FrameOutput {
	return m.last
}

// RegionCount returns the number of regions after the last frame.
func (m OverlayModel) RegionCount() int {
	return m.frame.Tree.Len()
}

// Selected returns the selected region index.
func (m OverlayModel) Selected() int {
	return m.frame.Tree.Selected()
}

// Update implements tea.Model.
func (m OverlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m.step(usecase.FrameInput{})

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ConfigReloadedMsg:
		return m.reconfigure(msg.Config)
	}

	return m, nil
}

func (m OverlayModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Split):
		return m.step(usecase.FrameInput{SplitRequested: true})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m.step(usecase.FrameInput{})
	}

	return m, nil
}

func (m OverlayModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.canvas == nil {
		return m, nil
	}
	if msg.X < 0 || msg.X >= m.canvas.Cols() || msg.Y < 0 || msg.Y >= m.canvas.Rows() {
		m.pointer = nil
		return m, nil
	}
	p := m.canvas.CellCenter(msg.X, msg.Y)
	m.pointer = &p

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.step(usecase.FrameInput{PointerPressed: true})
	}
	return m, nil
}

func (m OverlayModel) reconfigure(cfg *config.Config) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	frameCfg, err := cli.NewFrameConfig(cfg)
	if err == nil {
		err = m.frame.Reconfigure(frameCfg)
	}
	if err != nil {
		log.Warn().Err(err).Msg("ignoring reloaded configuration")
		return m, nil
	}

	m.theme = styles.NewTheme(cfg)
	m.keys = styles.NewOverlayKeyMap(cfg.Keys.Split, cfg.Keys.Quit)
	m.help = styles.NewHelpModel(m.theme)
	m.help.Width = m.width
	m.aspect = cfg.Terminal.CellAspect
	m.margin = cfg.Terminal.Margin
	m.layout()
	log.Info().Int("gradient_steps", cfg.Gradient.Steps).Msg("configuration reloaded")

	return m.step(usecase.FrameInput{})
}

// layout sizes the canvas to the terminal minus the status bar.
func (m *OverlayModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	rows := max(m.height-lipgloss.Height(m.statusBar()), 0)
	m.canvas = termcanvas.New(m.width, rows, m.aspect)
}

// step runs one frame cycle against the current canvas.
func (m OverlayModel) step(input usecase.FrameInput) (tea.Model, tea.Cmd) {
	if m.canvas == nil {
		return m, nil
	}
	input.Container = m.canvas.Container()
	input.Pointer = m.pointer
	input.Margin = m.margin

	out, err := m.update.Execute(m.ctx, m.frame, input)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.last = out

	m.canvas.Clear()
	m.canvas.Draw(out.Commands)
	return m, nil
}

// View implements tea.Model.
func (m OverlayModel) View() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.canvas == nil {
		return ""
	}
	if m.canvas.Rows() == 0 {
		return m.statusBar()
	}
	return m.canvas.Render() + "\n" + m.statusBar()
}

func (m OverlayModel) statusBar() string {
	count := m.frame.Tree.Len()
	selected := m.frame.Tree.Selected()
	badge := m.theme.Badge.Render(fmt.Sprintf("%s %d", styles.IconPane, count))
	current := m.theme.Subtle.Render(m.frame.Tree.Region(selected).Label)
	bar := lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", current, "  ", m.help.View(m.keys))
	if m.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
	}
	return bar
}
