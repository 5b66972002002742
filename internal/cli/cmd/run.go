package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hyprisland/internal/cli/model"
	"github.com/bnema/hyprisland/internal/config"
	"github.com/bnema/hyprisland/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the overlay in the terminal",
	Long: `Open the interactive overlay in the alternate screen.

The whole terminal is the container. Press the split key (default 'q')
to split the selected box, click a box to select it, and press esc or
ctrl+c to quit. Logs go to a session file under logging.log_dir because
the overlay owns the terminal.

When terminal.watch is enabled, saving the config file recolors the
overlay without losing the current boxes.`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runOverlay(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.UseFileLogger(); err != nil {
		return err
	}

	ctx := logging.WithContext(cmd.Context(), *logging.FromContext(app.Ctx()))
	log := logging.FromContext(ctx)
	defer logging.LogPanic(*log)

	m, err := model.NewOverlayModel(ctx, app.Theme, app.Config)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if app.Config.Terminal.Watch {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		if err := app.Manager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config watching disabled")
		}
	}

	log.Info().
		Str("version", app.BuildInfo.Version).
		Str("config_file", app.Manager.GetConfigFile()).
		Msg("starting overlay")

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info().Msg("overlay interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run overlay: %w", err)
	}

	if om, ok := final.(model.OverlayModel); ok {
		log.Info().Int("regions", om.RegionCount()).Int("selected", om.Selected()).Msg("overlay closed")
		return om.Err()
	}
	return nil
}
