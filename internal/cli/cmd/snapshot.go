package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/cli"
	"github.com/bnema/hyprisland/internal/cli/styles"
	"github.com/bnema/hyprisland/internal/domain/entity"
	"github.com/bnema/hyprisland/internal/infrastructure/fonts"
	"github.com/bnema/hyprisland/internal/infrastructure/raster"
	"github.com/bnema/hyprisland/internal/logging"
)

var (
	snapshotScript  string
	snapshotActions []string
	snapshotSizes   []string
	snapshotOutput  string
	snapshotMargin  float64
	snapshotJobs    int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Replay split actions and save the overlay as PNG",
	Long: `Replay a script of split, click and resize actions and render the
resulting overlay to a PNG image per requested size.

Script lines hold one action each, or several separated by ';':
  split              split the selected box
  click X Y          select the box under (X, Y), relative to the top-left
  resize W H         change the container size

Lines starting with '#' are comments. Use '{w}' and '{h}' in the output
path when rendering several sizes.

Examples:
  hyprisland snapshot -a split -a "click 900 400" -a split
  hyprisland snapshot --script layout.txt --size 1920x1080 --size 1080x1920 -o out/{w}x{h}.png
  echo "split; split" | hyprisland snapshot --script -`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotScript, "script", "s", "", "script file to replay ('-' for stdin)")
	snapshotCmd.Flags().StringArrayVarP(&snapshotActions, "action", "a", nil, "action to replay after the script (repeatable)")
	snapshotCmd.Flags().StringArrayVar(&snapshotSizes, "size", nil, "container size as WxH (repeatable, default snapshot.width x snapshot.height)")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "hyprisland-{w}x{h}.png", "output path template")
	snapshotCmd.Flags().Float64Var(&snapshotMargin, "margin", 0, "region margin in pixels (default layout.margin)")
	snapshotCmd.Flags().IntVarP(&snapshotJobs, "jobs", "j", runtime.NumCPU(), "sizes rendered in parallel")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithContext(cmd.Context(), *logging.FromContext(app.Ctx()))
	ctx = logging.WithComponent(ctx, "snapshot")
	cfg := app.Config

	actions, err := loadActions(cmd.InOrStdin(), snapshotScript, snapshotActions)
	if err != nil {
		return err
	}

	sizes, err := parseSizes(snapshotSizes, entity.Size{W: float64(cfg.Snapshot.Width), H: float64(cfg.Snapshot.Height)})
	if err != nil {
		return err
	}

	margin := cfg.Layout.Margin
	if cmd.Flags().Changed("margin") {
		if snapshotMargin < 0 {
			return fmt.Errorf("margin must be non-negative")
		}
		margin = snapshotMargin
	}

	frameCfg, err := cli.NewFrameConfig(cfg)
	if err != nil {
		return err
	}

	font, err := usecase.NewResolveFontUseCase(fonts.NewLocator()).Execute(ctx, usecase.ResolveFontInput{
		Path:   cfg.Snapshot.FontPath,
		Family: cfg.Snapshot.FontFamily,
	})
	if err != nil {
		return err
	}

	renderer, err := raster.NewRenderer(raster.Options{FontPath: font.Path, FontSize: cfg.Snapshot.FontSize})
	if err != nil {
		return err
	}
	defer func() { _ = renderer.Close() }()

	out, err := usecase.NewRenderSnapshotUseCase(renderer, frameCfg).Execute(ctx, usecase.RenderSnapshotInput{
		Actions:        actions,
		Sizes:          sizes,
		Margin:         margin,
		OutputTemplate: snapshotOutput,
		Concurrency:    snapshotJobs,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewSnapshotRenderer(app.Theme).RenderResults(out.Results))
	return nil
}

// loadActions parses the script (file or stdin) followed by inline actions.
func loadActions(stdin io.Reader, script string, inline []string) ([]usecase.Action, error) {
	var actions []usecase.Action

	if script != "" {
		r := stdin
		if script != "-" {
			f, err := os.Open(script)
			if err != nil {
				return nil, fmt.Errorf("open script: %w", err)
			}
			defer func() { _ = f.Close() }()
			r = f
		}
		parsed, err := usecase.ParseScript(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", script, err)
		}
		actions = append(actions, parsed...)
	}

	parsed, err := usecase.ParseActions(inline)
	if err != nil {
		return nil, err
	}
	return append(actions, parsed...), nil
}

// parseSizes parses WxH values, returning fallback when none are given.
func parseSizes(values []string, fallback entity.Size) ([]entity.Size, error) {
	if len(values) == 0 {
		return []entity.Size{fallback}, nil
	}

	sizes := make([]entity.Size, 0, len(values))
	for _, v := range values {
		w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
		if !ok {
			return nil, fmt.Errorf("invalid size %q: expected WxH", v)
		}
		width, errW := strconv.Atoi(w)
		height, errH := strconv.Atoi(h)
		if errW != nil || errH != nil || width < 1 || height < 1 {
			return nil, fmt.Errorf("invalid size %q: width and height must be positive integers", v)
		}
		sizes = append(sizes, entity.Size{W: float64(width), H: float64(height)})
	}
	return sizes, nil
}
