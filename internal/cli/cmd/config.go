package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprisland/internal/application/usecase"
	"github.com/bnema/hyprisland/internal/cli/styles"
	"github.com/bnema/hyprisland/internal/config"
	"github.com/bnema/hyprisland/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show where configuration is read from, print the effective settings,
add settings introduced by newer releases, or write the JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List settings missing from config.toml",
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config.toml",
	Long: `Add every setting config.toml does not define yet with its default value.
Existing values are kept. Comments in the file are not preserved.`,
	RunE: runConfigMigrate,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and
HYPRISLAND_* environment variables have been merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema for config.toml",
	Long: `Write config.schema.json next to config.toml so editors with
TOML language servers (taplo, Even Better TOML) can complete and validate keys.`,
	RunE: runConfigSchema,
}

var configSchemaStdout bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(app.Manager.GetConfigFile()))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return app.Manager.WriteTOML(cmd.OutOrStdout())
}

func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(path))
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	result, err := uc.Check(app.Ctx())
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	if !result.NeedsMigration && len(result.UnknownKeys) == 0 {
		fmt.Fprint(out, renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Fprint(out, renderer.RenderConfigInfo(path))
	fmt.Fprint(out, renderer.RenderMissingKeys(result.MissingKeys))
	fmt.Fprint(out, renderer.RenderUnknownKeys(result.UnknownKeys))
	if result.NeedsMigration {
		fmt.Fprint(out, renderer.RenderMigrateHint())
	}
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(path))
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	result, err := uc.Execute(app.Ctx(), path)
	if err != nil {
		fmt.Fprint(out, renderer.RenderError(err))
		return err
	}
	if len(result.AddedKeys) == 0 {
		fmt.Fprint(out, renderer.RenderUpToDate(path))
		return nil
	}
	fmt.Fprint(out, renderer.RenderMigrationSuccess(len(result.AddedKeys), path))
	return nil
}

// runConfigSchema runs without app initialization so a broken config
// file does not prevent generating the schema that helps fix it.
func runConfigSchema(cmd *cobra.Command, _ []string) error {
	log := logging.NewFromEnv()

	if configSchemaStdout {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	path, err := config.GenerateSchemaFile()
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	log.Debug().Str("path", path).Msg("schema written")

	renderer := styles.NewConfigRenderer(styles.NewTheme(config.DefaultConfig()))
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}
