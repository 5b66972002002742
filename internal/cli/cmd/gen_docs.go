package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/hyprisland/internal/config"
	"github.com/bnema/hyprisland/internal/logging"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man hyprisland'. You may need to run 'mandb'
to update the man page index.

Examples:
  hyprisland gen-docs                       # Install man pages
  hyprisland gen-docs --format markdown     # Generate markdown docs in ./docs
  hyprisland gen-docs --output ./man        # Generate to local directory`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	log := logging.NewFromEnv()

	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	// Reproducible output: no "Auto generated by spf13/cobra" footer date.
	rootCmd.DisableAutoGenTag = true

	var gen func(string) error
	var ext string
	switch genDocsFormat {
	case "man":
		gen, ext = generateManPages, ".1"
	case "markdown":
		gen, ext = func(dir string) error { return doc.GenMarkdownTree(rootCmd, dir) }, ".md"
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	log.Debug().Str("format", genDocsFormat).Str("dir", outputDir).Msg("generating docs")

	if err := gen(outputDir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	if genDocsFormat == "man" {
		fmt.Fprintln(out, "Run 'mandb' if 'man hyprisland' doesn't work immediately.")
	}
	listGenerated(out, outputDir, ext)
	return nil
}

func generateManPages(outputDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "HYPRISLAND",
		Section: "1",
		Source:  "hyprisland " + buildInfo.Version,
		Manual:  "HyprIsland Manual",
		Date:    &now,
	}
	return doc.GenManTree(rootCmd, header, outputDir)
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
