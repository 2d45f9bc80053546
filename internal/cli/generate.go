package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Station-Manager/wrap/generator"
)

// GenerateCmd represents the 'generate' command.
type GenerateCmd struct {
	*BaseCmd
	outputDir  string
	fixImports bool
}

// NewGenerateCmd creates a newly configured (Cobra) command.
func NewGenerateCmd(base *BaseCmd) *cobra.Command {
	c := &GenerateCmd{BaseCmd: base}

	cobraCommand := &cobra.Command{
		Use:   "generate <adapter-file> [adapter-file...]",
		Short: "Writes an adapter package for every declared adapter",
		Long:  c.longDescription(),
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(&c.outputDir, "out", base.Config.OutputDir, "Directory the adapter packages are written under")
	cobraCommand.Flags().BoolVar(&c.fixImports, "fix-imports", base.Config.FixImports, "Add missing and remove unused imports in generated files")

	return cobraCommand
}

func (c *GenerateCmd) longDescription() string {
	return `Reads adapter declarations from YAML (.yaml, .yml), TOML (.toml) or JSON (.json)
files and writes one package per adapter. Public adapters are written to
<out>/<name>, internal adapters to <out>/internal/<name>.

Nothing is written unless every declaration in every file is valid.`
}

// run is configured (via NewGenerateCmd) to be called by the Cobra framework when the command is executed.
func (c *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	logger := c.Logger.Named("generate")

	var adapters []generator.Adapter
	for _, path := range args {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("adapter file path cannot be empty")
		}
		loaded, err := generator.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("Loaded adapter file", "path", path, "adapters", len(loaded))
		adapters = append(adapters, loaded...)
	}

	g := generator.New(
		generator.WithOutputDir(c.outputDir),
		generator.WithFixImports(c.fixImports),
		generator.WithConcurrency(c.Config.Concurrency),
		generator.WithLogger(logger),
	)

	paths, err := g.Generate(cmd.Context(), adapters...)
	if err != nil {
		return err
	}

	for _, p := range paths {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", p); err != nil {
			return err
		}
	}

	return nil
}
