// Package cli implements the wrapgen command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Station-Manager/wrap/internal/config"
)

var version = "dev" // Set at build time using -ldflags

// BaseCmd carries what every subcommand shares.
type BaseCmd struct {
	Logger hclog.Logger
	Config config.Config
}

type RootCmd struct {
	*BaseCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %s\n", err)
		os.Exit(1)
	}

	logger, err := configureLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error executing root command: %s\n", err)
		os.Exit(1)
	}

	if err := NewRootCmd(&BaseCmd{Logger: logger, Config: cfg}).Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(base *BaseCmd) *cobra.Command {
	if base.Logger == nil {
		base.Logger = hclog.NewNullLogger()
	}
	c := &RootCmd{BaseCmd: base}

	rootCmd := &cobra.Command{
		Use:          "wrapgen <command> [args]",
		Short:        "Generates database column adapters for domain types.",
		Long:         c.longDescription(),
		SilenceUsage: true,
		Version:      version,
	}

	rootCmd.AddCommand(NewGenerateCmd(base))

	return rootCmd
}

func (c *RootCmd) longDescription() string {
	return `wrapgen reads adapter declarations and writes one Go package per adapter.
Each package pairs a domain type with a database wire type so values of the
domain type can be passed to and scanned from database/sql directly.`
}

func configureLogger(cfg config.Config) (hclog.Logger, error) {
	// If WRAPGEN_LOG_PATH is not set, don't log anywhere.
	var logOutput io.Writer = io.Discard

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", cfg.LogPath, err)
		}
		logOutput = f
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "wrapgen",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: logOutput,
	}), nil
}
