package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/fnjudge/internal/config"
	"github.com/roach88/fnjudge/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // path to a YAML config file, optional
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fnjudge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fnjudge",
		Short: "fnjudge - grade student Go functions",
		Long: `Grade a student's Go function against tests generated from a
specification file holding a reference implementation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to config file")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// setup loads the configuration and builds the logger for a command.
// A --seed flag set on cmd overrides the configured seed.
func setup(opts *RootOptions, cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return config.Config{}, nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return config.Config{}, nil, WrapExitError(ExitCommandError, "invalid seed", err)
		}
		cfg.Seed = seed
	}

	logger, err := logging.New(cfg.Log.Level, opts.Verbose)
	if err != nil {
		return config.Config{}, nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, logger, nil
}
