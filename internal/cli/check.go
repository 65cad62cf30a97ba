package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fnjudge/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Seed uint64
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Function string `json:"function"`
	Public   int    `json:"public"`
	Secret   int    `json:"secret"`
	Seed     uint64 `json:"seed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <spec>",
		Short: "Check a specification",
		Long: `Parse a specification, run its reference over every generated input
and report how many public and secret tests it produces.

Exit codes:
  0 - The specification is usable
  2 - Parse error, reference error or exhausted random draws

Examples:
  fnjudge check add.spec
  fnjudge check add.spec --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for random tests (overrides config)")

	return cmd
}

func runCheck(opts *CheckOptions, specPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	cfg, logger, err := setup(opts.RootOptions, cmd)
	if err != nil {
		return f.fail(ErrorCode(err), "invalid configuration", err)
	}
	defer func() { _ = logger.Sync() }()

	f.VerboseLog("checking %s with seed %d", specPath, cfg.Seed)

	suite, err := harness.Generate(specPath, cfg.Seed, logger)
	if err != nil {
		return f.fail(ErrorCode(err), "specification check failed", err)
	}

	result := CheckResult{
		Function: suite.Name,
		Public:   len(suite.Public),
		Secret:   len(suite.Secret),
		Seed:     cfg.Seed,
	}
	if opts.Format == "json" {
		return f.Success(result)
	}

	st := newStyles(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d public tests, %d secret tests\n",
		st.mark(true), result.Function, result.Public, result.Secret)
	return nil
}
