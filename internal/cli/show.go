package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fnjudge/internal/harness"
	"github.com/roach88/fnjudge/internal/value"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Seed  uint64
	Count int
}

// Example is one public test shown to students before they start.
type Example struct {
	Inputs   string `json:"inputs"`
	Expected string `json:"expected"`
}

// ShowResult is the JSON payload of the show command.
type ShowResult struct {
	Function string    `json:"function"`
	Examples []Example `json:"examples"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <spec>",
		Short: "Show example tests",
		Long: `Print the first public tests of a specification as calls with their
expected results.

Examples:
  fnjudge show add.spec
  fnjudge show add.spec --count 10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for random tests (overrides config)")
	cmd.Flags().IntVar(&opts.Count, "count", 0, "number of tests to show (overrides config)")

	return cmd
}

func runShow(opts *ShowOptions, specPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	cfg, logger, err := setup(opts.RootOptions, cmd)
	if err != nil {
		return f.fail(ErrorCode(err), "invalid configuration", err)
	}
	defer func() { _ = logger.Sync() }()

	count := cfg.Show.Count
	if cmd.Flags().Changed("count") {
		if opts.Count < 1 {
			return f.fail(ErrCodeGeneric, "invalid count", fmt.Errorf("--count must be positive, got %d", opts.Count))
		}
		count = opts.Count
	}

	suite, err := harness.Generate(specPath, cfg.Seed, logger)
	if err != nil {
		return f.fail(ErrorCode(err), "failed to generate tests", err)
	}

	count = min(count, len(suite.Public))
	result := ShowResult{Function: suite.Name, Examples: make([]Example, count)}
	for i, t := range suite.Public[:count] {
		result.Examples[i] = Example{
			Inputs:   value.FormatTuple(t.Inputs),
			Expected: value.Format(t.Expected),
		}
	}

	if opts.Format == "json" {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Example tests for function %s\n\n", result.Function)
	for i, ex := range result.Examples {
		fmt.Fprintf(w, "Test %d/%d: %s(%s) -> %s\n", i+1, count, result.Function, ex.Inputs, ex.Expected)
	}
	return nil
}
