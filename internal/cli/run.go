package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/roach88/fnjudge/internal/engine"
	"github.com/roach88/fnjudge/internal/harness"
	"github.com/roach88/fnjudge/internal/value"
)

const (
	retryMessage  = "Try editing your code and re-running the cell."
	passedMessage = "All tests passed! Great job!"
	secretMessage = "One or more secret tests failed. Make sure you are not being too specific " +
		"in your code. The tests that failed will be similar to the previous tests shown here."
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Seed uint64

	// IDs allows overriding the run ID generator (for testing).
	// If nil, defaults to harness.UUIDv7Generator.
	IDs harness.RunIDGenerator
}

// GradeReport is the JSON payload of the run command.
type GradeReport struct {
	Function    string                `json:"function"`
	Pass        bool                  `json:"pass"`
	Public      []PublicReport        `json:"public"`
	PublicTotal int                   `json:"public_total"`
	Secret      harness.SecretSummary `json:"secret"`
}

// PublicReport is one public test as shown to the student.
type PublicReport struct {
	Index       int    `json:"index"`
	Inputs      string `json:"inputs"`
	Expected    string `json:"expected"`
	Actual      string `json:"actual"`
	Outcome     string `json:"outcome"`
	Pass        bool   `json:"pass"`
	Hint        string `json:"hint,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <spec> <candidate.go>",
		Short: "Grade a candidate function",
		Long: `Generate the tests described by a specification and grade the
function of the same name in a candidate Go source file.

Public tests run in order and stop at the first failure. Secret tests run
only when every public test passes and are reported as counts.

Exit codes:
  0 - All tests passed
  1 - A public or secret test failed
  2 - Command error (bad paths, parse errors, reference errors)

Examples:
  fnjudge run add.spec submission.go
  fnjudge run add.spec submission.go --seed 42 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for random tests (overrides config)")

	return cmd
}

func runGrade(opts *RunOptions, specPath, candidatePath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	cfg, logger, err := setup(opts.RootOptions, cmd)
	if err != nil {
		return f.fail(ErrorCode(err), "invalid configuration", err)
	}
	defer func() { _ = logger.Sync() }()

	suite, err := harness.Generate(specPath, cfg.Seed, logger)
	if err != nil {
		return f.fail(ErrorCode(err), "failed to generate tests", err)
	}

	candidate, err := harness.BindCandidate(candidatePath, suite.Name)
	if err != nil {
		code := ErrCodeCandidate
		if ErrorCode(err) == ErrCodeNotFound {
			code = ErrCodeNotFound
		}
		return f.fail(code, "failed to load candidate", err)
	}

	session := harness.NewSession(harness.SessionOptions{
		Engine: engine.New(engine.Options{Tolerance: cfg.Tolerance, Logger: logger}),
		IDs:    opts.IDs,
		Logger: logger,
	})
	result := session.Grade(suite, candidate)

	if opts.Format == "json" {
		if err := outputGradeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		renderGrade(cmd.OutOrStdout(), result, cfg.Hints.Width)
	}

	if !result.Pass {
		return NewExitError(ExitFailure, gradeFailure(result))
	}
	return nil
}

func gradeFailure(r *harness.Result) string {
	if failed := r.FailedPublic(); failed != nil {
		return fmt.Sprintf("public test %d/%d failed", failed.Index, r.PublicTotal)
	}
	return fmt.Sprintf("%d of %d secret tests failed", r.Secret.Failed, r.Secret.Total)
}

// NewGradeReport converts a result into display strings.
func NewGradeReport(r *harness.Result) GradeReport {
	report := GradeReport{
		Function:    r.Function,
		Pass:        r.Pass,
		Public:      make([]PublicReport, len(r.Public)),
		PublicTotal: r.PublicTotal,
		Secret:      r.Secret,
	}
	for i, e := range r.Public {
		report.Public[i] = PublicReport{
			Index:       e.Index,
			Inputs:      value.FormatTuple(e.Inputs),
			Expected:    value.Format(e.Expected),
			Actual:      engine.Describe(e.Output),
			Outcome:     string(e.Outcome),
			Pass:        e.Pass,
			Hint:        e.Hint,
			Fingerprint: e.Fingerprint,
		}
	}
	return report
}

func outputGradeJSON(w io.Writer, r *harness.Result) error {
	response := CLIResponse{
		Status: "ok",
		Data:   NewGradeReport(r),
		RunID:  r.RunID,
	}
	if !r.Pass {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: gradeFailure(r),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// renderGrade prints a result the way students are used to reading it.
func renderGrade(w io.Writer, r *harness.Result, width int) {
	st := newStyles(w)
	report := NewGradeReport(r)

	fmt.Fprintf(w, "Running tests on function %s\n\n", r.Function)
	for _, p := range report.Public {
		fmt.Fprintf(w, "Test %d/%d:\n", p.Index, r.PublicTotal)
		fmt.Fprintf(w, "\tinputs: %s\n", p.Inputs)
		fmt.Fprintf(w, "\texpected: %s\n", p.Expected)
		fmt.Fprintf(w, "\tactual: %s\n", p.Actual)
		fmt.Fprintf(w, "\tresult: %s\n", st.result(p.Pass))
		if p.Hint != "" {
			fmt.Fprintf(w, "\thint: %s\n", wrapHint(p.Hint, width))
		}
	}
	fmt.Fprintln(w)

	if !r.Secret.Attempted {
		fmt.Fprintln(w, retryMessage)
		return
	}

	fmt.Fprintf(w, "Running %d secret tests...\n\n", r.Secret.Total)
	fmt.Fprintf(w, "Secret tests: %d passed, %d failed\n\n", r.Secret.Passed, r.Secret.Failed)
	if r.Pass {
		fmt.Fprintln(w, st.pass.Render(passedMessage))
		return
	}
	fmt.Fprintln(w, wordwrap.WrapString(secretMessage, uint(width)))
	for _, fp := range r.Secret.Failing {
		fmt.Fprintf(w, "%s\n", st.muted.Render("  failed: "+value.ShortID(fp)))
	}
}

// wrapHint wraps a hint at width and indents continuation lines under the
// first one.
func wrapHint(hint string, width int) string {
	lines := strings.Split(wordwrap.WrapString(hint, uint(width)), "\n")
	return strings.Join(lines, "\n\t"+strings.Repeat(" ", len("hint: ")))
}
