package spec

import (
	"fmt"
	"go/parser"
	"strconv"
	"strings"

	"github.com/roach88/fnjudge/internal/testcase"
)

// Input kinds accepted by *in.
const (
	KindPlain        = "plain"
	KindSecretPlain  = "secret_plain"
	KindRandom       = "random"
	KindSecretRandom = "secret_random"
	KindRange        = "range"
	KindSecretRange  = "secret_range"
)

// InputSpec is one *in block: a strategy plus the case specs classified from
// its data lines, in order.
type InputSpec interface {
	// Kind returns the *in kind without the secret_ prefix.
	Kind() string

	// IsSecret reports whether generated tests are secret.
	IsSecret() bool

	// Line returns the line of the *in directive.
	Line() int

	// Cases returns the classified case specs in data line order.
	Cases() []testcase.CaseSpec

	// ClassifyLine turns one data line into a case spec and appends it.
	ClassifyLine(line string, lineNo int) error

	caseLine(i int) int
}

type block struct {
	Secret    bool
	LineNo    int
	CaseSpecs []testcase.CaseSpec
	caseLines []int
}

func (b *block) IsSecret() bool { return b.Secret }

func (b *block) Line() int { return b.LineNo }

func (b *block) Cases() []testcase.CaseSpec { return b.CaseSpecs }

func (b *block) caseLine(i int) int { return b.caseLines[i] }

func (b *block) add(c testcase.CaseSpec, lineNo int) {
	b.CaseSpecs = append(b.CaseSpecs, c)
	b.caseLines = append(b.caseLines, lineNo)
}

// Plain holds fixed input tuples, one per data line, converted by column.
type Plain struct {
	block
	Converters []Converter
}

// Kind implements InputSpec.
func (p *Plain) Kind() string { return KindPlain }

// ClassifyLine parses "v1; v2 : hint".
func (p *Plain) ClassifyLine(line string, lineNo int) error {
	values, hint, _ := strings.Cut(line, " : ")
	parts := strings.Split(values, ";")
	if len(parts) != len(p.Converters) {
		return parseErrorf(lineNo, ErrCodeBadData, "want %d values, got %d", len(p.Converters), len(parts))
	}

	inputs := make([]any, len(parts))
	for i, part := range parts {
		v, err := p.Converters[i].Convert(strings.TrimSpace(part))
		if err != nil {
			return parseErrorf(lineNo, ErrCodeBadData, "value %d (%s): %v", i+1, p.Converters[i].Name, err)
		}
		inputs[i] = v
	}

	p.add(&testcase.PlainCase{Inputs: inputs, Hint: strings.TrimSpace(hint)}, lineNo)
	return nil
}

// Random draws Draws tuples per data line from Go expressions.
type Random struct {
	block
	Draws int
}

// Kind implements InputSpec.
func (r *Random) Kind() string { return KindRandom }

// ClassifyLine parses "expr; expr".
func (r *Random) ClassifyLine(line string, lineNo int) error {
	cols, err := parseColumns(line, lineNo)
	if err != nil {
		return err
	}
	r.add(&testcase.RandomCase{Columns: cols, Repeats: r.Draws}, lineNo)
	return nil
}

// Range produces the cartesian product of per-column domains.
type Range struct {
	block
}

// Kind implements InputSpec.
func (r *Range) Kind() string { return KindRange }

// ClassifyLine parses "expr; expr".
func (r *Range) ClassifyLine(line string, lineNo int) error {
	cols, err := parseColumns(line, lineNo)
	if err != nil {
		return err
	}
	r.add(&testcase.RangeCase{Columns: cols}, lineNo)
	return nil
}

// newInputSpec builds the InputSpec for an *in directive.
func newInputSpec(kind, params string, lineNo int) (InputSpec, error) {
	secret := strings.HasPrefix(kind, "secret_")
	b := block{Secret: secret, LineNo: lineNo}

	switch strings.TrimPrefix(kind, "secret_") {
	case KindPlain:
		convs, err := parseConverters(params, lineNo)
		if err != nil {
			return nil, err
		}
		return &Plain{block: b, Converters: convs}, nil

	case KindRandom:
		draws := 1
		if params != "" {
			n, err := strconv.Atoi(params)
			if err != nil || n < 1 {
				return nil, parseErrorf(lineNo, ErrCodeBadParameter, "draw count %q is not a positive integer", params)
			}
			draws = n
		}
		return &Random{block: b, Draws: draws}, nil

	case KindRange:
		if params != "" {
			return nil, parseErrorf(lineNo, ErrCodeBadParameter, "range takes no parameters, got %q", params)
		}
		return &Range{block: b}, nil
	}

	return nil, parseErrorf(lineNo, ErrCodeUnknownKind, "unknown input kind %q", kind)
}

func parseConverters(params string, lineNo int) ([]Converter, error) {
	if params == "" {
		return nil, parseErrorf(lineNo, ErrCodeBadParameter, "plain input needs at least one type")
	}
	names := strings.Split(params, ";")
	convs := make([]Converter, len(names))
	for i, name := range names {
		c, ok := LookupConverter(name)
		if !ok {
			return nil, parseErrorf(lineNo, ErrCodeBadParameter, "unknown type %q", strings.TrimSpace(name))
		}
		convs[i] = c
	}
	return convs, nil
}

// parseColumns splits a line of Go expressions and syntax checks each one.
func parseColumns(line string, lineNo int) ([]string, error) {
	cols := splitColumns(line)
	for i, col := range cols {
		if col == "" {
			return nil, parseErrorf(lineNo, ErrCodeBadData, "column %d is empty", i+1)
		}
		if _, err := parser.ParseExpr(col); err != nil {
			return nil, parseErrorf(lineNo, ErrCodeBadData, "column %d: %v", i+1, err)
		}
	}
	return cols, nil
}

// splitColumns splits on semicolons outside string literals, rune literals
// and brackets.
func splitColumns(line string) []string {
	var (
		cols  []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch {
			case c == '\\' && quote != '`':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				cols = append(cols, strings.TrimSpace(line[start:i]))
				start = i + 1
			}
		}
	}
	return append(cols, strings.TrimSpace(line[start:]))
}

// describe returns a short label such as "secret_random 5".
func describe(in InputSpec) string {
	kind := in.Kind()
	if in.IsSecret() {
		kind = "secret_" + kind
	}
	if r, ok := in.(*Random); ok {
		return fmt.Sprintf("%s %d", kind, r.Draws)
	}
	return kind
}
