package spec

import (
	"bufio"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"
)

const (
	marker        = "*"
	escape        = `\`
	commentPrefix = "##"
)

// legacyDirectives maps the old one-word input directives onto *in kinds.
var legacyDirectives = map[string]string{
	"inpublic":       KindPlain,
	"insecret":       KindSecretPlain,
	"inrandom":       KindRandom,
	"insecretrandom": KindSecretRandom,
}

// Document is a parsed specification.
type Document struct {
	// Name is the function under test.
	Name string

	// Source is the reference implementation.
	Source string

	// Inputs are the input specifications in document order.
	Inputs []InputSpec
}

// Secret reports whether the document has any secret input specification.
func (d *Document) Secret() bool {
	for _, in := range d.Inputs {
		if in.IsSecret() {
			return true
		}
	}
	return false
}

type mode int

const (
	modeNone mode = iota
	modeName
	modeCode
	modeIn
)

type parseState struct {
	doc      *Document
	mode     mode
	sawName  bool
	code     []string
	current  InputSpec
	lastLine int
}

// ParseFile parses the specification at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spec: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses a specification held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a whole specification. On error no document is returned.
func Parse(r io.Reader) (*Document, error) {
	st := &parseState{doc: &Document{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := st.line(sc.Text(), lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	st.lastLine = lineNo

	return st.finish()
}

func (st *parseState) line(raw string, lineNo int) error {
	text := strings.TrimRight(raw, " \t\r")

	switch {
	case strings.HasPrefix(text, commentPrefix):
		return nil
	case strings.HasPrefix(text, escape+marker):
		return st.data(text[len(escape):], lineNo)
	case strings.HasPrefix(text, marker):
		return st.directive(text[len(marker):], lineNo)
	case text == "":
		if st.mode == modeCode {
			st.code = append(st.code, "")
		}
		return nil
	}
	return st.data(text, lineNo)
}

func (st *parseState) directive(text string, lineNo int) error {
	word, params, _ := strings.Cut(strings.TrimSpace(text), " ")
	word = strings.ToLower(word)
	params = strings.TrimSpace(params)

	if kind, ok := legacyDirectives[word]; ok {
		return st.startInput(kind, params, lineNo)
	}

	switch word {
	case "name":
		if params != "" {
			return parseErrorf(lineNo, ErrCodeBadParameter, "*name takes no parameters")
		}
		if st.sawName {
			return parseErrorf(lineNo, ErrCodeDuplicateName, "second *name directive")
		}
		st.sawName = true
		st.mode = modeName
		return nil

	case "code":
		if params != "" {
			return parseErrorf(lineNo, ErrCodeBadParameter, "*code takes no parameters")
		}
		st.mode = modeCode
		return nil

	case "in":
		kind, rest, _ := strings.Cut(params, " ")
		if kind == "" {
			return parseErrorf(lineNo, ErrCodeBadParameter, "*in needs an input kind")
		}
		return st.startInput(strings.ToLower(kind), strings.TrimSpace(rest), lineNo)
	}

	return parseErrorf(lineNo, ErrCodeUnknownMode, "unknown directive %q", marker+word)
}

func (st *parseState) startInput(kind, params string, lineNo int) error {
	in, err := newInputSpec(kind, params, lineNo)
	if err != nil {
		return err
	}
	st.doc.Inputs = append(st.doc.Inputs, in)
	st.current = in
	st.mode = modeIn
	return nil
}

func (st *parseState) data(text string, lineNo int) error {
	switch st.mode {
	case modeName:
		if st.doc.Name != "" {
			return parseErrorf(lineNo, ErrCodeDuplicateName, "function already named %q", st.doc.Name)
		}
		name := strings.TrimSpace(text)
		if !token.IsIdentifier(name) {
			return parseErrorf(lineNo, ErrCodeBadName, "%q is not a Go identifier", name)
		}
		st.doc.Name = name
		return nil

	case modeCode:
		st.code = append(st.code, text)
		return nil

	case modeIn:
		return st.current.ClassifyLine(text, lineNo)
	}

	return parseErrorf(lineNo, ErrCodeDataBeforeDirective, "data line before any directive")
}

func (st *parseState) finish() (*Document, error) {
	if st.doc.Name == "" {
		return nil, parseErrorf(st.lastLine, ErrCodeMissingName, "no function name given (*name)")
	}

	source := strings.Trim(strings.Join(st.code, "\n"), "\n")
	if strings.TrimSpace(source) == "" {
		return nil, parseErrorf(st.lastLine, ErrCodeMissingCode, "no reference code given (*code)")
	}
	st.doc.Source = source

	return st.doc, nil
}
