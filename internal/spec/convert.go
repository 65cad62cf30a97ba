package spec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Converter turns one textual plain value into a Go value.
type Converter struct {
	Name    string
	Convert func(s string) (any, error)
}

var converters = map[string]Converter{}

func register(c Converter, aliases ...string) {
	for _, a := range append([]string{c.Name}, aliases...) {
		converters[a] = c
	}
}

func init() {
	register(Converter{Name: "int", Convert: convertInt}, "integer")
	register(Converter{Name: "float", Convert: convertFloat}, "real")
	register(Converter{Name: "str", Convert: convertString}, "string", "text")
	register(Converter{Name: "bool", Convert: convertBool}, "boolean")
	register(Converter{Name: "[]int", Convert: convertSeq[int]}, "[]integer")
	register(Converter{Name: "[]float", Convert: convertSeq[float64]}, "[]real")
	register(Converter{Name: "[]str", Convert: convertSeq[string]}, "[]string", "[]text")
	register(Converter{Name: "[]bool", Convert: convertSeq[bool]}, "[]boolean")
}

// LookupConverter finds a converter by case-insensitive name.
func LookupConverter(name string) (Converter, bool) {
	c, ok := converters[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

func convertInt(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

func convertFloat(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// convertString unquotes Go string literals and keeps anything else as is.
func convertString(s string) (any, error) {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '`') {
		if u, err := strconv.Unquote(s); err == nil {
			return u, nil
		}
	}
	return s, nil
}

func convertBool(s string) (any, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}

// convertSeq decodes a YAML flow sequence such as [1, 2, 3]. Each element
// must carry a tag that fits T, so 1.5 is never truncated into an int.
func convertSeq[T any](s string) (any, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%q is not a [...] sequence", s)
	}
	var nodes []yaml.Node
	if err := yaml.Unmarshal([]byte(s), &nodes); err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}

	tags := elementTags[T]()
	out := make([]T, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if n.Kind != yaml.ScalarNode || (tags != nil && !slices.Contains(tags, n.ShortTag())) {
			return nil, fmt.Errorf("%q: element %d (%s) is not a %s", s, i+1, n.Value, elementName[T]())
		}
		var v T
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%q: element %d: %w", s, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// elementTags lists the YAML tags accepted for T. Strings take any scalar.
func elementTags[T any]() []string {
	var zero T
	switch any(zero).(type) {
	case int:
		return []string{"!!int"}
	case float64:
		return []string{"!!int", "!!float"}
	case bool:
		return []string{"!!bool"}
	}
	return nil
}

func elementName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "integer"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}
	return "string"
}
