// Package config loads the grader configuration.
//
// The file is YAML. Unknown fields are rejected, missing fields take their
// defaults, and the result is validated against an embedded CUE schema:
//
//	seed: 42
//	tolerance:
//	  relative: 1e-6
//	hints:
//	  width: 72
//	log:
//	  level: debug
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/fnjudge/internal/value"
)

//go:embed schema.cue
var schemaSource []byte

// Config is the grader configuration.
type Config struct {
	// Seed seeds the draw helpers used for random tests.
	Seed      uint64          `yaml:"seed" json:"seed"`
	Tolerance value.Tolerance `yaml:"tolerance" json:"tolerance"`
	Hints     Hints           `yaml:"hints" json:"hints"`
	Show      Show            `yaml:"show" json:"show"`
	Log       Log             `yaml:"log" json:"log"`
}

// Hints controls hint rendering.
type Hints struct {
	// Width is the column hints are wrapped at.
	Width int `yaml:"width" json:"width"`
}

// Show controls the show command.
type Show struct {
	// Count is how many public tests are listed.
	Count int `yaml:"count" json:"count"`
}

// Log controls logging.
type Log struct {
	Level string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tolerance: value.DefaultTolerance,
		Hints:     Hints{Width: 60},
		Show:      Show{Count: 5},
		Log:       Log{Level: "warn"},
	}
}

// ConfigError reports an invalid configuration.
type ConfigError struct {
	// Path is the dotted path of the offending field, empty when the file
	// as a whole is at fault.
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config: %s: %s", e.Path, e.Message)
	}
	return "config: " + e.Message
}

// Load reads the configuration file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a configuration. Fields absent from r keep
// their defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, &ConfigError{Message: err.Error()}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the #Config schema. The first violation is
// returned as a *ConfigError.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := def.Unify(ctx.Encode(cfg))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError keeps the first CUE error and its path.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ConfigError{Message: err.Error()}
	}

	first := errs[0]
	path := first.Path()
	if len(path) > 0 && path[0] == "#Config" {
		path = path[1:]
	}
	format, args := first.Msg()
	return &ConfigError{
		Path:    strings.Join(path, "."),
		Message: fmt.Sprintf(format, args...),
	}
}
