package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fnjudge/internal/value"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
seed: 42
tolerance:
  relative: 1e-6
hints:
  width: 72
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, value.Tolerance{Relative: 1e-6}, cfg.Tolerance)
	assert.Equal(t, 72, cfg.Hints.Width)
	assert.Equal(t, 5, cfg.Show.Count)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantPath string
		wantMsg  string
	}{
		{
			name:    "unknown field",
			content: "seeds: 1\n",
			wantMsg: "seeds",
		},
		{
			name:     "bad level",
			content:  "log:\n  level: loud\n",
			wantPath: "log.level",
		},
		{
			name:     "narrow hints",
			content:  "hints:\n  width: 5\n",
			wantPath: "hints.width",
		},
		{
			name:     "zero count",
			content:  "show:\n  count: 0\n",
			wantPath: "show.count",
		},
		{
			name:     "negative tolerance",
			content:  "tolerance:\n  absolute: -1\n",
			wantPath: "tolerance.absolute",
		},
		{
			name:     "relative tolerance too large",
			content:  "tolerance:\n  relative: 2\n",
			wantPath: "tolerance.relative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			require.Error(t, err)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "want *ConfigError, got %T", err)
			assert.Equal(t, tt.wantPath, cerr.Path)
			assert.Contains(t, cerr.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnjudge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigErrorMessage(t *testing.T) {
	assert.Equal(t, "config: a.b: bad", (&ConfigError{Path: "a.b", Message: "bad"}).Error())
	assert.Equal(t, "config: bad", (&ConfigError{Message: "bad"}).Error())
}
