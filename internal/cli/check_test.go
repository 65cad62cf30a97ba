package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "testdata/add.spec")
	require.NoError(t, err)
	assert.Equal(t, "✓ add: 8 public tests, 5 secret tests\n", out)
}

func TestCheckJSON(t *testing.T) {
	out, err := execute(t, "check", "testdata/add.spec", "--seed", "9", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, CheckResult{Function: "add", Public: 8, Secret: 5, Seed: 9}, resp.Data)
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr string
	}{
		{name: "parse error", spec: "testdata/broken.spec", wantErr: "line 4"},
		{name: "reference raises", spec: "testdata/raising.spec", wantErr: "reference raised"},
		{name: "missing", spec: "testdata/nope.spec", wantErr: "open spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "check", tt.spec)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), "specification check failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
