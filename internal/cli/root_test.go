package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "fnjudge", cmd.Use)
	assert.Contains(t, cmd.Long, "reference implementation")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"run", "show", "check", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestSeedFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"run", "show", "check"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.NotNil(t, sub.Flags().Lookup("seed"), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "check", "testdata/add.spec", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSetupConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("seed: 11\nhints:\n  width: 40\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o644))

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().Uint64("seed", 0, "")
		return cmd
	}

	cfg, logger, err := setup(&RootOptions{Config: good}, newCmd())
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, uint64(11), cfg.Seed)
	assert.Equal(t, 40, cfg.Hints.Width)

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("seed", "3"))
	cfg, _, err = setup(&RootOptions{Config: good}, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Seed)

	_, _, err = setup(&RootOptions{Config: bad}, newCmd())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ErrCodeConfig, ErrorCode(err))
}
