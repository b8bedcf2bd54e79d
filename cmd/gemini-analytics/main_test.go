package main

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/gemini-analytics/pkg/launcher"
	"github.com/vertti/gemini-analytics/pkg/testutil"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// useScript points the command at a directory containing script and runs
// it with sh.
func useScript(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh as the interpreter")
	}
	dir := testutil.WriteScript(t, launcher.ScriptName, script)
	useDir(t, dir, nil)
	useInterpreter(t, "sh")
}

func useDir(t *testing.T, dir string, err error) {
	t.Helper()
	old := scriptDir
	scriptDir = func() (string, error) { return dir, err }
	t.Cleanup(func() { scriptDir = old })
}

func useInterpreter(t *testing.T, name string) {
	t.Helper()
	old := interpreterName
	interpreterName = func() string { return name }
	t.Cleanup(func() { interpreterName = old })
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "gemini-analytics")
	assert.Contains(t, output, Version)
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "generate_dashboard.py")
}

func TestRejectsPositionalArgs(t *testing.T) {
	useDir(t, t.TempDir(), nil)

	output, err := executeCommand("extra")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	var exitErr *exitCodeError
	assert.False(t, errors.As(err, &exitErr), "usage errors are printed by main")
	assert.NotContains(t, output, "Launching")
}

func TestMissingTarget(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir, nil)
	useInterpreter(t, "sh")

	output, err := executeCommand()
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.ErrorIs(t, err, launcher.ErrTargetMissing)
	assert.Contains(t, output, "Error: Could not find")
	assert.Contains(t, output, launcher.ScriptName)
	assert.NotContains(t, output, "Launching")
}

func TestScriptDirError(t *testing.T) {
	useDir(t, "", errors.New("no executable"))

	_, err := executeCommand()
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "failed to locate launcher directory")
}

func TestSuccessfulLaunch(t *testing.T) {
	useScript(t, "echo dashboard written\n")

	output, err := executeCommand()
	require.NoError(t, err)
	assert.Contains(t, output, "Launching Gemini Analytics")
	assert.Contains(t, output, "dashboard written")
	assert.NotContains(t, output, "failed")
}

func TestRelaysChildExitCode(t *testing.T) {
	for _, code := range []int{1, 17, 42} {
		t.Run(fmt.Sprintf("exit %d", code), func(t *testing.T) {
			useScript(t, fmt.Sprintf("exit %d\n", code))

			output, err := executeCommand()
			require.Error(t, err)
			assert.Equal(t, code, exitCode(err))
			assert.Contains(t, output, fmt.Sprintf("Dashboard generation failed (exit code %d)", code))
		})
	}
}

func TestSpawnFailure(t *testing.T) {
	dir := testutil.WriteScript(t, launcher.ScriptName, "print('hi')\n")
	useDir(t, dir, nil)
	useInterpreter(t, "nonexistent-python-interpreter-12345")

	output, err := executeCommand()
	require.Error(t, err)
	assert.Equal(t, launcher.ExitSpawnFailed, exitCode(err))
	assert.Contains(t, output, "Failed to start Python")
	assert.Contains(t, output, "Make sure Python is installed and in your PATH.")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("boom"), 1},
		{"exit code error", &exitCodeError{code: 17}, 17},
		{"wrapped exit code error", fmt.Errorf("ctx: %w", &exitCodeError{code: 3}), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitCodeError_Message(t *testing.T) {
	assert.Equal(t, "exit status 17", (&exitCodeError{code: 17}).Error())
	assert.Equal(t, "boom", (&exitCodeError{code: 1, err: errors.New("boom")}).Error())
}
