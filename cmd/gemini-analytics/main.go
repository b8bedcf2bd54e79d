package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/gemini-analytics/pkg/exec"
	"github.com/vertti/gemini-analytics/pkg/interpreter"
	"github.com/vertti/gemini-analytics/pkg/launcher"
)

// Version is set at build time via ldflags
var Version = "dev"

// Overridden in tests.
var (
	scriptDir       = launcher.ExecutableDir
	interpreterName = interpreter.Default
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:           "gemini-analytics",
	Short:         "Generate the Gemini Analytics dashboard",
	Long:          "Runs generate_dashboard.py from the install directory with the platform's Python 3 interpreter.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLaunch,
}

// exitCodeError carries a status for main to exit with. The launcher has
// already printed its own diagnostics by the time one is returned.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

func runLaunch(cmd *cobra.Command, args []string) error {
	dir, err := scriptDir()
	if err != nil {
		return fmt.Errorf("failed to locate launcher directory: %w", err)
	}

	l := &launcher.Launcher{
		Dir:         dir,
		Interpreter: interpreterName(),
		FS:          &launcher.RealFileSystem{},
		Runner:      &exec.RealRunner{},
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}

	result := l.Launch(cmd.Context())
	if !result.OK() {
		return &exitCodeError{code: result.ExitCode, err: result.Err}
	}
	return nil
}
