// Package exec starts a child process attached to the caller's terminal
// streams and reports how it ended.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Stdio holds the streams handed to the child. *os.File values are
// inherited directly as file descriptors; any other reader or writer is
// copied through unmodified.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner starts a command and waits for it to exit.
type Runner interface {
	// Run returns the child's exit code once it terminates. A non-nil error
	// means the child could not be started or waited on; the exit code is
	// then meaningless.
	Run(ctx context.Context, name string, args []string, stdio Stdio) (int, error)
}

// SpawnError reports that a command could not be started at all,
// typically because it is not installed or not in PATH.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	// exec.Error already names the command.
	var execErr *exec.Error
	if errors.As(e.Err, &execErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// RealRunner is the production implementation.
type RealRunner struct{}

// Run starts name directly, without a shell in between, so arguments
// reach the child exactly as given.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, stdio Stdio) (int, error) {
	// #nosec G204 -- the command is chosen by the launcher, not by user input.
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	setGracefulShutdown(cmd)

	if err := cmd.Start(); err != nil {
		return -1, &SpawnError{Name: name, Err: err}
	}

	stop := relaySignals(cmd.Process)
	defer stop()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr), nil
	}
	return -1, fmt.Errorf("waiting for %s: %w", name, err)
}
