// Package launcher locates the dashboard script next to the binary and runs
// it under the platform's Python interpreter.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vertti/gemini-analytics/pkg/exec"
	"github.com/vertti/gemini-analytics/pkg/output"
)

const (
	// ScriptName is the script expected alongside the launcher.
	ScriptName = "generate_dashboard.py"
	// ProductName appears in the launch banner.
	ProductName = "Gemini Analytics"
)

// ErrTargetMissing is returned when the script does not exist.
var ErrTargetMissing = errors.New("target script not found")

// Launcher runs ScriptName from Dir with Interpreter.
type Launcher struct {
	Dir         string     // directory containing ScriptName
	Interpreter string     // command name, see package interpreter
	FS          FileSystem // injected for testing
	Runner      exec.Runner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// TargetPath returns the path of the script to run.
func (l *Launcher) TargetPath() string {
	return filepath.Join(l.Dir, ScriptName)
}

// Launch verifies the script exists, runs it and reports the outcome on
// the launcher's streams. The child's exit code becomes Result.ExitCode.
func (l *Launcher) Launch(ctx context.Context) Result {
	result := Result{Target: l.TargetPath()}

	if err := l.checkTarget(result.Target); err != nil {
		output.Errorf(l.Stderr, "Error: Could not find %s", result.Target)
		result.ExitCode = ExitTargetMissing
		result.Err = err
		return result
	}

	output.Statusf(l.Stdout, "🚀 Launching %s...", ProductName)

	code, err := l.Runner.Run(ctx, l.Interpreter, []string{result.Target}, exec.Stdio{
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	})
	if err != nil {
		var spawnErr *exec.SpawnError
		if errors.As(err, &spawnErr) {
			output.Errorf(l.Stderr, "Failed to start Python: %v", err)
			output.Hintf(l.Stdout, "Make sure Python is installed and in your PATH.")
			result.ExitCode = ExitSpawnFailed
		} else {
			output.Errorf(l.Stderr, "Error running Python: %v", err)
			result.ExitCode = ExitRunFailed
		}
		result.Err = err
		return result
	}

	if code != 0 {
		output.Errorf(l.Stdout, "❌ Dashboard generation failed (exit code %d)", code)
	}
	result.ExitCode = code
	return result
}

func (l *Launcher) checkTarget(path string) error {
	info, err := l.FS.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTargetMissing, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrTargetMissing, path)
	}
	return nil
}
