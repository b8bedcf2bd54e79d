//go:build windows

package exec

import (
	"os"
	"os/exec"
	"os/signal"
)

// setGracefulShutdown is a no-op on Windows; cmd.Cancel defaults to
// os.Process.Kill.
func setGracefulShutdown(_ *exec.Cmd) {}

// relaySignals swallows Ctrl+C while the child runs. The console delivers
// the event to every attached process, so the child sees it anyway.
func relaySignals(_ *os.Process) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	return func() {
		signal.Stop(sigCh)
	}
}

func exitStatus(err *exec.ExitError) int {
	return err.ExitCode()
}
