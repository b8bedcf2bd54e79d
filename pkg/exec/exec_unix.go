//go:build unix

package exec

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Overridden in tests.
var foreground = inForegroundGroup

// setGracefulShutdown makes context cancellation interrupt the child
// instead of killing it outright.
func setGracefulShutdown(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGINT)
	}
}

// relaySignals keeps the launcher alive while the child runs and passes
// termination signals on to it.
//
// SIGTERM and SIGHUP are always forwarded. SIGINT is forwarded only when the
// launcher is not the terminal's foreground process group: a Ctrl+C at the
// terminal already reaches the child through the group, while a SIGINT sent
// to the launcher's PID alone would otherwise never reach it.
func relaySignals(p *os.Process) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == syscall.SIGINT && foreground() {
					continue
				}
				_ = p.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

// inForegroundGroup reports whether this process's group owns the
// controlling terminal. Without a controlling terminal it is false.
func inForegroundGroup() bool {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer func() { _ = tty.Close() }()

	pgrp, err := unix.IoctlGetInt(int(tty.Fd()), unix.TIOCGPGRP)
	if err != nil {
		return false
	}
	return pgrp == unix.Getpgrp()
}

// exitStatus follows the shell convention of 128+N for a child killed by
// signal N.
func exitStatus(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
