// Package interpreter picks the Python command name for the host platform.
package interpreter

import "runtime"

const (
	// Windows is the command name used on the Windows family.
	Windows = "python"
	// Unix is the command name used everywhere else.
	Unix = "python3"
)

// ForOS returns the interpreter command name for a GOOS value.
func ForOS(goos string) string {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// Default returns the interpreter command name for the running platform.
func Default() string {
	return ForOS(runtime.GOOS)
}
