package launcher

// Exit codes used when the launcher itself, rather than the child, decides
// the outcome.
const (
	ExitTargetMissing = 1
	ExitSpawnFailed   = 127
	ExitRunFailed     = 1
)

// Result holds the outcome of a single launch.
type Result struct {
	Target   string // absolute path of the script handed to the interpreter
	ExitCode int    // status the launcher should exit with
	Err      error  // ErrTargetMissing, an *exec.SpawnError, a wait failure, or nil
}

// OK returns true if the script ran and exited with status 0.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}
