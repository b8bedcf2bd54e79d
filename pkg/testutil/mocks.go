package testutil

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vertti/gemini-analytics/pkg/exec"
)

// MockRunner is a test double for exec.Runner that records its calls.
type MockRunner struct {
	RunFunc func(ctx context.Context, name string, args []string, stdio exec.Stdio) (int, error)

	mu    sync.Mutex
	calls []RunCall
}

// RunCall captures the arguments of one Run invocation.
type RunCall struct {
	Name string
	Args []string
}

func (m *MockRunner) Run(ctx context.Context, name string, args []string, stdio exec.Stdio) (int, error) {
	m.mu.Lock()
	m.calls = append(m.calls, RunCall{Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args, stdio)
	}
	return 0, nil
}

// Calls returns the recorded invocations.
func (m *MockRunner) Calls() []RunCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RunCall(nil), m.calls...)
}

// MockFileSystem is a test double for launcher.FileSystem.
type MockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// MockFileInfo is a test double for fs.FileInfo.
type MockFileInfo struct {
	NameValue  string
	SizeValue  int64
	ModeValue  fs.FileMode
	IsDirValue bool
}

func (m *MockFileInfo) Name() string       { return m.NameValue }
func (m *MockFileInfo) Size() int64        { return m.SizeValue }
func (m *MockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *MockFileInfo) Sys() interface{}   { return nil }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }

// WriteScript writes content as name in a fresh temp directory and returns
// the directory.
func WriteScript(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return dir
}
