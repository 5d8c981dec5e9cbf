package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEnvTool is a test double for the external dependency manager.
type fakeEnvTool struct {
	available bool
	path      string
	err       error
	calls     []string
}

func (f *fakeEnvTool) Available() bool { return f.available }

func (f *fakeEnvTool) EnvPath(ctx context.Context, projectRoot string) (string, error) {
	f.calls = append(f.calls, projectRoot)
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

// fakeConfirmer records prompts and answers them all the same way.
type fakeConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (f *fakeConfirmer) Confirm(prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type summaryRecord struct {
	deleted bool
	total   uint64
}

// recordingReporter captures all user-facing output.
type recordingReporter struct {
	found     []string
	deleted   []string
	warnings  []string
	summaries []summaryRecord
}

func (r *recordingReporter) Found(path string, size uint64)   { r.found = append(r.found, path) }
func (r *recordingReporter) Deleted(path string, size uint64) { r.deleted = append(r.deleted, path) }
func (r *recordingReporter) Warning(msg string)               { r.warnings = append(r.warnings, msg) }
func (r *recordingReporter) Summary(deleted bool, total uint64) {
	r.summaries = append(r.summaries, summaryRecord{deleted: deleted, total: total})
}

// writeProject creates a project root with a pyproject.toml marker and,
// when venvFileSizes is not empty, a .venv directory holding files of
// the given sizes. It returns the virtualenv path and the byte total.
func writeProject(t *testing.T, dir string, venvFileSizes ...int) (string, uint64) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	marker := "[project]\nname = \"demo\"\nversion = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(marker), 0o644))

	if len(venvFileSizes) == 0 {
		return "", 0
	}

	venv := filepath.Join(dir, ".venv")
	require.NoError(t, os.MkdirAll(filepath.Join(venv, "lib"), 0o755))

	var total uint64
	for i, size := range venvFileSizes {
		name := filepath.Join(venv, "lib", "f"+string(rune('a'+i)))
		require.NoError(t, os.WriteFile(name, make([]byte, size), 0o644))
		total += uint64(size)
	}
	return venv, total
}
