package fs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDiskUsage(t *testing.T) {
	du := NewDiskUsage(testLogger())

	t.Run("empty directory is zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), du.SizeOnDisk(t.TempDir()))
	})

	t.Run("sums regular files at all depths", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib", "site-packages"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), make([]byte, 120), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "a.py"), make([]byte, 3000), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "site-packages", "b.py"), make([]byte, 77), 0o644))

		assert.Equal(t, uint64(120+3000+77), du.SizeOnDisk(dir))
	})

	t.Run("symlinks contribute nothing", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "real"), make([]byte, 500), 0o644))
		require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

		assert.Equal(t, uint64(500), du.SizeOnDisk(dir))
	})

	t.Run("missing path is zero, not an error", func(t *testing.T) {
		assert.Equal(t, uint64(0), du.SizeOnDisk(filepath.Join(t.TempDir(), "gone")))
	})

	t.Run("unreadable entries are skipped", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("running as root, permissions are not enforced")
		}

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "readable"), make([]byte, 800), 0o644))
		locked := filepath.Join(dir, "locked")
		require.NoError(t, os.MkdirAll(locked, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(locked, "hidden"), make([]byte, 9999), 0o644))
		require.NoError(t, os.Chmod(locked, 0o000))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

		assert.Equal(t, uint64(800), du.SizeOnDisk(dir))
	})
}
