package fs

import (
	"fmt"
	"log/slog"
	"os"
)

// VenvRemover deletes virtualenv directories recursively.
type VenvRemover struct {
	log *slog.Logger
}

// NewVenvRemover creates a new VenvRemover.
func NewVenvRemover(log *slog.Logger) *VenvRemover {
	return &VenvRemover{log: log.With("component", "VenvRemover")}
}

// RemoveAll removes path and everything below it. Failures here are
// unrecoverable environment problems, not scan errors; callers abort.
func (r *VenvRemover) RemoveAll(path string) error {
	r.log.Debug("removing directory tree", "path", path)
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
