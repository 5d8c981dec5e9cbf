package fs

import (
	iofs "io/fs"
	"log/slog"
	"path/filepath"
)

// DiskUsage computes recursive directory sizes.
type DiskUsage struct {
	log *slog.Logger
}

// NewDiskUsage creates a new DiskUsage calculator.
func NewDiskUsage(log *slog.Logger) *DiskUsage {
	return &DiskUsage{log: log.With("component", "DiskUsage")}
}

// SizeOnDisk sums the sizes of all regular files under path, at any
// depth. Directories and special files contribute zero. Entries that
// cannot be traversed or whose metadata cannot be read are skipped; the
// tree may be concurrently modified or already partially removed, so
// the measurement degrades gracefully instead of failing.
func (d *DiskUsage) SizeOnDisk(path string) uint64 {
	var total uint64
	_ = filepath.WalkDir(path, func(p string, entry iofs.DirEntry, err error) error {
		if err != nil {
			d.log.Debug("skipping unreadable entry while sizing", "path", p, "error", err)
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			d.log.Debug("cannot read file metadata while sizing", "path", p, "error", err)
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	return total
}
