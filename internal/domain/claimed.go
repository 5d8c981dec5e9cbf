package domain

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// ClaimedRoots is the ordered, append-only list of project roots
// identified during a single run. It is owned by the sweep loop and is
// not safe for concurrent use; the walk is single-threaded.
type ClaimedRoots struct {
	roots []string
}

// Add records a newly identified project root.
func (c *ClaimedRoots) Add(root string) {
	c.roots = append(c.roots, root)
}

// Len returns the number of claimed roots.
func (c *ClaimedRoots) Len() int {
	return len(c.roots)
}

// Claims reports whether path is one of the claimed roots or nested
// under one. Matching is path-component aware: /a/b does not claim /a/bc.
func (c *ClaimedRoots) Claims(path string) bool {
	return lo.SomeBy(c.roots, func(root string) bool {
		return isWithin(root, path)
	})
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}
