package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/venvsweep/venvsweep/internal/config"
	"github.com/venvsweep/venvsweep/internal/domain"
)

const (
	// MarkerName identifies a directory as a Python project root.
	MarkerName = "pyproject.toml"
	// VenvDirName is the conventional in-project virtualenv directory.
	VenvDirName = ".venv"
)

// Resolver decides whether a traversal entry yields a virtualenv
// candidate. The conventional .venv subdirectory takes precedence over
// querying the external tool since it avoids a process spawn.
type Resolver struct {
	cfg   *config.RuntimeConfig
	tool  EnvTool
	names ProjectNamer
	log   *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(cfg *config.RuntimeConfig, tool EnvTool, names ProjectNamer, log *slog.Logger) *Resolver {
	return &Resolver{
		cfg:   cfg,
		tool:  tool,
		names: names,
		log:   log.With("component", "Resolver"),
	}
}

// Resolve inspects one traversal entry. Claimed roots are checked first
// so a project already identified never yields a second overlapping
// candidate unless deep mode is active. Finding a marker claims its
// parent directory even when no virtualenv can be resolved for it.
func (r *Resolver) Resolve(ctx context.Context, claimed *domain.ClaimedRoots, entry domain.TraversalEntry) domain.Resolution {
	if !r.cfg.Deep && claimed.Claims(entry.Path) {
		return domain.Skip(fmt.Sprintf("already checked parent of %s", entry.Path))
	}

	if filepath.Base(entry.Path) != MarkerName {
		return domain.Skip("not " + MarkerName)
	}

	projectRoot := filepath.Dir(entry.Path)
	claimed.Add(projectRoot)

	name := r.names.ProjectName(entry.Path)
	r.log.Debug("project root found", "path", projectRoot, "name", name)

	venv := filepath.Join(projectRoot, VenvDirName)
	if _, err := os.Stat(venv); err == nil {
		r.log.Debug("virtualenv found", "path", venv)
		return domain.Candidate(venv, name)
	}

	if !r.tool.Available() {
		return domain.Failed(fmt.Sprintf(
			"no %s directory and poetry is not installed; cannot resolve a virtualenv for %s",
			VenvDirName, projectRoot))
	}

	r.log.Debug("no conventional virtualenv, querying poetry", "root", projectRoot)
	path, err := r.tool.EnvPath(ctx, projectRoot)
	if err != nil {
		return domain.Failed(fmt.Sprintf("poetry could not report an environment for %s: %v", projectRoot, err))
	}

	r.log.Debug("virtualenv path from poetry", "path", path)
	return domain.Candidate(path, name)
}
