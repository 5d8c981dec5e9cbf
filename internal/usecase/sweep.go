package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/venvsweep/venvsweep/internal/config"
	"github.com/venvsweep/venvsweep/internal/domain"
)

// SweepResult summarizes a completed run.
type SweepResult struct {
	// Candidates is the number of virtualenvs evaluated.
	Candidates int
	// Deleted is the number of virtualenvs removed (delete mode only).
	Deleted int
	// TotalBytes is the byte total found or deleted, by mode.
	TotalBytes uint64
}

// Sweep walks a directory tree, resolves virtualenv candidates and
// drives the report-or-delete workflow. The walk is strictly
// sequential; only the byte total is shared with the interrupt handler.
type Sweep struct {
	cfg      *config.RuntimeConfig
	resolver *Resolver
	sizer    Sizer
	remover  Remover
	confirm  Confirmer
	reporter Reporter
	progress ProgressSink
	total    *domain.ByteTotal
	log      *slog.Logger
}

// NewSweep creates the sweep use case.
func NewSweep(
	cfg *config.RuntimeConfig,
	resolver *Resolver,
	sizer Sizer,
	remover Remover,
	confirm Confirmer,
	reporter Reporter,
	progress ProgressSink,
	total *domain.ByteTotal,
	log *slog.Logger,
) *Sweep {
	if progress == nil {
		progress = NopProgress{}
	}
	return &Sweep{
		cfg:      cfg,
		resolver: resolver,
		sizer:    sizer,
		remover:  remover,
		confirm:  confirm,
		reporter: reporter,
		progress: progress,
		total:    total,
		log:      log.With("component", "Sweep"),
	}
}

// Total exposes the running byte total for the interrupt handler.
func (s *Sweep) Total() *domain.ByteTotal {
	return s.total
}

// Run walks the configured root and processes every reachable entry.
// Expected conditions (vanished paths, unreadable metadata, non-marker
// entries) are skipped; resolution failures are reported as warnings;
// a failed deletion or an unanswerable confirmation aborts the run.
func (s *Sweep) Run(ctx context.Context) (*SweepResult, error) {
	root := s.cfg.Root
	s.log.Debug("walking path", "root", root, "maxDepth", s.cfg.MaxDepth, "deep", s.cfg.Deep)

	claimed := &domain.ClaimedRoots{}
	result := &SweepResult{}

	s.progress.Start(fmt.Sprintf("Scanning %s...", root))
	defer s.progress.Stop()

	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// Directories can vanish mid-walk when a virtualenv that
			// contained them was just deleted.
			s.log.Debug("skipping unreadable entry", "path", path, "error", walkErr)
			return nil
		}

		atBoundary := s.cfg.MaxDepth >= 0 && d.IsDir() && depthOf(root, path) >= s.cfg.MaxDepth

		if err := s.process(ctx, claimed, path, d, result); err != nil {
			return err
		}

		if atBoundary {
			return iofs.SkipDir
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.TotalBytes = s.total.Bytes()
	s.reporter.Summary(s.cfg.Delete, result.TotalBytes)
	return result, nil
}

func (s *Sweep) process(ctx context.Context, claimed *domain.ClaimedRoots, path string, d iofs.DirEntry, result *SweepResult) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("path no longer exists", "path", path)
		} else {
			s.log.Debug("cannot read entry metadata", "path", path, "error", err)
		}
		return nil
	}

	entry := domain.TraversalEntry{Path: path, IsDir: d.IsDir()}
	resolution := s.resolver.Resolve(ctx, claimed, entry)

	switch resolution.Outcome {
	case domain.OutcomeSkip:
		s.log.Debug("skipping entry", "path", path, "reason", resolution.Reason)
		return nil
	case domain.OutcomeFailed:
		s.reporter.Warning(resolution.Reason)
		return nil
	default:
		return s.handleCandidate(resolution, result)
	}
}

func (s *Sweep) handleCandidate(resolution domain.Resolution, result *SweepResult) error {
	venv := resolution.Venv
	size := s.sizer.SizeOnDisk(venv)
	result.Candidates++

	if !s.cfg.Delete {
		s.reporter.Found(venv, size)
		s.total.Add(size)
		return nil
	}

	approved := true
	if !s.cfg.NonInteractive {
		s.progress.Pause()
		ok, err := s.confirm.Confirm(fmt.Sprintf("Delete %s (%s)", venv, humanize.Bytes(size)))
		s.progress.Resume()
		if err != nil {
			return fmt.Errorf("failed to get confirmation for %s: %w", venv, err)
		}
		approved = ok
	}
	if !approved {
		s.log.Debug("operator declined deletion", "path", venv)
		return nil
	}

	s.log.Debug("deleting virtualenv", "path", venv)
	if err := s.remover.RemoveAll(venv); err != nil {
		return fmt.Errorf("failed to delete %s: %w", venv, err)
	}

	s.reporter.Deleted(venv, size)
	s.total.Add(size)
	result.Deleted++
	return nil
}

// depthOf returns how many levels below root the path sits; the root
// entry itself is depth 0.
func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
