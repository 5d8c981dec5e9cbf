package usecase

import "context"

// EnvTool queries an external dependency manager for the virtualenv it
// manages on behalf of a project.
type EnvTool interface {
	// Available reports whether the tool can be found on the system.
	Available() bool
	// EnvPath returns the managed environment path for projectRoot.
	EnvPath(ctx context.Context, projectRoot string) (string, error)
}

// Sizer computes recursive disk usage of a directory.
type Sizer interface {
	SizeOnDisk(path string) uint64
}

// Remover deletes a directory tree.
type Remover interface {
	RemoveAll(path string) error
}

// Confirmer asks the operator a yes/no question. A returned error means
// no answer could be obtained at all; callers treat that as fatal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ProjectNamer extracts a display name from a project marker file.
type ProjectNamer interface {
	ProjectName(markerPath string) string
}

// Reporter receives user-facing sweep output.
type Reporter interface {
	Found(path string, size uint64)
	Deleted(path string, size uint64)
	Warning(msg string)
	Summary(deleted bool, total uint64)
}

// ProgressSink receives liveness updates while the walk runs. Pause and
// Resume bracket any other terminal output.
type ProgressSink interface {
	Start(message string)
	Pause()
	Resume()
	Stop()
}

// NopProgress is a no-op implementation of ProgressSink.
type NopProgress struct{}

func (NopProgress) Start(string) {}
func (NopProgress) Pause()       {}
func (NopProgress) Resume()      {}
func (NopProgress) Stop()        {}
