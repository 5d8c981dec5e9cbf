package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/venvsweep/venvsweep/internal/usecase"
)

// Stdout is the writer for sweep results.
type Stdout io.Writer

// Stderr is the writer for warnings and summaries.
type Stderr io.Writer

var warnColor = color.New(color.FgYellow)

// SweepRenderer writes sweep output: one line per candidate on stdout,
// warnings and the summary on stderr. All sizes use decimal SI units.
// Output pauses the progress spinner so lines never interleave with it.
type SweepRenderer struct {
	out      io.Writer
	errOut   io.Writer
	progress usecase.ProgressSink
}

// NewSweepRenderer creates a new SweepRenderer.
func NewSweepRenderer(out Stdout, errOut Stderr, progress usecase.ProgressSink) *SweepRenderer {
	if progress == nil {
		progress = usecase.NopProgress{}
	}
	return &SweepRenderer{out: out, errOut: errOut, progress: progress}
}

// Found reports a virtualenv candidate in report mode.
func (r *SweepRenderer) Found(path string, size uint64) {
	r.progress.Pause()
	defer r.progress.Resume()
	fmt.Fprintf(r.out, "Found %s (%s)\n", path, humanize.Bytes(size))
}

// Deleted reports a completed deletion.
func (r *SweepRenderer) Deleted(path string, size uint64) {
	r.progress.Pause()
	defer r.progress.Resume()
	fmt.Fprintf(r.out, "Deleted %s (%s)\n", path, humanize.Bytes(size))
}

// Warning reports a project whose environment could not be assessed.
func (r *SweepRenderer) Warning(msg string) {
	r.progress.Pause()
	defer r.progress.Resume()
	warnColor.Fprintf(r.errOut, "Warning: %s\n", msg)
}

// Summary prints the final or interim byte total.
func (r *SweepRenderer) Summary(deleted bool, total uint64) {
	r.progress.Pause()
	verb := "Found"
	if deleted {
		verb = "Deleted"
	}
	fmt.Fprintf(r.errOut, "%s %s of virtualenvs\n", verb, humanize.Bytes(total))
}
