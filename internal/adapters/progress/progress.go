package progress

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/venvsweep/venvsweep/internal/config"
)

// Sink renders liveness feedback to stderr while the walk runs. The
// spinner is active only for interactive report-mode runs without debug
// logging, so it never interleaves with prompts or diagnostics.
type Sink struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	enabled bool
}

// NewSink creates a progress sink for the given configuration.
func NewSink(cfg *config.RuntimeConfig) *Sink {
	return &Sink{enabled: !cfg.Debug && !cfg.NonInteractive && !cfg.Delete}
}

// Start begins spinning with the given message.
func (s *Sink) Start(message string) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " " + message
	_ = sp.Color("cyan", "bold")
	sp.Start()
	s.spinner = sp
}

// Pause stops the spinner so other output can be written cleanly.
func (s *Sink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spinner != nil {
		s.spinner.Stop()
	}
}

// Resume restarts the spinner after a Pause.
func (s *Sink) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spinner != nil {
		s.spinner.Start()
	}
}

// Stop ends progress reporting for good.
func (s *Sink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spinner != nil {
		s.spinner.Stop()
		s.spinner = nil
	}
}
