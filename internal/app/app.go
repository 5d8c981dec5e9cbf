package app

import (
	"log/slog"

	"github.com/venvsweep/venvsweep/internal/cli/render"
	"github.com/venvsweep/venvsweep/internal/config"
	"github.com/venvsweep/venvsweep/internal/domain"
	"github.com/venvsweep/venvsweep/internal/usecase"
)

// App is the main application container.
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Log *slog.Logger

	// Total is the running byte count, shared with the interrupt handler.
	Total *domain.ByteTotal

	// Use cases
	Sweep *usecase.Sweep

	// Renderers
	Renderer *render.SweepRenderer
}

// NewApp creates a new application instance.
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	total *domain.ByteTotal,
	sweep *usecase.Sweep,
	renderer *render.SweepRenderer,
) (*App, error) {
	return &App{
		Config:   cfg,
		Log:      log,
		Total:    total,
		Sweep:    sweep,
		Renderer: renderer,
	}, nil
}
