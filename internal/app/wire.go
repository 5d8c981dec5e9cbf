//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/venvsweep/venvsweep/internal/adapters/fs"
	"github.com/venvsweep/venvsweep/internal/adapters/interactive"
	"github.com/venvsweep/venvsweep/internal/adapters/poetry"
	"github.com/venvsweep/venvsweep/internal/adapters/progress"
	"github.com/venvsweep/venvsweep/internal/cli/render"
	"github.com/venvsweep/venvsweep/internal/config"
	"github.com/venvsweep/venvsweep/internal/domain"
	"github.com/venvsweep/venvsweep/internal/logging"
	"github.com/venvsweep/venvsweep/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, out render.Stdout, errOut render.Stderr) (*App, error) {
	wire.Build(
		config.Provider,
		logging.NewLogger,
		domain.NewByteTotal,

		// Adapters
		fs.NewDiskUsage,
		fs.NewVenvRemover,
		fs.NewPyProject,
		poetry.NewRunner,
		interactive.NewConfirmAdapter,
		progress.NewSink,
		wire.Bind(new(usecase.Sizer), new(*fs.DiskUsage)),
		wire.Bind(new(usecase.Remover), new(*fs.VenvRemover)),
		wire.Bind(new(usecase.ProjectNamer), new(*fs.PyProject)),
		wire.Bind(new(usecase.EnvTool), new(*poetry.Runner)),
		wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
		wire.Bind(new(usecase.ProgressSink), new(*progress.Sink)),

		// Renderers
		render.NewSweepRenderer,
		wire.Bind(new(usecase.Reporter), new(*render.SweepRenderer)),

		// Use cases
		usecase.NewResolver,
		usecase.NewSweep,

		// App
		NewApp,
	)
	return nil, nil
}
