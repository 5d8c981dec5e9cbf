package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/venvsweep/venvsweep/internal/app"
	"github.com/venvsweep/venvsweep/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Running it without a subcommand
// performs the sweep itself.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "venvsweep [path]",
		Short: "Find and clean Python virtualenvs under a directory tree",
		Long: `venvsweep walks a directory tree looking for Python project roots
(directories holding a pyproject.toml), resolves each project's
virtualenv (the conventional .venv directory, or the environment poetry
manages for it) and reports its disk usage. With --delete the
virtualenvs are removed after per-candidate confirmation.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)
			if len(args) > 0 {
				v.Set("root", args[0])
			}

			appInstance, err := app.InitApp(v, os.Stdout, os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			installInterruptHandler(a)

			_, err = a.Sweep.Run(cmd.Context())
			return err
		},
	}

	rootCmd.Flags().BoolP("delete", "d", false, "Delete the virtualenvs instead of just printing them")
	rootCmd.Flags().Int("max-depth", -1, "Maximum depth to recurse into the directory (-1 = unlimited)")
	rootCmd.Flags().BoolP("deep", "D", false, "Keep detecting project roots nested under already found ones")
	rootCmd.Flags().Bool("debug", false, "Enable debug output")
	rootCmd.Flags().BoolP("non-interactive", "n", false, "Disable confirmation prompts")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// installInterruptHandler prints an interim summary and exits when the
// operator interrupts the run. The total only reflects deletions that
// fully completed before the signal was delivered; anything in flight
// is abandoned.
func installInterruptHandler(a *app.App) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "Interrupted, exiting...")
		if a.Config.Delete {
			a.Renderer.Summary(true, a.Total.Bytes())
		}
		os.Exit(0)
	}()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	a, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok || a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
