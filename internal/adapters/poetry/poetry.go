package poetry

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const executable = "poetry"

// Runner invokes the poetry executable to resolve managed environments.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a new poetry Runner.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: log.With("component", "PoetryRunner")}
}

// Available reports whether poetry can be found on the search path.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(executable)
	return err == nil
}

// EnvPath asks poetry for the environment path it manages for
// projectRoot. Stdin is not attached so poetry can never prompt. The
// context is how a timeout would be added later.
func (r *Runner) EnvPath(ctx context.Context, projectRoot string) (string, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, executable, "env", "info", "--path", "--directory", projectRoot)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	r.log.Debug("poetry env info finished",
		"root", projectRoot, "duration", time.Since(start), "error", err)

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("poetry env info failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("poetry env info failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
