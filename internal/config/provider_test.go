package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "venvsweep"}
	cmd.Flags().BoolP("delete", "d", false, "")
	cmd.Flags().Int("max-depth", -1, "")
	cmd.Flags().BoolP("deep", "D", false, "")
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().BoolP("non-interactive", "n", false, "")
	return cmd
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(newTestCmd())
		v.Set("root", dir)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.Root)
		assert.False(t, cfg.Delete)
		assert.Equal(t, -1, cfg.MaxDepth)
		assert.False(t, cfg.Deep)
		assert.False(t, cfg.Debug)
		assert.False(t, cfg.NonInteractive)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		dir := t.TempDir()
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("delete", "true"))
		require.NoError(t, cmd.Flags().Set("max-depth", "3"))
		require.NoError(t, cmd.Flags().Set("non-interactive", "true"))

		v := SetupViper(cmd)
		v.Set("root", dir)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.True(t, cfg.Delete)
		assert.Equal(t, 3, cfg.MaxDepth)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("VENVSWEEP_DEBUG", "true")
		t.Setenv("VENVSWEEP_MAX_DEPTH", "7")

		v := SetupViper(newTestCmd())
		v.Set("root", dir)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, 7, cfg.MaxDepth)
	})

	t.Run("root is made absolute", func(t *testing.T) {
		v := SetupViper(newTestCmd())
		v.Set("root", ".")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(cfg.Root))
	})

	t.Run("missing root is rejected", func(t *testing.T) {
		v := SetupViper(newTestCmd())
		v.Set("root", filepath.Join(t.TempDir(), "does-not-exist"))

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan root does not exist")
	})
}
