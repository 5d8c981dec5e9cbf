package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	t.Run("flags", func(t *testing.T) {
		for flag, shorthand := range map[string]string{
			"delete":          "d",
			"deep":            "D",
			"non-interactive": "n",
		} {
			f := cmd.Flags().Lookup(flag)
			require.NotNil(t, f, flag)
			assert.Equal(t, shorthand, f.Shorthand, flag)
		}

		require.NotNil(t, cmd.Flags().Lookup("max-depth"))
		assert.Equal(t, "-1", cmd.Flags().Lookup("max-depth").DefValue)
		require.NotNil(t, cmd.Flags().Lookup("debug"))
	})

	t.Run("accepts at most one positional argument", func(t *testing.T) {
		assert.NoError(t, cmd.Args(cmd, []string{}))
		assert.NoError(t, cmd.Args(cmd, []string{"/tmp"}))
		assert.Error(t, cmd.Args(cmd, []string{"/tmp", "/var"}))
	})

	t.Run("subcommands", func(t *testing.T) {
		names := make([]string, 0)
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.Contains(t, names, "config")
		assert.Contains(t, names, "version")
	})
}

func TestGetAppWithoutInit(t *testing.T) {
	cmd := NewVersionCmd()
	cmd.SetContext(context.Background())

	_, err := getApp(cmd)
	assert.Error(t, err)
}
