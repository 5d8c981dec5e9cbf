package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider builds the RuntimeConfig from a configured viper instance.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	root := v.GetString("root")
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("scan root does not exist: %s", absRoot)
	}

	return &RuntimeConfig{
		Root:           absRoot,
		Delete:         v.GetBool("delete"),
		MaxDepth:       v.GetInt("max_depth"),
		Deep:           v.GetBool("deep"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
	}, nil
}

// SetupViper creates and configures a viper instance. Precedence, lowest
// first: defaults, .venvsweep.yaml (working directory or home), VENVSWEEP_*
// environment variables, flags set on cmd.
func SetupViper(cmd *cobra.Command) *viper.Viper {
	loadDotEnv()

	v := viper.New()

	v.SetConfigName(".venvsweep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("VENVSWEEP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("root", ".")
	v.SetDefault("delete", false)
	v.SetDefault("max_depth", -1)
	v.SetDefault("deep", false)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			panic(err)
		}
	})

	return v
}

// loadDotEnv loads .env files from the working directory before viper
// reads the environment.
func loadDotEnv() {
	for _, envFile := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
