package config

// RuntimeConfig is the resolved scan configuration.
// It is built once by the provider and read-only afterwards; every
// component shares the same instance.
type RuntimeConfig struct {
	// Root is the absolute path the walk starts from.
	Root string `yaml:"root"`

	// Delete removes found virtualenvs instead of just reporting them.
	Delete bool `yaml:"delete"`

	// MaxDepth bounds the walk below Root; -1 means unlimited and 0
	// visits only the root entry itself.
	MaxDepth int `yaml:"max_depth"`

	// Deep disables the claimed-root suppression so nested project
	// roots are detected independently.
	Deep bool `yaml:"deep"`

	// Debug enables verbose diagnostics on stderr.
	Debug bool `yaml:"debug"`

	// NonInteractive suppresses confirmation prompts; in delete mode
	// every candidate is treated as approved.
	NonInteractive bool `yaml:"non_interactive"`
}
