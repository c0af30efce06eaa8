// Package config provides tool configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the ivbench CLI configuration, loaded from
// ~/.ivbench/config.yaml.
type Config struct {
	// ModelsDir is a directory of extra instrument model files (*.cue)
	// that extend or override the embedded catalog.
	// Env: IVBENCH_MODELS_DIR
	ModelsDir string `json:"modelsDir,omitempty"`

	// Output is the default output format: table, yaml or json.
	// Env: IVBENCH_OUTPUT, Default: "table"
	Output string `json:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Output: "table",
	}
}

// WithDefaults returns a copy of c with empty fields replaced by defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output == "" {
		out.Output = "table"
	}
	return &out
}
