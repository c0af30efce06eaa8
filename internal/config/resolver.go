package config

import (
	"os"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// Value is a resolved configuration value with its provenance.
type Value struct {
	Value  string
	Source Source
}

// Resolve picks a value using precedence: flag > env > config file > default.
func Resolve(flagValue, envVar, configValue, defaultValue string) Value {
	if flagValue != "" {
		return Value{Value: flagValue, Source: SourceFlag}
	}
	if envVar != "" {
		if envValue := os.Getenv(envVar); envValue != "" {
			return Value{Value: envValue, Source: SourceEnv}
		}
	}
	if configValue != "" {
		return Value{Value: configValue, Source: SourceConfig}
	}
	return Value{Value: defaultValue, Source: SourceDefault}
}

// ResolvedConfig holds every resolved setting the commands consume.
type ResolvedConfig struct {
	// ConfigPath is the tool config file path.
	ConfigPath Value

	// ModelsDir is the extra instrument models directory; empty means
	// embedded models only.
	ModelsDir Value

	// Output is the default output format.
	Output Value
}

// ResolveAllOptions carries the flag values into ResolveAll.
type ResolveAllOptions struct {
	ConfigFlag    string
	ModelsDirFlag string
	OutputFlag    string
	Config        *Config
}

// ResolveAll resolves every setting the commands need.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if opts.Config != nil {
		cfg = *opts.Config
	}

	resolved := &ResolvedConfig{
		ConfigPath: Resolve(opts.ConfigFlag, "IVBENCH_CONFIG", "", paths.ConfigFile),
		ModelsDir:  Resolve(opts.ModelsDirFlag, "IVBENCH_MODELS_DIR", cfg.ModelsDir, ""),
		Output:     Resolve(opts.OutputFlag, "IVBENCH_OUTPUT", cfg.Output, "table"),
	}

	// A configured models dir may use ~; the default user dir only counts
	// when it exists, so a fresh install needs no setup.
	if resolved.ModelsDir.Value != "" {
		expanded, err := ExpandPath(resolved.ModelsDir.Value)
		if err != nil {
			return nil, err
		}
		resolved.ModelsDir.Value = expanded
	} else if _, err := os.Stat(paths.ModelsDir); err == nil {
		resolved.ModelsDir = Value{Value: paths.ModelsDir, Source: SourceDefault}
	}

	return resolved, nil
}
