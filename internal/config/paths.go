package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for ivbench.
type Paths struct {
	// ConfigFile is the path to the config file (~/.ivbench/config.yaml).
	ConfigFile string

	// ModelsDir is the default user models directory (~/.ivbench/models).
	ModelsDir string

	// HomeDir is the ivbench home directory (~/.ivbench).
	HomeDir string
}

// DefaultPaths returns the default paths for ivbench.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	benchHome := filepath.Join(homeDir, ".ivbench")

	return &Paths{
		ConfigFile: filepath.Join(benchHome, "config.yaml"),
		ModelsDir:  filepath.Join(benchHome, "models"),
		HomeDir:    benchHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If IVBENCH_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("IVBENCH_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
