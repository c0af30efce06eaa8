package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
modelsDir: /custom/models
output: json
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/custom/models", cfg.ModelsDir)
		assert.Equal(t, "json", cfg.Output)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.ModelsDir)
		assert.Empty(t, cfg.Output)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("IVBENCH_MODELS_DIR", "/env/models")
		t.Setenv("IVBENCH_OUTPUT", "yaml")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/models", cfg.ModelsDir)
		assert.Equal(t, "yaml", cfg.Output)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("IVBENCH_OUTPUT", "json")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		content := `output: table`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output)
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, cfg.ModelsDir)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "absolute path",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "path with tilde",
			input:    "~/some/path",
			expected: filepath.Join(homeDir, "some/path"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv("IVBENCH_CONFIG", "/env/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", path)
	})

	t.Run("falls back to default path", func(t *testing.T) {
		t.Setenv("IVBENCH_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Contains(t, path, ".ivbench")
		assert.Contains(t, path, "config.yaml")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, cfg.ModelsDir)
}
