package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "github.com/ivbench/cli/internal/errors"
)

func TestLoadEmbedded(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	models, err := loader.LoadEmbedded()
	require.NoError(t, err)
	require.NotEmpty(t, models)

	c := New(models)

	t.Run("ships the Keithley 2400", func(t *testing.T) {
		m, ok := c.Model("Keithley 2400")
		require.True(t, ok)
		assert.Equal(t, KindSourcemeter, m.Kind)
		assert.Equal(t, []float64{0.2, 2, 20, 200}, m.SourceRanges["voltage"])
		assert.Equal(t, []float64{0.2, 2, 20, 200}, m.MeasureRanges["dc_voltage"])
		assert.Contains(t, m.NPLC, 0.01)
		assert.Contains(t, m.Terminals, "front")
	})

	t.Run("ships the Keysight E4990A", func(t *testing.T) {
		m, ok := c.Model("Keysight E4990A")
		require.True(t, ok)
		assert.Equal(t, KindImpedanceAnalyzer, m.Kind)
		require.NotNil(t, m.Frequency)
		assert.InDelta(t, 20, m.Frequency.Min, 1e-9)
		assert.Contains(t, m.OscillatorModes, "voltage")
	})
}

func TestLoadDir(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	t.Run("loads a user model file", func(t *testing.T) {
		dir := t.TempDir()
		content := `package catalog

model: "Keithley 2450"
vendor: "Keithley"
kind:   "sourcemeter"
sourceRanges: voltage: [0.02, 0.2, 2, 20, 200]
nplc: [0.01, 0.1, 1, 10]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keithley_2450.cue"), []byte(content), 0o644))

		models, err := loader.LoadDir(dir)
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Equal(t, "Keithley 2450", models[0].Name)
		assert.Equal(t, []float64{0.02, 0.2, 2, 20, 200}, models[0].SourceRanges["voltage"])
	})

	t.Run("rejects a model violating the schema", func(t *testing.T) {
		dir := t.TempDir()
		content := `package catalog

model: "Bad Meter"
kind:  "oscilloscope"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.cue"), []byte(content), 0o644))

		_, err := loader.LoadDir(dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ierrors.ErrParse))
	})

	t.Run("missing directory reports not found", func(t *testing.T) {
		_, err := loader.LoadDir(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ierrors.ErrNotFound))
	})
}

func TestLoad(t *testing.T) {
	t.Run("embedded only", func(t *testing.T) {
		c, err := Load()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Len(), 2)
	})

	t.Run("user dir overrides embedded model", func(t *testing.T) {
		dir := t.TempDir()
		content := `package catalog

model: "Keithley 2400"
kind:  "sourcemeter"
nplc: [1, 10]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "override.cue"), []byte(content), 0o644))

		c, err := Load(dir)
		require.NoError(t, err)

		m, ok := c.Model("Keithley 2400")
		require.True(t, ok)
		assert.Equal(t, []float64{1, 10}, m.NPLC)
	})

	t.Run("empty extra dir is skipped", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Len(), 2)
	})
}
