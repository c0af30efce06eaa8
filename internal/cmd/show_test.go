package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivbench/cli/internal/sweep"
)

func TestNewShowCmd(t *testing.T) {
	cmd := NewShowCmd()

	assert.Contains(t, cmd.Use, "show")
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestShow_Table(t *testing.T) {
	path := writeSweepFile(t, TemplateConfig())

	cmd := NewShowCmd()
	cmd.SetArgs([]string{path})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.NoError(t, cmd.Execute())
}

func TestShow_MissingFile(t *testing.T) {
	cmd := NewShowCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestDescribeDelay(t *testing.T) {
	t.Run("time delay", func(t *testing.T) {
		s := describeDelay(&sweep.TimeDelay{DelayValue: 0.5})
		assert.Contains(t, s, "0.5")
		assert.Contains(t, s, "fixed")
	})

	t.Run("statistics delay", func(t *testing.T) {
		s := describeDelay(&sweep.StatisticsDelay{
			Metric:            sweep.MetricStDev,
			Comparator:        sweep.LessThan,
			TimerInterval:     0.2,
			StatisticFunction: sweep.StatSweepCurrent,
		})
		assert.Contains(t, s, "st_dev")
		assert.Contains(t, s, "LESS_THAN")
		assert.Contains(t, s, "0.2")
	})
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.5", formatFloat(0.5))
	assert.Equal(t, "20", formatFloat(20))
	assert.Equal(t, "1e-06", formatFloat(1e-6))
}

func TestShowTable_BrokenDelaySelection(t *testing.T) {
	cfg := TemplateConfig()
	cfg.Sweep.TimeDelay = nil

	err := showTable(cfg)
	require.Error(t, err)
}
