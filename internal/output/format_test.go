package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"YAML", FormatYAML},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatTable},
		{"xml", FormatTable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOutputFormat(tt.in), "input %q", tt.in)
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	assert.True(t, FormatYAML.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatTable.IsValid())
	assert.False(t, OutputFormat("xml").IsValid())
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(map[string]int{"number_of_points": 51})
	require.NoError(t, err)
	assert.Contains(t, out, `"number_of_points": 51`)
	assert.True(t, out[len(out)-1] == '\n')
}

func TestRenderYAMLHonorsJSONTags(t *testing.T) {
	v := struct {
		GPIBAddr string `json:"gpib_addr"`
	}{GPIBAddr: "GPIB0::24::INSTR"}

	out, err := RenderYAML(v)
	require.NoError(t, err)
	assert.Contains(t, out, "gpib_addr: GPIB0::24::INSTR")
}
