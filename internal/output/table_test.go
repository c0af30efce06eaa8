package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	tbl := NewTable("FIELD", "PROBLEM").
		Row("sourcemeter.source_range", "value 10 is not in the valid-options set").
		Row("sweep.time_delay", "missing")

	out := tbl.String()

	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "PROBLEM")
	assert.Contains(t, out, "sourcemeter.source_range")
	assert.Contains(t, out, "sweep.time_delay")
}

func TestTableSetStyle(t *testing.T) {
	style := DefaultTableStyle()
	tbl := NewTable("MODEL").SetStyle(style).Row("Keithley 2400")

	assert.Contains(t, tbl.String(), "Keithley 2400")
}
