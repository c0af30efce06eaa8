// Package sweep defines the sweep configuration schema and its validation
// contract: a JSON document describing a SourceMeter, an impedance analyzer
// and the sweep parameters, loaded once and treated as read-only afterwards.
package sweep

import (
	ierrors "github.com/ivbench/cli/internal/errors"
)

// SourceMode selects what quantity the sourcemeter sources.
type SourceMode string

const (
	SourceVoltage SourceMode = "voltage"
	SourceCurrent SourceMode = "current"
)

// RemoteSense switches between two-wire and four-wire sensing.
type RemoteSense string

const (
	RemoteSenseOn  RemoteSense = "y"
	RemoteSenseOff RemoteSense = "n"
)

// FormatElement is one token of the instrument's data format element list.
type FormatElement string

const (
	ElementVolt FormatElement = "VOLT"
	ElementCurr FormatElement = "CURR"
)

// MeasureFunction selects the sourcemeter measurement function.
type MeasureFunction string

const (
	MeasureDCVoltage          MeasureFunction = "dc_voltage"
	MeasureDCCurrent          MeasureFunction = "dc_current"
	MeasureResistance         MeasureFunction = "resistance"
	MeasureFourWireResistance MeasureFunction = "four_wire_resistance"
)

// Terminals selects the front or rear terminal block.
type Terminals string

const (
	TerminalsFront Terminals = "front"
	TerminalsRear  Terminals = "rear"
)

// AnalyzerMode selects the impedance analyzer oscillator level mode.
type AnalyzerMode string

const (
	AnalyzerVoltage AnalyzerMode = "voltage"
	AnalyzerCurrent AnalyzerMode = "current"
)

// DelaySelection names the active inter-point delay branch.
type DelaySelection string

const (
	DelayTime       DelaySelection = "time"
	DelayStatistics DelaySelection = "statistics"
)

// DelayMetric is the statistic computed over the measurement window.
// st_dev is the sample standard deviation and reads as 0 until the window
// holds at least two samples.
type DelayMetric string

const (
	MetricLastMeasure DelayMetric = "last_measure"
	MetricStDev       DelayMetric = "st_dev"
	MetricMean        DelayMetric = "mean"
)

// Comparator relates the computed metric to the sweep's reference value.
type Comparator string

const (
	LessThan    Comparator = "LESS_THAN"
	GreaterThan Comparator = "GREATER_THAN"
	EqualTo     Comparator = "EQUAL_TO"
)

// StatisticFunction names the reading fed into the statistics window.
type StatisticFunction string

const (
	StatSweepVoltage StatisticFunction = "measure_sweep_voltage"
	StatSweepCurrent StatisticFunction = "measure_sweep_current"
)

// SourcemeterConfig configures the source-measure unit.
//
// The *_valid_options companions mirror the document format: when a
// companion array is present in the JSON file, the field's value must be a
// member of it.
type SourcemeterConfig struct {
	Model    string `json:"model"`
	GPIBAddr string `json:"gpib_addr"`

	// Timeout is the driver session timeout in milliseconds. It is a
	// pass-through value for the instrument driver layer.
	Timeout int `json:"timeout"`

	SourceMode             SourceMode   `json:"source_mode"`
	SourceModeValidOptions []SourceMode `json:"source_mode_valid_options,omitempty"`

	SourceRange             float64   `json:"source_range"`
	SourceRangeValidOptions []float64 `json:"source_range_valid_options,omitempty"`

	RemoteSense             RemoteSense   `json:"remote_sense"`
	RemoteSenseValidOptions []RemoteSense `json:"remote_sense_valid_options,omitempty"`

	FormatElements             []FormatElement `json:"format_elements"`
	FormatElementsValidOptions []FormatElement `json:"format_elements_valid_options,omitempty"`

	MeasureFunction             MeasureFunction   `json:"measure_function"`
	MeasureFunctionValidOptions []MeasureFunction `json:"measure_function_valid_options,omitempty"`

	MeasureRange             float64   `json:"measure_range"`
	MeasureRangeValidOptions []float64 `json:"measure_range_valid_options,omitempty"`

	NPLC             float64   `json:"nplc"`
	NPLCValidOptions []float64 `json:"nplc_valid_options,omitempty"`

	FrontRear             Terminals   `json:"front_rear"`
	FrontRearValidOptions []Terminals `json:"front_rear_valid_options,omitempty"`
}

// AnalyzerConfig configures the impedance analyzer.
type AnalyzerConfig struct {
	Model    string `json:"model"`
	GPIBAddr string `json:"gpib_addr"`

	// Timeout is the driver session timeout in milliseconds.
	Timeout int `json:"timeout"`

	// Frequency is the oscillator frequency in Hz.
	Frequency float64 `json:"frequency"`

	Mode             AnalyzerMode   `json:"mode"`
	ModeValidOptions []AnalyzerMode `json:"mode_valid_options,omitempty"`
}

// TimeDelay waits a fixed number of seconds between sweep points.
type TimeDelay struct {
	// DelayValue is the wait in seconds.
	DelayValue float64 `json:"delay_value"`
}

// Kind implements Delay.
func (*TimeDelay) Kind() DelaySelection { return DelayTime }

// StatisticsDelay advances to the next sweep point once a statistic computed
// over periodic readings matches the comparator.
type StatisticsDelay struct {
	Metric             DelayMetric   `json:"metric"`
	MetricValidOptions []DelayMetric `json:"metric_valid_options,omitempty"`

	Comparator             Comparator   `json:"comparator"`
	ComparatorValidOptions []Comparator `json:"comparator_valid_options,omitempty"`

	// TimerInterval is the sampling period in seconds.
	TimerInterval float64 `json:"timer_interval"`

	StatisticFunction             StatisticFunction   `json:"statistic_function"`
	StatisticFunctionValidOptions []StatisticFunction `json:"statistic_function_valid_options,omitempty"`
}

// Kind implements Delay.
func (*StatisticsDelay) Kind() DelaySelection { return DelayStatistics }

// Delay is the tagged inter-point delay variant. Only *TimeDelay and
// *StatisticsDelay implement it; exactly one branch is active per sweep,
// selected by SweepConfig.SelectedDelay.
type Delay interface {
	Kind() DelaySelection
}

// SweepConfig configures the voltage sweep itself.
type SweepConfig struct {
	StartVoltage float64 `json:"start_voltage"`
	StopVoltage  float64 `json:"stop_voltage"`

	// NumberOfPoints is the sweep point count, at least 1.
	NumberOfPoints int `json:"number_of_points"`

	// Compliance is the source limit protecting the device under test.
	Compliance             float64   `json:"compliance"`
	ComplianceValidOptions []float64 `json:"compliance_valid_options,omitempty"`

	SelectedDelay             DelaySelection   `json:"selected_delay"`
	SelectedDelayValidOptions []DelaySelection `json:"selected_delay_valid_options,omitempty"`

	// TimeDelay is the fixed-wait branch. Meaningful only when
	// SelectedDelay is "time".
	TimeDelay *TimeDelay `json:"time_delay,omitempty"`

	// StatisticsDelay is the condition-wait branch. Meaningful only when
	// SelectedDelay is "statistics".
	StatisticsDelay *StatisticsDelay `json:"statistics_delay,omitempty"`
}

// Config is the whole sweep configuration document. It is immutable after
// Load; edits happen in the file followed by a reload.
type Config struct {
	Sourcemeter SourcemeterConfig `json:"sourcemeter"`
	Analyzer    AnalyzerConfig    `json:"impedance_analyzer"`
	Sweep       SweepConfig       `json:"sweep"`
}

// EffectiveDelay returns the delay branch selected by selected_delay. It
// fails when selected_delay names a branch whose sub-object is absent, or
// when selected_delay itself is not a known selection.
func (c *Config) EffectiveDelay() (Delay, error) {
	switch c.Sweep.SelectedDelay {
	case DelayTime:
		if c.Sweep.TimeDelay == nil {
			return nil, ierrors.NewMissingFieldError("sweep.time_delay",
				`selected_delay is "time" but no time_delay object is present`,
				"Add a time_delay object with a delay_value in seconds")
		}
		return c.Sweep.TimeDelay, nil
	case DelayStatistics:
		if c.Sweep.StatisticsDelay == nil {
			return nil, ierrors.NewMissingFieldError("sweep.statistics_delay",
				`selected_delay is "statistics" but no statistics_delay object is present`,
				"Add a statistics_delay object with metric, comparator, timer_interval and statistic_function")
		}
		return c.Sweep.StatisticsDelay, nil
	default:
		return nil, &ierrors.DetailError{
			Type:    "invalid value",
			Message: "selected_delay must be \"time\" or \"statistics\"",
			Field:   "sweep.selected_delay",
			Cause:   ierrors.ErrInvalidValue,
		}
	}
}
