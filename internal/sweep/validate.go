package sweep

import (
	"fmt"
	"math"
	"strings"

	"github.com/ivbench/cli/internal/catalog"
	ierrors "github.com/ivbench/cli/internal/errors"
)

// recommendedNPLC is the fallback integration-time set used when neither a
// companion array nor a catalog model supplies one.
var recommendedNPLC = []float64{0.01, 0.1, 1, 10, 100}

// Violation is one validation failure. Field is the dotted path into the
// document; Err is the sentinel classifying the failure.
type Violation struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Unwrap returns the classifying sentinel.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Result collects every problem found in one validation pass. Violations
// block the configuration; warnings do not.
type Result struct {
	Violations []*Violation
	Warnings   []string
}

// OK reports whether the configuration passed validation.
func (r *Result) OK() bool {
	return len(r.Violations) == 0
}

// HasWarnings reports whether any advisory findings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ByField returns the violations recorded against a field path.
func (r *Result) ByField(field string) []*Violation {
	var out []*Violation
	for _, v := range r.Violations {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

func (r *Result) invalid(field, message string) {
	r.Violations = append(r.Violations, &Violation{Field: field, Message: message, Err: ierrors.ErrInvalidValue})
}

func (r *Result) missing(field, message string) {
	r.Violations = append(r.Violations, &Violation{Field: field, Message: message, Err: ierrors.ErrMissingField})
}

func (r *Result) inconsistent(field, message string) {
	r.Violations = append(r.Violations, &Violation{Field: field, Message: message, Err: ierrors.ErrInconsistentConfig})
}

// Validator checks a loaded configuration against its invariants. Every
// violation found is reported, never just the first, so one edit pass can
// fix them all. No value is ever auto-corrected.
type Validator struct {
	// Catalog supplies per-model option sets. When nil, or when a model is
	// not listed, the model-dependent checks are skipped with a warning.
	Catalog *catalog.Catalog

	// Strict promotes warnings to violations.
	Strict bool
}

// Validate runs every check and returns the accumulated result.
func (v *Validator) Validate(cfg *Config) *Result {
	res := &Result{}

	model, known := v.validateSourcemeter(&cfg.Sourcemeter, res)
	v.validateAnalyzer(&cfg.Analyzer, res)
	v.validateSweep(&cfg.Sweep, res)

	// Compliance limits the sourcemeter output, so its recommended set comes
	// from the sourcemeter model. A companion array overrides and binds.
	if known && len(cfg.Sweep.ComplianceValidOptions) == 0 && len(model.Compliance) > 0 {
		if !containsFloat(model.Compliance, cfg.Sweep.Compliance) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("sweep.compliance: %v is outside the recommended set %v for %s",
					cfg.Sweep.Compliance, model.Compliance, model.Name))
		}
	}

	if v.Strict && len(res.Warnings) > 0 {
		for _, w := range res.Warnings {
			res.Violations = append(res.Violations, &Violation{
				Field:   "",
				Message: w,
				Err:     ierrors.ErrInvalidValue,
			})
		}
		res.Warnings = nil
	}

	return res
}

func (v *Validator) validateSourcemeter(sm *SourcemeterConfig, res *Result) (*catalog.Model, bool) {
	v.checkInstrumentIdentity("sourcemeter", sm.Model, sm.GPIBAddr, sm.Timeout, res)

	checkEnum(res, "sourcemeter.source_mode", sm.SourceMode, SourceVoltage, SourceCurrent)
	checkCompanion(res, "sourcemeter.source_mode", sm.SourceMode, sm.SourceModeValidOptions)

	checkEnum(res, "sourcemeter.remote_sense", sm.RemoteSense, RemoteSenseOn, RemoteSenseOff)
	checkCompanion(res, "sourcemeter.remote_sense", sm.RemoteSense, sm.RemoteSenseValidOptions)

	checkEnum(res, "sourcemeter.measure_function", sm.MeasureFunction,
		MeasureDCVoltage, MeasureDCCurrent, MeasureResistance, MeasureFourWireResistance)
	checkCompanion(res, "sourcemeter.measure_function", sm.MeasureFunction, sm.MeasureFunctionValidOptions)

	checkEnum(res, "sourcemeter.front_rear", sm.FrontRear, TerminalsFront, TerminalsRear)
	checkCompanion(res, "sourcemeter.front_rear", sm.FrontRear, sm.FrontRearValidOptions)

	v.validateFormatElements(sm, res)

	if sm.NPLC <= 0 {
		res.invalid("sourcemeter.nplc", fmt.Sprintf("nplc must be positive, got %v", sm.NPLC))
	}

	model, known := v.lookupModel("sourcemeter", sm.Model, catalog.KindSourcemeter, res)

	// source_range: an explicit companion pins the set; otherwise the
	// catalog set for the current source_mode applies and a mismatch is an
	// inconsistency between the two fields.
	if len(sm.SourceRangeValidOptions) > 0 {
		if !containsFloat(sm.SourceRangeValidOptions, sm.SourceRange) {
			res.invalid("sourcemeter.source_range",
				fmt.Sprintf("value %v is not in the valid-options set %v", sm.SourceRange, sm.SourceRangeValidOptions))
		}
	} else if known && sm.SourceMode != "" {
		if set := model.SourceRanges[string(sm.SourceMode)]; len(set) > 0 && !containsFloat(set, sm.SourceRange) {
			res.inconsistent("sourcemeter.source_range",
				fmt.Sprintf("range %v is not valid for source_mode %q on %s (valid: %v)",
					sm.SourceRange, sm.SourceMode, model.Name, set))
		}
	}

	if len(sm.MeasureRangeValidOptions) > 0 {
		if !containsFloat(sm.MeasureRangeValidOptions, sm.MeasureRange) {
			res.invalid("sourcemeter.measure_range",
				fmt.Sprintf("value %v is not in the valid-options set %v", sm.MeasureRange, sm.MeasureRangeValidOptions))
		}
	} else if known && sm.MeasureFunction != "" {
		if set := model.MeasureRanges[string(sm.MeasureFunction)]; len(set) > 0 && !containsFloat(set, sm.MeasureRange) {
			res.inconsistent("sourcemeter.measure_range",
				fmt.Sprintf("range %v is not valid for measure_function %q on %s (valid: %v)",
					sm.MeasureRange, sm.MeasureFunction, model.Name, set))
		}
	}

	// nplc and compliance sets are recommendations unless pinned by a
	// companion, so mismatches warn instead of failing.
	if len(sm.NPLCValidOptions) > 0 {
		if !containsFloat(sm.NPLCValidOptions, sm.NPLC) {
			res.invalid("sourcemeter.nplc",
				fmt.Sprintf("value %v is not in the valid-options set %v", sm.NPLC, sm.NPLCValidOptions))
		}
	} else if sm.NPLC > 0 {
		set := recommendedNPLC
		if known && len(model.NPLC) > 0 {
			set = model.NPLC
		}
		if !containsFloat(set, sm.NPLC) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("sourcemeter.nplc: %v is outside the recommended set %v", sm.NPLC, set))
		}
	}

	if known && len(model.Terminals) > 0 && sm.FrontRear != "" {
		if !containsString(model.Terminals, string(sm.FrontRear)) {
			res.inconsistent("sourcemeter.front_rear",
				fmt.Sprintf("terminals %q are not available on %s", sm.FrontRear, model.Name))
		}
	}

	return model, known
}

func (v *Validator) validateFormatElements(sm *SourcemeterConfig, res *Result) {
	if len(sm.FormatElements) == 0 {
		res.missing("sourcemeter.format_elements", "at least one format element is required")
		return
	}

	allowed := sm.FormatElementsValidOptions
	if len(allowed) == 0 {
		allowed = []FormatElement{ElementVolt, ElementCurr}
	}

	seen := make(map[FormatElement]bool)
	for _, el := range sm.FormatElements {
		if seen[el] {
			res.invalid("sourcemeter.format_elements", fmt.Sprintf("duplicate element %q", el))
			continue
		}
		seen[el] = true
		if !containsEnum(allowed, el) {
			res.invalid("sourcemeter.format_elements",
				fmt.Sprintf("element %q is not in the valid-options set %v", el, allowed))
		}
	}
}

func (v *Validator) validateAnalyzer(an *AnalyzerConfig, res *Result) {
	v.checkInstrumentIdentity("impedance_analyzer", an.Model, an.GPIBAddr, an.Timeout, res)

	checkEnum(res, "impedance_analyzer.mode", an.Mode, AnalyzerVoltage, AnalyzerCurrent)
	checkCompanion(res, "impedance_analyzer.mode", an.Mode, an.ModeValidOptions)

	if an.Frequency <= 0 {
		res.invalid("impedance_analyzer.frequency",
			fmt.Sprintf("frequency must be positive, got %v Hz", an.Frequency))
	}

	model, known := v.lookupModel("impedance_analyzer", an.Model, catalog.KindImpedanceAnalyzer, res)
	if !known {
		return
	}

	if model.Frequency != nil && an.Frequency > 0 && !model.Frequency.Contains(an.Frequency) {
		res.inconsistent("impedance_analyzer.frequency",
			fmt.Sprintf("%v Hz is outside the %s span [%v, %v] Hz",
				an.Frequency, model.Name, model.Frequency.Min, model.Frequency.Max))
	}

	if len(model.OscillatorModes) > 0 && an.Mode != "" {
		if !containsString(model.OscillatorModes, string(an.Mode)) {
			res.inconsistent("impedance_analyzer.mode",
				fmt.Sprintf("mode %q is not available on %s", an.Mode, model.Name))
		}
	}
}

func (v *Validator) validateSweep(sw *SweepConfig, res *Result) {
	if sw.NumberOfPoints < 1 {
		res.invalid("sweep.number_of_points",
			fmt.Sprintf("number_of_points must be at least 1, got %d", sw.NumberOfPoints))
	}

	if len(sw.ComplianceValidOptions) > 0 && !containsFloat(sw.ComplianceValidOptions, sw.Compliance) {
		res.invalid("sweep.compliance",
			fmt.Sprintf("value %v is not in the valid-options set %v", sw.Compliance, sw.ComplianceValidOptions))
	}

	checkEnum(res, "sweep.selected_delay", sw.SelectedDelay, DelayTime, DelayStatistics)
	checkCompanion(res, "sweep.selected_delay", sw.SelectedDelay, sw.SelectedDelayValidOptions)

	switch sw.SelectedDelay {
	case DelayTime:
		if sw.TimeDelay == nil {
			res.missing("sweep.time_delay",
				`selected_delay is "time" but no time_delay object is present`)
		} else if sw.TimeDelay.DelayValue < 0 {
			res.invalid("sweep.time_delay.delay_value",
				fmt.Sprintf("delay_value must not be negative, got %v", sw.TimeDelay.DelayValue))
		}
	case DelayStatistics:
		if sw.StatisticsDelay == nil {
			res.missing("sweep.statistics_delay",
				`selected_delay is "statistics" but no statistics_delay object is present`)
		} else {
			v.validateStatisticsDelay(sw.StatisticsDelay, res)
		}
	}
}

func (v *Validator) validateStatisticsDelay(sd *StatisticsDelay, res *Result) {
	checkEnum(res, "sweep.statistics_delay.metric", sd.Metric, MetricLastMeasure, MetricStDev, MetricMean)
	checkCompanion(res, "sweep.statistics_delay.metric", sd.Metric, sd.MetricValidOptions)

	checkEnum(res, "sweep.statistics_delay.comparator", sd.Comparator, LessThan, GreaterThan, EqualTo)
	checkCompanion(res, "sweep.statistics_delay.comparator", sd.Comparator, sd.ComparatorValidOptions)

	checkEnum(res, "sweep.statistics_delay.statistic_function", sd.StatisticFunction, StatSweepVoltage, StatSweepCurrent)
	checkCompanion(res, "sweep.statistics_delay.statistic_function", sd.StatisticFunction, sd.StatisticFunctionValidOptions)

	if sd.TimerInterval <= 0 {
		res.invalid("sweep.statistics_delay.timer_interval",
			fmt.Sprintf("timer_interval must be positive, got %v", sd.TimerInterval))
	}
}

// checkInstrumentIdentity validates the fields both instrument sections
// share: model, address and session timeout.
func (v *Validator) checkInstrumentIdentity(section, model, addr string, timeout int, res *Result) {
	if model == "" {
		res.missing(section+".model", "model is required")
	}

	if addr == "" {
		res.missing(section+".gpib_addr", "gpib_addr is required")
	} else if !strings.Contains(addr, "::") {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s.gpib_addr: %q does not look like a VISA resource name (e.g. GPIB0::24::INSTR)", section, addr))
	}

	if timeout <= 0 {
		res.invalid(section+".timeout",
			fmt.Sprintf("timeout must be a positive number of milliseconds, got %d", timeout))
	}
}

// lookupModel resolves a model name against the catalog, warning once when
// the dependent-range checks have to be skipped.
func (v *Validator) lookupModel(section, name string, kind catalog.Kind, res *Result) (*catalog.Model, bool) {
	if v.Catalog == nil || name == "" {
		return nil, false
	}

	model, ok := v.Catalog.Model(name)
	if !ok {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s.model: %q is not in the instrument catalog; model-dependent checks skipped", section, name))
		return nil, false
	}

	if model.Kind != kind {
		res.inconsistent(section+".model",
			fmt.Sprintf("%s is a %s, not a %s", model.Name, model.Kind, kind))
		return nil, false
	}

	return model, true
}

func checkEnum[T ~string](res *Result, field string, value T, allowed ...T) {
	if value == "" {
		res.missing(field, field[strings.LastIndex(field, ".")+1:]+" is required")
		return
	}
	if !containsEnum(allowed, value) {
		res.invalid(field, fmt.Sprintf("value %q is not one of %v", value, allowed))
	}
}

// checkCompanion enforces a *_valid_options companion when the document
// carries one. The zero value is reported by checkEnum already.
func checkCompanion[T ~string](res *Result, field string, value T, options []T) {
	if len(options) == 0 || value == "" {
		return
	}
	if !containsEnum(options, value) {
		res.invalid(field, fmt.Sprintf("value %q is not in the valid-options set %v", value, options))
	}
}

func containsEnum[T ~string](set []T, value T) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// containsFloat matches with a small relative tolerance so values that made
// a round trip through JSON still match their option set.
func containsFloat(set []float64, value float64) bool {
	for _, s := range set {
		if s == value {
			return true
		}
		if math.Abs(s-value) <= 1e-9*math.Max(math.Abs(s), math.Abs(value)) {
			return true
		}
	}
	return false
}
