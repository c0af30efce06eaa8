// Package catalog holds the instrument model catalog.
//
// Valid option sets that depend on a controlling field (source ranges per
// source mode, measure ranges per measure function, frequency spans) are
// configuration data per instrument model, not constants. They live in CUE
// documents: an embedded default set plus any user-supplied model files.
package catalog

import (
	"sort"
	"strings"
)

// Kind distinguishes the two instrument families on the bench.
type Kind string

const (
	// KindSourcemeter is a source-measure unit.
	KindSourcemeter Kind = "sourcemeter"

	// KindImpedanceAnalyzer is an impedance analyzer.
	KindImpedanceAnalyzer Kind = "impedance_analyzer"
)

// FrequencySpan is the supported oscillator frequency span in Hz.
type FrequencySpan struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether f lies within the span (inclusive).
func (s FrequencySpan) Contains(f float64) bool {
	return f >= s.Min && f <= s.Max
}

// Model is one instrument model and its option sets.
type Model struct {
	// Name is the canonical model name, e.g. "Keithley 2400".
	Name string `json:"model"`

	// Vendor is the manufacturer name.
	Vendor string `json:"vendor,omitempty"`

	// Kind is the instrument family.
	Kind Kind `json:"kind"`

	// Aliases are alternate spellings accepted for lookup.
	Aliases []string `json:"aliases,omitempty"`

	// SourceRanges maps a source mode to its valid range set.
	SourceRanges map[string][]float64 `json:"sourceRanges,omitempty"`

	// MeasureRanges maps a measure function to its valid range set.
	MeasureRanges map[string][]float64 `json:"measureRanges,omitempty"`

	// NPLC lists the integration-time options in power line cycles.
	NPLC []float64 `json:"nplc,omitempty"`

	// Compliance lists the recommended compliance limits.
	Compliance []float64 `json:"compliance,omitempty"`

	// Terminals lists the terminal selections the model supports.
	Terminals []string `json:"terminals,omitempty"`

	// OscillatorModes lists the oscillator level modes. Analyzers only.
	OscillatorModes []string `json:"oscillatorModes,omitempty"`

	// Frequency is the supported frequency span. Analyzers only.
	Frequency *FrequencySpan `json:"frequency,omitempty"`
}

// Catalog is a lookup table of instrument models.
type Catalog struct {
	models map[string]*Model
	names  []string
}

// New creates a Catalog from a list of models. Later entries override
// earlier ones with the same normalized name, so user-supplied model files
// can replace the embedded defaults.
func New(models []*Model) *Catalog {
	c := &Catalog{models: make(map[string]*Model)}
	for _, m := range models {
		if _, seen := c.models[normalize(m.Name)]; !seen {
			c.names = append(c.names, m.Name)
		}
		c.models[normalize(m.Name)] = m
		for _, a := range m.Aliases {
			c.models[normalize(a)] = m
		}
	}
	sort.Strings(c.names)
	return c
}

// Model looks up a model by name or alias. Lookup ignores case, spaces and
// punctuation, so "keithley-2400" finds "Keithley 2400".
func (c *Catalog) Model(name string) (*Model, bool) {
	m, ok := c.models[normalize(name)]
	return m, ok
}

// Names returns the canonical model names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of distinct models.
func (c *Catalog) Len() int {
	return len(c.names)
}

// normalize reduces a model name to lowercase alphanumerics.
func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
