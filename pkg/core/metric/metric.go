// Package metric provides a tagged numeric value that distinguishes a genuine
// zero from the guarded result of a zero-denominator division. Downstream
// consumers (diagnostics, serialization) can then report "undefined" instead
// of silently treating a guard value as a favorable metric.
package metric

import "encoding/json"

// Metric is a float64 that knows whether it was actually computed.
// The zero value is an undefined metric.
type Metric struct {
	value   float64
	defined bool
}

// Defined wraps a computed value.
func Defined(v float64) Metric {
	return Metric{value: v, defined: true}
}

// Undefined returns the explicit undefined state.
func Undefined() Metric {
	return Metric{}
}

// Div divides numerator by denominator, returning Undefined when the
// denominator is zero.
func Div(numerator, denominator float64) Metric {
	if denominator == 0 {
		return Undefined()
	}
	return Defined(numerator / denominator)
}

// Percent is Div scaled to a percentage.
func Percent(numerator, denominator float64) Metric {
	if denominator == 0 {
		return Undefined()
	}
	return Defined(numerator / denominator * 100)
}

// IsDefined reports whether the metric holds a computed value.
func (m Metric) IsDefined() bool {
	return m.defined
}

// Value returns the computed value and whether it is defined.
func (m Metric) Value() (float64, bool) {
	return m.value, m.defined
}

// Or returns the computed value, or fallback when undefined.
func (m Metric) Or(fallback float64) float64 {
	if !m.defined {
		return fallback
	}
	return m.value
}

// MarshalJSON encodes undefined metrics as null so API consumers cannot
// mistake them for real zeros.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON accepts either null or a number.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Undefined()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}
