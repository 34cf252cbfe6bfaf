// Package quantity provides the unit-tagged measurement value used
// throughout the extraction pipeline.
package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is an immutable measured value: either a single scalar or
// an ordered series of floats, paired with an opaque units tag taken
// verbatim from the source document. The zero Quantity is empty.
type Quantity struct {
	values []float64
	units  string
}

// Scalar returns a single-valued Quantity.
func Scalar(value float64, units string) Quantity {
	return Quantity{values: []float64{value}, units: units}
}

// Series returns an ordered multi-valued Quantity. A one-element
// series is indistinguishable from the equivalent Scalar.
func Series(values []float64, units string) Quantity {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Quantity{values: vs, units: units}
}

// Value returns the scalar value, or the first element of a series.
// It returns 0 for an empty Quantity.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns a copy of the ordered values.
func (q Quantity) Values() []float64 {
	vs := make([]float64, len(q.values))
	copy(vs, q.values)
	return vs
}

// Len returns the number of values held.
func (q Quantity) Len() int { return len(q.values) }

// IsScalar returns true if the Quantity holds exactly one value.
func (q Quantity) IsScalar() bool { return len(q.values) == 1 }

// Units returns the units tag.
func (q Quantity) Units() string { return q.units }

// At returns a scalar Quantity holding element i with the same units.
// It panics if i is out of range, matching slice index semantics.
func (q Quantity) At(i int) Quantity { return Scalar(q.values[i], q.units) }

// Equal reports whether the two quantities match element-wise in both
// value and units.
func (q Quantity) Equal(o Quantity) bool {
	if q.units != o.units || len(q.values) != len(o.values) {
		return false
	}
	for i, v := range q.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (q Quantity) String() string {
	switch len(q.values) {
	case 0:
		return "<empty>"
	case 1:
		return strings.TrimSpace(strconv.FormatFloat(q.values[0], 'g', -1, 64) + " " + q.units)
	default:
		return strings.TrimSpace(fmt.Sprintf("series[%d] %s", len(q.values), q.units))
	}
}

// MarshalYAML renders the Quantity as a value/units (or values/units)
// mapping for human-readable dumps.
func (q Quantity) MarshalYAML() (interface{}, error) {
	if q.IsScalar() {
		return struct {
			Value float64 `yaml:"value"`
			Units string  `yaml:"units,omitempty"`
		}{q.values[0], q.units}, nil
	}
	return struct {
		Values []float64 `yaml:"values"`
		Units  string    `yaml:"units,omitempty"`
	}{q.Values(), q.units}, nil
}
