// Package simulation materializes per-point simulation cases from
// extracted experiment properties.
//
// One experiment document describes one or more data points sharing a
// set of common conditions. Build fans the document out into one
// Simulation per point: scalar conditions are copied to every record,
// per-point series are indexed row by row, and whole-case time/volume
// histories are attached verbatim to every record.
package simulation

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ignitiondata/respecth/exerr"
	"github.com/ignitiondata/respecth/experiment"
	"github.com/ignitiondata/respecth/quantity"
)

// Simulation is one fully specified initial-value case derived from a
// document data point. Records are immutable once built.
type Simulation struct {
	// Kind is the experiment kind of the source document.
	Kind experiment.Kind `yaml:"kind"`
	// ID is unique within the source document and deterministic:
	// the source file stem followed by the zero-based row index.
	ID string `yaml:"id"`
	// DataFile is the source document filename.
	DataFile string `yaml:"data file"`

	Temperature   *quantity.Quantity `yaml:"temperature"`
	Pressure      *quantity.Quantity `yaml:"pressure,omitempty"`
	PressureRise  *quantity.Quantity `yaml:"pressure rise,omitempty"`
	IgnitionDelay *quantity.Quantity `yaml:"ignition delay,omitempty"`
	Time          *quantity.Quantity `yaml:"time,omitempty"`
	Volume        *quantity.Quantity `yaml:"volume,omitempty"`

	Composition experiment.Composition `yaml:"composition,omitempty"`

	IgnitionTarget      string             `yaml:"ignition target"`
	IgnitionType        string             `yaml:"ignition type"`
	IgnitionTargetValue *quantity.Quantity `yaml:"ignition target value,omitempty"`
}

// Build returns one Simulation per data point of the extracted
// properties p, in document row order. sourceFile is carried through
// as metadata only and is not reopened.
//
// The record count follows the temperature series, or the ignition
// delay series when temperature is scalar. Per-point series are
// indexed per record when their length matches the record count and
// broadcast when scalar; time and volume histories describe the whole
// case's evolution and attach in full to every record. Two
// multi-valued series of different lengths make the document
// malformed and fail the whole build.
func Build(p *experiment.Properties, sourceFile string) ([]Simulation, error) {
	file := filepath.Base(sourceFile)

	if err := checkSeriesLengths(p, file); err != nil {
		return nil, err
	}
	if p.Temperature == nil {
		return nil, errors.WithStack(exerr.MissingProperty("temperature", exerr.WithFile(file)))
	}
	if p.Kind == experiment.ShockTube && p.Pressure == nil {
		return nil, errors.WithStack(exerr.MissingProperty("pressure", exerr.WithFile(file)))
	}

	n := 1
	if p.Temperature.Len() > 1 {
		n = p.Temperature.Len()
	} else if p.IgnitionDelay != nil && p.IgnitionDelay.Len() > 1 {
		n = p.IgnitionDelay.Len()
	}

	stem := strings.TrimSuffix(file, filepath.Ext(file))
	sims := make([]Simulation, 0, n)
	for i := 0; i < n; i++ {
		sims = append(sims, Simulation{
			Kind:     p.Kind,
			ID:       stem + "_" + strconv.Itoa(i),
			DataFile: file,

			Temperature:   row(p.Temperature, i, n),
			Pressure:      row(p.Pressure, i, n),
			IgnitionDelay: row(p.IgnitionDelay, i, n),
			Time:          p.Time,
			Volume:        p.Volume,

			PressureRise:        p.PressureRise,
			Composition:         p.Composition,
			IgnitionTarget:      p.IgnitionTarget,
			IgnitionType:        p.IgnitionType,
			IgnitionTargetValue: p.IgnitionTargetValue,
		})
	}
	return sims, nil
}

// row selects element i of a per-point series whose length matches
// the record count n; anything else (a scalar, or a whole-case trace
// in a single-record document) is broadcast unchanged.
func row(q *quantity.Quantity, i, n int) *quantity.Quantity {
	if q == nil || n == 1 || q.Len() != n {
		return q
	}
	v := q.At(i)
	return &v
}

// checkSeriesLengths verifies that all multi-valued series of the
// document agree on one length. Truncating to the shortest would
// silently misalign rows, so a disagreement fails the document.
func checkSeriesLengths(p *experiment.Properties, file string) error {
	series := []struct {
		name string
		q    *quantity.Quantity
	}{
		{"temperature", p.Temperature},
		{"pressure", p.Pressure},
		{"ignition delay", p.IgnitionDelay},
		{"time", p.Time},
		{"volume", p.Volume},
	}
	length := 0
	for _, s := range series {
		if s.q == nil || s.q.Len() <= 1 {
			continue
		}
		if length == 0 {
			length = s.q.Len()
			continue
		}
		if s.q.Len() != length {
			return errors.WithStack(exerr.InconsistentSeriesLength(s.name, s.q.Len(), length,
				exerr.WithFile(file)))
		}
	}
	return nil
}
