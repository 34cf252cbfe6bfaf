package experiment

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/ignitiondata/respecth/quantity"
)

// canonicalColumn maps a dataGroup column name, lower-cased, to the
// canonical property key it binds. Names not in this table are
// diagnostic columns the pipeline does not need and are skipped.
var canonicalColumn = map[string]string{
	"time":           "time",
	"temperature":    "temperature",
	"pressure":       "pressure",
	"volume":         "volume",
	"ignition delay": "ignition delay",
}

// bindColumn assigns an accumulated column series to its Properties field.
var bindColumn = map[string]func(*Properties, *quantity.Quantity){
	"time":           func(p *Properties, q *quantity.Quantity) { p.Time = q },
	"temperature":    func(p *Properties, q *quantity.Quantity) { p.Temperature = q },
	"pressure":       func(p *Properties, q *quantity.Quantity) { p.Pressure = q },
	"volume":         func(p *Properties, q *quantity.Quantity) { p.Volume = q },
	"ignition delay": func(p *Properties, q *quantity.Quantity) { p.IgnitionDelay = q },
}

// DataGroups fills p with the measurement series held by the
// document's dataGroup elements. Values are accumulated per canonical
// column name across all groups, in document order; a column with a
// single value over the whole document collapses to a scalar
// quantity. Units come from the first declaration of a column name.
func DataGroups(p *Properties, doc *xmlquery.Node) error {
	type series struct {
		units  string
		values []float64
	}
	acc := map[string]*series{}

	for _, dg := range xmlquery.QuerySelectorAll(doc, xpDataGroup) {
		// column declarations, keyed by the group-local column id
		// (the dataPoint child element names)
		type column struct {
			key   string
			units string
		}
		cols := map[string]column{}
		for _, decl := range xmlquery.QuerySelectorAll(dg, xpColumn) {
			id := decl.SelectAttr("id")
			if id == "" {
				continue
			}
			name := strings.ToLower(strings.TrimSpace(decl.SelectAttr("name")))
			if key, known := canonicalColumn[name]; known {
				cols[id] = column{key: key, units: decl.SelectAttr("units")}
			}
		}

		for _, dp := range xmlquery.QuerySelectorAll(dg, xpDataPoint) {
			for child := dp.FirstChild; child != nil; child = child.NextSibling {
				if child.Type != xmlquery.ElementNode {
					continue
				}
				col, ok := cols[child.Data]
				if !ok {
					continue
				}
				v, err := strconv.ParseFloat(strings.TrimSpace(child.InnerText()), 64)
				if err != nil {
					return errors.Wrapf(err, "data group %s: column %s",
						dg.SelectAttr("id"), col.key)
				}
				s := acc[col.key]
				if s == nil {
					s = &series{units: col.units}
					acc[col.key] = s
				}
				s.values = append(s.values, v)
			}
		}
	}

	for key, s := range acc {
		q := quantity.Series(s.values, s.units)
		bindColumn[key](p, &q)
	}
	return nil
}
