package experiment

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/ignitiondata/respecth/exerr"
	"github.com/ignitiondata/respecth/quantity"
)

// CommonProperties fills p with the scalar conditions shared by every
// data point of the document: the declared initial pressure, the
// optional pressure rise, and the initial composition. Composition
// amounts are kept verbatim as strings; a duplicated species keeps its
// position with the last amount winning.
func CommonProperties(p *Properties, doc *xmlquery.Node) error {
	for _, prop := range xmlquery.QuerySelectorAll(doc, xpCommonProperty) {
		switch prop.SelectAttr("name") {
		case "pressure":
			q, err := scalarProperty(prop)
			if err != nil {
				return err
			}
			p.Pressure = q
		case "pressure rise":
			q, err := scalarProperty(prop)
			if err != nil {
				return err
			}
			p.PressureRise = q
		case "initial composition":
			for _, comp := range xmlquery.QuerySelectorAll(prop, xpComponent) {
				link := xmlquery.QuerySelector(comp, xpSpeciesLink)
				amount := xmlquery.QuerySelector(comp, xpAmount)
				if link == nil || amount == nil {
					return errors.WithStack(exerr.MissingProperty("initial composition",
						exerr.WithMessage("component missing speciesLink or amount")))
				}
				species := strings.TrimSpace(link.SelectAttr("preferredKey"))
				if species == "" {
					return errors.WithStack(exerr.MissingProperty("initial composition",
						exerr.WithMessage("speciesLink missing preferredKey attribute")))
				}
				p.Composition = p.Composition.Set(species, strings.TrimSpace(amount.InnerText()))
			}
		}
	}
	return nil
}

// scalarProperty reads a commonProperties property element holding a
// single value child and a units attribute.
func scalarProperty(prop *xmlquery.Node) (*quantity.Quantity, error) {
	name := prop.SelectAttr("name")
	value := xmlquery.QuerySelector(prop, xpValue)
	if value == nil {
		return nil, errors.WithStack(exerr.MissingProperty(name,
			exerr.WithMessage("property has no value element")))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value.InnerText()), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s value", name)
	}
	q := quantity.Scalar(v, prop.SelectAttr("units"))
	return &q, nil
}
