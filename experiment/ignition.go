package experiment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/ignitiondata/respecth/exerr"
	"github.com/ignitiondata/respecth/quantity"
)

// IgnitionDescriptor fills p with the document's ignition detection
// definition: the target (a species name, or P/T for bulk pressure or
// temperature) and the detection type (maximum value or maximum time
// derivative). Some documents state a numeric threshold through the
// optional amount attribute; that is carried as the target value with
// the declared units.
func IgnitionDescriptor(p *Properties, doc *xmlquery.Node) error {
	elem := xmlquery.QuerySelector(doc, xpIgnitionType)
	if elem == nil {
		return errors.WithStack(exerr.MissingIgnitionDefinition(
			exerr.WithMessage("no ignitionType element")))
	}

	// targets are written with an occasional trailing separator,
	// e.g. "OH;", and bulk targets in either case
	target := strings.TrimSuffix(strings.TrimSpace(elem.SelectAttr("target")), ";")
	if upper := strings.ToUpper(target); upper == "P" || upper == "T" {
		target = upper
	}
	if target == "" {
		return errors.WithStack(exerr.MissingIgnitionDefinition(
			exerr.WithMessage("ignitionType missing target attribute")))
	}

	typ := strings.TrimSpace(elem.SelectAttr("type"))
	switch typ {
	case "d/dt max", "max":
	default:
		return errors.WithStack(exerr.MissingIgnitionDefinition(exerr.WithMessage(
			fmt.Sprintf("unrecognized ignition type %q for target %q", typ, target))))
	}

	p.IgnitionTarget = target
	p.IgnitionType = typ

	if amount := strings.TrimSpace(elem.SelectAttr("amount")); amount != "" {
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return errors.Wrap(err, "parsing ignitionType amount")
		}
		q := quantity.Scalar(v, elem.SelectAttr("units"))
		p.IgnitionTargetValue = &q
	}
	return nil
}
