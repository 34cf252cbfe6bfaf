package experiment

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/ignitiondata/respecth/exerr"
)

// experimentType text declared by documents this package understands
const typeIgnitionDelay = "ignition delay measurement"

var (
	xpExperimentType = xpath.MustCompile(`/experiment/experimentType`)
	xpApparatusKind  = xpath.MustCompile(`/experiment/apparatus/kind`)
	xpCommonProperty = xpath.MustCompile(`/experiment/commonProperties/property`)
	xpIgnitionType   = xpath.MustCompile(`/experiment/ignitionType`)
	xpDataGroup      = xpath.MustCompile(`/experiment/dataGroup`)

	// relative to a commonProperties property element
	xpValue       = xpath.MustCompile(`value`)
	xpComponent   = xpath.MustCompile(`component`)
	xpSpeciesLink = xpath.MustCompile(`speciesLink`)
	xpAmount      = xpath.MustCompile(`amount`)

	// relative to a dataGroup element
	xpColumn    = xpath.MustCompile(`property`)
	xpDataPoint = xpath.MustCompile(`dataPoint`)
)

// Classify returns the experiment kind declared by the document's
// apparatus element. The document must declare an ignition delay
// measurement; anything else, or an unknown apparatus kind, fails
// with an unknown-experiment-kind error.
func Classify(doc *xmlquery.Node) (Kind, error) {
	et := xmlquery.QuerySelector(doc, xpExperimentType)
	if et == nil {
		return 0, errors.WithStack(exerr.UnknownExperimentKind("",
			exerr.WithMessage("no experimentType element")))
	}
	if text := strings.TrimSpace(et.InnerText()); !strings.EqualFold(text, typeIgnitionDelay) {
		return 0, errors.WithStack(exerr.UnknownExperimentKind(text,
			exerr.WithSubject("experimentType")))
	}
	apparatus := xmlquery.QuerySelector(doc, xpApparatusKind)
	if apparatus == nil {
		return 0, errors.WithStack(exerr.UnknownExperimentKind("",
			exerr.WithMessage("no apparatus kind element")))
	}
	switch kind := strings.TrimSpace(apparatus.InnerText()); kind {
	case "shock tube":
		return ShockTube, nil
	case "rapid compression machine":
		return RCM, nil
	default:
		return 0, errors.WithStack(exerr.UnknownExperimentKind(kind,
			exerr.WithSubject("apparatus/kind")))
	}
}

// Extract runs all extraction stages over a parsed document.
func Extract(doc *xmlquery.Node) (*Properties, error) {
	p := &Properties{}
	kind, err := Classify(doc)
	if err != nil {
		return nil, err
	}
	p.Kind = kind
	if err := CommonProperties(p, doc); err != nil {
		return nil, err
	}
	if err := IgnitionDescriptor(p, doc); err != nil {
		return nil, err
	}
	if err := DataGroups(p, doc); err != nil {
		return nil, err
	}
	return p, nil
}

// Read parses an experiment document from r and extracts its properties.
func Read(r io.Reader) (*Properties, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing experiment document")
	}
	return Extract(doc)
}

// ReadFile parses and extracts the experiment document at path.
func ReadFile(path string) (*Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening experiment document")
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filepath.Base(path))
	}
	return p, nil
}
