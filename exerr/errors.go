// Package exerr defines the error kinds raised while extracting an
// experiment document. All kinds are fatal to the offending document;
// callers processing a batch should catch per document and continue.
package exerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tag values identifying the extraction error kinds.
const (
	TagUnknownExperimentKind     = "unknown-experiment-kind"
	TagMissingIgnitionDefinition = "missing-ignition-definition"
	TagInconsistentSeriesLength  = "inconsistent-series-length"
	TagMissingProperty           = "missing-required-property"
)

// Error represents an extraction error for a single document.
type Error struct {
	// Tag identifies the error kind, one of the Tag constants.
	Tag string
	// Subject names the document element, property or column the
	// error concerns, when one applies.
	Subject string
	// File is the source document filename, when known.
	File string
	// Message carries additional free-form detail.
	Message string
}

func (e Error) Error() string {
	s := "extraction error tag:" + e.Tag
	if e.Subject != "" {
		s += " subject:" + e.Subject
	}
	if e.File != "" {
		s += " file:" + e.File
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// UnknownExperimentKind reports that the document's declared kind
// matches no known experiment type.
func UnknownExperimentKind(kind string, opts ...Option) *Error {
	e := &Error{
		Tag:     TagUnknownExperimentKind,
		Message: fmt.Sprintf("unrecognized experiment kind %q", kind),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingIgnitionDefinition reports an absent or uninterpretable
// ignition target/type definition.
func MissingIgnitionDefinition(opts ...Option) *Error {
	e := &Error{Tag: TagMissingIgnitionDefinition}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InconsistentSeriesLength reports two multi-valued data series
// disagreeing on row count.
func InconsistentSeriesLength(name string, n, m int, opts ...Option) *Error {
	e := &Error{
		Tag:     TagInconsistentSeriesLength,
		Subject: name,
		Message: fmt.Sprintf("series length %d conflicts with %d", n, m),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingProperty reports that a property required by the classified
// experiment kind is absent after extraction.
func MissingProperty(name string, opts ...Option) *Error {
	e := &Error{Tag: TagMissingProperty, Subject: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsTag returns true if err is, or wraps, an *Error carrying tag.
func IsTag(err error, tag string) bool {
	var e *Error
	return errors.As(err, &e) && e.Tag == tag
}

// IsUnknownExperimentKind returns true for unknown-experiment-kind errors.
func IsUnknownExperimentKind(err error) bool { return IsTag(err, TagUnknownExperimentKind) }

// IsMissingIgnitionDefinition returns true for missing-ignition-definition errors.
func IsMissingIgnitionDefinition(err error) bool { return IsTag(err, TagMissingIgnitionDefinition) }

// IsInconsistentSeriesLength returns true for inconsistent-series-length errors.
func IsInconsistentSeriesLength(err error) bool { return IsTag(err, TagInconsistentSeriesLength) }

// IsMissingProperty returns true for missing-required-property errors.
func IsMissingProperty(err error) bool { return IsTag(err, TagMissingProperty) }
