package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyField is returned when a required string field is empty.
	ErrEmptyField = errors.New("required field is empty")
	// ErrInvalidIdentifier is returned when an identifier is not lowercase alphanumeric.
	ErrInvalidIdentifier = errors.New("identifier must be lowercase alphanumeric")
	// ErrDuplicateIdentifier is returned when two builders share an identifier.
	ErrDuplicateIdentifier = errors.New("duplicate builder identifier")
	// ErrDuplicateName is returned when two builders share a name.
	ErrDuplicateName = errors.New("duplicate builder name")
	// ErrDuplicateWebsite is returned when two builders share a website URL.
	ErrDuplicateWebsite = errors.New("duplicate builder website")
	// ErrDuplicateRPC is returned when two builders share an RPC endpoint.
	ErrDuplicateRPC = errors.New("duplicate builder rpc endpoint")
	// ErrInvalidURL is returned when a URL field is malformed.
	ErrInvalidURL = errors.New("invalid url")
	// ErrAmbiguousExtraData is returned when two builders claim the same extra data,
	// which would make the statistics attribution ambiguous.
	ErrAmbiguousExtraData = errors.New("ambiguous extra data")
)

// ParseError is returned when a source document cannot be decoded.
type ParseError struct {
	// Document is the name of the offending source document.
	Document string
	// Field is the offending field, if known.
	Field string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Document, e.Err)
	}
	return fmt.Sprintf("%s: field %q: %v", e.Document, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every invariant violation found during
// generation, so that a single fix-and-rebuild cycle can address all issues.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, violation := range e.Violations {
		msgs[i] = violation.Error()
	}

	return fmt.Sprintf("builder registry validation failed (%d violations):\n\t%s",
		len(e.Violations), strings.Join(msgs, "\n\t"))
}

// Unwrap exposes the individual violations to errors.Is checks.
func (e *ValidationError) Unwrap() []error {
	return e.Violations
}
