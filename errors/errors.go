// Package errors provides standardized error handling patterns for SemGather.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorConfig represents errors raised at setup time: invalid
	// registration, malformed namespaces, mismatched gatherer params.
	// Fatal to the operation that triggered them, never retried.
	ErrorConfig ErrorClass = iota
	// ErrorTraversal represents integrity errors raised while walking the
	// graph during a pull: record cycles, malformed facts. The whole pull
	// aborts; triples already committed remain (no rollback).
	ErrorTraversal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorConfig:
		return "config"
	case ErrorTraversal:
		return "traversal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions.
//
// Soft misses (predicate absent, unresolvable focus IRI, no gatherer for a
// requested predicate) are NOT errors in this system; they are represented
// as empty result sequences. Only configuration and traversal-integrity
// conditions get error variables.
var (
	// Registration and organizer setup errors
	ErrNoCriteria        = errors.New("gatherer registered with no predicates and no focus types")
	ErrDuplicateGatherer = errors.New("gatherer name already registered")
	ErrParamMismatch     = errors.New("gatherer params do not match organizer declaration")

	// Identifier namespace errors
	ErrMalformedNamespace = errors.New("namespace iri has no separator")
	ErrNameNotAllowed     = errors.New("name not in namespace allow-list")
	ErrNotInNamespace     = errors.New("iri not in namespace")

	// Value model errors
	ErrUnsupportedValue = errors.New("unsupported value type")
	ErrNotASequence     = errors.New("blank record is not a sequence")
	ErrInvalidPathSet   = errors.New("cannot normalize path set shape")
	ErrTripleNotFound   = errors.New("triple not found")

	// Traversal integrity errors
	ErrRecordCycle   = errors.New("blank record contains itself")
	ErrMalformedFact = errors.New("malformed fact")

	// Focus resolution; callers of ResolveFocus get this, the traversal
	// engine treats it as a soft miss and skips the branch silently
	ErrCannotResolveFocus = errors.New("no recorded type for iri")

	// Configuration file errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// GatherError wraps an error with its classification and a machine-checkable
// label paired with a human-readable comment. The label is stable across
// releases; the comment is not.
type GatherError struct {
	Class   ErrorClass
	Label   string
	Comment string
	Err     error
}

// Error implements the error interface
func (ge *GatherError) Error() string {
	if ge.Comment != "" {
		return fmt.Sprintf("%s: %s", ge.Label, ge.Comment)
	}
	if ge.Err != nil {
		return fmt.Sprintf("%s: %s", ge.Label, ge.Err.Error())
	}
	return ge.Label
}

// Unwrap returns the underlying error
func (ge *GatherError) Unwrap() error {
	return ge.Err
}

// NewConfig creates a configuration error with a label/comment pair,
// optionally wrapping a sentinel so callers can use errors.Is.
func NewConfig(label, comment string, err error) *GatherError {
	return &GatherError{
		Class:   ErrorConfig,
		Label:   label,
		Comment: comment,
		Err:     err,
	}
}

// NewTraversal creates a traversal-integrity error with a label/comment pair,
// optionally wrapping a sentinel so callers can use errors.Is.
func NewTraversal(label, comment string, err error) *GatherError {
	return &GatherError{
		Class:   ErrorTraversal,
		Label:   label,
		Comment: comment,
		Err:     err,
	}
}

// IsConfig checks whether an error is a setup-time configuration error
func IsConfig(err error) bool {
	var ge *GatherError
	if errors.As(err, &ge) {
		return ge.Class == ErrorConfig
	}
	return false
}

// IsTraversal checks whether an error is a traversal-integrity error
func IsTraversal(err error) bool {
	var ge *GatherError
	if errors.As(err, &ge) {
		return ge.Class == ErrorTraversal
	}
	return false
}

// Label returns the machine-checkable label of an error, or "" if the error
// carries none.
func Label(err error) string {
	var ge *GatherError
	if errors.As(err, &ge) {
		return ge.Label
	}
	return ""
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so callers need only one errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
// Re-exported so callers need only one errors import.
func New(text string) error {
	return errors.New(text)
}
