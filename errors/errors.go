// Package errors defines the tagged errors returned by every pqdate operation.
// Callers branch on the Kind, never on the message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is the stable tag carried by a DateError.
type Kind string

const (
	// KindParseInvalid means the value is not a real calendar moment,
	// or a string does not decode as one.
	KindParseInvalid Kind = "E_PARSE_INVALID"
	// KindRange means a structurally valid input violates a cross-field invariant.
	KindRange Kind = "E_RANGE"
	// KindArgInvalid means an argument has the wrong shape.
	KindArgInvalid Kind = "E_ARG_INVALID"
)

var (
	ErrInvalidDate     = New(KindParseInvalid, "Invalid date")
	ErrNotISO          = New(KindParseInvalid, "Input must be ISO 8601")
	ErrParseInput      = New(KindArgInvalid, "parseISO expects string input")
	ErrInvalidDuration = New(KindArgInvalid, "add expects Duration")
	ErrInvalidUnit     = New(KindArgInvalid, "Invalid unit")
	ErrInvalidLocation = New(KindArgInvalid, "Invalid location")
	ErrIntervalRange   = New(KindRange, "Interval start > end")
	ErrOutOfRange      = New(KindRange, "Date out of range")
)

// DateError is a failure tagged with its Kind. Cause is optional, left out of
// Error and only reachable through errors.Unwrap.
type DateError struct {
	Kind    Kind
	Message string
	Cause   error
}

func New(kind Kind, message string) *DateError {
	return &DateError{Kind: kind, Message: message}
}

// Wrap returns a copy of base carrying cause. The copy still matches base with errors.Is.
func Wrap(base *DateError, cause error) *DateError {
	return &DateError{Kind: base.Kind, Message: base.Message, Cause: cause}
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DateError) Unwrap() error {
	return e.Cause
}

// Is matches any DateError with the same kind and message.
func (e *DateError) Is(target error) bool {
	t, ok := target.(*DateError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// KindOf returns the Kind of the first DateError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DateError
	if stderrors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries a DateError of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
