package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrInputTooLong = errors.New("input text is too long")
	ErrInvalidRange = errors.New("invalid due date range")
)

// ErrorKind classifies why an extraction failed.
type ErrorKind string

const (
	KindEmptyResponse     ErrorKind = "empty_response"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindMissingTitle      ErrorKind = "missing_title"
	KindProviderFailure   ErrorKind = "provider_failure"
)

// Sentinels for errors.Is; they match any ExtractionError of the same kind.
var (
	ErrEmptyResponse     = &ExtractionError{Kind: KindEmptyResponse}
	ErrMalformedResponse = &ExtractionError{Kind: KindMalformedResponse}
	ErrMissingTitle      = &ExtractionError{Kind: KindMissingTitle}
	ErrProviderFailure   = &ExtractionError{Kind: KindProviderFailure}
)

// ExtractionError is returned when natural-language input could not be turned
// into a task. Err holds the underlying cause, if any.
type ExtractionError struct {
	Kind ErrorKind
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("task extraction: %s", e.Kind)
	}
	return fmt.Sprintf("task extraction: %s: %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is matches another ExtractionError by kind.
func (e *ExtractionError) Is(target error) bool {
	t, ok := target.(*ExtractionError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the ExtractionError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

// NewExtractionError builds an ExtractionError of the given kind.
func NewExtractionError(kind ErrorKind, err error) error {
	return &ExtractionError{Kind: kind, Err: err}
}
