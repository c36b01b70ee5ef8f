// Package apperrors defines the two run-aborting error kinds of the
// generator: an exhausted uniqueness/dedupe retry loop, and a sink I/O
// failure. Both are fatal; there is no partial-success mode.
package apperrors

import "fmt"

type Kind string

const (
	KindGeneratorExhausted Kind = "generator_exhausted"
	KindIO                 Kind = "io_error"
)

// Error represents an application error
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrIO) works
// regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New creates a new Error
func New(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrGeneratorExhausted = New(KindGeneratorExhausted, "Generator exhausted", nil)
	ErrIO                 = New(KindIO, "IO error", nil)
)

// Exhausted builds a generator-exhausted error for one value family.
func Exhausted(family string) *Error {
	return New(KindGeneratorExhausted, fmt.Sprintf("Generator exhausted: no fresh %s within the attempt cap", family), nil)
}

// IO wraps a sink failure.
func IO(op string, err error) *Error {
	return New(KindIO, "IO error: "+op, err)
}
