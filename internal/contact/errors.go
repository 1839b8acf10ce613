package contact

import (
	"errors"
	"fmt"
)

// ErrInvalidField is the sentinel wrapped by every FieldError.
var ErrInvalidField = errors.New("contact: invalid field")

// FieldError reports a raw value that violates a field's grammar.
// Error returns the field's user-facing constraint message unchanged.
type FieldError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *FieldError) Error() string {
	return e.Constraint
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

func invalid(field, value, constraint string) *FieldError {
	return &FieldError{Field: field, Value: value, Constraint: constraint}
}

// must panics when err is non-nil. Used by the Must* constructors, which
// are reserved for seeding and fixtures where bad input is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("contact: %v", err))
	}
	return v
}
