package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstraint is matched by every error produced while building
	// a constraint or parsing a constraint payload.
	ErrInvalidConstraint = errors.New("invalid filter")

	ErrUnknownField = errors.New("unknown filter field")
	ErrInvalidShape = errors.New("invalid constraint shape")
	ErrUnknownValue = errors.New("unknown filter value")
	ErrInvalidDate  = errors.New("invalid date")
)

// ConstraintError reports a rejected constraint for a single field.
type ConstraintError struct {
	Field  string
	Err    error
	Detail string
}

func (e *ConstraintError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ConstraintError) Unwrap() []error {
	return []error{ErrInvalidConstraint, e.Err}
}
