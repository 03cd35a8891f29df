// Package ttlerr defines the typed error taxonomy for the timetabling core.
package ttlerr

import (
	"errors"
	"fmt"
)

// Code tags an Error with the failure kind from spec section 7.
type Code string

const (
	CodeValidation     Code = "VALIDATION_ERROR"
	CodeInfeasible     Code = "INFEASIBLE"
	CodeTimeout        Code = "TIMEOUT"
	CodeSolverInternal Code = "SOLVER_INTERNAL"
)

// Error is a code-tagged domain error that wraps an underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates an Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code, unwrapping as needed.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Predefined validation sentinels (spec section 7, input-validation kind).
var (
	ErrUnknownInstructor  = New(CodeValidation, "subject references an unknown instructor")
	ErrUnknownBranch      = New(CodeValidation, "subject branch is not present among rooms")
	ErrBadOccurrenceCount = New(CodeValidation, "lecture_occurrences must be 1 or 2")
	ErrBadSectionDuration = New(CodeValidation, "section_duration_hours must be 1 or 2")
	ErrEmptyDays          = New(CodeValidation, "DAYS must not be empty")
	ErrBadHourWindow      = New(CodeValidation, "END_HOUR must be greater than START_HOUR")

	ErrInfeasible     = New(CodeInfeasible, "no assignment satisfies all constraints")
	ErrTimeout        = New(CodeTimeout, "solver returned no feasible assignment within the time bound")
	ErrSolverInternal = New(CodeSolverInternal, "solver failed internally")
)
