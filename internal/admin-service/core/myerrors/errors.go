package myerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUnknownCredentials = errors.New("invalid credentials or not an admin")
)

// NotFoundError means the target id does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ConflictError means a dependency guard tripped and the delete was refused.
type ConflictError struct {
	Entity       string
	Relationship string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete %s with %s, delete or reassign them first", e.Entity, e.Relationship)
}

// ValidationError means a field value is outside its enumerated domain.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s, must be one of: %s", e.Field, strings.Join(e.Allowed, ", "))
}

// InternalError carries an unexpected storage or transport failure.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Internal wraps err as an InternalError unless it already belongs to the
// taxonomy, so guard failures keep their original shape through call chains.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var (
		nf *NotFoundError
		cf *ConflictError
		ve *ValidationError
		in *InternalError
	)
	if errors.As(err, &nf) || errors.As(err, &cf) || errors.As(err, &ve) || errors.As(err, &in) {
		return err
	}
	return &InternalError{Err: err}
}
