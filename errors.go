package datamodel

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotRecord is returned when a value that does not implement the
	// Record interface is asked to enumerate its fields.
	ErrNotRecord = errors.New("datamodel: value is not a record")
)

// NotRecordError reports that a value passed to the reflection layer is
// not a record definition.
type NotRecordError struct {
	typ string // Go type of the offending value
}

// Error returns the error string.
func (e *NotRecordError) Error() string {
	if e.typ != "" {
		return fmt.Sprintf("datamodel: %s is not a record", e.typ)
	}
	return "datamodel: value is not a record"
}

// Is reports whether the target error matches NotRecordError.
// This allows errors.Is(notRecordErr, ErrNotRecord) to return true.
func (e *NotRecordError) Is(err error) bool {
	return err == ErrNotRecord
}

// Type returns the Go type name of the offending value.
func (e *NotRecordError) Type() string {
	return e.typ
}

// NewNotRecordError returns a new NotRecordError for the given type name.
func NewNotRecordError(typ string) *NotRecordError {
	return &NotRecordError{typ: typ}
}

// IsNotRecord returns true if the error is a NotRecordError.
func IsNotRecord(err error) bool {
	if err == nil {
		return false
	}
	var e *NotRecordError
	return errors.As(err, &e) || errors.Is(err, ErrNotRecord)
}

// ValidationError represents a validation error for field values.
type ValidationError struct {
	Name string // Field or record name
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("datamodel: validator failed for field %q: %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given field.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "datamodel: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("datamodel: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
