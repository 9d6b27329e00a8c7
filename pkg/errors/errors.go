// Package errors provides custom error types for the sheetrecon system.
// These errors enable programmatic error checking and consistent classification
// of reconciliation failures throughout the engine.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the sheetrecon system
var (
	// ErrNotFound indicates that a requested dataset or worksheet was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrStructuralMismatch indicates that two worksheets do not share enough
	// headers to be compared row by row
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents a resolution failure: a requested dataset or
// worksheet name does not exist in the supplied set.
type NotFoundError struct {
	Resource string // "dataset", "worksheet"
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure on input data
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// StructuralError reports that fewer headers matched between two worksheets
// than the structural gate requires. Row comparison is not attempted when
// this error is produced.
type StructuralError struct {
	Source   string
	Target   string
	Matched  int
	Required int
}

// Error implements the error interface
func (e *StructuralError) Error() string {
	return fmt.Sprintf("worksheets %s and %s share too few headers: %d matched, %d required",
		e.Source, e.Target, e.Matched, e.Required)
}

// Is implements errors.Is support
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// NewStructuralError creates a new StructuralError
func NewStructuralError(source, target string, matched, required int) *StructuralError {
	return &StructuralError{Source: source, Target: target, Matched: matched, Required: required}
}

// ComparisonError wraps an unexpected internal fault raised while scoring a
// worksheet pair. It is recovered at the comparator boundary and downgraded
// to an Error-status result; it never escapes to the caller as an error value.
type ComparisonError struct {
	Source string
	Target string
	Err    error
}

// Error implements the error interface
func (e *ComparisonError) Error() string {
	return fmt.Sprintf("comparison of %s against %s failed: %v", e.Source, e.Target, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ComparisonError) Unwrap() error {
	return e.Err
}

// NewComparisonError creates a new ComparisonError
func NewComparisonError(source, target string, err error) *ComparisonError {
	return &ComparisonError{Source: source, Target: target, Err: err}
}

// ParseError represents an error when parsing a source file into a dataset
type ParseError struct {
	Format  string // "csv", "xlsx"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStructuralMismatch checks if an error is a structural mismatch
func IsStructuralMismatch(err error) bool {
	return errors.Is(err, ErrStructuralMismatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
