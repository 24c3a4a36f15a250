// Package errors provides the error taxonomy shared by the registry, the bulk
// workflow and the reconciliation engine.
//
// Absence is not an error: lookups that find nothing return a nil result.
// Everything else is either a ValidationError (rejected before any mutation),
// a DuplicateKeyError (a uniqueness constraint tripped at the storage layer)
// or a ParseError (a spreadsheet could not be read). Each typed error answers
// errors.Is for its sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New is an alias for the standard library errors.New.
var New = errors.New

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

var (
	// ErrInvalidInput indicates that caller supplied input violated a precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateKey indicates that a uniqueness constraint was violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMalformedFile indicates that a file could not be parsed in the expected format.
	ErrMalformedFile = errors.New("malformed file")
)

// ValidationError collects every violated precondition of a request.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Violations[0])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a ValidationError from the given violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Violations accumulates validation failures before deciding whether to reject.
type Violations []string

// Add records a violation.
func (v *Violations) Add(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

// Err returns a ValidationError when at least one violation was recorded.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: append([]string(nil), v...)}
}

// DuplicateKeyError reports a uniqueness violation for an entity key.
type DuplicateKeyError struct {
	Entity string
	Key    string
	Err    error
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Entity, e.Key)
}

// Unwrap implements errors.Unwrap
func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NewDuplicateKeyError creates a DuplicateKeyError.
func NewDuplicateKeyError(entity, key string, err error) *DuplicateKeyError {
	return &DuplicateKeyError{Entity: entity, Key: key, Err: err}
}

// ParseError reports a file that could not be read as a spreadsheet.
type ParseError struct {
	File string
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedFile
}

// NewParseError creates a ParseError.
func NewParseError(file string, err error) *ParseError {
	return &ParseError{File: file, Err: err}
}
