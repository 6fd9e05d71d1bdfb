package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates YAML parsing failed.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates the merged configuration is unusable.
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrInvalidValue indicates a field holds an out-of-range value.
	ErrInvalidValue = errors.New("invalid field value")
)

// LoadError wraps configuration loading errors with file context.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a load error for the given file.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

// FieldError reports a single invalid configuration field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErrorf(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Err: fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))}
}
