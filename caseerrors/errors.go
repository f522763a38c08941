package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidInput indicates the input could not be treated as text.
	// Both ErrMissingValue and ErrInvalidType errors match it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingValue indicates no value was supplied.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidType indicates a value was supplied but is not text.
	ErrInvalidType = errors.New("invalid type")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// MissingValueError is returned when the input is the representation of
// "no value": nil, a nil pointer or a nil interface.
type MissingValueError struct {
	// Operation names the converter that rejected the input (e.g. "ToCamelCase")
	Operation string
}

// Error returns a human-readable error message.
func (e *MissingValueError) Error() string {
	msg := "missing value"
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	return msg + ": input cannot be nil"
}

// Is reports whether target matches this error type.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue || target == ErrInvalidInput
}

// InvalidTypeError is returned when the input is present but is not text.
type InvalidTypeError struct {
	// Operation names the converter that rejected the input
	Operation string
	// Type is the Go type of the rejected value (e.g. "int")
	Type string
}

// Error returns a human-readable error message.
func (e *InvalidTypeError) Error() string {
	msg := "invalid type"
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	msg += ": input must be a string"
	if e.Type != "" {
		msg += ", got " + e.Type
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType || target == ErrInvalidInput
}

// ConfigError represents an invalid configuration or input.
// This includes unknown convention names and conflicting input sources.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
