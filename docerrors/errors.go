// Package docerrors provides structured error types for docctx.
//
// The assembly engine itself is total: none of the builder mutators nor
// Build can fail. Errors only surface at the edges, where fragments are
// decoded from YAML/JSON, type names are resolved, or a builder is created
// without a documentation type.
//
// # Usage with errors.As
//
//	frag, err := fragment.Decode(data)
//	if err != nil {
//	    var parseErr *docerrors.ParseError
//	    if errors.As(err, &parseErr) {
//	        fmt.Println(parseErr.Line)
//	    }
//	}
package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a fragment could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration or a violated precondition.
	ErrConfig = errors.New("configuration error")

	// ErrUnknownType indicates a type name is not registered with the resolver.
	ErrUnknownType = errors.New("unknown type")
)

// ParseError represents a failure to decode a configuration fragment.
type ParseError struct {
	// Source is the file path or source identifier
	Source string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// A builder created without a documentation type panics with a *ConfigError.
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
