package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling
const (
	// Input and environment errors
	ErrCodeIO              = "IO_FAILURE"
	ErrCodeEncoding        = "ENCODING_FAILURE"
	ErrCodePatternCompile  = "PATTERN_COMPILE"
	ErrCodeMissingData     = "MISSING_DATA"
	ErrCodeUnsupportedHook = "UNSUPPORTED_HOOK"

	// Policy errors
	ErrCodePolicyViolation = "POLICY_VIOLATION"
)

// GuardError represents a standardized error with code and context.
//
// GuardError carries everything the dispatcher needs to decide how a
// failed hook run is reported:
//   - Code: standardized error code for programmatic handling
//   - Message: human-readable error description
//   - Cause: underlying error that caused this error (optional)
//   - Context: additional contextual information as key-value pairs
//   - Operation: the operation that failed (optional)
//
// Example usage:
//
//	err := ErrMissingData("ticket identifier").WithContext("branch", "main")
//	if IsGuardError(err, ErrCodeMissingData) {
//	  // Handle missing ticket
//	}
type GuardError struct {
	Code      string                 // Standardized error code (see ErrCode* constants)
	Message   string                 // Human-readable error message
	Cause     error                  // Underlying error that caused this error
	Context   map[string]interface{} // Additional contextual information
	Operation string                 // The operation that failed
}

// Error implements the error interface
func (e *GuardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *GuardError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code
func (e *GuardError) Is(target error) bool {
	if t, ok := target.(*GuardError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *GuardError) WithContext(key string, value interface{}) *GuardError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsViolation reports whether the error is a policy outcome rather than a
// failure to evaluate the policy.
func (e *GuardError) IsViolation() bool {
	return e.Code == ErrCodePolicyViolation
}

// NewGuardError creates a new standardized error
func NewGuardError(code, message string, cause error) *GuardError {
	return &GuardError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewGuardErrorf creates a new standardized error with formatted message
func NewGuardErrorf(code string, cause error, format string, args ...interface{}) *GuardError {
	return &GuardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Error factory functions for common error types

func ErrIO(operation string, cause error) *GuardError {
	return NewGuardErrorf(ErrCodeIO, cause, "I/O error during %s", operation).
		WithContext("operation", operation)
}

func ErrEncoding(source string) *GuardError {
	return NewGuardErrorf(ErrCodeEncoding, nil, "encoding error: %s is not valid UTF-8", source).
		WithContext("source", source)
}

func ErrPatternCompile(pattern string, cause error) *GuardError {
	return NewGuardErrorf(ErrCodePatternCompile, cause, "invalid pattern %q", pattern).
		WithContext("pattern", pattern)
}

func ErrMissingData(what string) *GuardError {
	return NewGuardErrorf(ErrCodeMissingData, nil, "missing %s", what).
		WithContext("what", what)
}

func ErrUnsupportedHook(name string) *GuardError {
	return NewGuardErrorf(ErrCodeUnsupportedHook, nil, "unsupported hook: %s", name).
		WithContext("hook", name)
}

// ErrPolicyViolation wraps a message meant to be shown to the user verbatim.
func ErrPolicyViolation(message string) *GuardError {
	return NewGuardError(ErrCodePolicyViolation, message, nil)
}

// Helper function to check if an error is a specific guard error
func IsGuardError(err error, code string) bool {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Code == code
	}
	return false
}

// Helper function to check if an error is a policy violation
func IsViolation(err error) bool {
	var guardErr *GuardError
	return errors.As(err, &guardErr) && guardErr.IsViolation()
}

// Helper function to get the guard error code from any error
func GetErrorCode(err error) string {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Code
	}
	return ""
}

// Helper function to get error context
func GetErrorContext(err error) map[string]interface{} {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Context
	}
	return nil
}
