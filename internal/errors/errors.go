package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0   // Run completed.
	ExitErrorGeneric  = 1   // Unexpected failure.
	ExitErrorTimeout  = 2   // The -timeout budget was exhausted.
	ExitErrorMismatch = 3   // The algorithms disagreed on a product.
	ExitErrorConfig   = 4   // Invalid flags or environment.
	ExitErrorCanceled = 130 // Interrupted by the user (SIGINT).
)

// ConfigError reports invalid user input: a bad flag value, an
// inconsistent size range or an unusable output directory.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MultiplicationError records which algorithm failed and at which operand
// length. The wrapped cause is typically a length mismatch or a context
// error.
type MultiplicationError struct {
	Algorithm string
	Size      int
	Cause     error
}

func (e MultiplicationError) Error() string {
	return fmt.Sprintf("%s failed at n=%d: %v", e.Algorithm, e.Size, e.Cause)
}

func (e MultiplicationError) Unwrap() error { return e.Cause }

// HarnessError wraps a failure of the benchmark harness itself (sweep
// planning, persistence, report export) as opposed to a failure of one
// of the algorithms under test.
type HarnessError struct {
	Stage string
	Cause error
}

func (e HarnessError) Error() string {
	return fmt.Sprintf("benchmark %s: %v", e.Stage, e.Cause)
}

func (e HarnessError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation exceeded its time budget.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is(err, context.DeadlineExceeded) match a TimeoutError.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError names the input field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from a canceled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code documented above.
// Mismatches are not errors; callers return ExitErrorMismatch themselves.
func ExitCodeFor(err error) int {
	var cfg ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfg):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
