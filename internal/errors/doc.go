// Package apperrors holds the error types shared by the mulbench command,
// its benchmark harness and its report writers, together with the process
// exit codes they map to.
//
// Every wrapper type implements Unwrap so that callers can keep using
// errors.Is and errors.As against the underlying cause, e.g. to detect a
// context deadline behind a HarnessError.
package apperrors
