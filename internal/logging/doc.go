// Package logging provides the structured logging interface used by the
// benchmark harness, the report writers and the command layer. The default
// backend is zerolog; a standard library adapter exists for callers that
// already hold a *log.Logger.
package logging
