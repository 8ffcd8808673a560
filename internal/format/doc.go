// Package format renders durations, progress bars, ETAs and numbers for
// the CLI and the live dashboard.
package format
