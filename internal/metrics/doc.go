// Package metrics reads runtime memory statistics for the benchmark report
// and exposes the process's Prometheus collectors over HTTP while a run is
// in progress.
package metrics
