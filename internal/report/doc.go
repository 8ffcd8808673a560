// Package report turns benchmark results into artifacts: an interactive
// HTML line chart, an animated GIF replaying the sweep, a plain-text
// summary table and the raw JSON/CSV samples.
package report
