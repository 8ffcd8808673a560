// Package harness runs the timing sweep that compares multiplication
// algorithms across a range of input sizes.
//
// A Plan fixes the sizes, the number of operand pairs per size and the
// seed. Runner.Run generates the pairs for each size once, times every
// algorithm over all of them back to back and records the average cost of
// a single call. The collected Results can be persisted as JSON or CSV and
// are consumed by the report and tui packages.
package harness
