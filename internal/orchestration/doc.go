// Package orchestration runs the selected multipliers concurrently on one
// operand pair, cross-checks their products and hands the outcome to a
// presenter. It knows nothing about terminals: display goes through the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
