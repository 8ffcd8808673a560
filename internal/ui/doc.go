// Package ui holds the color themes shared by the CLI presenter, the live
// dashboard and the chart renderer. Terminal output reads ANSI codes from
// the active Theme, the dashboard reads lipgloss colors from TUITheme, and
// the HTML chart and GIF animation use the fixed Series palette so that
// both algorithms keep the same color in every artifact.
package ui
