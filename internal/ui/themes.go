package ui

import (
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for terminal output.
type Theme struct {
	Name      string
	Primary   string // headings, the Karatsuba series
	Secondary string // labels, the naive series
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;82m",  // green
		Secondary: "\033[38;5;39m",  // blue
		Success:   "\033[38;5;82m",  // green
		Warning:   "\033[38;5;220m", // yellow
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;141m", // purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;28m",  // dark green
		Secondary: "\033[38;5;27m",  // dark blue
		Success:   "\033[38;5;28m",  // dark green
		Warning:   "\033[38;5;130m", // brown-orange
		Error:     "\033[38;5;124m", // dark red
		Info:      "\033[38;5;54m",  // dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme is selected by -no-color or NO_COLOR.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Series fixes the per-algorithm colors used by the chart, the animation
// and the dashboard sparklines.
var Series = struct {
	Naive     string
	Karatsuba string
}{
	Naive:     "#1f77b4",
	Karatsuba: "#2ca02c",
}

// TUITheme holds lipgloss colors for the live dashboard.
type TUITheme struct {
	Text      lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
	Naive     lipgloss.TerminalColor
	Karatsuba lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
}

var (
	DarkTUITheme = TUITheme{
		Text:      lipgloss.Color("#E0E0E0"),
		Border:    lipgloss.Color("#3A6EA5"),
		Accent:    lipgloss.Color("#7FDBFF"),
		Naive:     lipgloss.Color(Series.Naive),
		Karatsuba: lipgloss.Color(Series.Karatsuba),
		Success:   lipgloss.Color("#9ece6a"),
		Warning:   lipgloss.Color("#FFB347"),
		Error:     lipgloss.Color("#FF4444"),
		Dim:       lipgloss.Color("#666666"),
	}

	NoColorTUITheme = TUITheme{
		Text:      lipgloss.NoColor{},
		Border:    lipgloss.NoColor{},
		Accent:    lipgloss.NoColor{},
		Naive:     lipgloss.NoColor{},
		Karatsuba: lipgloss.NoColor{},
		Success:   lipgloss.NoColor{},
		Warning:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
		Dim:       lipgloss.NoColor{},
	}
)

// ThemeNames lists the names accepted by SetTheme, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentTUITheme derives the dashboard palette from the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme installs t directly. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name; unknown names select the dark theme.
func SetTheme(name string) {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme disables colors when noColor is set or the NO_COLOR
// environment variable exists (https://no-color.org/), and selects the
// dark theme otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
