// Package config parses the mulbench command line and environment into an
// AppConfig and validates it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/multiply"
)

// EnvPrefix prefixes every environment override, e.g. MULBENCH_STEPS.
const EnvPrefix = "MULBENCH_"

// Defaults. Zero Steps, Pairs, Seed and Cutoff mean "choose automatically".
const (
	DefaultAlgo    = "all"
	DefaultMinSize = 10
	DefaultMaxSize = 10_000
	DefaultTimeout = 30 * time.Minute
	DefaultOutDir  = "."
	DefaultCutoff  = 1
)

// AppConfig holds every user-tunable setting.
type AppConfig struct {
	// A and B, when both set, select compare mode on a single pair.
	A, B string
	Algo string

	MinSize int
	MaxSize int
	Steps   int
	Pairs   int
	Seed    uint64
	Cutoff  int
	Verify  bool
	Timeout time.Duration

	OutDir      string
	NoChart     bool
	NoAnimation bool
	TUI         bool

	Calibrate          bool
	AutoCalibrate      bool
	CalibrationProfile string

	MetricsAddr string

	Quiet    bool
	Verbose  bool
	NoColor  bool
	LogLevel string
}

// IsCompareMode reports whether a single explicit pair was supplied.
func (c AppConfig) IsCompareMode() bool { return c.A != "" || c.B != "" }

// ToMultiplyOptions converts the configuration into multiply.Options.
func (c AppConfig) ToMultiplyOptions() multiply.Options {
	cutoff := c.Cutoff
	if cutoff == 0 {
		cutoff = DefaultCutoff
	}
	return multiply.Options{Cutoff: cutoff}
}

// Operands parses the -a and -b vectors.
func (c AppConfig) Operands() (multiply.Vector, multiply.Vector, error) {
	a, err := multiply.ParseVector(c.A)
	if err != nil {
		return nil, nil, apperrors.NewConfigError("invalid -a: %v", err)
	}
	b, err := multiply.ParseVector(c.B)
	if err != nil {
		return nil, nil, apperrors.NewConfigError("invalid -b: %v", err)
	}
	if len(a) != len(b) {
		return nil, nil, apperrors.NewConfigError("-a and -b must have the same number of digits (got %d and %d)", len(a), len(b))
	}
	return a, b, nil
}

// Validate checks value ranges and cross-field consistency. Errors are
// apperrors.ConfigError values.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Cutoff < 0 {
		return apperrors.NewConfigError("cutoff cannot be negative: %d", c.Cutoff)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("-quiet and -tui are mutually exclusive")
	}

	if c.IsCompareMode() {
		if c.A == "" || c.B == "" {
			return apperrors.NewConfigError("compare mode needs both -a and -b")
		}
		_, _, err := c.Operands()
		return err
	}

	if c.MinSize < 1 {
		return apperrors.NewConfigError("min-size must be at least 1: %d", c.MinSize)
	}
	if c.MaxSize < c.MinSize {
		return apperrors.NewConfigError("max-size (%d) must not be smaller than min-size (%d)", c.MaxSize, c.MinSize)
	}
	if c.Steps < 0 {
		return apperrors.NewConfigError("steps cannot be negative: %d", c.Steps)
	}
	if c.Pairs < 0 {
		return apperrors.NewConfigError("pairs cannot be negative: %d", c.Pairs)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags win over MULBENCH_* variables, which win over defaults. Parse and
// validation problems are reported on errorWriter followed by the usage.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.A, "a", "", "First operand digits, least significant first (e.g. \"1,2,3\"). Enables compare mode.")
	fs.StringVar(&config.B, "b", "", "Second operand digits, same length as -a.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, fmt.Sprintf("Algorithm to run: 'all' or one of [%s].", strings.Join(availableAlgos, ", ")))
	fs.IntVar(&config.MinSize, "min-size", DefaultMinSize, "Smallest vector length of the sweep.")
	fs.IntVar(&config.MaxSize, "max-size", DefaultMaxSize, "Largest vector length of the sweep.")
	fs.IntVar(&config.Steps, "steps", 0, "Number of sizes in the sweep (0 draws one in [100, 200]).")
	fs.IntVar(&config.Pairs, "pairs", 0, "Random pairs per size (0 draws one in [10, 20]).")
	fs.Uint64Var(&config.Seed, "seed", 0, "Random seed (0 derives one from the clock).")
	fs.IntVar(&config.Cutoff, "cutoff", 0, "Karatsuba falls back to direct convolution at or below this length (0 uses the calibration profile or 1).")
	fs.BoolVar(&config.Verify, "verify", false, "Cross-check every product of the sweep between algorithms.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.StringVar(&config.OutDir, "out", DefaultOutDir, "Directory receiving the chart, animation and samples.")
	fs.BoolVar(&config.NoChart, "no-chart", false, "Do not write comparison.html.")
	fs.BoolVar(&config.NoAnimation, "no-animation", false, "Do not write evolution.gif.")
	fs.BoolVar(&config.TUI, "tui", false, "Show the live terminal dashboard while benchmarking.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Search for the fastest Karatsuba cutoff and save it.")
	fs.BoolVar(&config.AutoCalibrate, "auto-calibrate", false, "Run a quick cutoff search before the sweep when no profile applies.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Calibration profile path (default ~/.mulbench_calibration.json).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print full product vectors and per-size lines.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
