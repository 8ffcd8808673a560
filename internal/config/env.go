package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride maps MULBENCH_<envKey> to the flag(s) it stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intSetter(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*dst(c) = n
		}
	}
}

func boolSetter(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

func stringSetter(dst func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *dst(c) = v }
}

var envOverrides = []envOverride{
	{"MIN_SIZE", []string{"min-size"}, intSetter(func(c *AppConfig) *int { return &c.MinSize })},
	{"MAX_SIZE", []string{"max-size"}, intSetter(func(c *AppConfig) *int { return &c.MaxSize })},
	{"STEPS", []string{"steps"}, intSetter(func(c *AppConfig) *int { return &c.Steps })},
	{"PAIRS", []string{"pairs"}, intSetter(func(c *AppConfig) *int { return &c.Pairs })},
	{"CUTOFF", []string{"cutoff"}, intSetter(func(c *AppConfig) *int { return &c.Cutoff })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},

	{"ALGO", []string{"algo"}, stringSetter(func(c *AppConfig) *string { return &c.Algo })},
	{"OUT", []string{"out"}, stringSetter(func(c *AppConfig) *string { return &c.OutDir })},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, stringSetter(func(c *AppConfig) *string { return &c.CalibrationProfile })},
	{"METRICS_ADDR", []string{"metrics-addr"}, stringSetter(func(c *AppConfig) *string { return &c.MetricsAddr })},
	{"LOG_LEVEL", []string{"log-level"}, stringSetter(func(c *AppConfig) *string { return &c.LogLevel })},

	{"VERIFY", []string{"verify"}, boolSetter(func(c *AppConfig) *bool { return &c.Verify })},
	{"NO_CHART", []string{"no-chart"}, boolSetter(func(c *AppConfig) *bool { return &c.NoChart })},
	{"NO_ANIMATION", []string{"no-animation"}, boolSetter(func(c *AppConfig) *bool { return &c.NoAnimation })},
	{"TUI", []string{"tui"}, boolSetter(func(c *AppConfig) *bool { return &c.TUI })},
	{"CALIBRATE", []string{"calibrate"}, boolSetter(func(c *AppConfig) *bool { return &c.Calibrate })},
	{"AUTO_CALIBRATE", []string{"auto-calibrate"}, boolSetter(func(c *AppConfig) *bool { return &c.AutoCalibrate })},
	{"QUIET", []string{"quiet", "q"}, boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolSetter(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", []string{"no-color"}, boolSetter(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills in values from MULBENCH_* variables for flags
// the user did not pass. Unparseable values are ignored.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
