package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/mulbench/internal/errors"
)

var testAlgos = []string{"karatsuba", "naive"}

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("mulbench", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Algo != "all" || cfg.MinSize != 10 || cfg.MaxSize != 10_000 {
		t.Errorf("unexpected sweep defaults: %+v", cfg)
	}
	if cfg.Steps != 0 || cfg.Pairs != 0 || cfg.Seed != 0 || cfg.Cutoff != 0 {
		t.Errorf("automatic values should default to 0: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Minute || cfg.OutDir != "." || cfg.LogLevel != "warn" {
		t.Errorf("unexpected ambient defaults: %+v", cfg)
	}
	if cfg.IsCompareMode() {
		t.Error("defaults should select sweep mode")
	}
	if got := cfg.ToMultiplyOptions().Cutoff; got != DefaultCutoff {
		t.Errorf("ToMultiplyOptions().Cutoff = %d, want %d", got, DefaultCutoff)
	}
}

func TestParseConfig_AllFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-algo", "KARATSUBA",
		"-min-size", "16", "-max-size", "4096",
		"-steps", "120", "-pairs", "12", "-seed", "42",
		"-cutoff", "32", "-verify", "-timeout", "90s",
		"-out", "reports", "-no-chart", "-no-animation",
		"-calibrate", "-calibration-profile", "p.json",
		"-metrics-addr", ":9090", "-v", "-no-color", "-log-level", "debug",
	}
	cfg, err := ParseConfig("mulbench", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := AppConfig{
		Algo: "karatsuba", MinSize: 16, MaxSize: 4096, Steps: 120, Pairs: 12, Seed: 42,
		Cutoff: 32, Verify: true, Timeout: 90 * time.Second, OutDir: "reports",
		NoChart: true, NoAnimation: true, Calibrate: true, CalibrationProfile: "p.json",
		MetricsAddr: ":9090", Verbose: true, NoColor: true, LogLevel: "debug",
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
	if cfg.ToMultiplyOptions().Cutoff != 32 {
		t.Errorf("cutoff not carried into options")
	}
}

func TestParseConfig_CompareMode(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("mulbench", []string{"-a", "1,2,3", "-b", "[4, 5, 6]"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsCompareMode() {
		t.Fatal("expected compare mode")
	}
	a, b, err := cfg.Operands()
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "[1, 2, 3]" || b.String() != "[4, 5, 6]" {
		t.Errorf("operands = %v, %v", a, b)
	}
}

func TestParseConfig_ValidationErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"-algo", "toom3"}, "unrecognized algorithm"},
		{"zero timeout", []string{"-timeout", "0s"}, "timeout"},
		{"negative cutoff", []string{"-cutoff", "-1"}, "cutoff"},
		{"min size zero", []string{"-min-size", "0"}, "min-size"},
		{"inverted range", []string{"-min-size", "100", "-max-size", "10"}, "max-size"},
		{"negative steps", []string{"-steps", "-5"}, "steps"},
		{"negative pairs", []string{"-pairs", "-1"}, "pairs"},
		{"bad log level", []string{"-log-level", "chatty"}, "log level"},
		{"quiet tui", []string{"-q", "-tui"}, "mutually exclusive"},
		{"only a", []string{"-a", "1,2"}, "both -a and -b"},
		{"length mismatch", []string{"-a", "1,2", "-b", "3"}, "same number of digits"},
		{"bad digit", []string{"-a", "1,x", "-b", "3,4"}, "invalid -a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			_, err := ParseConfig("mulbench", tt.args, &buf, testAlgos)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error %v should wrap a ConfigError", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q should mention %q", buf.String(), tt.want)
			}
			if !strings.Contains(buf.String(), "Usage:") {
				t.Error("usage should follow a configuration error")
			}
		})
	}
}

func TestParseConfig_HelpAndUnknownFlag(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := ParseConfig("mulbench", []string{"-h"}, &buf, testAlgos)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "-min-size") {
		t.Error("usage should list flags")
	}

	if _, err := ParseConfig("mulbench", []string{"-bogus"}, io.Discard, testAlgos); err == nil {
		t.Error("expected error for unknown flag")
	}
}

// Environment tests cannot run in parallel.
func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MULBENCH_STEPS", "150")
	t.Setenv("MULBENCH_PAIRS", "11")
	t.Setenv("MULBENCH_SEED", "7")
	t.Setenv("MULBENCH_ALGO", "naive")
	t.Setenv("MULBENCH_TIMEOUT", "2m")
	t.Setenv("MULBENCH_VERIFY", "yes")
	t.Setenv("MULBENCH_QUIET", "1")
	t.Setenv("MULBENCH_OUT", "/tmp/mb")
	t.Setenv("MULBENCH_CUTOFF", "not-a-number")

	cfg, err := ParseConfig("mulbench", []string{"-pairs", "13"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Steps != 150 || cfg.Seed != 7 || cfg.Algo != "naive" {
		t.Errorf("env values not applied: %+v", cfg)
	}
	if cfg.Pairs != 13 {
		t.Errorf("flag should beat env: pairs = %d", cfg.Pairs)
	}
	if cfg.Timeout != 2*time.Minute || !cfg.Verify || !cfg.Quiet || cfg.OutDir != "/tmp/mb" {
		t.Errorf("env values not applied: %+v", cfg)
	}
	if cfg.Cutoff != 0 {
		t.Errorf("unparseable env value should be ignored, cutoff = %d", cfg.Cutoff)
	}
}

func TestParseConfig_ShorthandBlocksEnv(t *testing.T) {
	t.Setenv("MULBENCH_QUIET", "false")
	cfg, err := ParseConfig("mulbench", []string{"-q"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Quiet {
		t.Error("-q should take precedence over MULBENCH_QUIET")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{" 1 ", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
