package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	tmpDir := t.TempDir()
	binName := "mulbench"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/mulbench")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build mulbench: %v", err)
	}

	profile := filepath.Join(tmpDir, "profile.json")
	outDir := filepath.Join(tmpDir, "report")

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Compare",
			args:    []string{"-a", "1,2,3", "-b", "4,5,6"},
			wantOut: "[4, 13, 28, 27, 18, 0]",
		},
		{
			name:    "Compare Quiet",
			args:    []string{"-a", "9", "-b", "9", "-q"},
			wantOut: "[81, 0]",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:     "Mismatched Operands",
			args:     []string{"-a", "1,2", "-b", "3"},
			wantOut:  "same number of digits",
			wantCode: 4,
		},
		{
			name:    "Small Sweep",
			args:    []string{"-min-size", "4", "-max-size", "64", "-steps", "5", "-pairs", "2", "-seed", "11", "-out", outDir},
			wantOut: "ratio trend",
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"-min-size", "5000", "-max-size", "10000", "-timeout", "1ms", "-out", outDir},
			wantCode: 2,
		},
		{
			name:    "Calibrate",
			args:    []string{"-calibrate", "-max-size", "64"},
			wantOut: "calibration complete",
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "mulbench",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-calibration-profile", profile}, tt.args...)
			cmd := exec.Command(binPath, args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running mulbench: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}

	for _, name := range []string{"results.json", "results.csv", "comparison.html", "evolution.gif"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("sweep did not write %s: %v", name, err)
		}
	}
}
