package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/mulbench/internal/config"
	"github.com/agbru/mulbench/internal/sysmon"
	"github.com/agbru/mulbench/internal/ui"
)

// PrintExecutionConfig displays the run parameters and the environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	if cfg.IsCompareMode() {
		fmt.Fprintf(out, "Multiplying one pair with a timeout of %s%s%s.\n",
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Sweeping n from %s%d%s to %s%d%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.MinSize, ui.ColorReset(),
			ui.ColorMagenta(), cfg.MaxSize, ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if model := sysmon.CPUModel(); model != "" {
		fmt.Fprintf(out, "CPU: %s%s%s.\n", ui.ColorCyan(), model, ui.ColorReset())
	}
	features := "none detected"
	if f := sysmon.CPUFeatures(); len(f) > 0 {
		features = strings.Join(f, ", ")
	}
	fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), features, ui.ColorReset())
	fmt.Fprintf(out, "Karatsuba cutoff: %s%d%s coefficients.\n",
		ui.ColorCyan(), cfg.ToMultiplyOptions().Cutoff, ui.ColorReset())
}

// PrintExecutionMode names the algorithms about to run.
func PrintExecutionMode(names []string, out io.Writer) {
	var modeDesc string
	switch len(names) {
	case 0:
		modeDesc = "no algorithm selected"
	case 1:
		modeDesc = fmt.Sprintf("Single run with the %s%s%s algorithm", ui.ColorGreen(), names[0], ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Comparison of %s%s%s", ui.ColorGreen(), strings.Join(names, ", "), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
