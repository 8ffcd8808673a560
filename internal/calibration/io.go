package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/ui"
)

func printCalibrationResults(out io.Writer, results []Measurement, best int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sCutoff%s       │ %sExecution Time%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 25))
	for _, res := range results {
		label := fmt.Sprintf("%d", res.Cutoff)
		if res.Cutoff <= 1 {
			label = "1 (recursive)"
		}
		duration := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			duration = format.FormatExecutionDuration(res.Duration)
		}
		highlight := ""
		if res.Cutoff == best && res.Err == nil {
			highlight = fmt.Sprintf(" %s%s(Optimal)%s", ui.ColorBold(), ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%s%s%s\n", ui.ColorCyan(), label, ui.ColorReset(), ui.ColorYellow(), duration, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

func printCalibrationOutput(out io.Writer, p *CalibrationProfile, path string) {
	fmt.Fprintf(out, "\n%sCalibration complete%s: cutoff=%s (saved to %s)\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.Colorize(ui.ColorBold()+ui.ColorYellow(), fmt.Sprint(p.OptimalCutoff)), path)
}
