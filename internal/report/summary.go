package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/harness"
)

// MaxSummaryRows bounds the table printed by Summary; longer sweeps are
// sampled evenly, always keeping the first and last sizes.
const MaxSummaryRows = 15

// Summary prints the average time per call at a selection of sizes, the
// Naive/Karatsuba ratio when both were measured, and run totals.
func Summary(w io.Writer, r *harness.Results) error {
	if r == nil || r.Len() == 0 {
		return ErrNoSamples
	}
	_, hasNaive := r.Series["Naive"]
	_, hasKaratsuba := r.Series["Karatsuba"]
	withRatio := hasNaive && hasKaratsuba
	var ratios []float64
	if withRatio {
		ratios = r.Ratio("Naive", "Karatsuba")
	}

	if hasKaratsuba && r.Cutoff > 1 {
		fmt.Fprintf(w, "Karatsuba cutoff %d: sub-problems of length <= %d use the direct method.\n\n", r.Cutoff, r.Cutoff)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.AlignRight)
	header := []string{"n"}
	header = append(header, r.Algorithms...)
	if withRatio {
		header = append(header, "Naive/Karatsuba")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, i := range summaryRows(r.Len(), MaxSummaryRows) {
		row := []string{format.FormatInt(r.Sizes[i])}
		for _, name := range r.Algorithms {
			row = append(row, format.FormatSeconds(r.Series[name][i].Seconds()))
		}
		if withRatio {
			row = append(row, format.FormatRatio(ratios[i]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d sizes, %d pairs per size, seed %d, elapsed %s\n",
		r.Len(), r.Pairs, r.Seed, format.FormatExecutionDuration(r.Elapsed))
	if withRatio && r.Len() > 1 {
		trend := r.RatioTrend("Naive", "Karatsuba")
		verdict := "Karatsuba pulls ahead as n grows"
		if trend <= 0 {
			verdict = "no advantage for Karatsuba over this range"
		}
		fmt.Fprintf(w, "Ratio trend: %+.3g per element (%s)\n", trend, verdict)
	}
	if r.Memory.Allocated > 0 {
		fmt.Fprintf(w, "Allocated %s over %d GC cycles, peak heap %s\n",
			format.FormatBytes(r.Memory.Allocated), r.Memory.GCCycles, format.FormatBytes(r.Memory.PeakHeap))
	}
	if !r.Complete {
		fmt.Fprintln(w, "Run interrupted: results cover the completed sizes only.")
	}
	return nil
}

// summaryRows picks at most limit indices out of n, evenly spaced.
func summaryRows(n, limit int) []int {
	if n <= limit {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	rows := make([]int, limit)
	for i := range rows {
		rows[i] = i * (n - 1) / (limit - 1)
	}
	return rows
}
