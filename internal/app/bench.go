package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/mulbench/internal/cli"
	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/harness"
	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/orchestration"
	"github.com/agbru/mulbench/internal/progress"
	"github.com/agbru/mulbench/internal/report"
	"github.com/agbru/mulbench/internal/tui"
	"github.com/agbru/mulbench/internal/ui"
)

// runBenchmark sweeps the configured sizes, then writes the report and
// prints the summary. Interrupted runs still report the sizes completed.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	ctx, cancel := setupLifecycle(ctx, a.Config.Timeout)
	defer cancel()

	presenter := cli.CLIResultPresenter{}
	plan, err := harness.NewPlan(harness.PlanConfig{
		MinSize: a.Config.MinSize,
		MaxSize: a.Config.MaxSize,
		Steps:   a.Config.Steps,
		Pairs:   a.Config.Pairs,
		Seed:    a.Config.Seed,
	})
	if err != nil {
		return presenter.HandleError(apperrors.NewConfigError("%v", err), 0, out)
	}
	algos := orchestration.GetAlgorithmsToRun(a.Config, a.Factory)
	if len(algos) == 0 {
		return presenter.HandleError(apperrors.NewConfigError("no algorithm selected"), 0, out)
	}
	runner := harness.Runner{
		Options: a.Config.ToMultiplyOptions(),
		Verify:  a.Config.Verify,
		Logger:  a.Logger,
	}
	a.Logger.Info("benchmark started",
		logging.Int("sizes", len(plan.Sizes)),
		logging.Int("pairs", plan.Pairs),
		logging.Uint64("seed", plan.Seed),
		logging.Int("cutoff", runner.Options.Cutoff))

	if a.Config.TUI {
		results, code := tui.Run(ctx, tui.Job{Plan: plan, Algorithms: algos, Runner: runner}, Version)
		if results != nil {
			if exportCode := a.writeReport(ctx, results, out); code == apperrors.ExitSuccess {
				code = exportCode
			}
		}
		return code
	}

	if !a.Config.Quiet {
		names := make([]string, len(algos))
		for i, algo := range algos {
			names[i] = algo.Name()
		}
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(names, out)
		fmt.Fprintf(out, "%d sizes × %d pairs, seed %d\n", len(plan.Sizes), plan.Pairs, plan.Seed)
	}

	start := time.Now()
	results, runErr := a.sweep(ctx, &runner, plan, algos, out)
	a.Logger.Info("benchmark finished", logging.Duration("elapsed", time.Since(start)), logging.Err(runErr))

	code := a.writeReport(ctx, results, out)
	if runErr != nil {
		if errors.Is(runErr, harness.ErrMismatch) {
			fmt.Fprintf(out, "\n%sStatus: CRITICAL ERROR! %v%s\n", ui.ColorRed(), runErr, ui.ColorReset())
			return apperrors.ExitErrorMismatch
		}
		return presenter.HandleError(runErr, time.Since(start), out)
	}
	return code
}

// sweep runs the harness with the spinner display attached.
func (a *Application) sweep(ctx context.Context, runner *harness.Runner, plan *harness.Plan, algos []multiply.Algorithm, out io.Writer) (*harness.Results, error) {
	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	ch := make(chan progress.ProgressUpdate, len(algos)*orchestration.ProgressBufferMultiplier)
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, len(algos), progressOut)

	runner.Progress = ch
	if a.Config.Verbose {
		runner.OnSample = func(s harness.Sample) {
			fields := []logging.Field{logging.Int("n", s.Size), logging.Int("index", s.Index+1), logging.Int("total", s.Total)}
			for name, d := range s.Averages {
				fields = append(fields, logging.Duration(name, d))
			}
			a.Logger.Info("size measured", fields...)
		}
	}
	results, err := runner.Run(ctx, plan, algos)
	close(ch)
	wg.Wait()
	return results, err
}

// writeReport exports the artifacts and prints the summary. It runs even
// after the sweep context was canceled, so partial results are kept.
func (a *Application) writeReport(ctx context.Context, results *harness.Results, out io.Writer) int {
	if results == nil || results.Len() == 0 {
		return apperrors.ExitSuccess
	}
	paths, err := report.Export(context.WithoutCancel(ctx), a.Config.OutDir, results, report.ExportOptions{
		NoChart:     a.Config.NoChart,
		NoAnimation: a.Config.NoAnimation,
	})
	if err != nil {
		a.Logger.Error("report export failed", err, logging.String("dir", a.Config.OutDir))
		fmt.Fprintf(out, "Status: Failure. Could not write the report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.Quiet {
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
		return apperrors.ExitSuccess
	}

	fmt.Fprintln(out)
	if err := report.Summary(out, results); err != nil {
		a.Logger.Warn("summary failed", logging.Err(err))
	}
	if a.Config.Verbose {
		cli.DisplayMemoryStats(results.Memory, out)
	}
	fmt.Fprintf(out, "\n%sReport written:%s\n", ui.ColorGreen(), ui.ColorReset())
	for _, p := range paths {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorCyan(), p, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}
