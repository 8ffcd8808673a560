package app

import (
	"context"
	"io"

	"github.com/agbru/mulbench/internal/cli"
	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/orchestration"
)

// runCompare multiplies the -a/-b pair with every selected algorithm and
// checks that the products agree.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, cancel := setupLifecycle(ctx, a.Config.Timeout)
	defer cancel()

	presenter := cli.CLIResultPresenter{}
	x, y, err := a.Config.Operands()
	if err != nil {
		return presenter.HandleError(err, 0, out)
	}

	multipliers := orchestration.GetMultipliersToRun(a.Config, a.Factory)
	if len(multipliers) == 0 {
		return presenter.HandleError(apperrors.NewConfigError("no algorithm selected"), 0, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	} else {
		names := make([]string, len(multipliers))
		for i, m := range multipliers {
			names[i] = m.Name()
		}
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(names, out)
	}

	results := orchestration.ExecuteMultiplications(ctx, multipliers, x, y, a.Config.ToMultiplyOptions(), reporter, progressOut)
	presOpts := orchestration.PresentationOptions{A: x, B: y, Verbose: a.Config.Verbose}

	if a.Config.Quiet {
		// Results are sorted fastest-success first by the analysis.
		code := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, io.Discard)
		if code == apperrors.ExitSuccess {
			cli.DisplayQuietResult(out, results[0].Product)
		}
		return code
	}
	return orchestration.AnalyzeComparisonResults(results, presOpts, presenter, out)
}
