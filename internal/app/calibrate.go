package app

import (
	"context"
	"io"

	"github.com/agbru/mulbench/internal/calibration"
	"github.com/agbru/mulbench/internal/cli"
	"github.com/agbru/mulbench/internal/config"
	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/logging"
)

// runCalibration runs the full cutoff search and saves the profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, cancel := setupLifecycle(ctx, a.Config.Timeout)
	defer cancel()

	if _, err := calibration.RunCalibration(ctx, a.Config, out, a.Logger); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, out)
	}
	return apperrors.ExitSuccess
}

// runAutoCalibrationIfEnabled runs the quick search when requested and no
// explicit or cached cutoff is set.
func (a *Application) runAutoCalibrationIfEnabled(ctx context.Context) config.AppConfig {
	if !a.Config.AutoCalibrate || a.Config.Cutoff != 0 || a.Config.IsCompareMode() {
		return a.Config
	}
	cfg := calibration.AutoCalibrate(ctx, a.Config, a.Logger)
	if cfg.Cutoff != 0 {
		a.Logger.Info("auto-calibrated Karatsuba cutoff", logging.Int("cutoff", cfg.Cutoff))
	}
	return cfg
}
