package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/mulbench/internal/calibration"
	"github.com/agbru/mulbench/internal/config"
	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/ui"
)

// Application represents the mulbench application instance.
type Application struct {
	Config    config.AppConfig
	Factory   multiply.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom multiplier factory for the application.
func WithFactory(f multiply.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the console logger built from -log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line
// arguments. args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = multiply.GlobalFactory()
	}

	programName := "mulbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	profilePath := cfg.CalibrationProfile
	if profilePath == "" {
		profilePath = calibration.GetDefaultProfilePath()
	}
	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, profilePath); loaded {
		cfg = cfgWithProfile
	}
	app.Config = cfg

	if app.Logger == nil {
		level, _ := logging.ParseLevel(cfg.LogLevel)
		zerolog.SetGlobalLevel(level)
		app.Logger = logging.NewConsoleLogger(errWriter, "mulbench", level, cfg.NoColor)
	}
	return app, nil
}

// Run executes the mode selected by the configuration and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	stopMetrics, err := startMetrics(a.Config.MetricsAddr, a.Logger)
	if err != nil {
		a.Logger.Error("metrics exporter failed to start", err, logging.String("addr", a.Config.MetricsAddr))
	}
	defer stopMetrics()

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}
	a.Config = a.runAutoCalibrationIfEnabled(ctx)

	if a.Config.IsCompareMode() {
		return a.runCompare(ctx, out)
	}
	return a.runBenchmark(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
