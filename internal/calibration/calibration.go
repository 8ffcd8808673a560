package calibration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/agbru/mulbench/internal/config"
	apperrors "github.com/agbru/mulbench/internal/errors"
	"github.com/agbru/mulbench/internal/harness"
	"github.com/agbru/mulbench/internal/logging"
	"github.com/agbru/mulbench/internal/multiply"
)

// Repetitions per candidate; the fastest repetition counts.
const repetitions = 3

// calibrationSeed fixes the operands so that every candidate is timed on
// the same input.
const calibrationSeed = 0x63616c69

// Measurement is the time a candidate needed for all calibration inputs.
type Measurement struct {
	Cutoff   int
	Duration time.Duration
	Err      error
}

// Result is the outcome of FindCutoff.
type Result struct {
	Best         int
	Measurements []Measurement
}

// FindCutoff times Karatsuba with every candidate cutoff on pairs operand
// pairs of each size and returns the fastest. Candidates are tried in
// ascending order and a tie keeps the smaller cutoff. The context is
// checked between candidates.
func FindCutoff(ctx context.Context, candidates, sizes []int, pairs int) (Result, error) {
	if len(candidates) == 0 || len(sizes) == 0 || pairs < 1 {
		return Result{}, errors.New("calibration needs candidates, sizes and at least one pair")
	}
	candidates = slices.Clone(candidates)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	rng := rand.New(rand.NewPCG(calibrationSeed, calibrationSeed))
	inputs := make([][]harness.Pair, len(sizes))
	for i, n := range sizes {
		inputs[i] = harness.GeneratePairs(rng, n, pairs)
	}

	res := Result{Best: -1}
	var bestDuration time.Duration
	for _, cutoff := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		d, err := timeCutoff(cutoff, inputs)
		res.Measurements = append(res.Measurements, Measurement{Cutoff: cutoff, Duration: d, Err: err})
		if err != nil {
			continue
		}
		if res.Best < 0 || d < bestDuration {
			res.Best, bestDuration = cutoff, d
		}
	}
	if res.Best < 0 {
		return res, errors.New("every calibration candidate failed")
	}
	return res, nil
}

func timeCutoff(cutoff int, inputs [][]harness.Pair) (time.Duration, error) {
	best := time.Duration(-1)
	for rep := 0; rep < repetitions; rep++ {
		start := time.Now()
		for _, pairs := range inputs {
			for _, p := range pairs {
				if _, err := multiply.KaratsubaWithCutoff(p.A, p.B, cutoff); err != nil {
					return 0, err
				}
			}
		}
		if d := time.Since(start); best < 0 || d < best {
			best = d
		}
	}
	return best, nil
}

// RunCalibration performs a full calibration, prints the comparison table
// to out and saves the winning cutoff to the profile at cfg's path.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) (*CalibrationProfile, error) {
	fmt.Fprintf(out, "--- Calibration: searching for the fastest Karatsuba cutoff ---\n")
	start := time.Now()
	sizes := CalibrationSizes(cfg.MaxSize)
	res, err := FindCutoff(ctx, CandidateCutoffs(), sizes, 3)
	if err != nil {
		return nil, apperrors.HarnessError{Stage: "calibration", Cause: err}
	}
	printCalibrationResults(out, res.Measurements, res.Best)

	profile := NewProfile()
	profile.OptimalCutoff = res.Best
	profile.CalibrationSizes = sizes
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		logger.Warn("could not save calibration profile", logging.String("path", path), logging.Err(err))
	} else {
		logger.Info("calibration profile saved", logging.String("path", path), logging.Int("cutoff", res.Best))
	}
	printCalibrationOutput(out, profile, path)
	return profile, nil
}

// AutoCalibrate runs the quick search and returns cfg with its cutoff set.
// It is used when no profile exists and the user asked for calibration
// before a sweep; failures leave cfg unchanged.
func AutoCalibrate(ctx context.Context, cfg config.AppConfig, logger logging.Logger) config.AppConfig {
	res, err := FindCutoff(ctx, QuickCandidateCutoffs(), CalibrationSizes(cfg.MaxSize)[:1], 2)
	if err != nil {
		logger.Warn("quick calibration failed", logging.Err(err))
		return cfg
	}
	cfg.Cutoff = res.Best
	logger.Debug("quick calibration", logging.Int("cutoff", res.Best))
	return cfg
}
