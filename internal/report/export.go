package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/mulbench/internal/harness"
)

// Artifact file names written by Export.
const (
	ChartFile     = "comparison.html"
	AnimationFile = "evolution.gif"
	JSONFile      = "results.json"
	CSVFile       = "results.csv"
)

// ExportOptions selects which artifacts Export produces. JSON and CSV are
// always written.
type ExportOptions struct {
	NoChart     bool
	NoAnimation bool
	Chart       ChartOptions
	Animation   AnimationOptions
}

// DefaultExportOptions enables every artifact.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Chart: DefaultChartOptions(), Animation: DefaultAnimationOptions()}
}

// Export writes the selected artifacts into dir concurrently and returns
// the paths written, in a fixed order. dir is created if needed.
func Export(ctx context.Context, dir string, r *harness.Results, o ExportOptions) ([]string, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrNoSamples
	}
	if o.Chart == (ChartOptions{}) {
		o.Chart = DefaultChartOptions()
	}
	if o.Animation == (AnimationOptions{}) {
		o.Animation = DefaultAnimationOptions()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	type job struct {
		name   string
		render func(io.Writer) error
	}
	jobs := []job{
		{JSONFile, func(w io.Writer) error { return harness.WriteJSON(w, r) }},
		{CSVFile, func(w io.Writer) error { return harness.WriteCSV(w, r) }},
	}
	if !o.NoChart {
		jobs = append(jobs, job{ChartFile, func(w io.Writer) error { return RenderStaticChart(w, r, o.Chart) }})
	}
	if !o.NoAnimation {
		jobs = append(jobs, job{AnimationFile, func(w io.Writer) error { return RenderAnimation(w, r, o.Animation) }})
	}

	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		paths[i] = filepath.Join(dir, j.name)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(paths[i], j.render)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
