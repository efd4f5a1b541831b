// Package explore runs a complete walk: it builds or loads a space, plans a path through it and
// writes the artifacts consumed by the renderer.
package explore

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"go.viam.com/hyperwalk/config"
	"go.viam.com/hyperwalk/logging"
	"go.viam.com/hyperwalk/pathio"
	"go.viam.com/hyperwalk/sampling"
	"go.viam.com/hyperwalk/utils"
	"go.viam.com/hyperwalk/visualize"
	"go.viam.com/hyperwalk/walk"
)

const (
	plotWidth  = 800
	plotHeight = 600
)

// Result is what a run produced.
type Result struct {
	Space   *sampling.Space
	Path    walk.Path
	Summary walk.Summary
}

type options struct {
	progress walk.ProgressFunc
}

// Option changes how Run reports on its work.
type Option func(*options)

// WithProgress installs f as the planner's progress hook.
func WithProgress(f walk.ProgressFunc) Option {
	return func(o *options) {
		o.progress = f
	}
}

// Run executes cfg. The same seed and config always give the same path.
func Run(ctx context.Context, cfg config.Config, logger logging.Logger, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	//nolint:gosec
	randseed := rand.New(rand.NewSource(cfg.Seed))

	start := time.Now()
	space, err := loadSpace(ctx, cfg, randseed)
	if err != nil {
		return nil, err
	}
	logger.Infow("space ready", "size", space.Len(), "elapsed", time.Since(start))

	planner, err := walk.NewPlanner(space, walk.Config{Neighbors: cfg.Neighbors, Steps: cfg.Steps}, randseed, logger)
	if err != nil {
		return nil, err
	}
	planner.Progress = o.progress
	start = time.Now()
	path, err := planner.Plan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "planning stopped")
	}
	summary, err := walk.Summarize(path)
	if err != nil {
		return nil, err
	}
	logger.Infow("path planned",
		"entries", summary.Entries,
		"distinct", summary.Distinct,
		"revisits", summary.Revisits,
		"mean_deg", utils.RadToDeg(summary.MeanAngle),
		"p95_deg", utils.RadToDeg(summary.P95Angle),
		"max_deg", utils.RadToDeg(summary.MaxAngle),
		"elapsed", time.Since(start),
	)

	if err := writeOutputs(cfg, space, path, logger); err != nil {
		return nil, err
	}
	return &Result{Space: space, Path: path, Summary: summary}, nil
}

func loadSpace(ctx context.Context, cfg config.Config, randseed *rand.Rand) (*sampling.Space, error) {
	if cfg.SpaceInput != "" {
		members, err := pathio.ReadFile(cfg.SpaceInput)
		if err != nil {
			return nil, err
		}
		space, err := sampling.NewSpace(members)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid space in %q", cfg.SpaceInput)
		}
		return space, nil
	}
	if cfg.Workers <= 1 {
		return sampling.BuildSpace(randseed, cfg.Population)
	}
	return sampling.BuildSpaceParallel(ctx, randseed, cfg.Population, cfg.Workers)
}

func writeOutputs(cfg config.Config, space *sampling.Space, path walk.Path, logger logging.Logger) error {
	if err := pathio.WriteFile(cfg.Output, path.Orientations()); err != nil {
		return err
	}
	logger.Infow("wrote rotations", "file", cfg.Output, "rows", len(path))

	if cfg.TransformsOutput != "" {
		if err := pathio.WriteTransformsFile(cfg.TransformsOutput, path); err != nil {
			return err
		}
		logger.Debugw("wrote transformations", "file", cfg.TransformsOutput)
	}
	if cfg.SpaceOutput != "" {
		if err := pathio.WriteFile(cfg.SpaceOutput, space.Members()); err != nil {
			return err
		}
		logger.Debugw("wrote space", "file", cfg.SpaceOutput)
	}
	if cfg.PlotOutput != "" {
		if err := visualize.SaveSpacePNG(cfg.PlotOutput, space.Members(), plotWidth, plotHeight); err != nil {
			return err
		}
		logger.Debugw("wrote space plot", "file", cfg.PlotOutput)
	}
	if cfg.HistogramOutput != "" {
		if err := visualize.SaveStepHistogram(cfg.HistogramOutput, path.StepAngles()); err != nil {
			return err
		}
		logger.Debugw("wrote step histogram", "file", cfg.HistogramOutput)
	}
	return nil
}
