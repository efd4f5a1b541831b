package explore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/hyperwalk/config"
	"go.viam.com/hyperwalk/logging"
	"go.viam.com/hyperwalk/pathio"
	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/utils"
	"go.viam.com/hyperwalk/walk"
)

func smallConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.Population = 120
	cfg.Steps = 40
	cfg.Workers = 1
	cfg.Output = filepath.Join(dir, "rotations.csv")
	return cfg
}

func TestRunWritesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	cfg.TransformsOutput = filepath.Join(dir, "labels.csv")
	cfg.SpaceOutput = filepath.Join(dir, "space.csv")
	cfg.PlotOutput = filepath.Join(dir, "space.png")
	cfg.HistogramOutput = filepath.Join(dir, "angles.png")

	logger, logs := logging.NewObservedTestLogger(t)
	res, err := Run(context.Background(), cfg, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Path, test.ShouldHaveLength, 41)
	test.That(t, res.Space.Len(), test.ShouldEqual, 120)
	test.That(t, res.Summary.Entries, test.ShouldEqual, 41)
	test.That(t, logs.FilterMessage("path planned").Len(), test.ShouldEqual, 1)

	rows, err := pathio.ReadFile(cfg.Output)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rows, test.ShouldHaveLength, 41)
	for i, q := range rows {
		test.That(t, spatialmath.AlmostEqual(q, res.Path[i].Orientation, 1e-12), test.ShouldBeTrue)
	}

	members, err := pathio.ReadFile(cfg.SpaceOutput)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, members, test.ShouldResemble, res.Space.Members())

	for _, name := range []string{cfg.TransformsOutput, cfg.PlotOutput, cfg.HistogramOutput} {
		info, err := os.Stat(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
	}
}

func TestRunIsReproducible(t *testing.T) {
	a, err := Run(context.Background(), smallConfig(t.TempDir()), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	b, err := Run(context.Background(), smallConfig(t.TempDir()), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, a.Path, test.ShouldResemble, b.Path)

	parallelCfg := smallConfig(t.TempDir())
	parallelCfg.Workers = 3
	c, err := Run(context.Background(), parallelCfg, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	d, err := Run(context.Background(), parallelCfg, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Path, test.ShouldResemble, d.Path)
}

func TestRunDefaultWorkersIgnoreHost(t *testing.T) {
	saved := utils.ParallelFactor
	defer func() {
		utils.ParallelFactor = saved
	}()

	run := func(factor int) walk.Path {
		utils.ParallelFactor = factor
		cfg := smallConfig(t.TempDir())
		cfg.Workers = config.Default().Workers
		// large enough that each step is scored across ParallelFactor groups
		cfg.Population = 1500
		res, err := Run(context.Background(), cfg, logging.NewTestLogger(t))
		test.That(t, err, test.ShouldBeNil)
		return res.Path
	}
	test.That(t, run(4), test.ShouldResemble, run(16))
}

func TestRunFromSavedSpace(t *testing.T) {
	dir := t.TempDir()
	first := smallConfig(dir)
	first.SpaceOutput = filepath.Join(dir, "space.csv")
	res, err := Run(context.Background(), first, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	second := smallConfig(t.TempDir())
	second.SpaceInput = first.SpaceOutput
	second.Neighbors = 0
	reloaded, err := Run(context.Background(), second, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, reloaded.Space.Members(), test.ShouldResemble, res.Space.Members())

	// a loaded space too small for the window fails before planning
	tiny := filepath.Join(t.TempDir(), "tiny.csv")
	test.That(t, pathio.WriteFile(tiny, res.Space.Members()[:3]), test.ShouldBeNil)
	third := smallConfig(t.TempDir())
	third.SpaceInput = tiny
	third.Neighbors = 2
	_, err = Run(context.Background(), third, logging.NewTestLogger(t))
	var windowErr *walk.NeighborWindowError
	test.That(t, errors.As(err, &windowErr), test.ShouldBeTrue)
	_, statErr := os.Stat(third.Output)
	test.That(t, os.IsNotExist(statErr), test.ShouldBeTrue)
}

func TestRunReportsProgress(t *testing.T) {
	var calls, last, total int
	_, err := Run(context.Background(), smallConfig(t.TempDir()), logging.NewTestLogger(t),
		WithProgress(func(done, n int) {
			calls++
			last, total = done, n
		}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, calls, test.ShouldEqual, 41)
	test.That(t, last, test.ShouldEqual, 41)
	test.That(t, total, test.ShouldEqual, 41)
}

func TestRunValidationAndCancel(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Steps = 0
	_, err := Run(context.Background(), cfg, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, smallConfig(t.TempDir()), logging.NewTestLogger(t))
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}
