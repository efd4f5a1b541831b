package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"go.viam.com/hyperwalk/animate"
	"go.viam.com/hyperwalk/config"
	"go.viam.com/hyperwalk/explore"
	"go.viam.com/hyperwalk/logging"
	"go.viam.com/hyperwalk/pathio"
	"go.viam.com/hyperwalk/utils"
	"go.viam.com/hyperwalk/visualize"
)

func newLogger(c *cli.Context) logging.Logger {
	if c.Bool(generalFlagDebug) {
		return logging.NewDebugLogger("hyperwalk")
	}
	return logging.NewLogger("hyperwalk")
}

// walkConfig starts from the config file, if any, and applies every flag that was set explicitly.
// Without a config file the flag defaults apply.
func walkConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	fromFile := false
	if path := c.String(generalFlagConfig); path != "" {
		var err error
		if cfg, err = config.Read(path); err != nil {
			return config.Config{}, err
		}
		fromFile = true
	}
	use := func(flag string) bool {
		return !fromFile || c.IsSet(flag)
	}

	if use(walkFlagPopulation) {
		cfg.Population = c.Int(walkFlagPopulation)
	}
	if use(walkFlagNeighbors) {
		cfg.Neighbors = c.Int(walkFlagNeighbors)
	}
	if use(walkFlagSteps) {
		cfg.Steps = c.Int(walkFlagSteps)
	}
	if use(walkFlagSeed) {
		cfg.Seed = c.Int64(walkFlagSeed)
	}
	if use(walkFlagWorkers) {
		cfg.Workers = c.Int(walkFlagWorkers)
	}
	if use(walkFlagOutput) {
		cfg.Output = c.String(walkFlagOutput)
	}
	if use(walkFlagTransformsOutput) {
		cfg.TransformsOutput = c.String(walkFlagTransformsOutput)
	}
	if use(walkFlagSpaceInput) {
		cfg.SpaceInput = c.String(walkFlagSpaceInput)
	}
	if use(walkFlagSpaceOutput) {
		cfg.SpaceOutput = c.String(walkFlagSpaceOutput)
	}
	if use(walkFlagPlot) {
		cfg.PlotOutput = c.String(walkFlagPlot)
	}
	if use(walkFlagHistogram) {
		cfg.HistogramOutput = c.String(walkFlagHistogram)
	}
	return cfg, nil
}

// WalkAction samples a space, plans a path and writes the configured outputs.
func WalkAction(c *cli.Context) error {
	cfg, err := walkConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	progress := newWalkProgress(c.Bool(walkFlagProgress), nil)
	res, err := explore.Run(c.Context, cfg, logger, explore.WithProgress(progress.Update))
	progress.Finish(err)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %d rotations to %s (mean step %.2f°, max %.2f°, %d distinct of %d)\n",
		len(res.Path), cfg.Output,
		utils.RadToDeg(res.Summary.MeanAngle), utils.RadToDeg(res.Summary.MaxAngle),
		res.Summary.Distinct, res.Space.Len())
	return nil
}

// PlotAction draws a saved space.
func PlotAction(c *cli.Context) error {
	qs, err := pathio.ReadFile(c.String(plotFlagSpace))
	if err != nil {
		return err
	}
	out := c.String(plotFlagOut)
	if err := visualize.SaveSpacePNG(out, qs, c.Int(plotFlagWidth), c.Int(plotFlagHeight)); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "drew %d quaternions to %s\n", len(qs), out)
	return nil
}

// GIFAction assembles rendered frames into a GIF.
func GIFAction(c *cli.Context) error {
	out := c.String(gifFlagOut)
	if err := animate.AssembleGIF(c.String(gifFlagFrames), out, c.Int(gifFlagDelay), newLogger(c)); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", out)
	return nil
}
