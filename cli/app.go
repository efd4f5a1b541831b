// Package cli contains the hyperwalk command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/hyperwalk/animate"
	"go.viam.com/hyperwalk/config"
)

const (
	// Flags.
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	walkFlagPopulation       = "population"
	walkFlagNeighbors        = "neighbors"
	walkFlagSteps            = "steps"
	walkFlagSeed             = "seed"
	walkFlagWorkers          = "workers"
	walkFlagOutput           = "output"
	walkFlagTransformsOutput = "transforms-output"
	walkFlagSpaceInput       = "space-input"
	walkFlagSpaceOutput      = "space-output"
	walkFlagPlot             = "plot"
	walkFlagHistogram        = "histogram"
	walkFlagProgress         = "progress"

	plotFlagSpace  = "space"
	plotFlagOut    = "out"
	plotFlagWidth  = "width"
	plotFlagHeight = "height"

	gifFlagFrames = "frames"
	gifFlagOut    = "out"
	gifFlagDelay  = "delay"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "hyperwalk",
		Usage:           "sample rotations on the 3-sphere and walk them in small, smooth steps",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "walk",
				Usage:     "sample a space of quaternions and write a path through it",
				UsageText: "hyperwalk walk [--config FILE] [--output rotations.csv] [other options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    generalFlagConfig,
						Aliases: []string{"c"},
						Usage:   "load configuration from `FILE`; flags override it",
					},
					&cli.IntFlag{
						Name:  walkFlagPopulation,
						Usage: "number of quaternions to sample",
						Value: config.DefaultPopulation,
					},
					&cli.IntFlag{
						Name:  walkFlagNeighbors,
						Usage: "pick each step uniformly among this many best candidates",
						Value: config.DefaultNeighbors,
					},
					&cli.IntFlag{
						Name:  walkFlagSteps,
						Usage: "number of steps after the initial one",
						Value: config.DefaultSteps,
					},
					&cli.Int64Flag{
						Name:  walkFlagSeed,
						Usage: "random seed",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  walkFlagWorkers,
						Usage: "goroutines sampling the space; 0 and 1 sample serially",
					},
					&cli.StringFlag{
						Name:    walkFlagOutput,
						Aliases: []string{"o"},
						Usage:   "write one w,x,y,z row per path entry to `FILE`",
						Value:   config.DefaultOutput,
					},
					&cli.StringFlag{
						Name:  walkFlagTransformsOutput,
						Usage: "also write the per-frame transformations to `FILE`",
					},
					&cli.StringFlag{
						Name:  walkFlagSpaceInput,
						Usage: "load the space from `FILE` instead of sampling it",
					},
					&cli.StringFlag{
						Name:  walkFlagSpaceOutput,
						Usage: "save the sampled space to `FILE`",
					},
					&cli.StringFlag{
						Name:  walkFlagPlot,
						Usage: "draw the space to a PNG `FILE`",
					},
					&cli.StringFlag{
						Name:  walkFlagHistogram,
						Usage: "plot the step angles to `FILE`",
					},
					&cli.BoolFlag{
						Name:  walkFlagProgress,
						Usage: "show a spinner while planning",
					},
				},
				Action: WalkAction,
			},
			{
				Name:  "plot",
				Usage: "draw a saved space as arrows in a unit sphere",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     plotFlagSpace,
						Usage:    "space `FILE` written by walk --space-output",
						Required: true,
					},
					&cli.StringFlag{
						Name:  plotFlagOut,
						Usage: "PNG `FILE` to write",
						Value: "quaternions_distribution.png",
					},
					&cli.IntFlag{
						Name:  plotFlagWidth,
						Value: 800,
					},
					&cli.IntFlag{
						Name:  plotFlagHeight,
						Value: 600,
					},
				},
				Action: PlotAction,
			},
			{
				Name:  "gif",
				Usage: "assemble rendered frames into an animated GIF",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     gifFlagFrames,
						Usage:    "`DIR` holding .png frames, read recursively in name order",
						Required: true,
					},
					&cli.StringFlag{
						Name:  gifFlagOut,
						Usage: "GIF `FILE` to write",
						Value: "walk.gif",
					},
					&cli.IntFlag{
						Name:  gifFlagDelay,
						Usage: "frame delay in hundredths of a second",
						Value: animate.DefaultDelay,
					},
				},
				Action: GIFAction,
			},
		},
	}
}
