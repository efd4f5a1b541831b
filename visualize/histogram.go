package visualize

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/hyperwalk/utils"
)

const histogramBins = 36

// StepHistogram builds a histogram of rotation angles given in radians; the axis is in degrees.
func StepHistogram(angles []float64) (*plot.Plot, error) {
	if len(angles) == 0 {
		return nil, errors.New("no angles to plot")
	}
	values := make(plotter.Values, len(angles))
	for i, a := range angles {
		values[i] = utils.RadToDeg(a)
	}
	h, err := plotter.NewHist(values, histogramBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = ColorFor(0)

	p := plot.New()
	p.Title.Text = "Rotation per step"
	p.X.Label.Text = "angle (degrees)"
	p.Y.Label.Text = "steps"
	p.Add(h)
	return p, nil
}

// SaveStepHistogram writes a histogram of angles to name. The image format follows the extension.
func SaveStepHistogram(name string, angles []float64) error {
	p, err := StepHistogram(angles)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, name)
}
