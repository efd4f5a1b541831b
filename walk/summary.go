package walk

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary describes the motion along a Path.
type Summary struct {
	Entries int
	// Angles are in radians, measured on each step's transformation.
	MeanAngle   float64
	MedianAngle float64
	P95Angle    float64
	MaxAngle    float64
	// Distinct is how many space members appear in the path; Revisits counts the entries landing
	// on a member already visited earlier.
	Distinct int
	Revisits int
}

// StepAngles returns the rotation angle of every step's transformation, in [0, π].
func (p Path) StepAngles() []float64 {
	angles := make([]float64, len(p))
	for i, s := range p {
		angles[i] = s.Transformation.AxisAngles().Theta
	}
	return angles
}

// Summarize computes a Summary of p.
func Summarize(p Path) (Summary, error) {
	if len(p) == 0 {
		return Summary{}, errors.New("cannot summarize an empty path")
	}
	angles := stats.Float64Data(p.StepAngles())
	sum := Summary{Entries: len(p)}
	var err error
	if sum.MeanAngle, err = angles.Mean(); err != nil {
		return Summary{}, err
	}
	if sum.MedianAngle, err = angles.Median(); err != nil {
		return Summary{}, err
	}
	if sum.P95Angle, err = angles.Percentile(95); err != nil {
		return Summary{}, err
	}
	if sum.MaxAngle, err = angles.Max(); err != nil {
		return Summary{}, err
	}

	seen := make(map[int]struct{}, len(p))
	for _, s := range p {
		if _, ok := seen[s.SpaceIndex]; ok {
			sum.Revisits++
			continue
		}
		seen[s.SpaceIndex] = struct{}{}
	}
	sum.Distinct = len(seen)
	return sum, nil
}
