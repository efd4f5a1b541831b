// Package sampling draws uniformly distributed unit quaternions on the 3-sphere and collects them
// into a Space of distinct candidates.
package sampling

import (
	"math"
	"math/rand"

	"go.viam.com/hyperwalk/spatialmath"
)

// Sampler produces uniformly distributed unit quaternions using Marsaglia's (1972) construction.
// A Sampler is not safe for concurrent use; give each goroutine its own.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler drawing from rng.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// discPoint draws points uniformly in [-1,1]x[-1,1] until one lies strictly inside the unit disc.
func (s *Sampler) discPoint() (float64, float64, float64) {
	for {
		a := 2*s.rng.Float64() - 1
		b := 2*s.rng.Float64() - 1
		if r := a*a + b*b; r < 1 {
			return a, b, r
		}
	}
}

// Sample returns one unit quaternion. The components (x1, x2, x3*s, x4*s) fill the
// scalar-first slots (w, x, y, z).
func (s *Sampler) Sample() spatialmath.Quaternion {
	for {
		x1, x2, r1 := s.discPoint()
		x3, x4, r2 := s.discPoint()
		if r2 == 0 {
			// underflow only; redraw both pairs
			continue
		}
		scale := math.Sqrt((1 - r1) / r2)
		return spatialmath.NewQuaternion(x1, x2, x3*scale, x4*scale)
	}
}
