package sampling

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/utils"
)

// BuildSpace samples until it has collected targetCount distinct quaternions. Draws exactly equal
// to an accepted member are discarded and redrawn.
func BuildSpace(rng *rand.Rand, targetCount int) (*Space, error) {
	if targetCount <= 0 {
		return nil, errors.Errorf("space size must be positive, got %d", targetCount)
	}
	s := newEmptySpace(targetCount)
	fill(s, NewSampler(rng), targetCount)
	return s, nil
}

func fill(s *Space, sampler *Sampler, targetCount int) {
	for s.Len() < targetCount {
		s.add(sampler.Sample())
	}
}

// BuildSpaceParallel is BuildSpace with sampling spread across workers. Each worker draws from
// its own generator seeded from rng in worker order, and the results are merged in worker order
// by the calling goroutine, which alone owns the duplicate check. The result only depends on the
// state of rng, targetCount and workers, so workers must be given explicitly.
func BuildSpaceParallel(ctx context.Context, rng *rand.Rand, targetCount, workers int) (*Space, error) {
	if targetCount <= 0 {
		return nil, errors.Errorf("space size must be positive, got %d", targetCount)
	}
	if workers < 1 {
		return nil, errors.Errorf("worker count must be positive, got %d", workers)
	}
	if workers > targetCount {
		workers = targetCount
	}

	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	batches := make([][]spatialmath.Quaternion, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		from, to := utils.GroupRange(targetCount, workers, w)
		g.Go(func() error {
			//nolint:gosec
			sampler := NewSampler(rand.New(rand.NewSource(seeds[w])))
			batch := make([]spatialmath.Quaternion, 0, to-from)
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				batch = append(batch, sampler.Sample())
			}
			batches[w] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := newEmptySpace(targetCount)
	for _, batch := range batches {
		for _, q := range batch {
			s.add(q)
		}
	}
	fill(s, NewSampler(rng), targetCount)
	return s, nil
}
