// Package walk builds a path through a Space of quaternions whose successive relative rotations
// are small and change smoothly.
package walk

import (
	"context"
	"math/rand"
	"sort"

	"go.viam.com/hyperwalk/logging"
	"go.viam.com/hyperwalk/sampling"
	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/utils"
)

const (
	// candidatesBeforeParallelization is the pool size above which a step is scored in parallel.
	candidatesBeforeParallelization = 1000
	progressInterval                = 1000
)

// Config holds the planner parameters.
type Config struct {
	// Neighbors is the window K: each step picks uniformly among the K best scoring candidates.
	// 0 and 1 both always pick the best candidate.
	Neighbors int `json:"neighbors"`
	// Steps is the number of steps taken after the initial one. A path has Steps+1 entries.
	Steps int `json:"steps"`
}

// Validate checks the config against a space of spaceSize members.
func (c Config) Validate(spaceSize int) error {
	if c.Steps < 0 {
		return NewNegativeStepsError(c.Steps)
	}
	if c.Neighbors < 0 || c.Neighbors >= spaceSize-1 {
		return NewNeighborWindowError(c.Neighbors, spaceSize)
	}
	return nil
}

// ProgressFunc is called after every step with the number of completed steps and the total.
type ProgressFunc func(done, total int)

type neighbor struct {
	score     float64
	index     int
	transform spatialmath.Quaternion
}

// Planner walks a Space greedily. It keeps the current orientation and the last transformation
// between steps, so a Planner must not be shared between goroutines.
type Planner struct {
	space    *sampling.Space
	cfg      Config
	randseed *rand.Rand
	logger   logging.Logger

	// Progress, if set, is called after each step of Plan.
	Progress ProgressFunc

	parallelCandidates int

	current       spatialmath.Quaternion
	currentIndex  int
	prevTransform spatialmath.Quaternion
	neighbors     []neighbor
}

// NewPlanner returns a Planner positioned at the identity orientation. The config is validated
// here so that no step runs with an unusable neighbor window.
func NewPlanner(space *sampling.Space, cfg Config, randseed *rand.Rand, logger logging.Logger) (*Planner, error) {
	if err := cfg.Validate(space.Len()); err != nil {
		return nil, err
	}
	return &Planner{
		space:         space,
		cfg:           cfg,
		randseed:      randseed,
		logger:        logger,
		current:       spatialmath.Identity(),
		currentIndex:  -1,
		prevTransform: spatialmath.Identity(),
		neighbors:     make([]neighbor, 0, space.Len()),

		parallelCandidates: candidatesBeforeParallelization,
	}, nil
}

// Score is the ranking value of transform t given the previous transformation: its distance to
// the previous transformation plus its distance to no rotation at all.
func Score(prevTransform, t spatialmath.Quaternion) float64 {
	return spatialmath.DifferenceNorm(prevTransform, t) + spatialmath.DifferenceNorm(spatialmath.Identity(), t)
}

// Plan runs the initial step and cfg.Steps further steps, returning Steps+1 entries.
func (p *Planner) Plan(ctx context.Context) (Path, error) {
	total := p.cfg.Steps + 1
	path := make(Path, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step, err := p.Step(ctx)
		if err != nil {
			return nil, err
		}
		path = append(path, step)
		if p.Progress != nil {
			p.Progress(i+1, total)
		}
		if (i+1)%progressInterval == 0 {
			p.logger.Debugw("planning", "done", i+1, "total", total)
		}
	}
	return path, nil
}

// Step advances the planner by one step. It fails only if ctx is cancelled while scoring.
func (p *Planner) Step(ctx context.Context) (Step, error) {
	if err := p.score(ctx); err != nil {
		return Step{}, err
	}
	// equal scores keep enumeration order
	sort.SliceStable(p.neighbors, func(i, j int) bool {
		return p.neighbors[i].score < p.neighbors[j].score
	})

	rank := 0
	if p.cfg.Neighbors > 0 {
		rank = p.randseed.Intn(p.cfg.Neighbors)
	}
	chosen := p.neighbors[rank]

	p.current = p.space.At(chosen.index)
	p.currentIndex = chosen.index
	p.prevTransform = chosen.transform
	return Step{
		Orientation:    p.current,
		Transformation: chosen.transform,
		SpaceIndex:     chosen.index,
		Score:          chosen.score,
	}, nil
}

// score fills p.neighbors with every space member except the current one, in space order.
func (p *Planner) score(ctx context.Context) error {
	size := p.space.Len()
	count := size
	if p.currentIndex >= 0 {
		count--
	}
	p.neighbors = p.neighbors[:count]

	// slot maps a space index to its place in the candidate list
	slot := func(i int) int {
		if p.currentIndex >= 0 && i > p.currentIndex {
			return i - 1
		}
		return i
	}
	scoreOne := func(i int) {
		if i == p.currentIndex {
			return
		}
		t := spatialmath.RelativeRotation(p.current, p.space.At(i))
		p.neighbors[slot(i)] = neighbor{score: Score(p.prevTransform, t), index: i, transform: t}
	}

	if size <= p.parallelCandidates {
		for i := 0; i < size; i++ {
			scoreOne(i)
		}
		return nil
	}
	return utils.GroupWorkParallel(ctx, size, func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
		return func(memberNum, workNum int) {
			scoreOne(workNum)
		}, nil
	})
}
