// Package utils contains helpers shared by the sampling and planning packages.
package utils

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
	quarterProcs := float64(ParallelFactor) * .25
	if quarterProcs > 8 {
		ParallelFactor = int(quarterProcs)
	}
}

type (
	// MemberWorkFunc runs for each work item (member) of a group.
	MemberWorkFunc func(memberNum, workNum int)
	// GroupWorkDoneFunc runs when a single group's work is done; helpful for merge stages.
	GroupWorkDoneFunc func()
	// GroupWorkFunc runs to determine what work members should do, if any.
	GroupWorkFunc func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc)
)

// GroupRange returns the half open range of work items [from, to) owned by groupNum when
// totalSize items are split over numGroups groups. The last group takes the remainder.
func GroupRange(totalSize, numGroups, groupNum int) (int, int) {
	groupSize := totalSize / numGroups
	from := groupSize * groupNum
	to := groupSize * (groupNum + 1)
	if groupNum == numGroups-1 {
		to = totalSize
	}
	return from, to
}

// GroupWorkParallel parallelizes the given size of work over at most ParallelFactor workers.
// Every work item is visited exactly once. Groups stop early and the context error is returned
// if ctx is cancelled. A panic in any group is recovered and returned as an error, in which case
// the work of that group is incomplete.
func GroupWorkParallel(ctx context.Context, totalSize int, groupWork GroupWorkFunc) error {
	if totalSize <= 0 {
		return ctx.Err()
	}
	numGroups := ParallelFactor
	if numGroups > totalSize {
		numGroups = totalSize
	}

	var (
		wait      sync.WaitGroup
		panicMu   sync.Mutex
		panicErrs error
	)
	wait.Add(numGroups)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		groupNum := groupNum
		from, to := GroupRange(totalSize, numGroups, groupNum)
		// wait.Done runs after the panic is recorded, never from a defer inside the group
		utils.PanicCapturingGoWithCallback(func() {
			runGroup(ctx, groupWork, groupNum, from, to)
			wait.Done()
		}, func(err interface{}) {
			panicMu.Lock()
			panicErrs = multierr.Append(panicErrs, errors.Errorf("work group %d panicked: %v", groupNum, err))
			panicMu.Unlock()
			wait.Done()
		})
	}
	wait.Wait()
	if panicErrs != nil {
		return panicErrs
	}
	return ctx.Err()
}

func runGroup(ctx context.Context, groupWork GroupWorkFunc, groupNum, from, to int) {
	memberWork, groupWorkDone := groupWork(groupNum, to-from, from, to)
	if memberWork != nil {
		memberNum := 0
		for workNum := from; workNum < to; workNum++ {
			if ctx.Err() != nil {
				return
			}
			memberWork(memberNum, workNum)
			memberNum++
		}
	}
	if groupWorkDone != nil {
		groupWorkDone()
	}
}
