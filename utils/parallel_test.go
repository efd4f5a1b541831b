package utils

import (
	"context"
	"sync/atomic"
	"testing"

	"go.viam.com/test"
)

func TestGroupRange(t *testing.T) {
	covered := 0
	prevTo := 0
	for g := 0; g < 3; g++ {
		from, to := GroupRange(10, 3, g)
		test.That(t, from, test.ShouldEqual, prevTo)
		covered += to - from
		prevTo = to
	}
	test.That(t, covered, test.ShouldEqual, 10)
	test.That(t, prevTo, test.ShouldEqual, 10)
}

func TestGroupWorkParallelVisitsEachItemOnce(t *testing.T) {
	for _, size := range []int{1, 3, 17, 1001} {
		counts := make([]int32, size)
		var groupsDone int32
		err := GroupWorkParallel(context.Background(), size, func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
					atomic.AddInt32(&counts[workNum], 1)
				}, func() {
					atomic.AddInt32(&groupsDone, 1)
				}
		})
		test.That(t, err, test.ShouldBeNil)
		for _, c := range counts {
			test.That(t, c, test.ShouldEqual, 1)
		}
		test.That(t, groupsDone, test.ShouldBeGreaterThan, 0)
	}
}

func TestGroupWorkParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := GroupWorkParallel(ctx, 100, func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
		return func(memberNum, workNum int) {}, nil
	})
	test.That(t, err, test.ShouldEqual, context.Canceled)

	err = GroupWorkParallel(context.Background(), 0, nil)
	test.That(t, err, test.ShouldBeNil)
}

func TestGroupWorkParallelReportsPanic(t *testing.T) {
	saved := ParallelFactor
	ParallelFactor = 4
	defer func() {
		ParallelFactor = saved
	}()

	var visited int32
	err := GroupWorkParallel(context.Background(), 40, func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
		return func(memberNum, workNum int) {
			if workNum == 25 {
				panic("bad candidate")
			}
			atomic.AddInt32(&visited, 1)
		}, nil
	})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "work group 2 panicked: bad candidate")
	// group 2 owns [20, 30) and stops at 25
	test.That(t, atomic.LoadInt32(&visited), test.ShouldEqual, 35)
}
