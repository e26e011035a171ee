package batch

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/powerman/check"
)

func TestMain(m *testing.M) { check.TestMain(m) }

func TestLanes(tt *testing.T) {
	t := check.T(tt)
	t.Equal(Lanes(4), 4)
	t.Equal(Lanes(0), runtime.GOMAXPROCS(0))
	t.Equal(Lanes(-1), runtime.GOMAXPROCS(0))
}

func TestRunKeepsOrder(tt *testing.T) {
	t := check.T(tt)
	inputs := make([]int, 50)
	for i := range inputs {
		inputs[i] = i
	}
	for _, lanes := range []int{1, 4, 64} {
		out, err := Run(context.Background(), lanes, inputs, func(_ context.Context, x int) (int, error) {
			if x%7 == 0 {
				time.Sleep(time.Millisecond)
			}
			return x * x, nil
		})
		t.Must(t.Nil(err))
		t.Len(out, len(inputs))
		for i, v := range out {
			t.Equal(v, i*i)
		}
	}
}

func TestRunBoundsConcurrency(tt *testing.T) {
	t := check.T(tt)
	var running, peak int32
	_, err := Run(context.Background(), 3, make([]struct{}, 30), func(_ context.Context, _ struct{}) (bool, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return true, nil
	})
	t.Nil(err)
	t.LessOrEqual(int(atomic.LoadInt32(&peak)), 3)
	t.Greater(int(atomic.LoadInt32(&peak)), 0)
}

func TestRunStopsOnError(tt *testing.T) {
	t := check.T(tt)
	errBoom := errors.New("boom")
	var calls int32
	out, err := Run(context.Background(), 1, make([]int, 20), func(_ context.Context, _ int) (int, error) {
		if atomic.AddInt32(&calls, 1) == 3 {
			return 0, errBoom
		}
		return 1, nil
	})
	t.Err(err, errBoom)
	t.True(out == nil)
	t.Less(int(atomic.LoadInt32(&calls)), 20)
}

func TestRunHonorsContext(tt *testing.T) {
	t := check.T(tt)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, 2, []int{1, 2, 3}, func(_ context.Context, x int) (int, error) {
		return x, nil
	})
	t.Err(err, context.Canceled)

	out, err := Run(context.Background(), 2, []int{}, func(_ context.Context, x int) (int, error) {
		return x, nil
	})
	t.Nil(err)
	t.Len(out, 0)
}
