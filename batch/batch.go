// Package batch runs independent instances of the same computation on a
// bounded number of goroutines.
//
// The lane count only bounds parallelism; results are returned in input
// order and do not depend on it.
package batch

import (
	"context"
	"runtime"
	"time"

	"github.com/jedisct1/dlog"
	"golang.org/x/sync/errgroup"
)

// Lanes returns the effective lane count for a configured value. Zero or a
// negative value selects GOMAXPROCS.
func Lanes(lanes int) int {
	if lanes <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return lanes
}

// Run calls fn on every input, on at most lanes goroutines at a time, and
// returns the outputs in input order. The first error cancels the context
// passed to the remaining calls and is returned.
func Run[In, Out any](ctx context.Context, lanes int, inputs []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	lanes = Lanes(lanes)
	outputs := make([]Out, len(inputs))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lanes)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(gctx, inputs[i])
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		dlog.Debugf("Batch of %d aborted: %v", len(inputs), err)
		return nil, err
	}
	dlog.Debugf("Batch of %d completed on %d lanes in %v", len(inputs), lanes, time.Since(start))
	return outputs, nil
}
