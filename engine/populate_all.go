package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ink"
)

// PopulateAll populates every object concurrently, each into its own
// Storage, and returns the storages in object order. Objects must not
// share drawing data.
//
// A pass is not interruptible; cancelling ctx only stops passes that have
// not started yet, and PopulateAll then returns ctx's error.
func (e *Engine) PopulateAll(ctx context.Context, obs []*ink.Object, view *View) ([]*Storage, error) {
	out := make([]*Storage, len(obs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, ob := range obs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st := NewStorage(nil)
			e.Populate(ob, view, st)
			out[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
