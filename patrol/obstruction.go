package patrol

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/beka-birhanu/advent2024/grid"
	"golang.org/x/sync/errgroup"
)

// CountLoopObstructions counts the tiles where a single new obstacle would
// trap the guard in a loop. Only tiles on the guard's original route, other
// than its starting tile, are candidates. Each candidate is simulated on its
// own clone of the floor, at most workers at a time.
func CountLoopObstructions(ctx context.Context, floor *grid.Grid[Cell], workers int, opts *Options) (int, error) {
	route, err := New(floor.Clone(), opts)
	if err != nil {
		return 0, err
	}
	start := route.Position()
	if err := route.Run(ctx); err != nil {
		return 0, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var loops atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, candidate := range route.Visited() {
		if candidate == start {
			continue
		}

		eg.Go(func() error {
			blocked := floor.Clone()
			if err := blocked.Set(candidate, Cell{Kind: Obstacle}); err != nil {
				return err
			}

			p, err := New(blocked, opts)
			if err != nil {
				return err
			}

			if err := p.Run(egCtx); errors.Is(err, ErrCycleDetected) {
				loops.Add(1)
			} else if err != nil {
				return err
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return int(loops.Load()), nil
}
