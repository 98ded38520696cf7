// aggregate.go — reducing per-report verdicts to a safe-report count.

package reports

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CountSafe reports how many of rs are Safe under tol.
// Pure reduction over independent Check calls; rs is never mutated.
// Complexity: O(total levels).
func CountSafe(rs []Report, tol Tolerance) int {
	n := 0
	for _, r := range rs {
		if Check(r, tol) == Safe {
			n++
		}
	}

	return n
}

// CountSafeParallel is CountSafe with the per-report checks fanned out
// across at most workers goroutines. Reports evaluate independently, so the
// count is identical to CountSafe for any worker budget; workers < 1 selects
// one worker per available CPU.
func CountSafeParallel(rs []Report, tol Tolerance, workers int) int {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	var (
		g errgroup.Group
		n atomic.Int64
	)
	g.SetLimit(workers)
	for _, r := range rs {
		g.Go(func() error {
			if Check(r, tol) == Safe {
				n.Add(1)
			}

			return nil
		})
	}
	// Checks never fail, so the group never carries an error.
	_ = g.Wait()

	return int(n.Load())
}
