package dynamo

import (
	"context"
	"fmt"

	"github.com/san-kum/stocksim/internal/rng"
	"golang.org/x/sync/errgroup"
)

// runIndependent gives sample i the streams seeded by rng.Derive(seed, i).
// Each goroutine owns one column, so the result does not depend on the
// number of workers or on scheduling.
func (s *Simulator) runIndependent(ctx context.Context, params Params, seed int64, out *Paths) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < params.Samples; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%w at sample %d: %w", ErrContextCanceled, i, err)
			}
			stock, vol := s.source(rng.Derive(seed, i))
			s.samplePath(params, i, stock, vol, out)
			return nil
		})
	}

	return g.Wait()
}
