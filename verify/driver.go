// Package verify - the scale driver.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run verifies every scale in [MinM, MaxM] in ascending order, batching up
// to ScaleWorkers scales at a time, and returns a Summary of all results.
//
// Parameter validation is fail-fast: an inverted scale range or a
// non-positive prime cap returns ErrInvalidParameters before any work.
//
// A scale whose verification fails internally is recorded as Failed and the
// run continues; the Summary then pairs with ErrInternal. Cancellation is
// honored at scale-batch boundaries: completed results are preserved and
// the context error is returned alongside the partial Summary.
func Run(ctx context.Context, opts ...Option) (*Summary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate the whole parameter set up front.
	if cfg.MinM < 1 {
		return nil, fmt.Errorf("%w: min scale must be ≥ 1, got %d", ErrInvalidParameters, cfg.MinM)
	}
	if cfg.MinM > cfg.MaxM {
		return nil, fmt.Errorf("%w: min scale %d exceeds max scale %d", ErrInvalidParameters, cfg.MinM, cfg.MaxM)
	}
	if cfg.MaxPrimes < 1 {
		return nil, fmt.Errorf("%w: max primes per range must be ≥ 1, got %d", ErrInvalidParameters, cfg.MaxPrimes)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	total := cfg.MaxM - cfg.MinM + 1
	sum := &Summary{
		RunID:   uuid.NewString(),
		MinM:    cfg.MinM,
		MaxM:    cfg.MaxM,
		Results: make([]RangeResult, 0, total),
	}
	prog := newProgress()
	start := time.Now()

	var scaleErr error // first internal failure, reported after the sweep

	// 2. Sweep scales in ascending batches of ScaleWorkers.
	for m := cfg.MinM; m <= cfg.MaxM; {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)

			return sum, err
		}

		batchEnd := m + uint64(cfg.ScaleWorkers)
		if batchEnd > cfg.MaxM+1 || batchEnd < m { // second guard: overflow near MaxUint64
			batchEnd = cfg.MaxM + 1
		}

		batch := make([]RangeResult, batchEnd-m)
		batchErrs := make([]error, batchEnd-m)
		g, gctx := errgroup.WithContext(ctx)
		for i := range batch {
			scale := m + uint64(i)
			g.Go(func() error {
				res, err := verifyScale(gctx, scale, cfg, prog)
				batch[i] = res
				if err != nil && res.Failed {
					// Recorded in the result; do not sink the batch.
					batchErrs[i] = err

					return nil
				}

				return err
			})
		}
		if err := g.Wait(); err != nil {
			sum.Elapsed = time.Since(start)
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}

			return sum, err
		}

		// 3. Append in ascending order and fire callbacks.
		for i := range batch {
			sum.Results = append(sum.Results, batch[i])
			if batchErrs[i] != nil && scaleErr == nil {
				scaleErr = batchErrs[i]
			}
			if cfg.Progress != nil {
				cfg.Progress(prog.scaleDone(total, batch[i]))
			} else {
				prog.scaleDone(total, batch[i])
			}
		}

		m = batchEnd
	}

	sum.Elapsed = time.Since(start)
	if scaleErr != nil {
		return sum, fmt.Errorf("%w: %d scale(s) failed, first: %v", ErrInternal, sum.FailedScales(), scaleErr)
	}

	return sum, nil
}
