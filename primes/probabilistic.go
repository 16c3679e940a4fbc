// Package primes - parallel probabilistic primality testing for intervals
// beyond the native range.
package primes

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// two is shared by the odd-candidate walk; never mutated.
var two = big.NewInt(2)

// probabilisticRange collects primes in [lo, hi] by testing odd candidates
// with ProbablyPrime, fanning each batch over an errgroup limited to
// cfg.Workers. Collection stops at cfg.MaxPrimes; the second return reports
// that truncation. Order within and across batches is preserved, so the
// result is ascending with each prime exactly once.
func probabilisticRange(ctx context.Context, lo, hi *big.Int, cfg Options) ([]*big.Int, bool, error) {
	out := make([]*big.Int, 0)

	// 2 is the only even prime; the candidate walk below skips evens.
	if lo.Cmp(two) <= 0 && hi.Cmp(two) >= 0 {
		out = append(out, big.NewInt(2))
	}

	// First odd candidate ≥ max(lo, 3).
	cur := new(big.Int).Set(lo)
	if cur.Cmp(big.NewInt(3)) < 0 {
		cur.SetInt64(3)
	}
	if cur.Bit(0) == 0 {
		cur.Add(cur, big.NewInt(1))
	}

	batch := make([]*big.Int, 0, cfg.BatchSize)
	hits := make([]bool, cfg.BatchSize)

	// flush tests one batch in parallel and appends confirmed primes in
	// candidate order. capped reports that the MaxPrimes cap is now full;
	// dropped reports that a confirmed prime had to be discarded.
	flush := func() (capped, dropped bool, err error) {
		if len(batch) == 0 {
			return len(out) >= cfg.MaxPrimes, false, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for i := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// Distinct indices per goroutine: no synchronization needed.
				hits[i] = batch[i].ProbablyPrime(cfg.Probes)

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return false, false, err
		}

		for i := range batch {
			if !hits[i] {
				continue
			}
			if len(out) >= cfg.MaxPrimes {
				return true, true, nil
			}
			out = append(out, batch[i])
		}
		batch = batch[:0]

		return len(out) >= cfg.MaxPrimes, false, nil
	}

	// Walk odd candidates in batches of cfg.BatchSize. The stream is
	// truncated whenever a confirmed prime was dropped or candidates remain
	// untested after the cap filled.
	truncated := false
	for cur.Cmp(hi) <= 0 {
		batch = append(batch, new(big.Int).Set(cur))
		cur.Add(cur, two)

		if len(batch) == cfg.BatchSize {
			capped, dropped, err := flush()
			if err != nil {
				return nil, false, err
			}
			if capped {
				truncated = dropped || cur.Cmp(hi) <= 0

				break
			}
		}
	}
	if !truncated {
		_, dropped, err := flush()
		if err != nil {
			return nil, false, err
		}
		truncated = dropped
	}

	return out, truncated, nil
}
