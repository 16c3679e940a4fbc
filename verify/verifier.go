// Package verify - the per-scale range verifier.
package verify

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/primering/primes"
)

// Verify checks one scale m: generates the primes of ((m-1)·360, m·360],
// builds the candidate set, decides between exhaustive and sampled
// evaluation, fans the distance checks over a worker pool, and aggregates.
//
// The error return is non-nil for invalid m, context cancellation, and
// internal failures; internal failures additionally come with a populated
// Failed RangeResult so a driver can record the scale and move on.
//
// Re-running Verify with the same m and options yields an identical
// RangeResult; sampling is seed-controlled, never time-seeded.
func Verify(ctx context.Context, m uint64, opts ...Option) (RangeResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return verifyScale(ctx, m, cfg, nil)
}

// verifyScale is the engine behind Verify and the driver. prog may be nil
// (standalone use); the driver passes its shared accumulator.
func verifyScale(ctx context.Context, m uint64, cfg Options, prog *progress) (RangeResult, error) {
	if m == 0 {
		return RangeResult{M: m}, ErrZeroScale
	}
	if cfg.MaxPrimes < 1 {
		return RangeResult{M: m}, fmt.Errorf("%w: max primes per range must be ≥ 1, got %d", ErrInvalidParameters, cfg.MaxPrimes)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	lo, hi := rangeBounds(m)
	res := RangeResult{M: m, RangeStart: lo, RangeEnd: hi, MaxDistance: big.NewInt(0)}
	fail := func(err error) (RangeResult, error) {
		res.Failed = true
		res.Err = err

		return res, err
	}

	// --- GeneratingPrimes ---
	pOpts := []primes.Option{
		primes.WithMaxPrimes(cfg.MaxPrimes),
		primes.WithWorkers(cfg.Workers),
	}
	if cfg.MemoryCeiling > 0 {
		pOpts = append(pOpts, primes.WithMemoryCeiling(cfg.MemoryCeiling))
	}
	first := new(big.Int).Add(lo, big.NewInt(1))
	stream, err := primes.InRange(ctx, first, hi, pOpts...)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		return fail(fmt.Errorf("%w: prime generation for m=%d: %v", ErrInternal, m, err))
	}
	all := stream.Drain()

	// --- Sampling-or-Exhaustive decision ---
	// A truncated probabilistic stream is already a bounded prefix; an
	// oversized exhaustive list is thinned to an evenly spaced subset.
	res.Sampled = stream.Truncated()
	if len(all) > cfg.MaxPrimes {
		rng := rngFromSeed(deriveSeed(cfg.Seed, m))
		all = sampleEvenly(all, cfg.MaxPrimes, rng)
		res.Sampled = true
	}

	if len(all) == 0 {
		// Nothing to check: trivially within tolerance.
		return res, nil
	}

	// --- BuildingCandidates ---
	set, err := NewCandidateSet(m, cfg.Rule)
	if err != nil {
		return fail(err)
	}

	// --- Evaluating ---
	// Records land in a pre-sized slice by index, so the prime order of the
	// input (ascending) is preserved without a post-sort.
	records := make([]PrimeRecord, len(all))
	evaluated := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for start := 0; start < len(all); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(all) {
			end = len(all)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				records[i] = set.Evaluate(all[i])
			}
			if prog != nil {
				prog.addPrimes(end - start)
			}

			return nil
		})
		evaluated += end - start
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		return fail(fmt.Errorf("%w: evaluation for m=%d: %v", ErrInternal, m, err))
	}

	// --- Aggregating ---
	if evaluated != len(all) {
		return fail(fmt.Errorf("%w: m=%d evaluated %d of %d primes", ErrInternal, m, evaluated, len(all)))
	}
	for i := range records {
		rec := &records[i]
		if rec.Distance.Sign() < 0 {
			return fail(fmt.Errorf("%w: m=%d negative distance for prime %s", ErrInternal, m, rec.Prime))
		}

		res.PrimeCount++
		if rec.Within {
			res.WithinCount++
			switch rec.Nearest.Family {
			case FamilyDivisor:
				res.DivisorHits++
			case FamilySequenceTerm:
				res.SequenceHits++
			}
		} else if len(res.Missed) < missedCap {
			res.Missed = append(res.Missed, rec.Prime)
		}
		if rec.Distance.Cmp(res.MaxDistance) > 0 {
			res.MaxDistance = rec.Distance
		}
	}
	if prog != nil {
		prog.observeDistance(res.MaxDistance)
	}

	return res, nil
}
