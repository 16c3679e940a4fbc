// Package primes - interval entry point and strategy selection.
package primes

import (
	"context"
	"math/big"
)

// InRange returns a Stream of the primes in [lo, hi], ascending.
//
// Strategy selection (once per call):
//
//  1. hi fits the native unsigned range → segmented sieve. If the sieve
//     refuses with ErrResourceExhausted the call falls back to the
//     probabilistic path instead of failing.
//  2. otherwise → parallel probabilistic testing, capped at MaxPrimes.
//
// The context bounds the parallel probabilistic fan-out; the sieve path
// never blocks long enough to consult it. A nil ctx is treated as
// context.Background.
func InRange(ctx context.Context, lo, hi *big.Int, opts ...Option) (*Stream, error) {
	// 1) Apply functional options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the interval.
	if lo == nil || hi == nil {
		return nil, ErrNilBound
	}
	if lo.Sign() < 0 || hi.Sign() < 0 {
		return nil, ErrNegativeBound
	}
	if lo.Cmp(hi) > 0 {
		return nil, ErrBoundsOrder
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Native bounds: deterministic sieve, with probabilistic fallback on
	//    a memory refusal.
	if hi.IsUint64() {
		native, err := sieveRange(lo.Uint64(), hi.Uint64(), cfg.MemoryCeiling)
		if err == nil {
			return &Stream{primes: toBig(native), strategy: StrategySieve}, nil
		}
		// Any sieve error is a resource refusal; fall through.
	}

	// 4) Beyond native range (or sieve refused): probabilistic testing.
	found, truncated, err := probabilisticRange(ctx, lo, hi, cfg)
	if err != nil {
		return nil, err
	}

	return &Stream{primes: found, truncated: truncated, strategy: StrategyProbabilistic}, nil
}

// toBig converts sieve output to the arbitrary-precision representation the
// rest of the pipeline works in.
func toBig(vals []uint64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = new(big.Int).SetUint64(v)
	}

	return out
}
