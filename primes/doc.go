// Package primes produces primes within a requested interval of
// arbitrary-precision non-negative integers.
//
// What:
//
//   - InRange(ctx, lo, hi) returns a lazy, finite, non-restartable Stream of
//     the primes in [lo, hi], ascending, each emitted exactly once.
//   - The generation strategy is selected once per call from the interval's
//     magnitude (a tagged choice, not runtime dispatch):
//     StrategySieve — hi fits the native unsigned range: a segmented sieve
//     with base primes up to √hi, refusing with ErrResourceExhausted when
//     its footprint would pass the memory ceiling;
//     StrategyProbabilistic — hi beyond the native range (or the sieve
//     refused): Miller–Rabin style testing applied in parallel to the odd
//     candidates, capped at MaxPrimes collected primes.
//
// Why:
//
//   - The conjecture's ranges run from single digits to past 36 billion and
//     beyond; no single algorithm is right across that span. The sieve is
//     exact and cheap while memory allows; the probabilistic path trades a
//     vanishing error probability for unbounded reach, and its cap is what
//     lets the verifier switch to sampling instead of exhausting memory.
//
// Complexity:
//
//   - Sieve: O((hi−lo) log log hi + √hi) time, O(hi−lo + √hi) memory.
//   - Probabilistic: O(((hi−lo)/2) · MR(hi)) work fanned over Workers, where
//     MR is one primality test; memory O(collected primes).
//
// Options:
//
//   - WithMemoryCeiling(bytes): sieve footprint ceiling (default 256 MiB).
//   - WithMaxPrimes(n): probabilistic collection cap (default 100000).
//   - WithWorkers(n): parallel fan-out width (default GOMAXPROCS).
//   - WithBatchSize(n): candidates tested per scheduling batch — a resource
//     knob, not a correctness knob (default 10000).
//   - WithProbes(n): Miller–Rabin rounds (default 20).
//
// Errors:
//
//   - ErrNilBound, ErrNegativeBound, ErrBoundsOrder — interval validation.
//   - ErrResourceExhausted — the sieve refused; InRange falls back to the
//     probabilistic strategy on its own, so callers only see this from the
//     lower-level entry points.
//
// Apart from allocation the package is side-effect free: a Stream is a pure
// function of its interval and the options.
package primes
