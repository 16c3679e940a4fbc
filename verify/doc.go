// Package verify checks the prime proximity conjecture scale by scale: for
// scale m, every prime in ((m-1)·360, m·360] should lie within 180 of a
// divisor of m·360 or of a term of the recursive candidate sequence.
//
// What:
//
//   - NewCandidateSet builds the immutable per-scale candidate set: the
//     relevant divisors (windowed to the range ± tolerance) and the sequence
//     terms, merged and sorted for binary-search proximity lookups.
//   - (*CandidateSet).Nearest is the distance evaluator: the candidate
//     minimizing |p−c|, with a fixed tie-break (Divisor family first, then
//     the smaller value) for reproducibility.
//   - Verify runs one scale: prime generation, candidate construction, the
//     exhaustive-or-sampling decision, parallel evaluation, aggregation.
//   - Run is the scale driver: iterates m over [MinM, MaxM], isolates
//     per-scale failures, reports progress, and merges everything into a
//     Summary.
//
// Concurrency:
//
//   - One scale's candidate set is built once and shared read-only across
//     all evaluator workers; nothing mutates it.
//   - Progress counters are atomics; workers never report per element.
//   - The driver honors its context at scale boundaries: already-completed
//     RangeResults survive a cancellation.
//
// Sampling:
//
//   - When a range holds more primes than MaxPrimes (or the probabilistic
//     source truncated), an evenly spaced, seed-controllable subset is
//     evaluated instead, and the RangeResult is flagged Sampled. A sampled
//     pass is weaker evidence than an exhaustive one and is never reported
//     as exhaustive.
//
// Errors:
//
//   - ErrInvalidParameters — malformed driver configuration; nothing runs.
//   - ErrZeroScale        — Verify with m == 0.
//   - ErrInternal         — arithmetic or bookkeeping inconsistency; fatal
//     to its scale only, the driver continues.
package verify
