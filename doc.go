// Package primering computationally verifies a conjecture about where primes
// live on the 360-wide "ring" segments of the number line.
//
// 🔍 The conjecture
//
//	For every scale m ≥ 1, each prime p in the half-open range
//	((m-1)·360, m·360] lies within distance 180 of at least one of:
//	  • a divisor of m·360, or
//	  • a term of the recursive candidate sequence seeded at (m-1)·360+181.
//
// ✨ What primering gives you
//
//   - Prime generation across wildly varying magnitudes — a segmented sieve
//     inside the native 64-bit range, probabilistic primality testing beyond it
//   - Divisor-lattice construction from prime factorizations, with a targeted
//     window generator for numbers too large to factor outright
//   - A pluggable recursive candidate sequence (the recurrence is a domain
//     constant, injected as a pure step function)
//   - A parallel range verifier with exhaustive and sampling modes, seeded
//     for reproducibility
//   - A scale driver that survives per-scale failures and reports incremental
//     progress
//
// Everything is organized under focused subpackages:
//
//	primes/   — prime streams over arbitrary-precision intervals
//	divisors/ — divisor sets of m·360, full and windowed
//	sequence/ — the recursive candidate family
//	verify/   — distance evaluation, per-scale verification, the scale driver
//	cmd/      — the primering command-line front end
//
// The verifier proves nothing: an exhaustive pass is evidence for the tested
// scales only, and a sampled pass is weaker evidence still. Both are labelled
// as such in every result.
package primering
