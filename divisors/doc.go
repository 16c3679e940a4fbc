// Package divisors builds the divisor candidate family: the divisors of
// m·360 for a scale m of the prime proximity conjecture.
//
// What:
//
//   - Of(m) returns the complete, ascending divisor set of m·360, including
//     1 and m·360 itself, built by factoring m and folding in the fixed
//     factorization of 360 (2³·3²·5), then expanding the divisor lattice.
//   - Near(m, lo, hi) returns only the divisors of m·360 that land inside
//     [lo, hi]. For scales beyond the native 64-bit range it never factors
//     m·360 outright; the caller supplies m's factorization and the lattice
//     walk prunes every branch that escapes the window.
//
// Why:
//
//   - Divisors of the ring modulus are the first of the two candidate
//     families a prime is measured against. At extreme scales the full
//     lattice is unaffordable, but only the slice near the tested range
//     matters, so the windowed walk keeps cost proportional to what is kept.
//
// Complexity:
//
//   - Of:   O(√m) to factor + O(d·log d) to expand and sort, d = divisor count.
//   - Near: O(b) lattice nodes visited, where b is the number of branches not
//     pruned by the window; worst case the full lattice, typically far less.
//
// Options (Near only):
//
//   - WithFactorization(f): supply m's prime factorization instead of having
//     it computed; mandatory once m exceeds the native range.
//
// Errors:
//
//   - ErrZeroScale: m == 0 (the minimum scale is 1).
//   - ErrNilScale, ErrNilBound: nil *big.Int arguments.
//   - ErrBoundsOrder: lo > hi.
//   - ErrScaleOverflow: Of(m) with m·360 past the native range; use Near.
//   - ErrFactorizationRequired: Near on a non-native scale without
//     WithFactorization.
//   - ErrBadFactorization: the supplied factorization does not multiply
//     back to m.
package divisors
