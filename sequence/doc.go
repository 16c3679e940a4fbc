// Package sequence generates the recursive candidate family of the prime
// proximity conjecture.
//
// What:
//
//   - For a scale m ≥ 1, the family is seeded at (m-1)·360+181 and advanced
//     term by term through a pure step Rule.
//   - Terms returns every term up to an inclusive limit, ascending, so the
//     caller can cover a prime range plus its tolerance margin.
//
// Why:
//
//   - The seed sits one past the midpoint of the previous ring segment; the
//     family climbs through the current segment with widening steps and acts
//     as the second candidate source next to the divisors of m·360.
//
// Complexity:
//
//   - Terms: O(t) time, O(t) memory, where t = number of terms ≤ limit.
//     For a span s the default rule yields t ≈ √(2s).
//
// Options:
//
//   - WithRule(r): replace the step rule (the recurrence itself is a domain
//     constant; swapping it is for experiments, not for the conjecture).
//   - WithMaxTerms(n): hard cap on generated terms.
//
// Errors:
//
//   - ErrZeroScale: m == 0.
//   - ErrNilLimit: limit is nil.
//   - ErrNilRule: a nil Rule was injected.
//   - ErrRuleNotIncreasing: the injected rule failed to strictly increase.
//   - ErrTermOverflow: the MaxTerms cap was exceeded.
package sequence
