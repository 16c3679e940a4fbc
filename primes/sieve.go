// Package primes - segmented sieve of Eratosthenes over a native-range
// window.
package primes

import (
	"fmt"
	"math"
)

// sieveRange returns the primes in [lo, hi] for native bounds, ascending.
//
// A classic two-stage segmented sieve: base primes up to √hi from a small
// dense sieve, then one pass over the [lo, hi] window. Footprint is
// (√hi + window) bytes of mark arrays; tested against ceiling before any
// allocation so a refusal costs nothing.
//
// Complexity: O((hi−lo) log log hi + √hi) time.
func sieveRange(lo, hi uint64, ceiling uint64) ([]uint64, error) {
	if hi < 2 {
		return nil, nil
	}
	if lo < 2 {
		lo = 2
	}

	// 1) Budget check before allocating anything. The two terms are compared
	//    separately so the sum cannot wrap for extreme windows.
	root := isqrt(hi)
	window := hi - lo + 1
	if window > ceiling || root+1 > ceiling-window {
		return nil, fmt.Errorf("%w: need %d+%d bytes, ceiling %d", ErrResourceExhausted, root+1, window, ceiling)
	}

	// 2) Dense sieve for the base primes up to √hi.
	base := make([]bool, root+1) // true = composite
	for p := uint64(2); p*p <= root; p++ {
		if base[p] {
			continue
		}
		for q := p * p; q <= root; q += p {
			base[q] = true
		}
	}

	// 3) Mark the window. For each base prime p start at max(p², ⌈lo/p⌉·p).
	marks := make([]bool, window) // true = composite
	for p := uint64(2); p <= root; p++ {
		if base[p] {
			continue
		}
		start := p * p
		if start < lo {
			s, ok := firstMultipleFrom(lo, hi, p)
			if !ok {
				continue
			}
			start = s
		}
		for q := start; q <= hi; {
			marks[q-lo] = true
			if hi-q < p { // next step would wrap past hi
				break
			}
			q += p
		}
	}

	// 4) Collect survivors in ascending order.
	out := make([]uint64, 0)
	for i := uint64(0); i < window; i++ {
		if !marks[i] {
			out = append(out, lo+i)
		}
	}

	return out, nil
}

// firstMultipleFrom returns the smallest multiple of p in [lo, hi]. The
// naive ⌈lo/p⌉·p wraps when lo sits within p of the native maximum; this
// form never leaves [lo, hi]. ok is false when the window holds no multiple.
func firstMultipleFrom(lo, hi, p uint64) (uint64, bool) {
	rem := lo % p
	if rem == 0 {
		return lo, true
	}
	off := p - rem
	if off > hi-lo {
		return 0, false
	}

	return lo + off, true
}

// isqrt returns ⌊√n⌋ for uint64 n, correcting float rounding at the edges.
// The result never exceeds 2³²-1, which keeps every square below overflow.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r > 0 && r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}

	return r
}
