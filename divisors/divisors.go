// Package divisors - full and windowed divisor-lattice construction.
package divisors

import (
	"fmt"
	"math"
	"math/big"
	"sort"
)

// Of returns every divisor of m·360, ascending, including 1 and m·360.
//
// The lattice is expanded from prime factorizations rather than by trial
// division of m·360: m is factored on its own (O(√m) worst case) and the
// fixed 2³·3²·5 of the ring is folded in. m=1 reproduces exactly the 24
// classical divisors of 360.
func Of(m uint64) ([]*big.Int, error) {
	// 1) Validate the scale.
	if m == 0 {
		return nil, ErrZeroScale
	}
	if m > math.MaxUint64/Ring {
		return nil, fmt.Errorf("%w: m=%d", ErrScaleOverflow, m)
	}

	// 2) Factor m and fold in the ring's factorization.
	fact := factorNative(m)
	mergeRing(fact)

	// 3) Expand the full lattice and sort.
	divs := expand(fact)
	sortBig(divs)

	return divs, nil
}

// Near returns the divisors of m·360 that fall inside [lo, hi], ascending.
//
// The walk multiplies prime powers depth-first and abandons any branch whose
// running product already exceeds hi, so the cost tracks the surviving
// branches instead of the complete lattice. Beyond the native range the
// factorization of m must be supplied via WithFactorization; Near never
// factors m·360 itself there.
func Near(m *big.Int, lo, hi *big.Int, opts ...Option) ([]*big.Int, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments in a fixed order.
	if m == nil {
		return nil, ErrNilScale
	}
	if m.Sign() <= 0 {
		return nil, ErrZeroScale
	}
	if lo == nil || hi == nil {
		return nil, ErrNilBound
	}
	if lo.Cmp(hi) > 0 {
		return nil, ErrBoundsOrder
	}

	// 3) Obtain m's factorization: supplied, or computed while native.
	fact := cfg.Factorization
	if fact == nil {
		if !m.IsUint64() {
			return nil, fmt.Errorf("%w: m=%s", ErrFactorizationRequired, m)
		}
		fact = factorNative(m.Uint64())
	} else if err := checkFactorization(m, fact); err != nil {
		return nil, err
	}

	// 4) Fold in the ring and walk the lattice with window pruning.
	merged := make(map[uint64]uint, len(fact)+3)
	for p, e := range fact {
		merged[p] = e
	}
	mergeRing(merged)

	divs := expandWindow(merged, lo, hi)
	sortBig(divs)

	return divs, nil
}

// factorNative factors n ≥ 1 by trial division into a prime → exponent map.
// n = 1 yields the empty map (the lattice of 1 is {1}).
func factorNative(n uint64) map[uint64]uint {
	fact := make(map[uint64]uint)
	for n%2 == 0 {
		fact[2]++
		n /= 2
	}
	for p := uint64(3); p*p <= n; p += 2 {
		for n%p == 0 {
			fact[p]++
			n /= p
		}
	}
	if n > 1 {
		fact[n]++
	}

	return fact
}

// mergeRing adds the ring's 2³·3²·5 into fact in place.
func mergeRing(fact map[uint64]uint) {
	for p, e := range ringFactorization {
		fact[p] += e
	}
}

// checkFactorization verifies that the supplied map multiplies back to m.
func checkFactorization(m *big.Int, fact map[uint64]uint) error {
	prod := big.NewInt(1)
	for p, e := range fact {
		pp := new(big.Int).SetUint64(p)
		for i := uint(0); i < e; i++ {
			prod.Mul(prod, pp)
		}
	}
	if prod.Cmp(m) != 0 {
		return fmt.Errorf("%w: product=%s, m=%s", ErrBadFactorization, prod, m)
	}

	return nil
}

// expand materializes the complete divisor lattice of fact.
//
// Incremental construction: start from {1}; for each prime power p^e,
// multiply every existing divisor by p, p², …, p^e and keep the originals.
func expand(fact map[uint64]uint) []*big.Int {
	divs := []*big.Int{big.NewInt(1)}
	for p, e := range fact {
		pp := new(big.Int).SetUint64(p)
		grown := make([]*big.Int, 0, len(divs)*int(e))
		for _, d := range divs {
			cur := d
			for i := uint(0); i < e; i++ {
				cur = new(big.Int).Mul(cur, pp)
				grown = append(grown, cur)
			}
		}
		divs = append(divs, grown...)
	}

	return divs
}

// expandWindow walks the lattice depth-first, pruning branches above hi and
// collecting products inside [lo, hi]. Primes are visited in ascending order
// so runs are deterministic.
func expandWindow(fact map[uint64]uint, lo, hi *big.Int) []*big.Int {
	primes := make([]uint64, 0, len(fact))
	for p := range fact {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })

	var out []*big.Int
	var walk func(idx int, acc *big.Int)
	walk = func(idx int, acc *big.Int) {
		// Multiplying further only grows the product; cut the branch here.
		if acc.Cmp(hi) > 0 {
			return
		}
		if idx == len(primes) {
			if acc.Cmp(lo) >= 0 {
				out = append(out, new(big.Int).Set(acc))
			}

			return
		}

		pp := new(big.Int).SetUint64(primes[idx])
		cur := new(big.Int).Set(acc)
		for e := uint(0); ; e++ {
			walk(idx+1, cur)
			if e == fact[primes[idx]] {
				break
			}
			cur = new(big.Int).Mul(cur, pp)
			if cur.Cmp(hi) > 0 {
				break
			}
		}
	}
	walk(0, big.NewInt(1))

	return out
}

// sortBig sorts a slice of big.Int ascending, in place.
func sortBig(s []*big.Int) {
	sort.Slice(s, func(i, j int) bool { return s[i].Cmp(s[j]) < 0 })
}
