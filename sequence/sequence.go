// Package sequence - generation of the recursive candidate family.
package sequence

import (
	"fmt"
	"math/big"
)

// Seed returns the first term of the family for scale m: (m-1)·360+181.
// Seed(0) is undefined and returns nil; Terms validates m before calling it.
func Seed(m uint64) *big.Int {
	if m == 0 {
		return nil
	}

	// (m-1)·360 never overflows in big arithmetic; build it explicitly.
	s := new(big.Int).SetUint64(m - 1)
	s.Mul(s, big.NewInt(ringWidth))

	return s.Add(s, big.NewInt(seedOffset))
}

// Terms generates every term of the family for scale m that does not exceed
// limit, ascending. The sequence is restartable per scale (regenerating with
// the same m and limit yields the same slice) but not reusable across scales,
// since the seed depends on m.
//
// Returns an empty slice when the seed already exceeds limit.
//
// Complexity: O(t) time and memory for t emitted terms.
func Terms(m uint64, limit *big.Int, opts ...Option) ([]*big.Int, error) {
	// 1) Apply functional options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order: scale, limit, rule.
	if m == 0 {
		return nil, ErrZeroScale
	}
	if limit == nil {
		return nil, ErrNilLimit
	}
	if cfg.Rule == nil {
		return nil, ErrNilRule
	}

	// 3) Walk the recurrence from the seed until the limit is passed.
	terms := make([]*big.Int, 0)
	term := Seed(m)
	var idx uint64 = 1
	for term.Cmp(limit) <= 0 {
		if len(terms) >= cfg.MaxTerms {
			return nil, fmt.Errorf("%w: cap=%d, limit=%s", ErrTermOverflow, cfg.MaxTerms, limit)
		}
		terms = append(terms, term)

		next := cfg.Rule(term, idx)
		// A rule that fails to climb would loop forever; reject it.
		if next == nil || next.Cmp(term) <= 0 {
			return nil, fmt.Errorf("%w: index %d", ErrRuleNotIncreasing, idx)
		}
		term = next
		idx++
	}

	return terms, nil
}
