// Package verify - per-scale candidate-set construction.
package verify

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/katalvlaran/primering/divisors"
	"github.com/katalvlaran/primering/sequence"
)

// CandidateSet is the immutable union of both candidate families for one
// scale, sorted ascending by value (divisors before sequence terms on equal
// values, so lookups honor the tie-break by construction). Safe for
// concurrent use once built.
type CandidateSet struct {
	cands []Candidate
}

// Len returns the number of candidates in the set.
func (s *CandidateSet) Len() int { return len(s.cands) }

// Walk calls fn for every candidate in set order (ascending by value,
// divisors before sequence terms on equal values).
func (s *CandidateSet) Walk(fn func(Candidate)) {
	for _, c := range s.cands {
		fn(c)
	}
}

// rangeBounds returns the scale's range as (start, end]: (m-1)·360, m·360.
func rangeBounds(m uint64) (lo, hi *big.Int) {
	lo = new(big.Int).SetUint64(m - 1)
	lo.Mul(lo, big.NewInt(Ring))
	hi = new(big.Int).SetUint64(m)
	if m > math.MaxUint64/Ring {
		// m·Ring leaves uint64; stay in big arithmetic.
		hi.Mul(hi, big.NewInt(Ring))
	} else {
		hi.SetUint64(m * Ring)
	}

	return lo, hi
}

// NewCandidateSet builds the candidate set for scale m: divisors of m·360
// restricted to [range start − Tolerance, range end + Tolerance] (floored at
// zero), plus every sequence term up to range end + Tolerance. Both families
// are always present together; rule may be nil for the domain default.
func NewCandidateSet(m uint64, rule sequence.Rule) (*CandidateSet, error) {
	if m == 0 {
		return nil, ErrZeroScale
	}
	lo, hi := rangeBounds(m)

	// 1) Window bounds: the only divisors that can matter lie within
	//    Tolerance of the tested range.
	winLo := new(big.Int).Sub(lo, big.NewInt(Tolerance))
	if winLo.Sign() < 0 {
		winLo.SetInt64(0)
	}
	winHi := new(big.Int).Add(hi, big.NewInt(Tolerance))

	// 2) Divisor family. The full lattice while native, the windowed walk
	//    once m·360 leaves the native range.
	divs, err := divisors.Of(m)
	switch {
	case err == nil:
		divs = filterWindow(divs, winLo, winHi)
	case errors.Is(err, divisors.ErrScaleOverflow):
		divs, err = divisors.Near(new(big.Int).SetUint64(m), winLo, winHi)
		if err != nil {
			return nil, fmt.Errorf("%w: divisor window for m=%d: %v", ErrInternal, m, err)
		}
	default:
		return nil, fmt.Errorf("%w: divisors for m=%d: %v", ErrInternal, m, err)
	}

	// 3) Sequence family, up to the same upper margin.
	seqOpts := make([]sequence.Option, 0, 1)
	if rule != nil {
		seqOpts = append(seqOpts, sequence.WithRule(rule))
	}
	terms, err := sequence.Terms(m, winHi, seqOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: sequence terms for m=%d: %v", ErrInternal, m, err)
	}

	// 4) Merge, tag with family ordinals, and sort. Divisors sort before
	//    sequence terms on equal values, which bakes the tie-break into the
	//    set's order.
	cands := make([]Candidate, 0, len(divs)+len(terms))
	for i, d := range divs {
		cands = append(cands, Candidate{Family: FamilyDivisor, Index: uint64(i), Value: d})
	}
	for i, t := range terms {
		cands = append(cands, Candidate{Family: FamilySequenceTerm, Index: uint64(i), Value: t})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		c := cands[i].Value.Cmp(cands[j].Value)
		if c != 0 {
			return c < 0
		}

		return cands[i].Family < cands[j].Family
	})

	if len(cands) == 0 {
		// m·360 is always a candidate inside the window; an empty set means
		// the construction above is broken.
		return nil, fmt.Errorf("%w: empty candidate set for m=%d", ErrInternal, m)
	}

	return &CandidateSet{cands: cands}, nil
}

// filterWindow keeps the values of a sorted slice inside [lo, hi].
func filterWindow(vals []*big.Int, lo, hi *big.Int) []*big.Int {
	out := vals[:0]
	for _, v := range vals {
		if v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0 {
			out = append(out, v)
		}
	}

	return out
}
