// Package verify - the distance evaluator.
package verify

import (
	"math/big"
	"sort"
)

// Nearest returns the candidate minimizing |p − c| over the whole set, and
// that minimal distance. Arithmetic is arbitrary-precision throughout; the
// distance is always non-negative.
//
// Tie-break, for reproducibility: on equal distance the Divisor family wins
// over SequenceTerm, then the smaller candidate value.
//
// Pure and safe for concurrent use across many primes sharing one set.
//
// Complexity: O(log n) per lookup on a set of n candidates.
func (s *CandidateSet) Nearest(p *big.Int) (Candidate, *big.Int) {
	// 1) Locate the first candidate with value ≥ p.
	i := sort.Search(len(s.cands), func(i int) bool {
		return s.cands[i].Value.Cmp(p) >= 0
	})

	// 2) The two contenders: the run ending just below p and the run
	//    starting at or above p. Each run's first element is already its
	//    best representative (set order bakes in the tie-break).
	var left, right *Candidate
	if i > 0 {
		left = &s.cands[runStart(s.cands, i-1)]
	}
	if i < len(s.cands) {
		right = &s.cands[i]
	}

	// 3) Compare distances; exactly one side exists at the extremes.
	switch {
	case left == nil:
		return *right, new(big.Int).Sub(right.Value, p)
	case right == nil:
		return *left, new(big.Int).Sub(p, left.Value)
	}

	dl := new(big.Int).Sub(p, left.Value)
	dr := new(big.Int).Sub(right.Value, p)
	switch dl.Cmp(dr) {
	case -1:
		return *left, dl
	case +1:
		return *right, dr
	}

	// 4) Equal distance across two different values: family first, then the
	//    smaller value — which is the left one by construction.
	if right.Family < left.Family {
		return *right, dr
	}

	return *left, dl
}

// Evaluate produces the full per-prime record: nearest candidate, distance,
// and the within-tolerance verdict.
func (s *CandidateSet) Evaluate(p *big.Int) PrimeRecord {
	c, d := s.Nearest(p)

	return PrimeRecord{
		Prime:    p,
		Distance: d,
		Nearest:  c,
		Within:   d.CmpAbs(big.NewInt(Tolerance)) <= 0,
	}
}

// runStart walks back to the first candidate sharing cands[i]'s value.
// Runs are at most one candidate per family, so this is O(1) in practice.
func runStart(cands []Candidate, i int) int {
	for i > 0 && cands[i-1].Value.Cmp(cands[i].Value) == 0 {
		i--
	}

	return i
}
