// Package sequence - types, sentinel errors and functional options for the
// recursive candidate family.
package sequence

import (
	"errors"
	"math/big"
)

// Domain constants of the conjecture. These are fixed parameters, not knobs.
const (
	// ringWidth is the width of one test segment on the number line.
	ringWidth = 360

	// seedOffset places the seed one past the midpoint of the previous segment.
	seedOffset = 181
)

// defaultMaxTerms bounds runaway rules; the default rule needs ~√(2·span)
// terms, so anything near this cap signals a broken injected rule.
const defaultMaxTerms = 1 << 20

// Sentinel errors returned by the sequence generator.
var (
	// ErrZeroScale indicates that scale m was zero; scales start at 1.
	ErrZeroScale = errors.New("sequence: scale m must be ≥ 1")

	// ErrNilLimit indicates that a nil limit was passed to Terms.
	ErrNilLimit = errors.New("sequence: limit must be non-nil")

	// ErrNilRule indicates that a nil Rule was injected via WithRule.
	ErrNilRule = errors.New("sequence: rule must be non-nil")

	// ErrRuleNotIncreasing indicates the injected rule produced a term that
	// did not strictly exceed its predecessor, which would never terminate.
	ErrRuleNotIncreasing = errors.New("sequence: rule must be strictly increasing")

	// ErrTermOverflow indicates the MaxTerms cap was reached before the limit.
	ErrTermOverflow = errors.New("sequence: term cap exceeded before reaching limit")
)

// Rule advances the recurrence by one step: given the current term and its
// 1-based index, it returns the next term. A Rule must be pure and must
// strictly increase; it must not retain or mutate its argument.
type Rule func(term *big.Int, idx uint64) *big.Int

// DefaultRule is the domain recurrence of the conjecture, carried over from
// the source design: term(i+1) = term(i) + (i+1). From seed s at index 1 the
// family runs s, s+2, s+5, s+9, …
func DefaultRule(term *big.Int, idx uint64) *big.Int {
	next := new(big.Int).Set(term)

	return next.Add(next, new(big.Int).SetUint64(idx+1))
}

// Options configures Terms.
//
// Rule     – step function of the recurrence (DefaultRule unless replaced).
// MaxTerms – safety cap on the number of generated terms (> 0).
type Options struct {
	Rule     Rule
	MaxTerms int
}

// Option represents a functional option for configuring Terms.
type Option func(*Options)

// WithRule injects a replacement step rule. Passing nil is rejected later
// with ErrNilRule rather than panicking, so callers can thread user input.
func WithRule(r Rule) Option {
	return func(o *Options) {
		o.Rule = r
	}
}

// WithMaxTerms caps the number of generated terms.
// Must be positive; non-positive values panic (invalid configuration).
func WithMaxTerms(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("sequence: MaxTerms must be positive")
		}
		o.MaxTerms = n
	}
}

// DefaultOptions returns the baseline configuration: the domain rule and the
// default term cap.
func DefaultOptions() Options {
	return Options{
		Rule:     DefaultRule,
		MaxTerms: defaultMaxTerms,
	}
}
