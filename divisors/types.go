// Package divisors - types, sentinel errors and functional options for
// divisor-set construction.
package divisors

import "errors"

// Ring is the fixed modulus of the conjecture: one segment spans 360.
const Ring = 360

// ringFactorization is the prime factorization of Ring: 2³·3²·5.
// It is folded into every scale's factorization before lattice expansion.
var ringFactorization = map[uint64]uint{2: 3, 3: 2, 5: 1}

// Sentinel errors returned by the divisor builders.
var (
	// ErrZeroScale indicates that scale m was zero; scales start at 1.
	ErrZeroScale = errors.New("divisors: scale m must be ≥ 1")

	// ErrNilScale indicates a nil *big.Int scale was passed to Near.
	ErrNilScale = errors.New("divisors: scale must be non-nil")

	// ErrNilBound indicates a nil window bound was passed to Near.
	ErrNilBound = errors.New("divisors: window bounds must be non-nil")

	// ErrBoundsOrder indicates lo > hi.
	ErrBoundsOrder = errors.New("divisors: window lower bound exceeds upper bound")

	// ErrScaleOverflow indicates m·360 does not fit the native unsigned range,
	// so the complete lattice cannot be built by Of; use Near with a window.
	ErrScaleOverflow = errors.New("divisors: m·360 exceeds native range, use Near")

	// ErrFactorizationRequired indicates Near was called for a scale beyond
	// the native range without a supplied factorization of m.
	ErrFactorizationRequired = errors.New("divisors: factorization of m required beyond native range")

	// ErrBadFactorization indicates the supplied factorization does not
	// multiply back to the given scale.
	ErrBadFactorization = errors.New("divisors: supplied factorization does not match m")
)

// Options configures Near.
//
// Factorization – prime → exponent map for the scale m (not for m·360; the
// ring's own factors are folded in internally). Nil means "compute it",
// which is only possible while m fits the native range.
type Options struct {
	Factorization map[uint64]uint
}

// Option represents a functional option for configuring Near.
type Option func(*Options)

// WithFactorization supplies the prime factorization of m. The map is
// copied; exponents must be ≥ 1 (zero-exponent entries panic: they make the
// expected divisor count lie).
func WithFactorization(f map[uint64]uint) Option {
	return func(o *Options) {
		cp := make(map[uint64]uint, len(f))
		for p, e := range f {
			if e == 0 {
				panic("divisors: factorization exponents must be ≥ 1")
			}
			cp[p] = e
		}
		o.Factorization = cp
	}
}

// DefaultOptions returns the baseline configuration for Near: no supplied
// factorization (computed natively when possible).
func DefaultOptions() Options {
	return Options{}
}
