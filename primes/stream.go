// Package primes - the Stream type: a lazy, finite, non-restartable prime
// sequence.
package primes

import "math/big"

// Stream yields the primes of one interval in ascending order, each exactly
// once. A Stream cannot be restarted; generate a new one instead. It is not
// safe for concurrent consumption.
type Stream struct {
	primes    []*big.Int
	pos       int
	truncated bool
	strategy  Strategy
}

// Next returns the next prime and true, or (nil, false) once exhausted.
// The returned value must not be mutated by the caller.
func (s *Stream) Next() (*big.Int, bool) {
	if s.pos >= len(s.primes) {
		return nil, false
	}
	p := s.primes[s.pos]
	s.pos++

	return p, true
}

// Drain consumes and returns every remaining prime. After Drain, Next
// reports exhaustion.
func (s *Stream) Drain() []*big.Int {
	rest := s.primes[s.pos:]
	s.pos = len(s.primes)

	return rest
}

// Remaining reports how many primes are left to consume.
func (s *Stream) Remaining() int { return len(s.primes) - s.pos }

// Truncated reports whether the probabilistic path hit its MaxPrimes cap
// before covering the interval. A truncated stream is a prefix, not the full
// prime set; verifiers must not claim exhaustiveness over it.
func (s *Stream) Truncated() bool { return s.truncated }

// Strategy reports which generation algorithm produced this stream.
func (s *Stream) Strategy() Strategy { return s.strategy }
