// Package primes - strategy tags, sentinel errors and functional options for
// prime-stream generation.
package primes

import (
	"errors"
	"runtime"
)

// Strategy identifies the generation algorithm selected for an interval.
// The choice is made once per InRange call, from magnitude and ceiling.
type Strategy uint8

const (
	// StrategySieve is the deterministic segmented sieve, used while the
	// interval's upper bound fits the native unsigned range and the sieve's
	// footprint stays under the memory ceiling.
	StrategySieve Strategy = iota

	// StrategyProbabilistic is parallel Miller–Rabin style testing of odd
	// candidates, used beyond the native range or after a sieve refusal.
	StrategyProbabilistic
)

// String implements fmt.Stringer for progress and summary output.
func (s Strategy) String() string {
	switch s {
	case StrategySieve:
		return "sieve"
	case StrategyProbabilistic:
		return "probabilistic"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by the prime source.
var (
	// ErrNilBound indicates a nil interval bound.
	ErrNilBound = errors.New("primes: interval bounds must be non-nil")

	// ErrNegativeBound indicates a negative interval bound; the domain is
	// non-negative integers.
	ErrNegativeBound = errors.New("primes: interval bounds must be non-negative")

	// ErrBoundsOrder indicates lo > hi.
	ErrBoundsOrder = errors.New("primes: interval lower bound exceeds upper bound")

	// ErrResourceExhausted indicates the sieve's memory footprint would
	// exceed the configured ceiling. InRange recovers by falling back to the
	// probabilistic strategy; the error is never fatal to a run.
	ErrResourceExhausted = errors.New("primes: sieve footprint exceeds memory ceiling")
)

// Defaults for Options. The batch size mirrors the chunked scheduling of the
// source design; the probe count keeps the composite-pass probability below
// 4^-20 on top of the Baillie-PSW test the stdlib always runs.
const (
	defaultMemoryCeiling = 256 << 20 // 256 MiB
	defaultMaxPrimes     = 100_000
	defaultBatchSize     = 10_000
	defaultProbes        = 20
)

// Options configures prime generation.
//
// MemoryCeiling – byte budget for sieve allocations (> 0).
// MaxPrimes     – probabilistic collection cap (> 0); hitting it marks the
//
//	Stream truncated, which the verifier turns into sampling.
//
// Workers       – parallel fan-out width (> 0).
// BatchSize     – candidates dispatched per batch (> 0); resource knob only.
// Probes        – Miller–Rabin rounds for ProbablyPrime (> 0).
type Options struct {
	MemoryCeiling uint64
	MaxPrimes     int
	Workers       int
	BatchSize     int
	Probes        int
}

// Option represents a functional option for configuring InRange.
type Option func(*Options)

// WithMemoryCeiling sets the sieve memory budget in bytes.
// Must be positive; zero panics (a zero budget can never sieve anything).
func WithMemoryCeiling(bytes uint64) Option {
	return func(o *Options) {
		if bytes == 0 {
			panic("primes: MemoryCeiling must be positive")
		}
		o.MemoryCeiling = bytes
	}
}

// WithMaxPrimes caps how many primes the probabilistic path collects.
// Must be positive; invalid values panic.
func WithMaxPrimes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("primes: MaxPrimes must be positive")
		}
		o.MaxPrimes = n
	}
}

// WithWorkers sets the width of the parallel primality fan-out.
// Must be positive; invalid values panic.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("primes: Workers must be positive")
		}
		o.Workers = n
	}
}

// WithBatchSize sets how many candidates are dispatched per batch.
// Must be positive; invalid values panic.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("primes: BatchSize must be positive")
		}
		o.BatchSize = n
	}
}

// WithProbes sets the number of Miller–Rabin rounds.
// Must be positive; invalid values panic.
func WithProbes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("primes: Probes must be positive")
		}
		o.Probes = n
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		MemoryCeiling: defaultMemoryCeiling,
		MaxPrimes:     defaultMaxPrimes,
		Workers:       runtime.GOMAXPROCS(0),
		BatchSize:     defaultBatchSize,
		Probes:        defaultProbes,
	}
}
