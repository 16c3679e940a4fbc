// Package verify - data model, sentinel errors and functional options for
// per-scale verification and the scale driver.
package verify

import (
	"errors"
	"math/big"
	"runtime"
	"time"

	"github.com/katalvlaran/primering/sequence"
)

// Tolerance is the fixed proximity bound of the conjecture: a prime passes
// when its nearest candidate is at most this far away.
const Tolerance = 180

// Ring is the fixed segment width; scale m covers ((m-1)·Ring, m·Ring].
const Ring = 360

// missedCap bounds how many violating primes a RangeResult retains for
// reporting; the counts stay exact regardless.
const missedCap = 10

// Sentinel errors.
var (
	// ErrInvalidParameters indicates malformed driver configuration
	// (min_m < 1, min_m > max_m, non-positive cap). Reported before any
	// computation starts.
	ErrInvalidParameters = errors.New("verify: invalid parameters")

	// ErrZeroScale indicates Verify was asked for scale 0; scales start at 1.
	ErrZeroScale = errors.New("verify: scale m must be ≥ 1")

	// ErrInternal indicates an arithmetic or bookkeeping inconsistency
	// (negative distance, candidate construction failure, count mismatch).
	// Fatal to the affected scale only.
	ErrInternal = errors.New("verify: internal computation error")
)

// Family tags the two candidate sources. They are disjoint and are always
// evaluated together for a scale, never independently.
type Family uint8

const (
	// FamilyDivisor marks a divisor of m·360.
	FamilyDivisor Family = iota

	// FamilySequenceTerm marks a term of the recursive candidate sequence.
	FamilySequenceTerm
)

// String implements fmt.Stringer for reports.
func (f Family) String() string {
	switch f {
	case FamilyDivisor:
		return "divisor"
	case FamilySequenceTerm:
		return "sequence"
	default:
		return "unknown"
	}
}

// Candidate is one value a prime's distance is measured against, tagged by
// its family and its ordinal within that family for the scale.
type Candidate struct {
	Family Family
	Index  uint64
	Value  *big.Int
}

// PrimeRecord is the transient per-prime evaluation outcome. Records exist
// only during aggregation; a RangeResult keeps statistics, not records.
type PrimeRecord struct {
	Prime    *big.Int
	Distance *big.Int
	Nearest  Candidate
	Within   bool
}

// RangeResult aggregates one scale's verification.
type RangeResult struct {
	M          uint64
	RangeStart *big.Int // exclusive
	RangeEnd   *big.Int // inclusive

	PrimeCount   int      // primes evaluated
	WithinCount  int      // primes within Tolerance of a candidate
	DivisorHits  int      // winners from the divisor family
	SequenceHits int      // winners from the sequence family
	MaxDistance  *big.Int // largest minimum distance observed

	Sampled bool       // true: subset evidence, not exhaustive
	Missed  []*big.Int // violating primes, capped at missedCap

	Failed bool  // internal failure; counts above are not meaningful
	Err    error // cause when Failed
}

// Violated reports a data finding: some evaluated prime exceeded Tolerance.
// A Failed result is not a violation; it is an internal failure.
func (r RangeResult) Violated() bool {
	return !r.Failed && r.WithinCount < r.PrimeCount
}

// SuccessRate returns the within-tolerance share in [0, 1].
func (r RangeResult) SuccessRate() float64 {
	if r.Failed || r.PrimeCount == 0 {
		return 0
	}

	return float64(r.WithinCount) / float64(r.PrimeCount)
}

// Summary is the ordered outcome of a driver run.
type Summary struct {
	RunID   string
	MinM    uint64
	MaxM    uint64
	Results []RangeResult // ascending by M
	Elapsed time.Duration
}

// Pass reports whether every completed scale stayed within Tolerance and no
// scale failed internally. Sampled scales contribute subset evidence only.
func (s *Summary) Pass() bool {
	for _, r := range s.Results {
		if r.Failed || r.Violated() {
			return false
		}
	}

	return true
}

// Violated reports whether any scale produced an out-of-tolerance prime.
func (s *Summary) Violated() bool {
	for _, r := range s.Results {
		if r.Violated() {
			return true
		}
	}

	return false
}

// FailedScales counts scales that ended in internal failure.
func (s *Summary) FailedScales() int {
	n := 0
	for _, r := range s.Results {
		if r.Failed {
			n++
		}
	}

	return n
}

// PrimesChecked totals the evaluated primes across completed scales.
func (s *Summary) PrimesChecked() uint64 {
	var n uint64
	for _, r := range s.Results {
		if !r.Failed {
			n += uint64(r.PrimeCount)
		}
	}

	return n
}

// MaxDistance returns the largest minimum distance across completed scales,
// or nil when nothing was evaluated.
func (s *Summary) MaxDistance() *big.Int {
	var max *big.Int
	for _, r := range s.Results {
		if r.Failed || r.MaxDistance == nil {
			continue
		}
		if max == nil || r.MaxDistance.Cmp(max) > 0 {
			max = r.MaxDistance
		}
	}

	return max
}

// Snapshot is the progress view handed to a ProgressFunc as each scale
// finishes.
type Snapshot struct {
	ScalesDone    uint64
	ScalesTotal   uint64
	PrimesChecked uint64
	MaxDistance   uint64 // saturating; MaxUint64 once past native range
	Elapsed       time.Duration
	Last          RangeResult // the scale that just completed
}

// EstimatedRemaining projects the time left in the sweep from the average
// pace of the scales completed so far. Zero before the first scale finishes
// and once the sweep is done.
func (s Snapshot) EstimatedRemaining() time.Duration {
	if s.ScalesDone == 0 || s.ScalesDone >= s.ScalesTotal {
		return 0
	}
	perScale := s.Elapsed / time.Duration(s.ScalesDone)

	return perScale * time.Duration(s.ScalesTotal-s.ScalesDone)
}

// ProgressFunc receives a Snapshot after each completed scale. It runs on
// the driver goroutine; keep it cheap.
type ProgressFunc func(Snapshot)

// Options configures Verify and Run.
//
// MinM, MaxM    – inclusive scale range for the driver (both ≥ 1).
// MaxPrimes     – per-range evaluation cap; beyond it a scale is sampled.
// Workers       – per-prime evaluation fan-out width.
// ScaleWorkers  – scales verified concurrently (1 = sequential).
// BatchSize     – primes per evaluation batch; a resource knob only.
// MemoryCeiling – sieve budget forwarded to the prime source.
// Seed          – base seed for sampling; same seed ⇒ same subset.
// Rule          – recursive-sequence step rule (domain default when nil).
// Progress      – per-scale progress callback (may be nil).
type Options struct {
	MinM          uint64
	MaxM          uint64
	MaxPrimes     int
	Workers       int
	ScaleWorkers  int
	BatchSize     int
	MemoryCeiling uint64
	Seed          int64
	Rule          sequence.Rule
	Progress      ProgressFunc
}

// Option represents a functional option for configuring Verify and Run.
type Option func(*Options)

// WithScaleRange sets the driver's inclusive [min, max] scale range.
// Ordering and positivity are validated by Run, not here, so that invalid
// CLI input surfaces as ErrInvalidParameters rather than a panic.
func WithScaleRange(min, max uint64) Option {
	return func(o *Options) {
		o.MinM = min
		o.MaxM = max
	}
}

// WithMaxPrimes sets the per-range evaluation cap. Validated by Run.
func WithMaxPrimes(n int) Option {
	return func(o *Options) {
		o.MaxPrimes = n
	}
}

// WithWorkers sets the per-prime evaluation fan-out width.
// Must be positive; invalid values panic.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("verify: Workers must be positive")
		}
		o.Workers = n
	}
}

// WithScaleWorkers sets how many scales are verified concurrently.
// Must be positive; invalid values panic.
func WithScaleWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("verify: ScaleWorkers must be positive")
		}
		o.ScaleWorkers = n
	}
}

// WithBatchSize sets the evaluation batch size.
// Must be positive; invalid values panic.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("verify: BatchSize must be positive")
		}
		o.BatchSize = n
	}
}

// WithMemoryCeiling forwards a sieve budget to the prime source.
// Must be positive; invalid values panic.
func WithMemoryCeiling(bytes uint64) Option {
	return func(o *Options) {
		if bytes == 0 {
			panic("verify: MemoryCeiling must be positive")
		}
		o.MemoryCeiling = bytes
	}
}

// WithSeed fixes the sampling seed for reproducible subsets.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRule injects a replacement recursive-sequence step rule.
func WithRule(r sequence.Rule) Option {
	return func(o *Options) {
		o.Rule = r
	}
}

// WithProgress registers a per-scale progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// Driver defaults mirror the source design's invocation defaults.
const (
	defaultMinM      = 1
	defaultMaxM      = 10
	defaultMaxPrimes = 100_000
	defaultBatch     = 1 << 10
)

// DefaultOptions returns the baseline configuration: scales 1..10, the
// standard cap, full-width evaluation fan-out, sequential scales.
func DefaultOptions() Options {
	return Options{
		MinM:         defaultMinM,
		MaxM:         defaultMaxM,
		MaxPrimes:    defaultMaxPrimes,
		Workers:      runtime.GOMAXPROCS(0),
		ScaleWorkers: 1,
		BatchSize:    defaultBatch,
	}
}
