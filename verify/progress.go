// Package verify - the shared progress accumulator.
package verify

import (
	"math"
	"math/big"
	"sync/atomic"
	"time"
)

// progress is the only mutable state shared between evaluator workers and
// the driver. All fields are atomics; nothing reports per element.
type progress struct {
	scalesDone    atomic.Uint64
	primesChecked atomic.Uint64
	maxDistance   atomic.Uint64 // saturating at MaxUint64
	start         time.Time
}

func newProgress() *progress {
	return &progress{start: time.Now()}
}

// addPrimes credits a completed evaluation batch.
func (p *progress) addPrimes(n int) {
	p.primesChecked.Add(uint64(n))
}

// observeDistance folds one distance into the running maximum. Distances
// past the native range saturate; the exact value lives in the RangeResult.
func (p *progress) observeDistance(d *big.Int) {
	v := uint64(math.MaxUint64)
	if d.IsUint64() {
		v = d.Uint64()
	}
	for {
		cur := p.maxDistance.Load()
		if v <= cur || p.maxDistance.CompareAndSwap(cur, v) {
			return
		}
	}
}

// scaleDone marks one scale finished and returns a Snapshot for callbacks.
func (p *progress) scaleDone(total uint64, last RangeResult) Snapshot {
	done := p.scalesDone.Add(1)

	return Snapshot{
		ScalesDone:    done,
		ScalesTotal:   total,
		PrimesChecked: p.primesChecked.Load(),
		MaxDistance:   p.maxDistance.Load(),
		Elapsed:       time.Since(p.start),
		Last:          last,
	}
}
