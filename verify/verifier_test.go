// Package verify_test pins per-scale verification results against values
// computed independently for the first ring segments.
package verify_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/katalvlaran/primering/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Scale1(t *testing.T) {
	// (0, 360] holds 72 primes; every one lands within 29 of a candidate.
	res, err := verify.Verify(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), res.M)
	assert.Equal(t, bigInt(0), res.RangeStart)
	assert.Equal(t, bigInt(360), res.RangeEnd)
	assert.Equal(t, 72, res.PrimeCount)
	assert.Equal(t, 72, res.WithinCount)
	assert.Equal(t, 42, res.DivisorHits)
	assert.Equal(t, 30, res.SequenceHits)
	assert.Equal(t, bigInt(29), res.MaxDistance)
	assert.False(t, res.Sampled)
	assert.False(t, res.Violated())
	assert.Empty(t, res.Missed)
	assert.InDelta(t, 1.0, res.SuccessRate(), 1e-12)
}

func TestVerify_Scale10(t *testing.T) {
	// (3240, 3600]: 46 primes, every winner a sequence term, worst case 170.
	res, err := verify.Verify(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 46, res.PrimeCount)
	assert.Equal(t, 46, res.WithinCount)
	assert.Equal(t, 0, res.DivisorHits)
	assert.Equal(t, 46, res.SequenceHits)
	assert.Equal(t, bigInt(170), res.MaxDistance)
	assert.False(t, res.Sampled)
}

func TestVerify_WorstObservedDistances(t *testing.T) {
	// The maximum minimum distance per scale, from independent computation.
	// Scales 6..8 touch the tolerance exactly and still pass.
	want := map[uint64]int64{2: 89, 3: 174, 6: 180, 7: 180, 8: 180, 9: 174}
	for m, d := range want {
		res, err := verify.Verify(context.Background(), m)
		require.NoError(t, err, "m=%d", m)
		assert.Equal(t, bigInt(d), res.MaxDistance, "m=%d", m)
		assert.False(t, res.Violated(), "m=%d", m)
	}
}

func TestVerify_SamplingBelowCap(t *testing.T) {
	// Capping below the 72 primes of scale 1 switches to subset evidence.
	res, err := verify.Verify(context.Background(), 1,
		verify.WithMaxPrimes(10), verify.WithSeed(42))
	require.NoError(t, err)

	assert.True(t, res.Sampled)
	assert.Equal(t, 10, res.PrimeCount)
	assert.Equal(t, 10, res.WithinCount)
	assert.False(t, res.Violated())
}

func TestVerify_SamplingDeterministicUnderSeed(t *testing.T) {
	run := func() verify.RangeResult {
		res, err := verify.Verify(context.Background(), 5,
			verify.WithMaxPrimes(7), verify.WithSeed(99))
		require.NoError(t, err)

		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.PrimeCount, b.PrimeCount)
	assert.Equal(t, a.WithinCount, b.WithinCount)
	assert.Equal(t, a.DivisorHits, b.DivisorHits)
	assert.Equal(t, a.SequenceHits, b.SequenceHits)
	assert.Zero(t, a.MaxDistance.Cmp(b.MaxDistance))
}

func TestVerify_SeedCoversOwnRange(t *testing.T) {
	// The seed (m-1)·360+181 sits 180 or less from every integer of its
	// range, so even a rule that leaps away after one step cannot break a
	// scale: the seed itself is always emitted.
	leap := func(term *big.Int, _ uint64) *big.Int {
		return new(big.Int).Add(term, bigInt(1_000_000))
	}

	res, err := verify.Verify(context.Background(), 3, verify.WithRule(leap))
	require.NoError(t, err)

	assert.False(t, res.Violated())
	assert.Equal(t, res.PrimeCount, res.WithinCount)
	assert.LessOrEqual(t, res.MaxDistance.Cmp(bigInt(verify.Tolerance)), 0)
}

func TestRangeResult_ViolationSemantics(t *testing.T) {
	r := verify.RangeResult{
		PrimeCount:  5,
		WithinCount: 4,
		Missed:      []*big.Int{bigInt(97)},
	}
	assert.True(t, r.Violated())
	assert.InDelta(t, 0.8, r.SuccessRate(), 1e-12)

	// An internal failure is not a data finding.
	r.Failed = true
	assert.False(t, r.Violated())
	assert.Zero(t, r.SuccessRate())
}

func TestVerify_ZeroScale(t *testing.T) {
	_, err := verify.Verify(context.Background(), 0)
	require.ErrorIs(t, err, verify.ErrZeroScale)
}

func TestVerify_RejectsNonPositiveCap(t *testing.T) {
	_, err := verify.Verify(context.Background(), 1, verify.WithMaxPrimes(0))
	require.ErrorIs(t, err, verify.ErrInvalidParameters)
}

func TestVerify_NilContext(t *testing.T) {
	res, err := verify.Verify(nil, 1) //nolint:staticcheck // nil ctx tolerated
	require.NoError(t, err)
	assert.Equal(t, 72, res.PrimeCount)
}
