// Package verify_test validates candidate-set construction: window
// filtering, family merging and the baked-in ordering.
package verify_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/primering/sequence"
	"github.com/katalvlaran/primering/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInt(v int64) *big.Int { return big.NewInt(v) }

func TestNewCandidateSet_Scale1(t *testing.T) {
	// Scale 1 covers (0, 360]; window [0, 540]. All 24 divisors of 360 fit,
	// plus the 26 sequence terms 181..531.
	set, err := verify.NewCandidateSet(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 24+26, set.Len())
}

func TestNewCandidateSet_Scale2Window(t *testing.T) {
	// Scale 2 covers (360, 720]; window [180, 900]. Of the 30 divisors of
	// 720 only {180, 240, 360, 720} survive; 26 sequence terms 541..891.
	set, err := verify.NewCandidateSet(2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4+26, set.Len())
}

func TestNewCandidateSet_ZeroScale(t *testing.T) {
	_, err := verify.NewCandidateSet(0, nil)
	require.ErrorIs(t, err, verify.ErrZeroScale)
}

func TestNewCandidateSet_InjectedRule(t *testing.T) {
	// A steeper rule thins the sequence family; the divisor family is
	// untouched.
	double := func(term *big.Int, _ uint64) *big.Int {
		return new(big.Int).Mul(term, bigInt(2))
	}

	set, err := verify.NewCandidateSet(1, double)
	require.NoError(t, err)
	// Divisors: 24. Sequence within [0, 540]: 181, 362.
	assert.Equal(t, 24+2, set.Len())
}

func TestNewCandidateSet_BrokenRuleSurfacesAsInternal(t *testing.T) {
	stuck := func(term *big.Int, _ uint64) *big.Int { return term }

	_, err := verify.NewCandidateSet(1, stuck)
	require.ErrorIs(t, err, verify.ErrInternal)
}

func TestNewCandidateSet_BothFamiliesAlwaysPresent(t *testing.T) {
	// The end of every range is a divisor of itself and every seed lies
	// inside its own range, so both families contribute for any scale.
	for _, m := range []uint64{1, 2, 3, 7, 10, 360, 1000} {
		set, err := verify.NewCandidateSet(m, nil)
		require.NoError(t, err, "m=%d", m)

		end := new(big.Int).SetUint64(m)
		end.Mul(end, bigInt(verify.Ring))
		c, d := set.Nearest(end)
		assert.Zero(t, d.Sign(), "m=%d: range end must be a candidate", m)
		assert.Equal(t, verify.FamilyDivisor, c.Family, "m=%d", m)

		seed := sequence.Seed(m)
		c, d = set.Nearest(seed)
		assert.Zero(t, d.Sign(), "m=%d: seed must be a candidate", m)
		assert.Equal(t, verify.FamilySequenceTerm, c.Family, "m=%d", m)
	}
}

func TestNewCandidateSet_BeyondNativeScale(t *testing.T) {
	// m chosen so m·360 overflows uint64; the windowed divisor walk takes
	// over and the set still contains the range end.
	const m = uint64(1) << 60

	set, err := verify.NewCandidateSet(m, nil)
	require.NoError(t, err)
	require.Positive(t, set.Len())

	end := new(big.Int).SetUint64(m)
	end.Mul(end, bigInt(verify.Ring))
	_, d := set.Nearest(end)
	assert.Zero(t, d.Sign())
}
