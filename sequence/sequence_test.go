// Package sequence_test validates seeds, the default recurrence, limit
// handling and rejection of broken injected rules.
package sequence_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/primering/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigInt is a shorthand constructor used throughout the tests.
func bigInt(v int64) *big.Int { return big.NewInt(v) }

func TestSeed_FirstScales(t *testing.T) {
	// Seed(m) = (m-1)·360 + 181.
	assert.Equal(t, bigInt(181), sequence.Seed(1))
	assert.Equal(t, bigInt(541), sequence.Seed(2))
	assert.Equal(t, bigInt(3421), sequence.Seed(10))
}

func TestSeed_ZeroScaleUndefined(t *testing.T) {
	assert.Nil(t, sequence.Seed(0))
}

func TestTerms_DefaultRule_Scale1(t *testing.T) {
	// For m=1 the family up to 360+180 is fixed; values computed by hand from
	// the recurrence term(i+1) = term(i) + (i+1), seed 181.
	want := []int64{
		181, 183, 186, 190, 195, 201, 208, 216, 225, 235,
		246, 258, 271, 285, 300, 316, 333, 351, 370, 390,
		411, 433, 456, 480, 505, 531,
	}

	got, err := sequence.Terms(1, bigInt(540))
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, bigInt(w), got[i], "term %d", i)
	}
}

func TestTerms_DefaultRule_Scale2Prefix(t *testing.T) {
	got, err := sequence.Terms(2, bigInt(2*360+180))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 6)

	want := []int64{541, 543, 546, 550, 555, 561}
	for i, w := range want {
		assert.Equal(t, bigInt(w), got[i], "term %d", i)
	}
}

func TestTerms_RestartableWithinScale(t *testing.T) {
	// Two generations for the same (m, limit) must agree exactly.
	a, err := sequence.Terms(7, bigInt(7*360+180))
	require.NoError(t, err)
	b, err := sequence.Terms(7, bigInt(7*360+180))
	require.NoError(t, err)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Zero(t, a[i].Cmp(b[i]), "term %d", i)
	}
}

func TestTerms_LimitBelowSeed(t *testing.T) {
	// Seed(1)=181; a limit of 100 admits no terms at all.
	got, err := sequence.Terms(1, bigInt(100))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTerms_LimitIsInclusive(t *testing.T) {
	// Limit exactly equal to a term must include that term.
	got, err := sequence.Terms(1, bigInt(181))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, bigInt(181), got[0])
}

func TestTerms_Validation(t *testing.T) {
	_, err := sequence.Terms(0, bigInt(360))
	assert.ErrorIs(t, err, sequence.ErrZeroScale)

	_, err = sequence.Terms(1, nil)
	assert.ErrorIs(t, err, sequence.ErrNilLimit)

	_, err = sequence.Terms(1, bigInt(360), sequence.WithRule(nil))
	assert.ErrorIs(t, err, sequence.ErrNilRule)
}

func TestTerms_RejectsNonIncreasingRule(t *testing.T) {
	// A stuck rule returns its input unchanged; Terms must refuse it instead
	// of spinning forever.
	stuck := func(term *big.Int, _ uint64) *big.Int { return new(big.Int).Set(term) }

	_, err := sequence.Terms(1, bigInt(540), sequence.WithRule(stuck))
	assert.ErrorIs(t, err, sequence.ErrRuleNotIncreasing)
}

func TestTerms_MaxTermsCap(t *testing.T) {
	// A +1 rule needs 360 terms to cross one ring; a cap of 8 trips first.
	plusOne := func(term *big.Int, _ uint64) *big.Int {
		return new(big.Int).Add(term, big.NewInt(1))
	}

	_, err := sequence.Terms(1, bigInt(540), sequence.WithRule(plusOne), sequence.WithMaxTerms(8))
	assert.ErrorIs(t, err, sequence.ErrTermOverflow)
}

func TestTerms_InjectedRuleHonored(t *testing.T) {
	// Doubling rule: 181, 362. 724 exceeds the limit.
	double := func(term *big.Int, _ uint64) *big.Int {
		return new(big.Int).Mul(term, big.NewInt(2))
	}

	got, err := sequence.Terms(1, bigInt(540), sequence.WithRule(double))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, bigInt(181), got[0])
	assert.Equal(t, bigInt(362), got[1])
}

func TestWithMaxTerms_PanicsOnNonPositive(t *testing.T) {
	// Validation happens when the option is applied, not when constructed.
	opt := sequence.WithMaxTerms(0)
	assert.Panics(t, func() {
		cfg := sequence.DefaultOptions()
		opt(&cfg)
	})
}
