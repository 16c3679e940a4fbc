// White-box tests for the sieve's window arithmetic at the top of the
// native range, where the full allocation is far too large to exercise.
package primes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMultipleFrom_NearNativeMaximum(t *testing.T) {
	// Window of one ring segment ending at 2⁶⁴-1. ⌈lo/p⌉·p wraps here for
	// any p that does not divide lo; these values are computed exactly.
	lo := uint64(math.MaxUint64) - 359
	hi := uint64(math.MaxUint64)

	got, ok := firstMultipleFrom(lo, hi, 367)
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709551319), got)

	got, ok = firstMultipleFrom(lo, hi, 3)
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709551258), got)

	got, ok = firstMultipleFrom(lo, hi, 359)
	require.True(t, ok)
	assert.Equal(t, uint64(18446744073709551313), got)
}

func TestFirstMultipleFrom_NoMultipleInWindow(t *testing.T) {
	lo := uint64(math.MaxUint64) - 359
	hi := uint64(math.MaxUint64)

	// Neither 997 nor 1009 has a multiple inside this 360-wide window.
	_, ok := firstMultipleFrom(lo, hi, 997)
	assert.False(t, ok)
	_, ok = firstMultipleFrom(lo, hi, 1009)
	assert.False(t, ok)
}

func TestFirstMultipleFrom_Properties(t *testing.T) {
	// Exact divisions, tight windows and ordinary interior cases.
	cases := []struct {
		lo, hi, p uint64
		want      uint64
		ok        bool
	}{
		{100, 200, 10, 100, true}, // lo itself divides
		{101, 200, 10, 110, true},
		{101, 109, 10, 0, false}, // window too tight
		{7, 7, 7, 7, true},       // single-element window
		{8, 13, 7, 0, false},
	}
	for _, tc := range cases {
		got, ok := firstMultipleFrom(tc.lo, tc.hi, tc.p)
		require.Equal(t, tc.ok, ok, "lo=%d hi=%d p=%d", tc.lo, tc.hi, tc.p)
		if ok {
			assert.Equal(t, tc.want, got, "lo=%d hi=%d p=%d", tc.lo, tc.hi, tc.p)
			assert.Zero(t, got%tc.p)
			assert.GreaterOrEqual(t, got, tc.lo)
			assert.LessOrEqual(t, got, tc.hi)
		}
	}
}
