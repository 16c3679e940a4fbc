package primes_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/katalvlaran/primering/primes"
)

// BenchmarkSieve_OneRing measures sieving a single 360-wide ring at the top
// of the comfortable native range.
func BenchmarkSieve_OneRing(b *testing.B) {
	lo := big.NewInt(35_999_640)
	hi := big.NewInt(36_000_000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := primes.InRange(ctx, lo, hi)
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkProbabilistic_OneRing measures the fallback path on the same ring.
func BenchmarkProbabilistic_OneRing(b *testing.B) {
	lo := big.NewInt(35_999_640)
	hi := big.NewInt(36_000_000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := primes.InRange(ctx, lo, hi, primes.WithMemoryCeiling(1))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	}
}
