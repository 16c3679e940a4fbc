package primes_test

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/primering/primes"
)

// ExampleInRange streams the primes of the first ring segment.
func ExampleInRange() {
	stream, err := primes.InRange(context.Background(), big.NewInt(1), big.NewInt(360))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	found := stream.Drain()
	fmt.Printf("strategy=%s count=%d first=%s last=%s\n",
		stream.Strategy(), len(found), found[0], found[len(found)-1])
	// Output:
	// strategy=sieve count=72 first=2 last=359
}

// ExampleStream_Next consumes a stream one prime at a time.
func ExampleStream_Next() {
	stream, _ := primes.InRange(context.Background(), big.NewInt(1), big.NewInt(12))
	for p, ok := stream.Next(); ok; p, ok = stream.Next() {
		fmt.Println(p)
	}
	// Output:
	// 2
	// 3
	// 5
	// 7
	// 11
}
