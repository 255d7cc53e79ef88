//go:build fastdivcheck

package fastdiv

import "fmt"

// With the fastdivcheck build tag, Mod recomputes the division factor from
// the divisor it was handed and panics if it does not match the precomputed
// one. This turns silent wrong-but-bounded results from a mismatched pair
// into a hard failure at the call site. Debug builds only; the default
// build compiles these checks away entirely.

func checkDivisor32(v Divisor32, d uint32) {
	if d <= 1 || NewDivisor32(d) != v {
		panic(fmt.Sprintf("fastdiv: divisor %d does not match precomputed factor", d))
	}
}

func checkDivisor64(v Divisor64, d uint64) {
	if d <= 1 || NewDivisor64(d) != v {
		panic(fmt.Sprintf("fastdiv: divisor %d does not match precomputed factor", d))
	}
}
