package fastdiv

import (
	intbits "github.com/tamirms/fastdiv/internal/bits"
)

// Divisor32 is the precomputed form of a uint32 divisor: a 64-bit
// fixed-point approximation of 1/d, derived once by NewDivisor32 and reused
// across any number of dividends.
//
// A Divisor32 is plain immutable data. It may be copied and shared across
// goroutines freely; no operation mutates it or blocks.
type Divisor32 struct {
	m uint64
}

// NewDivisor32 precomputes the division factor for the divisor d.
//
// The factor is m = floor((2^64 - 1)/d) + 1, the unique scaled reciprocal
// that makes the multiply-and-shift operations below exact for every uint32
// dividend, including when d is a power of two.
//
// NewDivisor32 panics if d <= 1: dividing by zero is meaningless, and
// dividing by one gains nothing over the native operator. Passing such a
// divisor is a contract violation by the caller, not a runtime condition
// to recover from.
func NewDivisor32(d uint32) Divisor32 {
	if d <= 1 {
		panic("fastdiv: divisor must be greater than 1")
	}
	return Divisor32{m: ^uint64(0)/uint64(d) + 1}
}

// Div returns a / d, where d is the divisor that produced v: the upper
// 32 bits of the exact product m*a. A single widening multiply and shift,
// with no branch, no loop, and no subtraction.
func (v Divisor32) Div(a uint32) uint32 {
	return uint32(intbits.Mul64High(v.m, uint64(a)))
}

// Mod returns a % d. The remainder is derived without computing the
// quotient: the wrapping product m*a keeps only the fractional part of
// a/d, and multiplying that fraction by d recovers the remainder in the
// upper half.
//
// d must be the divisor that produced v. Supplying any other divisor
// yields a deterministic but unspecified uint32; it is never a crash or
// out-of-range memory access. No runtime check ties the pair together
// (build with the fastdivcheck tag to enable one during debugging).
func (v Divisor32) Mod(a, d uint32) uint32 {
	checkDivisor32(v, d)
	lowbits := v.m * uint64(a)
	return uint32(intbits.Mul64High(lowbits, uint64(d)))
}

// Divides reports whether the divisor that produced v divides n exactly.
// The wrapping product n*m holds the scaled fractional part of n/d, which
// is strictly below m exactly when d divides n. No remainder is
// materialized; this is a single multiply and compare.
func (v Divisor32) Divides(n uint32) bool {
	return uint64(n)*v.m <= v.m-1
}
