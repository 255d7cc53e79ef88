package fastdiv

import (
	"math/bits"

	intbits "github.com/tamirms/fastdiv/internal/bits"
)

// Divisor64 is the precomputed form of a uint64 divisor: a 128-bit
// fixed-point approximation of 1/d held as two limbs, derived once by
// NewDivisor64 and reused across any number of dividends.
//
// Like Divisor32, it is plain immutable data with no interior mutability;
// copy and share it without coordination.
type Divisor64 struct {
	mHi uint64
	mLo uint64
}

// NewDivisor64 precomputes the division factor for the divisor d.
//
// The factor is m = floor((2^128 - 1)/d) + 1. Go has no native 128-bit
// division, so the quotient is formed by schoolbook long division of the
// two all-ones limbs: the high limb directly, then the remainder carried
// into bits.Div64 for the low limb. The trailing +1 propagates its carry
// across both limbs.
//
// NewDivisor64 panics if d <= 1, mirroring NewDivisor32.
func NewDivisor64(d uint64) Divisor64 {
	if d <= 1 {
		panic("fastdiv: divisor must be greater than 1")
	}
	qHi := ^uint64(0) / d
	rem := ^uint64(0) - qHi*d
	qLo, _ := bits.Div64(rem, ^uint64(0), d)

	lo, carry := bits.Add64(qLo, 1, 0)
	return Divisor64{mHi: qHi + carry, mLo: lo}
}

// Div returns a / d, where d is the divisor that produced v: bits
// [128, 192) of the 192-bit product m*a.
func (v Divisor64) Div(a uint64) uint64 {
	return intbits.Mul128High64(v.mHi, v.mLo, a)
}

// Mod returns a % d via the same double-multiply sequence as
// Divisor32.Mod, lifted to 128-bit limbs: the wrapping low half of m*a is
// the scaled fraction of a/d, and its product with d carries the remainder
// in bits [128, 192).
//
// d must be the divisor that produced v; otherwise the result is a
// deterministic but unspecified uint64.
func (v Divisor64) Mod(a, d uint64) uint64 {
	checkDivisor64(v, d)
	lowHi, lowLo := intbits.Mul128Low64(v.mHi, v.mLo, a)
	return intbits.Mul128High64(lowHi, lowLo, d)
}

// Divides reports whether the divisor that produced v divides n exactly:
// the wrapping 128-bit product n*m compared against m-1, limb by limb.
func (v Divisor64) Divides(n uint64) bool {
	pHi, pLo := intbits.Mul128Low64(v.mHi, v.mLo, n)
	bLo, borrow := bits.Sub64(v.mLo, 1, 0)
	bHi, _ := bits.Sub64(v.mHi, 0, borrow)
	return pHi < bHi || (pHi == bHi && pLo <= bLo)
}
