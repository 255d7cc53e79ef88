// Package bits provides the double-width multiplication primitives behind
// the fast division algorithm.
package bits

import "math/bits"

// Mul64High returns the upper 64 bits of the full 128-bit product x*y.
// This is the entire double-width primitive for the 32-bit track: the
// exact product of a 64-bit magic constant and a 32-bit dividend fits in
// the native 128-bit multiply.
func Mul64High(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// Mul128Low64 returns the low 128 bits, as (hi, lo) limbs, of the product
// of the 128-bit value xHi:xLo and the 64-bit value y. Bits at position 128
// and above are discarded (wrapping multiplication).
func Mul128Low64(xHi, xLo, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(xLo, y)
	hi += xHi * y
	return hi, lo
}

// Mul128High64 returns bits [128, 192) of the 192-bit product of the
// 128-bit value xHi:xLo and the 64-bit value y.
//
// No native type holds the full product, so it is assembled from limb-wise
// partial products: xLo*y contributes only through the carry of its high
// limb into the middle column, while xHi*y supplies the middle and top
// limbs directly. The result is bit-exact with the arbitrary-precision
// product truncated the same way.
func Mul128High64(xHi, xLo, y uint64) uint64 {
	topHi, topLo := bits.Mul64(xHi, y)
	botHi, _ := bits.Mul64(xLo, y)
	_, carry := bits.Add64(topLo, botHi, 0)
	return topHi + carry
}
