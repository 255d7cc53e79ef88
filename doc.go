// Package fastdiv implements fast division, modulo, and divisibility tests
// by a divisor that is constant at runtime but unknown at compile time.
//
// Hardware integer division is expensive relative to multiplication. When
// the same divisor is used repeatedly — bucket indexing, stride
// computations, hot inner loops — it pays to precompute a fixed-point
// reciprocal ("magic constant") once and replace every subsequent division
// with a widening multiply and shift. The results are bit-exact with the
// native operators for every representable dividend.
//
// # Basic Usage
//
//	d := uint32(3)
//	div := fastdiv.NewDivisor32(d) // once per divisor
//
//	q := div.Div(9)        // 9 / 3 == 3
//	r := div.Mod(4, d)     // 4 % 3 == 1
//	ok := div.Divides(9)   // 9 % 3 == 0
//
// NewDivisor32 and NewDivisor64 panic if the divisor is 0 or 1; both cases
// are caller bugs, not runtime conditions. Mod takes the divisor again
// because the precomputed value deliberately carries no reference back to
// it — pass the same d that produced the Divisor32/Divisor64, or the result
// is unspecified (though always a deterministic, in-range value, never a
// fault). Building with the fastdivcheck tag adds a pairing check to Mod
// for debugging.
//
// Divisor32 and Divisor64 are immutable values: copy them, embed them, and
// share them across goroutines without locking.
//
// # Package Structure
//
//   - Public API: fastdiv32.go (Divisor32), fastdiv64.go (Divisor64)
//   - Double-width multiply primitives: internal/bits
//   - Optional debug pairing check: check_on.go, check_off.go (fastdivcheck tag)
//   - Tooling: cmd/bench (timing vs native division), cmd/verify
//     (exhaustive/randomized correctness sweeps)
package fastdiv
