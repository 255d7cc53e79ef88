//go:build !fastdivcheck

package fastdiv

// The pairing between a precomputed divisor and the divisor value passed to
// Mod is an unchecked precondition. These stubs compile to nothing; build
// with the fastdivcheck tag to verify the pairing during debugging.

func checkDivisor32(Divisor32, uint32) {}

func checkDivisor64(Divisor64, uint64) {}
