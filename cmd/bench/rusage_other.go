//go:build !linux

package main

// getMaxRSS returns 0 on platforms where peak RSS reporting is not wired up.
func getMaxRSS() uint64 {
	return 0
}
