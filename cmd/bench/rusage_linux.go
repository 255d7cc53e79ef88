//go:build linux

package main

import "golang.org/x/sys/unix"

// getMaxRSS returns the peak resident set size in bytes.
// Uses getrusage(RUSAGE_SELF), which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss) * 1024 // Linux reports kilobytes
}
