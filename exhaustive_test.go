package fastdiv

import (
	"fmt"
	"math"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestDivisor32ExhaustiveDividends sweeps every uint32 dividend for a small
// set of structurally interesting divisors, sharded across the available
// CPUs. The full sweep takes tens of seconds per divisor; run with -short
// to skip it.
func TestDivisor32ExhaustiveDividends(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full 2^32 dividend sweep in short mode")
	}

	divisors := []uint32{3, 641, 1 << 31, math.MaxUint32}
	for _, d := range divisors {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			v := NewDivisor32(d)

			var g errgroup.Group
			workers := uint64(runtime.GOMAXPROCS(0))
			shard := (uint64(math.MaxUint32) + 1 + workers - 1) / workers
			for start := uint64(0); start <= math.MaxUint32; start += shard {
				end := start + shard
				if end > uint64(math.MaxUint32)+1 {
					end = uint64(math.MaxUint32) + 1
				}
				g.Go(func() error {
					for i := start; i < end; i++ {
						a := uint32(i)
						if q := v.Div(a); q != a/d {
							return fmt.Errorf("Div(%d) with d=%d = %d, want %d", a, d, q, a/d)
						}
						if r := v.Mod(a, d); r != a%d {
							return fmt.Errorf("Mod(%d, %d) = %d, want %d", a, d, r, a%d)
						}
						if ok := v.Divides(a); ok != (a%d == 0) {
							return fmt.Errorf("Divides(%d) with d=%d = %v, want %v", a, d, ok, a%d == 0)
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				t.Fatal(err)
			}
		})
	}
}
