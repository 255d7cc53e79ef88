// Verify checks the fastdiv primitives against Go's native operators over
// large dividend ranges.
//
// For the 32-bit track it sweeps every dividend in [0, 2^32) for each
// divisor, sharded across workers. The 64-bit dividend space cannot be
// swept, so that track checks a deterministic random sample plus the
// boundary dividends.
//
// Usage:
//
//	go run ./cmd/verify -width 32 -divisors 3,641,4294967295
//	go run ./cmd/verify -width 64 -samples 100000000
//
// Flags:
//
//	-width     32 or 64 (default: 32)
//	-divisors  comma-separated divisor list (default: a built-in set of
//	           structurally interesting divisors for the chosen width)
//	-samples   random dividends per divisor for the 64-bit track
//	           (default: 100,000,000)
//	-workers   parallel workers (default: GOMAXPROCS)
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamirms/fastdiv"
)

var defaultDivisors32 = []uint64{
	2, 3, 5, 7, 9, 641, 6700417, 1 << 16, 1 << 31, (1 << 31) + 1, math.MaxUint32,
}

var defaultDivisors64 = []uint64{
	2, 3, 5, 1020, math.MaxUint32, (1 << 32) + 1, 1 << 63, math.MaxInt64, math.MaxUint64,
}

// verifySample checks one (divisor, dividend) pair on the 64-bit track.
func verifySample(div fastdiv.Divisor64, d, a uint64) error {
	if q := div.Div(a); q != a/d {
		return fmt.Errorf("Div(%d) with d=%d = %d, want %d", a, d, q, a/d)
	}
	if r := div.Mod(a, d); r != a%d {
		return fmt.Errorf("Mod(%d, %d) = %d, want %d", a, d, r, a%d)
	}
	if ok := div.Divides(a); ok != (a%d == 0) {
		return fmt.Errorf("Divides(%d) with d=%d = %v, want %v", a, d, ok, a%d == 0)
	}
	return nil
}

// verify32 sweeps every uint32 dividend for d, sharded across workers.
func verify32(d uint32, workers int) error {
	div := fastdiv.NewDivisor32(d)

	var g errgroup.Group
	total := uint64(math.MaxUint32) + 1
	shard := (total + uint64(workers) - 1) / uint64(workers)
	for start := uint64(0); start < total; start += shard {
		end := min(start+shard, total)
		g.Go(func() error {
			for i := start; i < end; i++ {
				a := uint32(i)
				if q := div.Div(a); q != a/d {
					return fmt.Errorf("Div(%d) with d=%d = %d, want %d", a, d, q, a/d)
				}
				if r := div.Mod(a, d); r != a%d {
					return fmt.Errorf("Mod(%d, %d) = %d, want %d", a, d, r, a%d)
				}
				if ok := div.Divides(a); ok != (a%d == 0) {
					return fmt.Errorf("Divides(%d) with d=%d = %v, want %v", a, d, ok, a%d == 0)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// verify64 checks the boundary dividends plus a deterministic random
// sample, sharded across workers.
func verify64(d uint64, samples, workers int) error {
	div := fastdiv.NewDivisor64(d)

	boundaries := []uint64{0, 1, d - 1, d, math.MaxUint64 - 1, math.MaxUint64}
	if d != math.MaxUint64 {
		boundaries = append(boundaries, d+1)
	}
	for _, a := range boundaries {
		if err := verifySample(div, d, a); err != nil {
			return err
		}
	}

	var g errgroup.Group
	perWorker := (samples + workers - 1) / workers
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(d, uint64(w)))
			for i := 0; i < perWorker; i++ {
				// Half the samples near multiples of d to exercise the
				// divisibility boundary, half uniform.
				a := rng.Uint64()
				if i%2 == 0 && a >= d {
					a -= a % d
				}
				if err := verifySample(div, d, a); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func parseDivisors(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid divisor %q: %w", p, err)
		}
		if d <= 1 {
			return nil, fmt.Errorf("divisor %d out of range (must be > 1)", d)
		}
		out = append(out, d)
	}
	return out, nil
}

func main() {
	widthFlag := flag.Int("width", 32, "track width: 32 or 64")
	divisorsFlag := flag.String("divisors", "", "comma-separated divisors (default: built-in set)")
	samplesFlag := flag.Int("samples", 100_000_000, "random dividends per divisor (64-bit track)")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "parallel workers")
	flag.Parse()

	if *widthFlag != 32 && *widthFlag != 64 {
		fmt.Printf("unsupported width %d (use 32 or 64)\n", *widthFlag)
		os.Exit(1)
	}

	divisors := defaultDivisors32
	if *widthFlag == 64 {
		divisors = defaultDivisors64
	}
	if *divisorsFlag != "" {
		var err error
		divisors, err = parseDivisors(*divisorsFlag)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	for _, d := range divisors {
		var err error
		var checked uint64
		start := time.Now()
		if *widthFlag == 32 {
			if d > math.MaxUint32 {
				fmt.Printf("d=%d exceeds uint32; skipping\n", d)
				continue
			}
			checked = uint64(math.MaxUint32) + 1
			err = verify32(uint32(d), *workersFlag)
		} else {
			checked = uint64(*samplesFlag)
			err = verify64(d, *samplesFlag, *workersFlag)
		}
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("d=%-20d FAIL: %v\n", d, err)
			os.Exit(1)
		}
		fmt.Printf("d=%-20d OK  %d dividends in %6.2fs (%.1f M/sec)\n",
			d, checked, elapsed.Seconds(), float64(checked)/elapsed.Seconds()/1e6)
	}
}
