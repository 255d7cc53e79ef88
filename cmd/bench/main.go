// Bench measures the fastdiv primitives against Go's native division and
// modulo operators, and against division by a compile-time constant.
//
// Usage:
//
//	go run ./cmd/bench -workload ops -iters 100000000
//	go run ./cmd/bench -workload buckets -keys 10000000 -buckets 4096 -hash xxhash
//
// Flags:
//
//	-workload  ops (raw per-operation latency) or buckets (end-to-end
//	           bucket-indexing loop) (default: ops)
//	-divisor   runtime divisor for the ops workload (default: 1000000007)
//	-iters     iterations per ops measurement (default: 100,000,000)
//	-keys      number of keys for the buckets workload (default: 10,000,000)
//	-buckets   bucket count for the buckets workload (default: 4096)
//	-hash      key hash for the buckets workload: xxhash, xxh3, or murmur3
//	           (default: xxhash)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/tamirms/fastdiv"
)

// Compile-time-constant baselines. Ordinary Go division by these literals is
// already strength-reduced by the compiler; they bound what fastdiv can gain.
const (
	constDivisor32 = uint32(1000000007)
	constDivisor64 = uint64(1000000000000000003)
)

type row struct {
	name  string
	total time.Duration
	iters int
}

func printTable(title string, rows []row) {
	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════╦══════════════╦════════════╗\n")
	fmt.Printf("║ %-24s ║ Total        ║ Per op     ║\n", title)
	fmt.Printf("╠══════════════════════════╬══════════════╬════════════╣\n")
	for _, r := range rows {
		perOp := float64(r.total.Nanoseconds()) / float64(r.iters)
		fmt.Printf("║ %-24s ║ %9.3f ms ║ %7.3f ns ║\n", r.name, float64(r.total.Microseconds())/1000, perOp)
	}
	fmt.Printf("╚══════════════════════════╩══════════════╩════════════╝\n")
}

// sinks defeat dead-code elimination of the measured loops.
var (
	sink32 uint32
	sink64 uint64
	sinkOK bool
)

func benchOps32(d uint32, iters int) []row {
	div := fastdiv.NewDivisor32(d)
	rows := make([]row, 0, 7)

	// The Weyl-sequence dividend update appears in every loop, so the
	// baselines pay the same non-division cost as the fast path.
	a := uint32(12345)
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink32 += div.Div(a)
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"fast div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink32 += a / d
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"native div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink32 += a / constDivisor32
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"const div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink32 += div.Mod(a, d)
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"fast mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink32 += a % d
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"native mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink32 += a % constDivisor32
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"const mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sinkOK = div.Divides(a)
		a = a*2654435761 + 1
	}
	rows = append(rows, row{"fast divisibility", time.Since(start), iters})

	return rows
}

func benchOps64(d uint64, iters int) []row {
	div := fastdiv.NewDivisor64(d)
	rows := make([]row, 0, 7)

	a := uint64(12345)
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink64 += div.Div(a)
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"fast div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink64 += a / d
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"native div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink64 += a / constDivisor64
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"const div", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink64 += div.Mod(a, d)
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"fast mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink64 += a % d
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"native mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sink64 += a % constDivisor64
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"const mod", time.Since(start), iters})

	a = 12345
	start = time.Now()
	for i := 0; i < iters; i++ {
		sinkOK = div.Divides(a)
		a = a*0x9E3779B97F4A7C15 + 1
	}
	rows = append(rows, row{"fast divisibility", time.Since(start), iters})

	return rows
}

func hashFunc(name string) (func([]byte) uint64, error) {
	switch name {
	case "xxhash":
		return xxhash.Sum64, nil
	case "xxh3":
		return xxh3.Hash, nil
	case "murmur3":
		return func(b []byte) uint64 { return murmur3.Sum64(b) }, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (use xxhash, xxh3, or murmur3)", name)
	}
}

// benchBuckets runs the canonical fastdiv workload: hash a keyset once,
// then distribute the hashes into numBuckets by remainder, fast path
// against native modulo.
func benchBuckets(numKeys int, numBuckets uint64, hashName string) error {
	hash, err := hashFunc(hashName)
	if err != nil {
		return err
	}

	fmt.Printf("Hashing %d keys with %s...\n", numKeys, hashName)
	hashes := make([]uint64, numKeys)
	var buf [8]byte
	hashStart := time.Now()
	for i := range hashes {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		hashes[i] = hash(buf[:])
	}
	hashDuration := time.Since(hashStart)

	div := fastdiv.NewDivisor64(numBuckets)

	fastCounts := make([]uint64, numBuckets)
	fastStart := time.Now()
	for _, h := range hashes {
		fastCounts[div.Mod(h, numBuckets)]++
	}
	fastDuration := time.Since(fastStart)

	nativeCounts := make([]uint64, numBuckets)
	nativeStart := time.Now()
	for _, h := range hashes {
		nativeCounts[h%numBuckets]++
	}
	nativeDuration := time.Since(nativeStart)

	for i := range fastCounts {
		if fastCounts[i] != nativeCounts[i] {
			return fmt.Errorf("bucket %d: fast count %d != native count %d", i, fastCounts[i], nativeCounts[i])
		}
	}

	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════╦══════════════╦════════════╗\n")
	fmt.Printf("║ Buckets: %-10d      ║ Total        ║ Keys/sec   ║\n", numBuckets)
	fmt.Printf("╠══════════════════════════╬══════════════╬════════════╣\n")
	fmt.Printf("║ %-24s ║ %9.3f ms ║ %7.1f M  ║\n", "hash ("+hashName+")",
		float64(hashDuration.Microseconds())/1000, float64(numKeys)/hashDuration.Seconds()/1e6)
	fmt.Printf("║ %-24s ║ %9.3f ms ║ %7.1f M  ║\n", "fast mod buckets",
		float64(fastDuration.Microseconds())/1000, float64(numKeys)/fastDuration.Seconds()/1e6)
	fmt.Printf("║ %-24s ║ %9.3f ms ║ %7.1f M  ║\n", "native mod buckets",
		float64(nativeDuration.Microseconds())/1000, float64(numKeys)/nativeDuration.Seconds()/1e6)
	fmt.Printf("╚══════════════════════════╩══════════════╩════════════╝\n")
	fmt.Printf("Peak RSS: %.1f MB\n", float64(getMaxRSS())/1e6)
	return nil
}

func main() {
	workloadFlag := flag.String("workload", "ops", "workload: ops or buckets")
	divisorFlag := flag.Uint64("divisor", 1000000007, "runtime divisor for the ops workload")
	itersFlag := flag.Int("iters", 100_000_000, "iterations per ops measurement")
	keysFlag := flag.Int("keys", 10_000_000, "number of keys for the buckets workload")
	bucketsFlag := flag.Uint64("buckets", 4096, "bucket count for the buckets workload")
	hashFlag := flag.String("hash", "xxhash", "key hash for the buckets workload: xxhash, xxh3, or murmur3")
	flag.Parse()

	switch *workloadFlag {
	case "ops":
		d := *divisorFlag
		if d <= 1 {
			fmt.Println("divisor must be greater than 1")
			os.Exit(1)
		}
		if d32 := uint32(d); uint64(d32) == d {
			printTable(fmt.Sprintf("uint32, d=%d", d32), benchOps32(d32, *itersFlag))
		} else {
			fmt.Printf("divisor %d exceeds uint32; skipping 32-bit track\n", d)
		}
		printTable(fmt.Sprintf("uint64, d=%d", d), benchOps64(d, *itersFlag))
	case "buckets":
		if *bucketsFlag <= 1 {
			fmt.Println("bucket count must be greater than 1")
			os.Exit(1)
		}
		if err := benchBuckets(*keysFlag, *bucketsFlag, *hashFlag); err != nil {
			fmt.Printf("buckets workload failed: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown workload %q (use ops or buckets)\n", *workloadFlag)
		os.Exit(1)
	}
}
