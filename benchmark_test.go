package fastdiv

import "testing"

// Package vars keep the divisors out of reach of constant folding, so the
// native-operator baselines measure a genuine runtime division.
var (
	benchDivisor32 = uint32(1000000007)
	benchDivisor64 = uint64(1000000000000000003)

	sink32 uint32
	sink64 uint64
	sinkOK bool
)

func BenchmarkDiv32(b *testing.B) {
	v := NewDivisor32(benchDivisor32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink32 = v.Div(uint32(i) * 2654435761)
	}
}

func BenchmarkDiv32Native(b *testing.B) {
	d := benchDivisor32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink32 = (uint32(i) * 2654435761) / d
	}
}

func BenchmarkMod32(b *testing.B) {
	d := benchDivisor32
	v := NewDivisor32(d)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink32 = v.Mod(uint32(i)*2654435761, d)
	}
}

func BenchmarkMod32Native(b *testing.B) {
	d := benchDivisor32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink32 = (uint32(i) * 2654435761) % d
	}
}

func BenchmarkDivides32(b *testing.B) {
	v := NewDivisor32(benchDivisor32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkOK = v.Divides(uint32(i) * 2654435761)
	}
}

func BenchmarkDiv64(b *testing.B) {
	v := NewDivisor64(benchDivisor64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = v.Div(uint64(i) * 0x9E3779B97F4A7C15)
	}
}

func BenchmarkDiv64Native(b *testing.B) {
	d := benchDivisor64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = (uint64(i) * 0x9E3779B97F4A7C15) / d
	}
}

func BenchmarkMod64(b *testing.B) {
	d := benchDivisor64
	v := NewDivisor64(d)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = v.Mod(uint64(i)*0x9E3779B97F4A7C15, d)
	}
}

func BenchmarkMod64Native(b *testing.B) {
	d := benchDivisor64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = (uint64(i) * 0x9E3779B97F4A7C15) % d
	}
}

func BenchmarkDivides64(b *testing.B) {
	v := NewDivisor64(benchDivisor64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkOK = v.Divides(uint64(i) * 0x9E3779B97F4A7C15)
	}
}

func BenchmarkNewDivisor32(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = NewDivisor32(uint32(i)%1000 + 2).m
	}
}

func BenchmarkNewDivisor64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink64 = NewDivisor64(uint64(i)%1000 + 2).mLo
	}
}
