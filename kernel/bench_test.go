package kernel_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/resonance/kernel"
	"github.com/katalvlaran/resonance/numeric"
)

// bench target: the ≈60-bit scenario semiprime.
func benchScorer(b *testing.B, order int) (*kernel.Scorer, *big.Int) {
	b.Helper()
	n, _ := new(big.Int).SetString("1152921470247108503", 10)
	ctx := numeric.NewContext(n.BitLen(), 50)
	s, err := kernel.NewScorer(n, order, ctx)
	if err != nil {
		b.Fatalf("NewScorer: %v", err)
	}
	return s, big.NewInt(1073741801) // non-divisor near √N
}

// BenchmarkAmplitude measures one kernel evaluation: the hot path of the
// whole search.
func BenchmarkAmplitude(b *testing.B) {
	s, d := benchScorer(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Amplitude(d)
	}
}

// BenchmarkAmplitude_Order32 measures the O(J) scaling of the harmonic sum.
func BenchmarkAmplitude_Order32(b *testing.B) {
	s, d := benchScorer(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Amplitude(d)
	}
}

// BenchmarkSnap measures a full ±3 snap neighborhood.
func BenchmarkSnap(b *testing.B) {
	s, d := benchScorer(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Snap(d, 3)
	}
}
