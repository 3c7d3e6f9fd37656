package gf2_test

import (
	"testing"

	"github.com/kc-howe/betti/gf2"
)

// benchmarkSNF reduces an n×n matrix with a deterministic bit pattern.
func benchmarkSNF(b *testing.B, n int) {
	m, err := gf2.New(n, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	// Fill with a fixed pseudo-pattern so every run reduces the same input.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (i*31+j*17)%3 == 0 {
				if err = m.Set(i, j, 1); err != nil {
					b.Fatalf("Set failed: %v", err)
				}
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SmithNormalForm()
	}
}

// BenchmarkSNF_Small reduces a 32×32 matrix.
func BenchmarkSNF_Small(b *testing.B) { benchmarkSNF(b, 32) }

// BenchmarkSNF_Medium reduces a 128×128 matrix.
func BenchmarkSNF_Medium(b *testing.B) { benchmarkSNF(b, 128) }

// BenchmarkSNF_Large reduces a 512×512 matrix.
func BenchmarkSNF_Large(b *testing.B) { benchmarkSNF(b, 512) }
