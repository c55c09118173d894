package transform

import (
	"testing"

	"github.com/cwbudde/algo-fourier/internal/testutil"
)

func BenchmarkEngines(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, m := range Methods() {
		e, err := New(m)
		if err != nil {
			b.Fatalf("New(%v) error: %v", m, err)
		}
		for _, tc := range sizes {
			if m == MethodNaive && tc.size > 1024 {
				continue
			}
			b.Run(e.Name()+"/"+tc.name, func(b *testing.B) {
				x := testutil.DeterministicNoise(1, 1, tc.size)
				b.SetBytes(int64(tc.size * 8))
				b.ResetTimer()

				for range b.N {
					_, _, _ = e.Forward(x)
				}
			})
		}
	}
}
