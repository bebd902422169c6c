package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/honeyword/hexgrid"
	"github.com/katalvlaran/honeyword/search"
)

// benchLattice builds an n-ring lattice of pseudo-random lowercase symbols
// with a fixed seed so runs are comparable.
func benchLattice(b *testing.B, n int) *hexgrid.Lattice {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rings := make([]string, n)
	for r := 0; r < n; r++ {
		var sb strings.Builder
		for p := 0; p < hexgrid.RingSize(r); p++ {
			sb.WriteRune(rune('a' + rng.Intn(26)))
		}
		rings[r] = sb.String()
	}
	l, err := hexgrid.New(rings)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	return l
}

// BenchmarkExists_Miss measures a word that forces near-exhaustive
// backtracking (frequent symbol, absent tail) on a 10-ring lattice.
func BenchmarkExists_Miss(b *testing.B) {
	l := benchLattice(b, 10)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Exists(l, "aaaaAZ")
	}
}

// BenchmarkRun_Parallel measures the dictionary driver with four workers
// over a repeated word list.
func BenchmarkRun_Parallel(b *testing.B) {
	l := benchLattice(b, 10)
	words := make([]string, 0, 64)
	for i := 0; i < 16; i++ {
		words = append(words, "ab", "cde", "zzz", "aaaa")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Run(l, words, search.WithParallelism(4))
	}
}
