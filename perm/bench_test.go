package perm_test

import (
	"testing"

	"github.com/katalvlaran/klrdim/perm"
)

// BenchmarkGenerate measures full closure of S(7) (5040 elements) from its
// six simple reflections, including the canonical sort.
// Complexity: O(|G|·|gens|·n) plus O(|G| log |G|) comparisons
func BenchmarkGenerate(b *testing.B) {
	gens := make([]perm.Perm, 6)
	for i := range gens {
		gens[i] = perm.Adjacent(7, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perm.Generate(7, gens)
	}
}

// BenchmarkReducedWord measures factorization of the longest element of
// S(16), whose word has 120 letters.
// Complexity: O(n²) per call
func BenchmarkReducedWord(b *testing.B) {
	w := make(perm.Perm, 16)
	for i := range w {
		w[i] = len(w) - 1 - i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.ReducedWord()
	}
}
