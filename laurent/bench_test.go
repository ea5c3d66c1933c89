package laurent_test

import (
	"testing"

	"github.com/katalvlaran/klrdim/laurent"
)

// BenchmarkMul measures dense convolution of two 64-term Laurent polynomials.
// Complexity: O(n·m) big.Int multiplications
func BenchmarkMul(b *testing.B) {
	terms := make(map[int]int64, 64)
	for e := -32; e < 32; e++ {
		terms[e] = int64(e)*7 + 3
	}
	p := laurent.FromMap(terms)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Mul(p)
	}
}

// BenchmarkQuantumProduct measures building the product [2][3]…[8], the shape
// of a single summand of a graded dimension.
// Complexity: O(k²) per product chain
func BenchmarkQuantumProduct(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := laurent.One()
		for k := 2; k <= 8; k++ {
			p = p.Mul(laurent.QuantumInteger(1, k))
		}
		_ = p
	}
}

// BenchmarkFactor measures full Zassenhaus factorization of the degree-8
// graded dimension (q^4+1)(q^2+1)² shifted by q^-2.
// Complexity: dominated by Hensel lifting and subset recombination
func BenchmarkFactor(b *testing.B) {
	p := laurent.FromMap(map[int]int64{6: 1, 4: 2, 2: 2, 0: 2, -2: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = laurent.Factor(p)
	}
}
