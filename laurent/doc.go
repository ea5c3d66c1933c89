// Package laurent implements exact symbolic arithmetic on Laurent
// polynomials in one variable q over the integers, plus the quantum
// integers and the canonical factored form used by graded-dimension
// computations.
//
// 🚀 What is a Laurent polynomial?
//
//	A finite integer combination of powers of q where negative exponents
//	are allowed, e.g. q^4 + 1 or q + q^-1.  Graded dimensions of weight
//	spaces live here: coefficients count basis vectors in each degree,
//	so arithmetic must stay exact (math/big, never floats).
//
// ✨ Key features:
//   - dense exponent-window representation: lowest exponent + coefficients
//   - Add / Sub / Neg / Mul / Pow / Shift, all allocation-fresh and exact
//   - QuantumInteger(d, k): the symmetric q-analogue [k] evaluated at q^d
//   - Factor: unit · content · q^k · ∏ pᵢ^eᵢ with pᵢ irreducible over ℤ
//     (Yun squarefree split, Berlekamp mod p, Hensel lifting, Zassenhaus
//     recombination)
//   - classical rendering: "q^4 + 2*q^2 + 1", "q^-2", "(q^4 + 1)*(q^2 + 1)^2/q^2"
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/klrdim/laurent"
//
//	two := laurent.QuantumInteger(1, 2) // q + q^-1
//	sq := two.Mul(two)                  // q^2 + 2 + q^-2
//	f := laurent.Factor(sq)             // (q^2 + 1)^2/q^2
//	fmt.Println(f)
//
// Performance:
//
//   - Mul: O(n·m) coefficient operations (dense convolution)
//   - Factor: dominated by Hensel lifting and subset recombination;
//     instantaneous for the degree ≤ 100 polynomials this package serves
//
// See example_test.go for runnable walkthroughs.
package laurent
