// Package klr evaluates graded dimensions of cyclotomic KLR
// (Khovanov–Lauda–Rouquier) algebras through the Hu–Shi combinatorial
// formula, entirely in exact Laurent-polynomial arithmetic.
//
// 🚀 What is computed?
//
//	For a Cartan type, a dominant weight Λ and residue sequences bi, bj,
//	the graded dimension of the weight space e(bi)·R^Λ·e(bj):
//
//	    dim_q = Σ_{w} Π_t [N(w,t)]_{q^dt} · q^{dt·(N(1,t)−1)}
//
//	summed over the compatibility subgroup {w : bj[w(i)] = bi[i]}.  The
//	answer is a Laurent polynomial in q; its coefficients are dimensions
//	of the graded pieces.
//
// ✨ Key features:
//   - CyclotomicDimension: contribution tally, expanded sum and canonical
//     factored form in one Result
//   - Idempotents: sweep of all nonzero self-paired weight spaces in Iⁿ
//   - functional options: WithBj, WithBase, WithTrace, WithLaTeX
//   - ParseSeq for the compact digit-string input form
//   - validation up front: ErrLengthMismatch, ErrIndexNotInSet, ErrBadDigit
//
// ⚙️ Usage:
//
//	t, _ := cartan.Parse("B3")
//	res, err := klr.CyclotomicDimension(t, []int{2}, []int{2, 3, 3, 2, 1})
//	if err != nil { … }
//	fmt.Println(res.Factored) // (q^4 + 1)*(q^2 + 1)^2/q^2
//
// Performance:
//
//   - One synchronous pass per call, no caching across calls.
//   - Cost follows the compatibility subgroup: O(|S(bi,bj)|·n²) polynomial
//     operations; groups stay small for the intended n ≲ 20.
//
// See example_test.go for the affine and tally walkthroughs.
package klr
