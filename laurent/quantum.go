package laurent

import "math/big"

// QuantumInteger — the symmetric quantum integer [k] evaluated at q^d.
//
// Description:
//
//	The quantum integer is the Laurent-polynomial analogue of an ordinary
//	integer: [k] = q^(k-1) + q^(k-3) + … + q^-(k-1), a palindrome of k
//	terms. Graded dimension formulas evaluate it at q^d where d is the
//	symmetrizer entry of the residue at hand, so every exponent above is
//	scaled by d.
//
// Contract:
//   - k = 0 → the zero polynomial.
//   - k < 0 → the negation of [−k].
//   - k > 0 → exactly k terms with exponents d(k−1), d(k−3), …, −d(k−1).
//   - d must be positive (symmetrizers are); panics otherwise.
//
// Complexity:
//
//	Time O(d·k) to fill the window, no allocations beyond the result.
func QuantumInteger(d, k int) *Poly {
	if d <= 0 {
		panic("laurent: QuantumInteger: nonpositive symmetrizer")
	}
	if k == 0 {
		return &Poly{}
	}

	neg := false
	if k < 0 {
		neg, k = true, -k
	}

	// The k exponents −d(k−1), −d(k−3), …, d(k−1) sit 2d apart inside a
	// window of width 2d(k−1)+1.
	coeffs := make([]*big.Int, 2*d*(k-1)+1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	unit := int64(1)
	if neg {
		unit = -1
	}
	for i := 0; i < k; i++ {
		coeffs[2*d*i].SetInt64(unit)
	}

	return &Poly{low: -d * (k - 1), coeffs: coeffs}
}
