package laurent

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Factored is a Laurent polynomial in canonical factored form:
//
//	Unit · Content · q^QPower · ∏ Factors[i].Base ^ Factors[i].Mult
//
// with every Base irreducible over ℤ, primitive, of positive leading
// coefficient and nonzero constant term, sorted by degree descending and
// then coefficient-lexicographically. Unit is ±1, Content is the positive
// integer content, and Unit == 0 encodes the zero polynomial.
type Factored struct {
	Unit    int
	Content *big.Int
	QPower  int
	Factors []FactorTerm
}

// FactorTerm is one irreducible factor with its multiplicity.
type FactorTerm struct {
	Base *Poly
	Mult int
}

// Factor — canonical factorization over ℤ of a Laurent polynomial.
//
// Description:
//
//	Splits off the q-valuation and integer content, then factors the
//	remaining ordinary polynomial into irreducibles: Yun's squarefree
//	decomposition followed by Zassenhaus (Berlekamp mod p, Hensel lifting,
//	subset recombination). Exact over ℤ throughout; Expand reproduces the
//	input bit for bit.
//
// Contract:
//   - Factor(Zero()) returns the zero form (IsZero, renders "0").
//   - Every returned Base is irreducible over ℤ with lc > 0.
//   - Expand() of the result equals the input polynomial.
//
// Complexity:
//
//	Exponential in the number of modular factors in the worst case
//	(subset recombination), immaterial at the degrees graded dimensions
//	produce.
func Factor(p *Poly) Factored {
	if p.IsZero() {
		return Factored{Unit: 0, Content: new(big.Int)}
	}

	pp, cont := zPrimitive(zpoly(p.coeffs))
	unit := 1
	if cont.Sign() < 0 {
		unit = -1
	}
	out := Factored{
		Unit:    unit,
		Content: new(big.Int).Abs(cont),
		QPower:  p.low,
	}
	if zDeg(pp) == 0 {
		return out
	}

	for _, zf := range factorZ(pp) {
		out.Factors = append(out.Factors, FactorTerm{
			Base: newPoly(0, zf.base),
			Mult: zf.mult,
		})
	}
	sort.SliceStable(out.Factors, func(i, j int) bool {
		return comparePoly(out.Factors[i].Base, out.Factors[j].Base) < 0
	})

	return out
}

// IsZero reports whether f is the factored form of the zero polynomial.
func (f Factored) IsZero() bool { return f.Unit == 0 }

// Expand multiplies the factored form back out.
func (f Factored) Expand() *Poly {
	if f.IsZero() {
		return Zero()
	}

	out := &Poly{low: 0, coeffs: []*big.Int{new(big.Int).Set(f.Content)}}
	for _, t := range f.Factors {
		out = out.Mul(t.Base.Pow(t.Mult))
	}
	out = out.Shift(f.QPower)
	if f.Unit < 0 {
		out = out.Neg()
	}

	return out
}

// String renders the canonical form, e.g. "1", "q", "q^2 + 1",
// "(q^4 + 1)*(q^2 + 1)^2/q^2", "2*(q^2 + 1)", "-(q + 1)".
func (f Factored) String() string { return f.render(false) }

// LaTeX renders the canonical form for typesetting, with juxtaposed
// factors and braced exponents, e.g. "(q^{4} + 1)(q^{2} + 1)^{2}q^{-2}".
func (f Factored) LaTeX() string { return f.render(true) }

func (f Factored) render(latex bool) string {
	if f.IsZero() {
		return "0"
	}

	// The lone bare case: a single simple factor and nothing else.
	if f.Unit > 0 && f.Content.Cmp(bigOne) == 0 && f.QPower == 0 &&
		len(f.Factors) == 1 && f.Factors[0].Mult == 1 {
		return f.Factors[0].Base.render(latex)
	}

	var pieces []string
	if f.Content.Cmp(bigOne) != 0 {
		pieces = append(pieces, f.Content.String())
	}
	for _, t := range f.Factors {
		s := "(" + t.Base.render(latex) + ")"
		if t.Mult > 1 {
			if latex {
				s += "^{" + strconv.Itoa(t.Mult) + "}"
			} else {
				s += "^" + strconv.Itoa(t.Mult)
			}
		}
		pieces = append(pieces, s)
	}
	// the q-power rides last: positive as a trailing factor, negative as a
	// divisor suffix (plain) or a q^{-k} factor (LaTeX)
	if f.QPower > 0 || (latex && f.QPower != 0) {
		pieces = append(pieces, monomialString(f.QPower, latex))
	}

	var b strings.Builder
	if f.Unit < 0 {
		b.WriteByte('-')
	}
	switch {
	case len(pieces) == 0 && f.QPower != 0:
		// pure q-power, Laurent monomial style: "q^-2"
		b.WriteString(monomialString(f.QPower, latex))
	case len(pieces) == 0:
		b.WriteByte('1')
	case latex:
		b.WriteString(strings.Join(pieces, ""))
	default:
		b.WriteString(strings.Join(pieces, "*"))
	}
	if !latex && f.QPower < 0 && len(pieces) > 0 {
		if f.QPower == -1 {
			b.WriteString("/q")
		} else {
			b.WriteString("/q^" + strconv.Itoa(-f.QPower))
		}
	}

	return b.String()
}
