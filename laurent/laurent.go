package laurent

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Poly is a Laurent polynomial over the integers in one formal variable q.
//
// Representation: a dense coefficient window. coeffs[i] is the coefficient
// of q^(low+i). The window is trimmed on both ends, so either the slice is
// empty (the zero polynomial) or coeffs[0] != 0 and coeffs[len-1] != 0.
//
// Poly values are immutable by convention: every operation returns a fresh
// polynomial and never mutates its receiver or arguments, so results may be
// shared freely (tally keys, accumulated sums) without copying.
type Poly struct {
	low    int
	coeffs []*big.Int
}

// newPoly trims both ends of the window and normalizes the zero polynomial
// to (low=0, empty slice). The slice is owned by the result.
func newPoly(low int, coeffs []*big.Int) *Poly {
	lo, hi := 0, len(coeffs)
	for lo < hi && coeffs[lo].Sign() == 0 {
		lo++
	}
	for hi > lo && coeffs[hi-1].Sign() == 0 {
		hi--
	}
	if lo == hi {
		return &Poly{}
	}

	return &Poly{low: low + lo, coeffs: coeffs[lo:hi]}
}

// Zero returns the zero polynomial.
func Zero() *Poly { return &Poly{} }

// One returns the constant polynomial 1.
func One() *Poly { return Monomial(1, 0) }

// Monomial returns c·q^e.
func Monomial(c int64, e int) *Poly {
	if c == 0 {
		return &Poly{}
	}

	return &Poly{low: e, coeffs: []*big.Int{big.NewInt(c)}}
}

// FromMap builds a polynomial from an exponent→coefficient table.
// Zero coefficients are ignored; an empty or all-zero table yields Zero.
func FromMap(terms map[int]int64) *Poly {
	lo, hi, any := 0, 0, false
	for e, c := range terms {
		if c == 0 {
			continue
		}
		if !any || e < lo {
			lo = e
		}
		if !any || e > hi {
			hi = e
		}
		any = true
	}
	if !any {
		return &Poly{}
	}

	coeffs := make([]*big.Int, hi-lo+1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	for e, c := range terms {
		if c != 0 {
			coeffs[e-lo].SetInt64(c)
		}
	}

	return newPoly(lo, coeffs)
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// IsOne reports whether p is the constant polynomial 1.
func (p *Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.low == 0 && p.coeffs[0].Cmp(bigOne) == 0
}

// Degree returns the highest exponent carrying a nonzero coefficient.
// Degree of the zero polynomial is 0 by convention.
func (p *Poly) Degree() int {
	if p.IsZero() {
		return 0
	}

	return p.low + len(p.coeffs) - 1
}

// LowDeg returns the lowest exponent carrying a nonzero coefficient.
// LowDeg of the zero polynomial is 0 by convention.
func (p *Poly) LowDeg() int { return p.low }

// Terms returns the number of nonzero terms.
func (p *Poly) Terms() int {
	n := 0
	for _, c := range p.coeffs {
		if c.Sign() != 0 {
			n++
		}
	}

	return n
}

// Coeff returns a copy of the coefficient of q^e (zero when absent).
func (p *Poly) Coeff(e int) *big.Int {
	i := e - p.low
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}

	return new(big.Int).Set(p.coeffs[i])
}

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Set(c)
	}

	return &Poly{low: p.low, coeffs: coeffs}
}

// Equal reports exact equality of p and other.
func (p *Poly) Equal(other *Poly) bool {
	if p.IsZero() || other.IsZero() {
		return p.IsZero() && other.IsZero()
	}
	if p.low != other.low || len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c.Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + other.
func (p *Poly) Add(other *Poly) *Poly {
	if p.IsZero() {
		return other.Clone()
	}
	if other.IsZero() {
		return p.Clone()
	}

	lo := p.low
	if other.low < lo {
		lo = other.low
	}
	hi := p.low + len(p.coeffs)
	if oh := other.low + len(other.coeffs); oh > hi {
		hi = oh
	}
	coeffs := make([]*big.Int, hi-lo)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	for i, c := range p.coeffs {
		coeffs[p.low-lo+i].Set(c)
	}
	for i, c := range other.coeffs {
		idx := other.low - lo + i
		coeffs[idx].Add(coeffs[idx], c)
	}

	return newPoly(lo, coeffs)
}

// Sub returns p - other.
func (p *Poly) Sub(other *Poly) *Poly { return p.Add(other.Neg()) }

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Neg(c)
	}

	return &Poly{low: p.low, coeffs: coeffs}
}

// Mul returns p · other by dense convolution.
func (p *Poly) Mul(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return &Poly{}
	}

	coeffs := make([]*big.Int, len(p.coeffs)+len(other.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p.coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range other.coeffs {
			if b.Sign() == 0 {
				continue
			}
			coeffs[i+j].Add(coeffs[i+j], tmp.Mul(a, b))
		}
	}

	return newPoly(p.low+other.low, coeffs)
}

// Pow returns p^k for k ≥ 0 (p^0 = 1). Panics on negative k: Laurent
// polynomials are not closed under inversion.
func (p *Poly) Pow(k int) *Poly {
	if k < 0 {
		panic("laurent: Pow: negative exponent")
	}

	out := One()
	base := p.Clone()
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}

	return out
}

// Shift returns p · q^e.
func (p *Poly) Shift(e int) *Poly {
	if p.IsZero() {
		return &Poly{}
	}
	out := p.Clone()
	out.low += e

	return out
}

// String renders p in descending-exponent order, e.g. "q^4 + 2*q^2 + 1",
// "q^-2", "-q + 1". The zero polynomial renders as "0".
func (p *Poly) String() string { return p.render(false) }

// LaTeX renders p for typesetting, e.g. "q^{4} + 2q^{2} + 1".
func (p *Poly) LaTeX() string { return p.render(true) }

func (p *Poly) render(latex bool) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true
	abs := new(big.Int)
	// highest exponent first
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		if first {
			if c.Sign() < 0 {
				b.WriteByte('-')
			}
		} else if c.Sign() < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		first = false
		abs.Abs(c)
		e := p.low + i
		switch {
		case e == 0:
			b.WriteString(abs.String())
		case abs.Cmp(bigOne) == 0:
			b.WriteString(monomialString(e, latex))
		case latex:
			b.WriteString(abs.String())
			b.WriteString(monomialString(e, latex))
		default:
			b.WriteString(abs.String())
			b.WriteByte('*')
			b.WriteString(monomialString(e, latex))
		}
	}

	return b.String()
}

// monomialString renders q^e for e != 0.
func monomialString(e int, latex bool) string {
	if e == 1 {
		return "q"
	}
	var b strings.Builder
	b.WriteString("q^")
	if latex {
		b.WriteByte('{')
	}
	b.WriteString(strconv.Itoa(e))
	if latex {
		b.WriteByte('}')
	}

	return b.String()
}

// SortKey orders polynomials deterministically: by degree descending, then
// by coefficients from the leading term down, numerically descending. It
// exists so that factor lists and tally dumps have one canonical order.
func SortKey(ps []*Poly) {
	sort.SliceStable(ps, func(i, j int) bool { return comparePoly(ps[i], ps[j]) < 0 })
}

// comparePoly returns -1/0/+1 with the SortKey order.
func comparePoly(a, b *Poly) int {
	if d := b.Degree() - a.Degree(); d != 0 {
		if d < 0 {
			return -1
		}

		return 1
	}
	// equal top degree: walk exponents downward, larger coefficient first
	loA, loB := a.LowDeg(), b.LowDeg()
	lo := loA
	if loB < lo {
		lo = loB
	}
	for e := a.Degree(); e >= lo; e-- {
		if c := b.Coeff(e).Cmp(a.Coeff(e)); c != 0 {
			return c
		}
	}

	return 0
}

var bigOne = big.NewInt(1)
