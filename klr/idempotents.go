package klr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/klrdim/cartan"
	"github.com/katalvlaran/klrdim/laurent"
	"gonum.org/v1/gonum/stat/combin"
)

// Idempotent is one residue sequence whose self-paired weight space does
// not vanish, with its graded dimension in factored form.
type Idempotent struct {
	Seq []int
	Dim laurent.Factored
}

// String renders e.g. "e(2,3,3,2,1): (q^4 + 1)*(q^2 + 1)^2/q^2".
func (e Idempotent) String() string {
	return "e(" + joinInts(e.Seq, ",") + "): " + e.Dim.String()
}

// LaTeX renders e.g. "e_{23321}: (q^{4} + 1)(q^{2} + 1)^{2}q^{-2}".
func (e Idempotent) LaTeX() string {
	return "e_{" + joinInts(e.Seq, "") + "}: " + e.Dim.LaTeX()
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}

// Idempotents — all nonzero self-paired weight spaces of length n.
//
// Description:
//
//	Enumerates every residue sequence bi ∈ Iⁿ over the type's index set,
//	computes dim_q e(bi)·R^Λ·e(bi) and returns the sequences with nonzero
//	dimension in enumeration order (lexicographic by index position).
//	Sequences whose first entry never occurs in the weight are skipped
//	outright: N(w,0) = count(Λ, bi[0]) for every w, so their dimension
//	vanishes factor by factor.
//
// Contract:
//   - n = 0 yields the single empty sequence with dimension 1.
//   - WithTrace streams one line per surviving sequence, honoring WithLaTeX.
//   - WithBj and WithBase are ignored; the search is self-paired.
//
// Complexity: O(|I|ⁿ) dimension computations in the worst case.
//
// Errors: ErrLengthMismatch for negative n.
func Idempotents(t *cartan.Type, weight []int, n int, opts ...Option) ([]Idempotent, error) {
	if n < 0 {
		return nil, fmt.Errorf("klr: sequence length %d: %w", n, ErrLengthMismatch)
	}
	o := gatherOptions(opts...)
	tr := newTracer(o.trace)

	if n == 0 {
		res, err := CyclotomicDimension(t, weight, nil)
		if err != nil {
			return nil, err
		}

		return []Idempotent{{Seq: []int{}, Dim: res.Factored}}, nil
	}

	idx := t.Index()
	lens := make([]int, n)
	for i := range lens {
		lens[i] = len(idx)
	}

	var out []Idempotent
	buf := make([]int, n)
	gen := combin.NewCartesianGenerator(lens)
	for gen.Next() {
		gen.Product(buf)
		seq := make([]int, n)
		for i, v := range buf {
			seq[i] = idx[v]
		}
		if count(weight, seq[0]) == 0 {
			continue
		}
		res, err := CyclotomicDimension(t, weight, seq)
		if err != nil {
			return nil, err
		}
		if res.Sum.IsZero() {
			continue
		}
		e := Idempotent{Seq: seq, Dim: res.Factored}
		if o.latex {
			tr.printf("%s\n", e.LaTeX())
		} else {
			tr.printf("%s\n", e)
		}
		out = append(out, e)
	}

	return out, nil
}
