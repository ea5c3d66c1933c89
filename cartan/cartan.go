package cartan

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Type is a resolved Cartan type: an index set, the generalized Cartan
// matrix over it and the symmetrizer. A Type is immutable once built.
type Type struct {
	family string
	rank   int
	affine bool
	index  []int
	a      [][]int
	sym    []int
}

// New resolves a finite Cartan type from its family letter and rank,
// e.g. New("B", 3). The index set is 1..rank.
//
// Errors: ErrUnknownFamily for letters outside A–G, ErrRank for ranks
// outside the family's range (A n≥1, B n≥2, C n≥2, D n≥3, E 6–8, F 4, G 2).
func New(family string, rank int) (*Type, error) { return newType(family, rank, false) }

// NewAffine resolves the untwisted affine extension, e.g. NewAffine("A", 2)
// for Ã2. The index set is 0..rank; the affine ranges tighten to B n≥3 and
// D n≥4 (the smaller extended diagrams coincide with other families).
func NewAffine(family string, rank int) (*Type, error) { return newType(family, rank, true) }

// Parse decodes the compact descriptor: a family letter, a rank and an
// optional affine marker, e.g. "B3", "A2~" or "A2~1". The only supported
// twist level is the untwisted 1.
//
// Errors: ErrParse for malformed input; ErrUnknownFamily and ErrRank
// propagate from resolution.
func Parse(s string) (*Type, error) {
	in := strings.TrimSpace(s)
	if len(in) < 2 {
		return nil, fmt.Errorf("cartan: %q: %w", s, ErrParse)
	}

	rest := in[1:]
	affine := false
	if k := strings.IndexByte(rest, '~'); k >= 0 {
		if twist := rest[k+1:]; twist != "" && twist != "1" {
			return nil, fmt.Errorf("cartan: %q: unsupported twist %q: %w", s, twist, ErrParse)
		}
		affine = true
		rest = rest[:k]
	}
	rank, err := strconv.Atoi(rest)
	if err != nil {
		return nil, fmt.Errorf("cartan: %q: %w", s, ErrParse)
	}

	return newType(in[:1], rank, affine)
}

func newType(family string, rank int, affine bool) (*Type, error) {
	fam := strings.ToUpper(strings.TrimSpace(family))
	if len(fam) != 1 || fam[0] < 'A' || fam[0] > 'G' {
		return nil, fmt.Errorf("cartan: family %q: %w", family, ErrUnknownFamily)
	}
	if err := checkRank(fam, rank, affine); err != nil {
		return nil, err
	}

	t := &Type{family: fam, rank: rank, affine: affine}
	lo := 1
	if affine {
		lo = 0
	}
	t.index = make([]int, rank+1-lo)
	for i := range t.index {
		t.index[i] = lo + i
	}
	t.a = buildMatrix(fam, rank, affine)
	t.sym = symmetrize(t.a)

	return t, nil
}

// checkRank enforces the admissible rank ranges per family.
func checkRank(family string, rank int, affine bool) error {
	ok := false
	switch family {
	case "A":
		ok = rank >= 1
	case "B":
		if affine {
			ok = rank >= 3
		} else {
			ok = rank >= 2
		}
	case "C":
		ok = rank >= 2
	case "D":
		if affine {
			ok = rank >= 4
		} else {
			ok = rank >= 3
		}
	case "E":
		ok = rank >= 6 && rank <= 8
	case "F":
		ok = rank == 4
	case "G":
		ok = rank == 2
	}
	if !ok {
		return fmt.Errorf("cartan: %s rank %d: %w", family, rank, ErrRank)
	}

	return nil
}

// Index returns a copy of the index set: 1..n finite, 0..n affine.
func (t *Type) Index() []int { return append([]int(nil), t.index...) }

// Contains reports whether label i belongs to the index set.
func (t *Type) Contains(i int) bool { return t.pos(i) >= 0 }

// Pairing returns the Cartan integer a_ij for labels i and j. Panics on a
// label outside the index set; gate with Contains at the input boundary.
func (t *Type) Pairing(i, j int) int {
	pi, pj := t.pos(i), t.pos(j)
	if pi < 0 || pj < 0 {
		panic("cartan: Pairing: label outside the index set")
	}

	return t.a[pi][pj]
}

// Symmetrizer returns d_i for label i. Panics on a label outside the set.
func (t *Type) Symmetrizer(i int) int {
	p := t.pos(i)
	if p < 0 {
		panic("cartan: Symmetrizer: label outside the index set")
	}

	return t.sym[p]
}

// Rank returns the family rank n; the affine node is not counted.
func (t *Type) Rank() int { return t.rank }

// IsAffine reports whether t is an untwisted affine type.
func (t *Type) IsAffine() bool { return t.affine }

// String renders the compact descriptor, e.g. "B3" or "A2~".
func (t *Type) String() string {
	if t.affine {
		return t.family + strconv.Itoa(t.rank) + "~"
	}

	return t.family + strconv.Itoa(t.rank)
}

// Dense returns a fresh gonum copy of the Cartan matrix, rows and columns
// in index order.
func (t *Type) Dense() *mat.Dense {
	n := len(t.index)
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, float64(t.a[i][j]))
		}
	}

	return out
}

// pos maps a label to its matrix position, −1 when absent.
func (t *Type) pos(i int) int {
	lo := 1
	if t.affine {
		lo = 0
	}
	p := i - lo
	if p < 0 || p >= len(t.index) {
		return -1
	}

	return p
}
