package perm

import (
	"strconv"
	"strings"
)

// Perm is a permutation of {0,…,n−1} in one-line notation: p[i] is the
// image of i. The zero-length Perm is the identity of S(0).
type Perm []int

// Identity returns the identity permutation of S(n).
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Adjacent returns the simple reflection sᵢ ∈ S(n) swapping i and i+1.
// Panics unless 0 ≤ i < n−1.
func Adjacent(n, i int) Perm {
	if i < 0 || i >= n-1 {
		panic("perm: Adjacent: index out of range")
	}
	p := Identity(n)
	p[i], p[i+1] = p[i+1], p[i]

	return p
}

// Transposition returns the element of S(n) exchanging i and j.
func Transposition(n, i, j int) Perm {
	if i < 0 || i >= n || j < 0 || j >= n {
		panic("perm: Transposition: index out of range")
	}
	p := Identity(n)
	p[i], p[j] = p[j], p[i]

	return p
}

// Clone returns a copy of p.
func (p Perm) Clone() Perm { return append(Perm(nil), p...) }

// Mul composes left to right: the result maps x ↦ other(p(x)), so p acts
// first. Panics when the sizes differ.
func (p Perm) Mul(other Perm) Perm {
	if len(p) != len(other) {
		panic("perm: Mul: size mismatch")
	}
	out := make(Perm, len(p))
	for i, v := range p {
		out[i] = other[v]
	}

	return out
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	out := make(Perm, len(p))
	for i, v := range p {
		out[v] = i
	}

	return out
}

// Apply returns the image of x under p.
func (p Perm) Apply(x int) int { return p[x] }

// Length returns the inversion count of p, its Coxeter length over the
// adjacent transpositions.
func (p Perm) Length() int {
	l := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				l++
			}
		}
	}

	return l
}

// ReducedWord factors p into adjacent transpositions:
// p = s_{w[0]}·s_{w[1]}·…·s_{w[k−1]} composed left to right, with
// k = p.Length(). Each step removes the leftmost descent of the one-line
// notation, so the word is deterministic.
func (p Perm) ReducedWord() []int {
	cur := p.Clone()
	var word []int
	for {
		desc := -1
		for i := 0; i+1 < len(cur); i++ {
			if cur[i] > cur[i+1] {
				desc = i
				break
			}
		}
		if desc < 0 {
			break
		}
		cur[desc], cur[desc+1] = cur[desc+1], cur[desc]
		word = append(word, desc)
	}

	return word
}

// ShiftedBy embeds p into S(size), acting on the block m…m+len(p)−1 and
// fixing everything else. Panics when the block does not fit.
func (p Perm) ShiftedBy(m, size int) Perm {
	if m < 0 || m+len(p) > size {
		panic("perm: ShiftedBy: block out of range")
	}
	out := Identity(size)
	for i, v := range p {
		out[m+i] = m + v
	}

	return out
}

// Cycles returns the disjoint cycles of p with fixed points omitted. Each
// cycle starts at its smallest element; cycles are ordered by that element.
func (p Perm) Cycles() [][]int {
	seen := make([]bool, len(p))
	var out [][]int
	for i := range p {
		if seen[i] || p[i] == i {
			seen[i] = true
			continue
		}
		var cyc []int
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			cyc = append(cyc, j)
		}
		out = append(out, cyc)
	}

	return out
}

// String renders p in disjoint-cycle notation, e.g. "(0,3)(1,2)".
// The identity renders as "()".
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}

	var b strings.Builder
	for _, cyc := range cycles {
		b.WriteByte('(')
		for k, v := range cyc {
			if k > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}

	return b.String()
}

// Equal reports whether p and other are the same permutation.
func (p Perm) Equal(other Perm) bool {
	if len(p) != len(other) {
		return false
	}
	for i, v := range p {
		if other[i] != v {
			return false
		}
	}

	return true
}

// Compare orders permutations of one symmetric group canonically: Coxeter
// length ascending, then one-line images lexicographically. Returns −1, 0
// or +1. Panics when the sizes differ.
func (p Perm) Compare(other Perm) int {
	if len(p) != len(other) {
		panic("perm: Compare: size mismatch")
	}
	if d := p.Length() - other.Length(); d != 0 {
		if d < 0 {
			return -1
		}

		return 1
	}
	for i, v := range p {
		if v != other[i] {
			if v < other[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}
