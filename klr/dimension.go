package klr

import (
	"fmt"

	"github.com/katalvlaran/klrdim/cartan"
	"github.com/katalvlaran/klrdim/laurent"
	"github.com/katalvlaran/klrdim/perm"
)

// Result bundles the three views of one dimension computation.
type Result struct {
	// Tally groups the surviving contributions by value, after cancellation.
	Tally *Tally
	// Sum is the expanded graded dimension, possibly zero.
	Sum *laurent.Poly
	// Factored is the canonical factored form of Sum, the zero form when
	// Sum vanishes.
	Factored laurent.Factored
}

// CyclotomicDimension — graded dimension of the weight space e(bi)·R^Λ·e(bj).
//
// Description:
//
//	Evaluates the combinatorial dimension formula of the cyclotomic KLR
//	algebra R^Λ attached to a Cartan type and a dominant weight Λ:
//
//	    dim_q = Σ_{w ∈ S(bi,bj)} Π_t [N(w,t)]_{q^dt} · q^{dt·(N(1,t)−1)}
//
//	where S(bi,bj) = {w : bj[w(i)] = bi[i] for all i} is the compatibility
//	subgroup, dt = d(bi[t]) the symmetrizer entry of bi[t], and
//	N(w,t) = count(Λ, bi[t]) − Σ_{s<t, w(s)<w(t)} ⟨bi[t], bi[s]⟩.
//
// Algorithm Outline:
//  1. Resolve options: bj defaults to bi, the base prefix is prepended to
//     both sequences.
//  2. Validate lengths and index membership; every failure precedes any
//     enumeration.
//  3. Build generators: transpositions of consecutive equal-value
//     occurrences in the bi block plus the occurrence-order matcher bi→bj,
//     both shifted past the base, and base transpositions (i,j) for equal
//     labels with only orthogonal labels between them.
//  4. Generate the subgroup, re-filter by compatibility, and walk it in
//     canonical order: exponent row N(w,·), contribution X(w); exact zeros
//     are skipped outright, everything else is tallied (with cancellation)
//     and added to the running sum.
//  5. Factor the final sum.
//
// Contract:
//   - The trace writer only observes; the returned values never depend on it.
//   - Result.Sum is exact over ℤ[q,q⁻¹]; Result.Factored expands back to it.
//   - An empty sequence pair yields dimension 1.
//
// Complexity: O(|S(bi,bj)|·n²) polynomial operations; the subgroup is
// enumerated exhaustively and unguarded.
//
// Errors: ErrLengthMismatch, ErrIndexNotInSet.
func CyclotomicDimension(t *cartan.Type, weight, bi []int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	tr := newTracer(o.trace)

	// --- 1. Resolve sequences ---
	bj := o.bj
	if bj == nil {
		bj = bi
	}
	if len(bi) != len(bj) {
		return nil, fmt.Errorf("klr: len(bi)=%d vs len(bj)=%d: %w", len(bi), len(bj), ErrLengthMismatch)
	}
	m := len(o.base)
	size := m + len(bi)
	seqI := join(o.base, bi)
	seqJ := join(o.base, bj)

	// --- 2. Validate ---
	for _, v := range seqI {
		if !t.Contains(v) {
			return nil, fmt.Errorf("klr: %s: bi entry %d: %w", t, v, ErrIndexNotInSet)
		}
	}
	for _, v := range seqJ {
		if !t.Contains(v) {
			return nil, fmt.Errorf("klr: %s: bj entry %d: %w", t, v, ErrIndexNotInSet)
		}
	}
	tr.printf("type %s  weight %v\n", t, weight)
	tr.printf("bi %v  bj %v\n", seqI, seqJ)

	// --- 3. Generators ---
	gens := blockGenerators(bi, bj, m, size)
	gens = append(gens, baseGenerators(t, o.base, size)...)
	for _, g := range gens {
		tr.printf("generator %v\n", g)
	}

	// --- 4. Enumerate & filter ---
	group := perm.Generate(size, gens)
	var compat []perm.Perm
	for _, w := range group {
		if compatible(seqI, seqJ, w) {
			compat = append(compat, w)
		}
	}
	tr.printf("subgroup %d  compatible %d\n", len(group), len(compat))

	// --- 5. Evaluate ---
	shift := identityShifts(t, weight, seqI)
	tally := NewTally()
	sum := laurent.Zero()
	for _, w := range compat {
		row := exponentRow(t, weight, seqI, w)
		x := contribution(t, seqI, row, shift)
		if x.IsZero() {
			continue
		}
		tr.printf("w %v  N %v  X %s\n", w, row, x)
		tally.Record(x, w)
		sum = sum.Add(x)
	}

	// --- 6. Package ---
	res := &Result{Tally: tally, Sum: sum, Factored: laurent.Factor(sum)}
	tr.printf("sum %s\n", sum)
	tr.printf("factored %s\n", res.Factored)

	return res, nil
}

// join concatenates prefix and tail into a fresh slice.
func join(prefix, tail []int) []int {
	out := make([]int, 0, len(prefix)+len(tail))
	out = append(out, prefix...)

	return append(out, tail...)
}

// count returns the multiplicity of v in weight.
func count(weight []int, v int) int {
	c := 0
	for _, x := range weight {
		if x == v {
			c++
		}
	}

	return c
}

// compatible reports bj[w(i)] == bi[i] for all positions i.
func compatible(seqI, seqJ []int, w perm.Perm) bool {
	for i, v := range seqI {
		if seqJ[w.Apply(i)] != v {
			return false
		}
	}

	return true
}

// blockGenerators returns the generators acting on the bi→bj block: for
// every value, transpositions of its consecutive occurrences in bi (these
// generate the stabilizer of bi) plus the occurrence-order matcher onto
// bj, all shifted past the base. Stabilizer times matcher is the block's
// full compatible set, so the generated subgroup agrees with it.
func blockGenerators(bi, bj []int, m, size int) []perm.Perm {
	last := make(map[int]int, len(bi))
	var gens []perm.Perm
	for i, v := range bi {
		if p, ok := last[v]; ok {
			gens = append(gens, perm.Transposition(len(bi), p, i).ShiftedBy(m, size))
		}
		last[v] = i
	}
	if w0, ok := occurrenceMatcher(bi, bj); ok && w0.Length() > 0 {
		gens = append(gens, w0.ShiftedBy(m, size))
	}

	return gens
}

// occurrenceMatcher builds the permutation sending the k-th occurrence of
// each value in bi to its k-th occurrence in bj. ok is false when the two
// multisets differ, in which case no compatible permutation exists at all.
func occurrenceMatcher(bi, bj []int) (perm.Perm, bool) {
	pos := make(map[int][]int, len(bj))
	for p, v := range bj {
		pos[v] = append(pos[v], p)
	}
	w := make(perm.Perm, len(bi))
	used := make(map[int]int, len(pos))
	for i, v := range bi {
		k := used[v]
		ps := pos[v]
		if k >= len(ps) {
			return nil, false
		}
		w[i] = ps[k]
		used[v] = k + 1
	}

	return w, true
}

// baseGenerators returns the transpositions (i,j) of base positions with
// equal labels and only orthogonal labels between them. A repeated label
// between i and j pairs to 2 with itself, so only the nearest partner ever
// qualifies.
func baseGenerators(t *cartan.Type, base []int, size int) []perm.Perm {
	var gens []perm.Perm
	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			if base[i] != base[j] {
				continue
			}
			ortho := true
			for k := i + 1; k < j; k++ {
				if t.Pairing(base[i], base[k]) != 0 {
					ortho = false
					break
				}
			}
			if ortho {
				gens = append(gens, perm.Transposition(size, i, j))
			}
		}
	}

	return gens
}

// identityShifts precomputes the per-position shift dt·(N(1,t)−1), which
// depends only on the identity's exponent row.
func identityShifts(t *cartan.Type, weight, seq []int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		n1 := count(weight, v)
		for s := 0; s < i; s++ {
			n1 -= t.Pairing(v, seq[s])
		}
		out[i] = t.Symmetrizer(v) * (n1 - 1)
	}

	return out
}

// exponentRow computes N(w,t) for every position t.
func exponentRow(t *cartan.Type, weight, seq []int, w perm.Perm) []int {
	row := make([]int, len(seq))
	for i, v := range seq {
		nwt := count(weight, v)
		wi := w.Apply(i)
		for s := 0; s < i; s++ {
			if w.Apply(s) < wi {
				nwt -= t.Pairing(v, seq[s])
			}
		}
		row[i] = nwt
	}

	return row
}

// contribution evaluates X(w) from the exponent row, zero as soon as any
// factor is the zero quantum integer.
func contribution(t *cartan.Type, seq []int, row, shift []int) *laurent.Poly {
	x := laurent.One()
	for i, v := range seq {
		f := laurent.QuantumInteger(t.Symmetrizer(v), row[i])
		if f.IsZero() {
			return laurent.Zero()
		}
		x = x.Mul(f.Shift(shift[i]))
	}

	return x
}
