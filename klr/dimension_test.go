package klr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/klrdim/cartan"
	"github.com/katalvlaran/klrdim/klr"
	"github.com/katalvlaran/klrdim/laurent"
	"github.com/katalvlaran/klrdim/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// mustType parses a descriptor or fails the test immediately.
func mustType(t *testing.T, s string) *cartan.Type {
	t.Helper()
	ct, err := cartan.Parse(s)
	require.NoError(t, err, "descriptor %q must parse", s)

	return ct
}

// bruteDimension recomputes the graded dimension with no subgroup
// construction at all: every w in S(n) is tested against the compatibility
// condition bj[w(i)] == bi[i] and the surviving contributions are summed
// directly from the exponent formula.
func bruteDimension(t *cartan.Type, weight, bi, bj []int) *laurent.Poly {
	n := len(bi)
	sum := laurent.Zero()
	for _, images := range combin.Permutations(n, n) {
		w := perm.Perm(images)
		ok := true
		for i, v := range bi {
			if bj[w.Apply(i)] != v {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		x := laurent.One()
		for i, v := range bi {
			d := t.Symmetrizer(v)
			nwt, n1 := 0, 0
			for _, u := range weight {
				if u == v {
					nwt++
					n1++
				}
			}
			for s := 0; s < i; s++ {
				n1 -= t.Pairing(v, bi[s])
				if w.Apply(s) < w.Apply(i) {
					nwt -= t.Pairing(v, bi[s])
				}
			}
			x = x.Mul(laurent.QuantumInteger(d, nwt).Shift(d * (n1 - 1)))
		}
		sum = sum.Add(x)
	}

	return sum
}

// TestCyclotomicDimension_OneDimensional pins the simply laced fork case
// where each weight space is a single line, both self-paired and across a
// transposed pair of sequences.
func TestCyclotomicDimension_OneDimensional(t *testing.T) {
	ct := mustType(t, "D4")

	res, err := klr.CyclotomicDimension(ct, []int{2}, []int{2, 3, 4, 1})
	require.NoError(t, err, "self-paired dimension must compute")
	assert.Equal(t, "1", res.Sum.String(), "dim e(2341) R e(2341)")
	assert.Equal(t, "1", res.Factored.String(), "factored form of a unit")
	assert.Equal(t, "1 : ()\n", res.Tally.String(), "the identity alone contributes")

	res, err = klr.CyclotomicDimension(ct, []int{2}, []int{2, 3, 4, 1}, klr.WithBj([]int{2, 4, 3, 1}))
	require.NoError(t, err, "paired dimension must compute")
	assert.Equal(t, "1", res.Sum.String(), "dim e(2341) R e(2431)")
	assert.Equal(t, "1 : (1,2)\n", res.Tally.String(), "the lone swap carries the unit")
}

// TestCyclotomicDimension_AffineTriangle exercises the affine type whose
// pairing matrix closes into a triangle, where the last position picks up a
// genuine quantum integer.
func TestCyclotomicDimension_AffineTriangle(t *testing.T) {
	ct := mustType(t, "A2~")

	res, err := klr.CyclotomicDimension(ct, []int{0}, []int{0, 1, 2})
	require.NoError(t, err, "self-paired dimension must compute")
	assert.Equal(t, "q^2 + 1", res.Sum.String(), "dim e(012) R e(012)")
	assert.Equal(t, "q^2 + 1", res.Factored.String(), "irreducible sum stays bare")

	res, err = klr.CyclotomicDimension(ct, []int{0}, []int{0, 1, 2}, klr.WithBj([]int{0, 2, 1}))
	require.NoError(t, err, "paired dimension must compute")
	assert.Equal(t, "q", res.Sum.String(), "dim e(012) R e(021)")
	assert.Equal(t, "q", res.Factored.String(), "a bare power of q")
	assert.Equal(t, "q : (1,2)\n", res.Tally.String(), "single off-identity contribution")
}

// TestCyclotomicDimension_LevelTwoWeight checks that weight multiplicity
// enters through count(Λ, i): a doubled fundamental weight turns the
// one-letter sequence into a two-dimensional space.
func TestCyclotomicDimension_LevelTwoWeight(t *testing.T) {
	ct := mustType(t, "A1")

	res, err := klr.CyclotomicDimension(ct, []int{1, 1}, []int{1})
	require.NoError(t, err, "dimension must compute")
	assert.Equal(t, "q^2 + 1", res.Sum.String(), "[2] shifted by the identity exponent")
	assert.Equal(t, "q^2 + 1", res.Factored.String(), "irreducible factored form")
}

// TestCyclotomicDimension_RepeatedResidues pins the full doubled-bond run:
// the repeated residue 3 sits on the short root, the identity contributes an
// exact zero and the lone swap carries the whole dimension.
func TestCyclotomicDimension_RepeatedResidues(t *testing.T) {
	ct := mustType(t, "B3")

	res, err := klr.CyclotomicDimension(ct, []int{2}, []int{2, 3, 3, 2, 1})
	require.NoError(t, err, "dimension must compute")

	assert.Equal(t, "q^6 + 2*q^4 + 2*q^2 + 2 + q^-2", res.Sum.String(), "expanded graded dimension")
	assert.Equal(t, "(q^4 + 1)*(q^2 + 1)^2/q^2", res.Factored.String(), "canonical factored form")
	assert.Equal(t, "(q^{4} + 1)(q^{2} + 1)^{2}q^{-2}", res.Factored.LaTeX(), "typeset factored form")
	assert.True(t, res.Factored.Expand().Equal(res.Sum), "factored form expands back")

	require.Equal(t, 1, res.Tally.Len(), "one surviving value")
	ws := res.Tally.Lookup(res.Sum)
	require.Len(t, ws, 1, "one permutation behind it")
	assert.Equal(t, "(1,2)", ws[0].String(), "the swap of the repeated residues")
}

// TestCyclotomicDimension_EmptySequence checks the degenerate weight space:
// no letters, the trivial group, dimension one.
func TestCyclotomicDimension_EmptySequence(t *testing.T) {
	ct := mustType(t, "B3")

	res, err := klr.CyclotomicDimension(ct, []int{2}, nil)
	require.NoError(t, err, "empty sequence must compute")
	assert.Equal(t, "1", res.Sum.String(), "dim of the empty weight space")
	assert.Equal(t, 1, res.Tally.Len(), "the empty permutation contributes the unit")
}

// TestCyclotomicDimension_AbsentWeight checks the vanishing rule: a leading
// residue that never occurs in the weight forces N(w,0) = 0 for every w.
func TestCyclotomicDimension_AbsentWeight(t *testing.T) {
	ct := mustType(t, "B3")

	res, err := klr.CyclotomicDimension(ct, []int{1}, []int{2, 3})
	require.NoError(t, err, "vanishing spaces are results, not errors")
	assert.True(t, res.Sum.IsZero(), "sum vanishes")
	assert.True(t, res.Factored.IsZero(), "factored form is the zero form")
	assert.Equal(t, 0, res.Tally.Len(), "exact zeros never reach the tally")
}

// TestCyclotomicDimension_DisjointResidues checks that sequences with
// different residue multisets admit no compatible permutation at all.
func TestCyclotomicDimension_DisjointResidues(t *testing.T) {
	ct := mustType(t, "A2")

	res, err := klr.CyclotomicDimension(ct, []int{1}, []int{1, 2}, klr.WithBj([]int{2, 2}))
	require.NoError(t, err, "mismatched multisets are results, not errors")
	assert.True(t, res.Sum.IsZero(), "no compatible permutation survives")
	assert.Equal(t, 0, res.Tally.Len(), "empty tally")
}

// TestCyclotomicDimension_Validation walks the error taxonomy: every
// malformed input fails before any enumeration starts.
func TestCyclotomicDimension_Validation(t *testing.T) {
	ct := mustType(t, "B3")

	_, err := klr.CyclotomicDimension(ct, []int{2}, []int{1, 2}, klr.WithBj([]int{1}))
	require.ErrorIs(t, err, klr.ErrLengthMismatch, "bj length must match bi")

	_, err = klr.CyclotomicDimension(ct, []int{2}, []int{0, 1})
	require.ErrorIs(t, err, klr.ErrIndexNotInSet, "0 is not a B3 label")

	_, err = klr.CyclotomicDimension(ct, []int{2}, []int{1, 2}, klr.WithBj([]int{1, 7}))
	require.ErrorIs(t, err, klr.ErrIndexNotInSet, "bj entries are validated too")

	_, err = klr.CyclotomicDimension(ct, []int{2}, []int{1}, klr.WithBase([]int{9}))
	require.ErrorIs(t, err, klr.ErrIndexNotInSet, "base entries are validated too")
}

// TestCyclotomicDimension_PairSwap checks the two-sided symmetry of the
// weight space on hand-verified pairs: swapping bi and bj leaves the
// dimension unchanged.
func TestCyclotomicDimension_PairSwap(t *testing.T) {
	cases := []struct {
		name   string
		ct     string
		weight []int
		bi, bj []int
	}{
		{"affine triangle", "A2~", []int{0}, []int{0, 1, 2}, []int{0, 2, 1}},
		{"fork relabeling", "D4", []int{2}, []int{2, 3, 4, 1}, []int{2, 4, 3, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct := mustType(t, tc.ct)
			ij, err := klr.CyclotomicDimension(ct, tc.weight, tc.bi, klr.WithBj(tc.bj))
			require.NoError(t, err, "forward pair must compute")
			ji, err := klr.CyclotomicDimension(ct, tc.weight, tc.bj, klr.WithBj(tc.bi))
			require.NoError(t, err, "swapped pair must compute")
			assert.True(t, ij.Sum.Equal(ji.Sum), "dim %s vs swapped %s", ij.Sum, ji.Sum)
		})
	}
}

// TestCyclotomicDimension_BruteForceAgreement compares the structured
// generator construction against a direct scan of all of S(n). The
// interleaved stabilizer case places equal residues two positions apart, so
// the stabilizer has no adjacent transposition at all.
func TestCyclotomicDimension_BruteForceAgreement(t *testing.T) {
	cases := []struct {
		name   string
		ct     string
		weight []int
		bi, bj []int
	}{
		{"repeated residues", "B3", []int{2}, []int{2, 3, 3, 2, 1}, nil},
		{"affine triangle rotated", "A2~", []int{0}, []int{0, 1, 2}, []int{0, 2, 1}},
		{"interleaved stabilizer", "A1~", []int{0, 1}, []int{0, 1, 0, 1}, nil},
		{"paired doubles", "A3", []int{1, 2}, []int{1, 2, 2, 1}, []int{2, 1, 1, 2}},
		{"fork relabeling", "D4", []int{2}, []int{2, 3, 4, 1}, []int{2, 4, 3, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct := mustType(t, tc.ct)
			bj := tc.bj
			var opts []klr.Option
			if bj == nil {
				bj = tc.bi
			} else {
				opts = append(opts, klr.WithBj(bj))
			}
			res, err := klr.CyclotomicDimension(ct, tc.weight, tc.bi, opts...)
			require.NoError(t, err, "structured dimension must compute")
			want := bruteDimension(ct, tc.weight, tc.bi, bj)
			assert.True(t, res.Sum.Equal(want), "structured %s vs brute force %s", res.Sum, want)
		})
	}
}

// TestCyclotomicDimension_BasePrefix exercises the frozen prefix: its equal
// labels contribute a transposition generator, its pairings feed the block
// exponents, and in the first weight the two contributions cancel exactly.
func TestCyclotomicDimension_BasePrefix(t *testing.T) {
	ct := mustType(t, "A2")

	var buf bytes.Buffer
	res, err := klr.CyclotomicDimension(ct, []int{1, 2}, []int{2},
		klr.WithBase([]int{1, 1}), klr.WithTrace(&buf))
	require.NoError(t, err, "prefixed dimension must compute")
	assert.True(t, res.Sum.IsZero(), "identity and swap contributions cancel")
	assert.Equal(t, 0, res.Tally.Len(), "cancellation empties the tally")
	assert.Contains(t, buf.String(), "subgroup 2  compatible 2", "base transposition generates the swap")

	res, err = klr.CyclotomicDimension(ct, []int{1, 1, 2}, []int{2}, klr.WithBase([]int{1, 1}))
	require.NoError(t, err, "prefixed dimension must compute")
	assert.Equal(t, "q^6 + 3*q^4 + 4*q^2 + 3 + q^-2", res.Sum.String(), "expanded dimension")
	assert.Equal(t, "(q^2 + q + 1)*(q^2 + 1)^2*(q^2 - q + 1)/q^2", res.Factored.String(), "factored dimension")
}

// TestCyclotomicDimension_TraceObserves checks that the trace writer
// receives the pipeline stages and never changes the result.
func TestCyclotomicDimension_TraceObserves(t *testing.T) {
	ct := mustType(t, "A2~")

	var buf bytes.Buffer
	traced, err := klr.CyclotomicDimension(ct, []int{0}, []int{0, 1, 2}, klr.WithTrace(&buf))
	require.NoError(t, err, "traced dimension must compute")
	plain, err := klr.CyclotomicDimension(ct, []int{0}, []int{0, 1, 2})
	require.NoError(t, err, "untraced dimension must compute")

	assert.True(t, traced.Sum.Equal(plain.Sum), "the writer only observes")
	out := buf.String()
	assert.True(t, strings.Contains(out, "type A2~"), "trace names the type")
	assert.True(t, strings.Contains(out, "sum q^2 + 1"), "trace reports the sum")
}
