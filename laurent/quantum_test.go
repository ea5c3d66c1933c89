package laurent_test

import (
	"testing"

	"github.com/katalvlaran/klrdim/laurent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuantumInteger_Zero verifies [0] is the zero polynomial.
func TestQuantumInteger_Zero(t *testing.T) {
	assert.True(t, laurent.QuantumInteger(1, 0).IsZero(), "[0] must be zero")
	assert.True(t, laurent.QuantumInteger(3, 0).IsZero(), "[0] at q^3 must be zero")
}

// TestQuantumInteger_TermShape checks that [k] has exactly k terms with the
// symmetric exponents k-1, k-3, …, -(k-1).
func TestQuantumInteger_TermShape(t *testing.T) {
	for k := 1; k <= 8; k++ {
		p := laurent.QuantumInteger(1, k)
		require.Equal(t, k, p.Terms(), "[%d] must have %d terms", k, k)
		assert.Equal(t, k-1, p.Degree(), "[%d] top exponent", k)
		assert.Equal(t, -(k - 1), p.LowDeg(), "[%d] bottom exponent", k)
		for i := 0; i < k; i++ {
			e := k - 1 - 2*i
			assert.EqualValues(t, 1, p.Coeff(e).Int64(), "[%d] coefficient at q^%d", k, e)
		}
	}
}

// TestQuantumInteger_Negation verifies [-k] = -[k].
func TestQuantumInteger_Negation(t *testing.T) {
	for k := 1; k <= 6; k++ {
		neg := laurent.QuantumInteger(1, -k)
		assert.True(t, neg.Equal(laurent.QuantumInteger(1, k).Neg()), "[-%d] must equal -[%d]", k, k)
	}
}

// TestQuantumInteger_ScaledBase checks evaluation at q^d: every exponent is
// scaled by the symmetrizer while the term count stays k.
func TestQuantumInteger_ScaledBase(t *testing.T) {
	p := laurent.QuantumInteger(2, 2)
	assert.Equal(t, "q^2 + q^-2", p.String(), "[2] at q^2")

	p = laurent.QuantumInteger(3, 3)
	assert.Equal(t, 3, p.Terms(), "[3] keeps 3 terms at q^3")
	assert.Equal(t, 6, p.Degree(), "top exponent is d(k-1)")
	assert.Equal(t, -6, p.LowDeg(), "bottom exponent is -d(k-1)")
}

// TestQuantumInteger_BadSymmetrizer ensures a nonpositive base exponent panics.
func TestQuantumInteger_BadSymmetrizer(t *testing.T) {
	assert.Panics(t, func() { laurent.QuantumInteger(0, 2) }, "d=0 must panic")
	assert.Panics(t, func() { laurent.QuantumInteger(-1, 2) }, "d<0 must panic")
}
