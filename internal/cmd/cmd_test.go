package cmd

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/klrdim/klr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the tree against args and returns captured stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestDimCmd_Factored checks the default output: the factored dimension.
func TestDimCmd_Factored(t *testing.T) {
	out, err := run(t, "dim", "-t", "B3", "-w", "2", "23321")
	require.NoError(t, err, "dim must succeed")
	assert.Equal(t, "(q^4 + 1)*(q^2 + 1)^2/q^2\n", out, "factored form only")
}

// TestDimCmd_ExpandedAndTally checks the alternate renderings.
func TestDimCmd_ExpandedAndTally(t *testing.T) {
	out, err := run(t, "dim", "-t", "B3", "-w", "2", "23321", "--expanded")
	require.NoError(t, err, "dim must succeed")
	assert.Equal(t, "q^6 + 2*q^4 + 2*q^2 + 2 + q^-2\n", out, "expanded polynomial only")

	out, err = run(t, "dim", "-t", "B3", "-w", "2", "23321", "--tally")
	require.NoError(t, err, "dim must succeed")
	assert.Equal(t, "q^6 + 2*q^4 + 2*q^2 + 2 + q^-2 : (1,2)\n(q^4 + 1)*(q^2 + 1)^2/q^2\n", out,
		"tally listing above the factored form")
}

// TestDimCmd_PairedSequences checks the optional bj argument.
func TestDimCmd_PairedSequences(t *testing.T) {
	out, err := run(t, "dim", "-t", "A2~", "-w", "0", "012", "021")
	require.NoError(t, err, "dim must succeed")
	assert.Equal(t, "q\n", out, "one-dimensional off-diagonal space")
}

// TestDimCmd_Errors walks the failure surface of the one-shot command.
func TestDimCmd_Errors(t *testing.T) {
	_, err := run(t, "dim", "-t", "Q3", "-w", "2", "23321")
	assert.Error(t, err, "unknown family must fail")

	_, err = run(t, "dim", "-t", "B3", "-w", "2", "2x1")
	assert.ErrorIs(t, err, klr.ErrBadDigit, "non-digit sequence must fail")

	_, err = run(t, "dim", "-t", "B3", "-w", "2", "012")
	assert.ErrorIs(t, err, klr.ErrIndexNotInSet, "label 0 is not finite B3")

	_, err = run(t, "dim", "-w", "2", "23321")
	assert.Error(t, err, "missing --type must fail")

	_, err = run(t, "dim", "-t", "B3", "-w", "2")
	assert.Error(t, err, "missing sequence argument must fail")
}

// TestIdempotentsCmd checks both renderings of the sweep listing.
func TestIdempotentsCmd(t *testing.T) {
	out, err := run(t, "idempotents", "-t", "A1", "-w", "11", "-n", "2")
	require.NoError(t, err, "sweep must succeed")
	assert.Equal(t, "e(1,1): (q^2 + 1)^2/q^2\n", out, "plain listing")

	out, err = run(t, "idempotents", "-t", "A1", "-w", "11", "-n", "2", "--latex")
	require.NoError(t, err, "sweep must succeed")
	assert.Equal(t, "e_{11}: (q^{2} + 1)^{2}q^{-2}\n", out, "typeset listing")
}

// TestCartanCmd checks the inspection output without pinning the matrix
// layout.
func TestCartanCmd(t *testing.T) {
	out, err := run(t, "cartan", "-t", "B3")
	require.NoError(t, err, "inspection must succeed")
	assert.Contains(t, out, "type B3  index [1 2 3]  affine false", "header line")
	assert.Contains(t, out, "symmetrizer [2 2 1]", "symmetrizer line")

	out, err = run(t, "cartan", "-t", "A2~")
	require.NoError(t, err, "affine inspection must succeed")
	assert.Contains(t, out, "index [0 1 2]  affine true", "affine header")
}

// TestReplDispatch drives the repl verbs directly, with no terminal
// attached.
func TestReplDispatch(t *testing.T) {
	var out bytes.Buffer

	done := replDispatch(&out, []string{"dim", "B3", "2", "23321"})
	assert.False(t, done, "dim keeps the loop alive")
	assert.Equal(t, "(q^4 + 1)*(q^2 + 1)^2/q^2\n", out.String(), "factored dimension")

	out.Reset()
	done = replDispatch(&out, []string{"dim", "A2~", "0", "012", "021"})
	assert.False(t, done, "paired dim keeps the loop alive")
	assert.Equal(t, "q\n", out.String(), "paired dimension")

	out.Reset()
	done = replDispatch(&out, []string{"idempotents", "A1", "11", "2"})
	assert.False(t, done, "idempotents keeps the loop alive")
	assert.Equal(t, "e(1,1): (q^2 + 1)^2/q^2\n", out.String(), "sweep listing")

	out.Reset()
	done = replDispatch(&out, []string{"cartan", "A2~"})
	assert.False(t, done, "cartan keeps the loop alive")
	assert.Contains(t, out.String(), "index [0 1 2]", "inspection output")

	out.Reset()
	done = replDispatch(&out, []string{"help"})
	assert.False(t, done, "help keeps the loop alive")
	assert.Contains(t, out.String(), "dim TYPE WEIGHT BI [BJ]", "verb summary")

	out.Reset()
	done = replDispatch(&out, []string{"bogus"})
	assert.False(t, done, "a typo keeps the loop alive")
	assert.Contains(t, out.String(), "unknown verb", "typo is reported, not fatal")

	out.Reset()
	done = replDispatch(&out, []string{"dim", "B3"})
	assert.False(t, done, "bad arity keeps the loop alive")
	assert.Contains(t, out.String(), "usage: dim", "arity error is reported")

	assert.True(t, replDispatch(&out, []string{"exit"}), "exit stops the loop")
	assert.False(t, replDispatch(&out, nil), "blank line keeps the loop alive")
}
