package cmd

import (
	"github.com/katalvlaran/klrdim/cartan"
	"github.com/katalvlaran/klrdim/klr"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the full command tree. Every call builds a fresh
// tree, so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "klrdim",
		Short: "Graded dimensions of cyclotomic KLR algebras",
		Long: `klrdim computes graded dimensions of weight spaces e(bi)·R^Λ·e(bj) of
cyclotomic KLR algebras over symmetrizable Cartan types, exactly in ℤ[q,q⁻¹].

Weights and residue sequences are compact digit strings: the weight Λ = Λ₂
is "2", the sequence (2,3,3,2,1) is "23321". Affine types carry a trailing
tilde, as in A2~.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDimCmd(),
		newIdempotentsCmd(),
		newCartanCmd(),
		newReplCmd(),
	)

	return root
}

// Execute runs the tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// resolveTypeWeight reads the --type and --weight flags every computing
// command shares.
func resolveTypeWeight(cmd *cobra.Command) (*cartan.Type, []int, error) {
	desc, _ := cmd.Flags().GetString("type")
	ct, err := cartan.Parse(desc)
	if err != nil {
		return nil, nil, err
	}
	ws, _ := cmd.Flags().GetString("weight")
	weight, err := klr.ParseSeq(ws)
	if err != nil {
		return nil, nil, err
	}

	return ct, weight, nil
}
