package cmd

import (
	"fmt"

	"github.com/katalvlaran/klrdim/klr"
	"github.com/spf13/cobra"
)

func newIdempotentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idempotents",
		Short: "List nonzero idempotent weight spaces",
		Long: `Sweep every residue sequence of a fixed length over the type's index set
and list the ones whose self-paired weight space does not vanish, one line
per sequence with its factored dimension.`,
		Example: `
# Surviving length-2 sequences of A1 under Λ = 2Λ₁
klrdim idempotents -t A1 -w 11 -n 2

# LaTeX listing for the doubled bond
klrdim idempotents -t B3 -w 2 -n 3 --latex
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, weight, err := resolveTypeWeight(cmd)
			if err != nil {
				return err
			}
			n, _ := cmd.Flags().GetInt("length")
			latex, _ := cmd.Flags().GetBool("latex")

			list, err := klr.Idempotents(ct, weight, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range list {
				if latex {
					fmt.Fprintln(out, e.LaTeX())
				} else {
					fmt.Fprintln(out, e)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "", "Cartan type descriptor, e.g. B3 or A2~")
	cmd.Flags().StringP("weight", "w", "", "dominant weight as a digit string")
	cmd.Flags().IntP("length", "n", 0, "residue sequence length")
	cmd.Flags().Bool("latex", false, "typeset the listing")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
