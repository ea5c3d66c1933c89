package cmd

import (
	"fmt"

	"github.com/katalvlaran/klrdim/klr"
	"github.com/spf13/cobra"
)

func newDimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dim bi [bj]",
		Short: "Compute one graded dimension",
		Long: `Compute dim_q e(bi)·R^Λ·e(bj) for the given Cartan type and weight.
bj defaults to bi. The factored form is printed unless --expanded asks for
the plain polynomial.`,
		Example: `
# Self-paired weight space on B3 under Λ = Λ₂
klrdim dim -t B3 -w 2 23321

# Off-diagonal pairing on the affine triangle
klrdim dim -t A2~ -w 0 012 021

# Expanded polynomial plus the contribution tally
klrdim dim -t B3 -w 2 23321 --expanded --tally

# Stream the whole computation to stderr
klrdim dim -t B3 -w 2 23321 --trace
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, weight, err := resolveTypeWeight(cmd)
			if err != nil {
				return err
			}
			bi, err := klr.ParseSeq(args[0])
			if err != nil {
				return err
			}

			var opts []klr.Option
			if len(args) == 2 {
				bj, err := klr.ParseSeq(args[1])
				if err != nil {
					return err
				}
				opts = append(opts, klr.WithBj(bj))
			}
			if base, _ := cmd.Flags().GetString("base"); base != "" {
				prefix, err := klr.ParseSeq(base)
				if err != nil {
					return err
				}
				opts = append(opts, klr.WithBase(prefix))
			}
			if trace, _ := cmd.Flags().GetBool("trace"); trace {
				opts = append(opts, klr.WithTrace(cmd.ErrOrStderr()))
			}

			res, err := klr.CyclotomicDimension(ct, weight, bi, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tally, _ := cmd.Flags().GetBool("tally"); tally {
				fmt.Fprint(out, res.Tally)
			}
			if expanded, _ := cmd.Flags().GetBool("expanded"); expanded {
				fmt.Fprintln(out, res.Sum)

				return nil
			}
			fmt.Fprintln(out, res.Factored)

			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "", "Cartan type descriptor, e.g. B3 or A2~")
	cmd.Flags().StringP("weight", "w", "", "dominant weight as a digit string")
	cmd.Flags().String("base", "", "frozen prefix as a digit string")
	cmd.Flags().Bool("trace", false, "stream the computation to stderr")
	cmd.Flags().Bool("expanded", false, "print the expanded polynomial instead of the factored form")
	cmd.Flags().Bool("tally", false, "print the contribution tally first")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}
