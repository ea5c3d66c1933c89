package cmd

import (
	"fmt"
	"io"

	"github.com/katalvlaran/klrdim/cartan"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newCartanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cartan",
		Short: "Inspect a Cartan type",
		Long:  "Print the index set, Cartan matrix and symmetrizer of a type descriptor.",
		Example: `
# The affine triangle
klrdim cartan -t A2~

# The doubled bond
klrdim cartan -t B3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, _ := cmd.Flags().GetString("type")
			ct, err := cartan.Parse(desc)
			if err != nil {
				return err
			}
			printCartan(cmd.OutOrStdout(), ct)

			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "", "Cartan type descriptor, e.g. B3 or A2~")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// printCartan renders one type the same way for the one-shot command and
// the repl verb.
func printCartan(out io.Writer, ct *cartan.Type) {
	fmt.Fprintf(out, "type %s  index %v  affine %v\n", ct, ct.Index(), ct.IsAffine())
	fmt.Fprintf(out, "cartan matrix:\n%v\n", mat.Formatted(ct.Dense(), mat.Squeeze()))
	sym := make([]int, 0, len(ct.Index()))
	for _, i := range ct.Index() {
		sym = append(sym, ct.Symmetrizer(i))
	}
	fmt.Fprintf(out, "symmetrizer %v\n", sym)
}
