package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/katalvlaran/klrdim/cartan"
	"github.com/katalvlaran/klrdim/klr"
	"github.com/spf13/cobra"
)

const replHelp = `verbs:
  dim TYPE WEIGHT BI [BJ]      one graded dimension, factored
  idempotents TYPE WEIGHT N    nonzero idempotents of length N
  cartan TYPE                  index set, matrix, symmetrizer
  help                         this summary
  exit                         leave the loop
`

var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("dim"),
	readline.PcItem("idempotents"),
	readline.PcItem("cartan"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive dimension loop",
		Long: `Read-eval-print loop over the same verbs as the one-shot commands, with
line history and verb completion.`,
		Example: `
klrdim repl
klr> dim B3 2 23321
klr> idempotents A1 11 2
klr> cartan A2~
klr> exit
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "klr> ",
				HistoryFile:     filepath.Join(os.TempDir(), ".klrdim_history"),
				AutoComplete:    replCompleter,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return err
			}
			defer rl.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "klrdim repl — 'help' lists the verbs, 'exit' leaves")
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					if len(line) == 0 {
						return nil
					}

					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if replDispatch(out, strings.Fields(strings.TrimSpace(line))) {
					return nil
				}
			}
		},
	}
}

// replDispatch executes one line of input and reports whether the loop
// should stop. Errors are printed, never returned: a typo must not kill
// the session.
func replDispatch(out io.Writer, words []string) (done bool) {
	if len(words) == 0 {
		return false
	}

	var err error
	switch words[0] {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprint(out, replHelp)
	case "dim":
		err = replDim(out, words[1:])
	case "idempotents":
		err = replIdempotents(out, words[1:])
	case "cartan":
		err = replCartan(out, words[1:])
	default:
		err = fmt.Errorf("unknown verb %q, try 'help'", words[0])
	}
	if err != nil {
		fmt.Fprintln(out, "error:", err)
	}

	return false
}

func replDim(out io.Writer, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return errors.New("usage: dim TYPE WEIGHT BI [BJ]")
	}
	ct, err := cartan.Parse(args[0])
	if err != nil {
		return err
	}
	weight, err := klr.ParseSeq(args[1])
	if err != nil {
		return err
	}
	bi, err := klr.ParseSeq(args[2])
	if err != nil {
		return err
	}
	var opts []klr.Option
	if len(args) == 4 {
		bj, err := klr.ParseSeq(args[3])
		if err != nil {
			return err
		}
		opts = append(opts, klr.WithBj(bj))
	}

	res, err := klr.CyclotomicDimension(ct, weight, bi, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Factored)

	return nil
}

func replIdempotents(out io.Writer, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: idempotents TYPE WEIGHT N")
	}
	ct, err := cartan.Parse(args[0])
	if err != nil {
		return err
	}
	weight, err := klr.ParseSeq(args[1])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("length %q is not a number", args[2])
	}

	list, err := klr.Idempotents(ct, weight, n)
	if err != nil {
		return err
	}
	for _, e := range list {
		fmt.Fprintln(out, e)
	}

	return nil
}

func replCartan(out io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: cartan TYPE")
	}
	ct, err := cartan.Parse(args[0])
	if err != nil {
		return err
	}
	printCartan(out, ct)

	return nil
}
