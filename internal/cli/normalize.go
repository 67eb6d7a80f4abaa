package cli

import (
	"github.com/spf13/cobra"

	pandoc "github.com/inkpress/go-pandoc"
	"github.com/inkpress/go-pandoc/internal/logging"
)

type normalizeFlags struct {
	from   string
	to     string
	output string
}

func newNormalizeCommand() *cobra.Command {
	flags := &normalizeFlags{}

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Re-emit a document in canonical form",
		Long: `Read a document and write it back in canonical pandoc JSON: stable
field order, shared attribute defaults, and the fixed api version
marker. With --from the input is any format the pandoc executable
can read; with --to the output is rendered through pandoc instead
of emitted as JSON.

Examples:
  pandoc-ast normalize doc.json           # canonical JSON to stdout
  pandoc-ast normalize --from markdown x.md
  pandoc-ast normalize --to html doc.json -o doc.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runNormalize(input, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "read input in this format via pandoc")
	cmd.Flags().StringVar(&flags.to, "to", "", "render output in this format via pandoc")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to this file")

	return cmd
}

func runNormalize(input string, flags *normalizeFlags) error {
	logger := logging.Default()

	doc, err := loadDoc(input, flags.from)
	if err != nil {
		return err
	}
	logger.Debug("document loaded",
		logging.FieldInput, input,
		logging.FieldBlocks, len(doc.Blocks),
	)

	w, closeOut, err := openOutput(flags.output)
	if err != nil {
		return err
	}

	if flags.to != "" {
		err = doc.StoreTo(w, pandoc.Format(flags.to))
	} else {
		err = doc.WriteTo(w)
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
