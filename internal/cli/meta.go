package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pandoc "github.com/inkpress/go-pandoc"
)

type metaFlags struct {
	from   string
	key    string
	output string
}

func newMetaCommand() *cobra.Command {
	flags := &metaFlags{}

	cmd := &cobra.Command{
		Use:   "meta [file]",
		Short: "Extract document metadata as YAML",
		Long: `Read a document and print its metadata block as YAML, preserving
key order. With --key only that key's value is printed, reduced to
plain text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runMeta(input, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "read input in this format via pandoc")
	cmd.Flags().StringVar(&flags.key, "key", "", "print only this metadata key")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to this file")

	return cmd
}

func runMeta(input string, flags *metaFlags) error {
	doc, err := loadDoc(input, flags.from)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(flags.output)
	if err != nil {
		return err
	}

	if flags.key != "" {
		value := doc.Meta.Get(flags.key)
		if value == nil {
			_ = closeOut()
			return fmt.Errorf("metadata key %q is not present", flags.key)
		}
		if _, err := fmt.Fprintln(w, metaText(value)); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()
	}

	out, err := pandoc.MetaToYAML(doc.Meta)
	if err != nil {
		_ = closeOut()
		return err
	}
	if _, err := w.Write(out); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

func metaText(v pandoc.MetaValue) string {
	switch v := v.(type) {
	case pandoc.MetaString:
		return string(v)
	case pandoc.MetaBool:
		if v {
			return "true"
		}
		return "false"
	case *pandoc.MetaInlines:
		return v.Text()
	case *pandoc.MetaBlocks:
		return pandoc.Stringify(v)
	}
	out, err := pandoc.MetaToYAML(pandoc.Meta{{Key: "value", Value: v}})
	if err != nil {
		return ""
	}
	return string(out)
}
