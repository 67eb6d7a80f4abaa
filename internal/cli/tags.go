package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pandoc "github.com/inkpress/go-pandoc"
)

func newTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the known element kinds",
		Long: `List every element tag the pandoc JSON format at this api version
defines, grouped by category.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printTags("blocks", pandoc.BlockTags())
			printTags("inlines", pandoc.InlineTags())
			printTags("meta", pandoc.MetaTags())
		},
	}

	return cmd
}

func printTags(category string, tags []pandoc.Tag) {
	fmt.Fprintf(os.Stdout, "%s:\n", category)
	for _, t := range tags {
		fmt.Fprintf(os.Stdout, "  %s\n", t)
	}
}
