// Package cli provides the Cobra command structure for pandoc-ast.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkpress/go-pandoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pandoc-ast command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "pandoc-ast",
		Short: "Inspect and transform pandoc JSON documents",
		Long: `pandoc-ast reads, validates and transforms documents in the pandoc
JSON interchange format (pandoc-api-version 1.17).

It can normalize documents to a canonical JSON rendition, validate
them against the known element kinds, and extract document metadata
as YAML. With a pandoc executable on the PATH it can also read and
write any source format pandoc understands.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands.
	rootCmd.AddCommand(newNormalizeCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newMetaCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
