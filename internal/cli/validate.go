package cli

import (
	"errors"

	"github.com/spf13/cobra"

	pandoc "github.com/inkpress/go-pandoc"
	"github.com/inkpress/go-pandoc/internal/logging"
)

func newValidateCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a document against the known element kinds",
		Long: `Read a document and verify that it decodes cleanly: every element
tag names a known kind, every payload has the shape its kind
requires, and the api version is compatible.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runValidate(input, from)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "read input in this format via pandoc")

	return cmd
}

func runValidate(input, from string) error {
	logger := logging.Default()

	doc, err := loadDoc(input, from)
	if err != nil {
		var unknown *pandoc.UnknownTagError
		var content *pandoc.ContentError
		var version *pandoc.VersionError
		switch {
		case errors.As(err, &unknown):
			logger.Error("unknown element kind",
				logging.FieldTag, unknown.Tag,
				logging.FieldError, err,
			)
		case errors.As(err, &content):
			logger.Error("malformed element content",
				logging.FieldTag, content.Tag,
				logging.FieldError, err,
			)
		case errors.As(err, &version):
			logger.Error("incompatible api version",
				logging.FieldAPIVersion, version.Got,
				logging.FieldError, err,
			)
		}
		return err
	}

	var inlines, blocks int
	pandoc.Query(doc, func(pandoc.Inline) pandoc.WalkResult {
		inlines++
		return pandoc.WalkContinue
	})
	pandoc.Query(doc, func(pandoc.Block) pandoc.WalkResult {
		blocks++
		return pandoc.WalkContinue
	})

	logger.Info("document is valid",
		logging.FieldAPIVersion, doc.Version,
		logging.FieldBlocks, blocks,
		"inlines", inlines,
		logging.FieldMetaKeys, len(doc.Meta),
	)
	return nil
}
