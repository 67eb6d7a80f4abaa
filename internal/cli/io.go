package cli

import (
	"fmt"
	"io"
	"os"

	pandoc "github.com/inkpress/go-pandoc"
)

// loadDoc reads a document from the named input, or stdin when input is
// empty or "-". With a non-empty from format the input is run through
// the pandoc executable first; otherwise it must already be pandoc
// JSON.
func loadDoc(input, from string) (*pandoc.Doc, error) {
	if from != "" {
		if input == "" || input == "-" {
			return pandoc.LoadFrom(os.Stdin, pandoc.Format(from))
		}
		return pandoc.LoadFile(input, pandoc.Format(from))
	}
	var r io.Reader = os.Stdin
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", input, err)
		}
		defer f.Close()
		return pandoc.ReadFrom(f)
	}
	return pandoc.ReadFrom(r)
}

// openOutput returns the writer for the named output, or stdout when
// output is empty or "-". The returned func closes the writer.
func openOutput(output string) (io.Writer, func() error, error) {
	if output == "" || output == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", output, err)
	}
	return f, f.Close, nil
}
