// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Document fields.
	FieldBlocks     = "blocks"
	FieldMetaKeys   = "meta_keys"
	FieldAPIVersion = "api_version"
	FieldTag        = "tag"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
