// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Expansion fields.
	FieldAbbreviation = "abbreviation"
	FieldSyntax       = "syntax"
	FieldType         = "type"
	FieldLocation     = "location"

	// Configuration fields.
	FieldConfig    = "config"
	FieldMaxRepeat = "max_repeat"

	// Snippet fields.
	FieldKey   = "key"
	FieldScore = "score"
	FieldValue = "value"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
