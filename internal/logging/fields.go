package logging

// Field name constants for structured logging. Constants keep key
// names consistent across commands.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Parse and serialize fields.
	FieldBytes    = "bytes"
	FieldNodes    = "nodes"
	FieldLines    = "lines"
	FieldLanguage = "language"

	// Source map fields.
	FieldMappings   = "mappings"
	FieldSourceName = "source_name"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
