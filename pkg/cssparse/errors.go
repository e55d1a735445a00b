package cssparse

import "fmt"

// ErrorKind classifies the fatal parse errors.
type ErrorKind int

const (
	// ErrUnbalancedOpeningBrace: a selector or at-rule prelude reached
	// end of input without finding its '{'.
	ErrUnbalancedOpeningBrace ErrorKind = iota

	// ErrUnbalancedClosingBrace: a block was opened but the input ended
	// before its matching '}'.
	ErrUnbalancedClosingBrace

	// ErrUnterminatedString: a quoted literal never found its matching
	// unescaped closing quote.
	ErrUnterminatedString
)

// String returns a stable machine-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnbalancedOpeningBrace:
		return "unbalanced-opening-brace"
	case ErrUnbalancedClosingBrace:
		return "unbalanced-closing-brace"
	case ErrUnterminatedString:
		return "unterminated-string"
	default:
		return "unknown"
	}
}

// ParseError is the only error type returned by Parse and
// ParseTracking. Parsing aborts on the first error; there is no
// partial AST.
type ParseError struct {
	Kind    ErrorKind
	Message string

	// Offset is the byte offset in the input where the offending
	// construct starts.
	Offset int
}

func (e *ParseError) Error() string {
	return e.Message
}

func unbalancedOpening(prelude string, offset int) *ParseError {
	return &ParseError{
		Kind:    ErrUnbalancedOpeningBrace,
		Message: fmt.Sprintf("missing opening { for %s", prelude),
		Offset:  offset,
	}
}

func unbalancedClosing(prelude string, offset int) *ParseError {
	return &ParseError{
		Kind:    ErrUnbalancedClosingBrace,
		Message: fmt.Sprintf("missing closing } for %s", prelude),
		Offset:  offset,
	}
}

func unterminatedString(content string, offset int) *ParseError {
	return &ParseError{
		Kind:    ErrUnterminatedString,
		Message: fmt.Sprintf("unterminated string: %s", content),
		Offset:  offset,
	}
}
