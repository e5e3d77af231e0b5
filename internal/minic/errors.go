package minic

import "fmt"

// ScanError is a non-fatal diagnostic produced by the scanner for a character
// that does not start any lexeme.
type ScanError struct {
	char    rune
	message string
}

// NewScanError creates a new scan error
func NewScanError(char rune, message string) error {
	return &ScanError{char, message}
}

// Char returns the offending character.
func (err *ScanError) Char() rune {
	return err.char
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("Error at %q: %s", err.char, err.message)
}

// ParseErrorKind classifies a grammar violation.
type ParseErrorKind uint

const (
	UnexpectedEOF ParseErrorKind = iota
	FailedToFindToken
	ExpectedTypeToken
	ExpectedIdentifier
	UnexpectedToken
	ExpectedFloatLit
	ExpectedIntLit
	ExpectedStringLit
	ExpectedExpr
)

func (kind ParseErrorKind) String() string {
	switch kind {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case FailedToFindToken:
		return "FailedToFindToken"
	case ExpectedTypeToken:
		return "ExpectedTypeToken"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case UnexpectedToken:
		return "UnexpectedToken"
	case ExpectedFloatLit:
		return "ExpectedFloatLit"
	case ExpectedIntLit:
		return "ExpectedIntLit"
	case ExpectedStringLit:
		return "ExpectedStringLit"
	case ExpectedExpr:
		return "ExpectedExpr"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", uint(kind))
}

// ParseError is returned by the parser on the first grammar violation. Token
// is nil when the violation is the end of input.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Token   *Token
}

// NewParseError creates a new parse error. tok may be nil.
func NewParseError(kind ParseErrorKind, message string, tok *Token) error {
	return &ParseError{kind, message, tok}
}

func (err *ParseError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("Error at end: %s", err.Message)
	}
	return fmt.Sprintf("Error at '%s': %s", err.Token.Lexeme, err.Message)
}
