package minic

import "fmt"

// Token is a classified lexeme. Tokens carry no position information, their
// order in the scanned slice is the only sequencing signal.
type Token struct {
	Typ    TokenType
	Lexeme string
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string) Token {
	return Token{typ, lexeme}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Typ, t.Lexeme)
}

var keywords = map[string]TokenType{
	"fn":     FN,
	"int":    INT,
	"float":  FLOAT,
	"string": STRING,
	"return": RETURN,
}

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	SEMICOLON
	MINUS
	PLUS
	SLASH
	STAR

	// One or two character tokens
	EQUAL
	EQUAL_EQUAL

	// Literals
	IDENTIFIER
	STRING_LIT
	INT_LIT
	FLOAT_LIT

	// Keywords
	FN
	INT
	FLOAT
	STRING
	RETURN

	// Unrecognized character
	ERROR
)

// TokenType identifies the category of a token.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case MINUS:
		return "-"
	case PLUS:
		return "+"
	case SLASH:
		return "/"
	case STAR:
		return "*"
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case IDENTIFIER:
		return "IDENTIFIER"
	case STRING_LIT:
		return "STRING_LIT"
	case INT_LIT:
		return "INT_LIT"
	case FLOAT_LIT:
		return "FLOAT_LIT"
	case FN:
		return "FN"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case RETURN:
		return "RETURN"
	case ERROR:
		return "ERROR"
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}

// TypeKind is the declared type of a variable, parameter, or function result.
type TypeKind uint

const (
	// TypeUnspecified marks a function declared without a return type.
	TypeUnspecified TypeKind = iota
	TypeInt
	TypeFloat
	TypeString
)

// typeKindOf maps a type keyword to its TypeKind. ok is false for any other
// token type.
func typeKindOf(tt TokenType) (kind TypeKind, ok bool) {
	switch tt {
	case INT:
		return TypeInt, true
	case FLOAT:
		return TypeFloat, true
	case STRING:
		return TypeString, true
	}
	return TypeUnspecified, false
}

func (kind TypeKind) String() string {
	switch kind {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	}
	return "unspecified"
}
