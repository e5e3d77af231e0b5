package minic

import "unicode/utf8"

// Scanner splits the input source into tokens. Scanning never fails: every
// character that does not start a lexeme becomes an ERROR token and is
// reported as a ScanError when a reporter is set. Lexemes are slices of the
// source, so bytes that are not valid UTF-8 are kept as they are.
type Scanner struct {
	start    int
	current  int
	source   string
	tokens   []Token
	scanned  bool
	reporter Reporter
}

// NewScanner creates a new token scanner. reporter may be nil.
func NewScanner(source string, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.source = source
	scanner.reporter = reporter
	return scanner
}

// Tokenize scans source without reporting diagnostics.
func Tokenize(source string) []Token {
	return NewScanner(source, nil).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source
func (scanner *Scanner) Scan() []Token {
	if scanner.scanned {
		return scanner.tokens
	}
	scanner.scanned = true

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\t', '\n', '\r', '\v', '\f':
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN)
		case ')':
			scanner.addToken(RIGHT_PAREN)
		case '{':
			scanner.addToken(LEFT_BRACE)
		case '}':
			scanner.addToken(RIGHT_BRACE)
		case ',':
			scanner.addToken(COMMA)
		case ';':
			scanner.addToken(SEMICOLON)
		case '-':
			scanner.addToken(MINUS)
		case '+':
			scanner.addToken(PLUS)
		case '*':
			scanner.addToken(STAR)
		case '/':
			scanner.addToken(SLASH)
		// Double character tokens
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL)
			} else {
				scanner.addToken(EQUAL)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.addToken(ERROR)
				scanner.report(NewScanError(r, "Unexpected character."))
			}
		}
	}
	return scanner.tokens
}

// scanString emits the runes between the quotes. A missing closing quote
// consumes the rest of the source.
func (scanner *Scanner) scanString() {
	for scanner.peek() != '"' && scanner.hasNext() {
		scanner.advance()
	}
	literal := scanner.source[scanner.start+1 : scanner.current]
	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
	}
	scanner.tokens = append(scanner.tokens, NewToken(STRING_LIT, literal))
}

func (scanner *Scanner) scanNumber() {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' only belongs to the number when a digit follows it
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
		scanner.addToken(FLOAT_LIT)
		return
	}
	scanner.addToken(INT_LIT)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	if tokenType, isKeyword := keywords[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENTIFIER)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := scanner.source[scanner.start:scanner.current]
	scanner.tokens = append(scanner.tokens, NewToken(typ, lexeme))
}

func (scanner *Scanner) report(err error) {
	if scanner.reporter != nil {
		scanner.reporter.Report(err)
	}
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position. An invalid
// byte is consumed alone and returned as utf8.RuneError.
func (scanner *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	scanner.current += size
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.peek() != expected {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	return r
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	_, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	if scanner.current+size >= len(scanner.source) {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[scanner.current+size:])
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}
