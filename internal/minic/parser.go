package minic

import "strconv"

// Parser composes the syntax tree from the sequence of tokens produced by the
// Scanner. Parsing stops at the first grammar violation, no partial tree is
// returned.
type Parser struct {
	current int
	tokens  []Token
}

// NewParser creates a new parser over the given tokens
func NewParser(tokens []Token) *Parser {
	return &Parser{0, tokens}
}

// Parse parses the whole token sequence as a program.
//
// program --> decl* EOF ;
func (parser *Parser) Parse() (*ProgramStmt, error) {
	var items []Stmt
	for !parser.isAtEnd() {
		if parser.check(ERROR) {
			tok, _ := parser.peek()
			return nil, NewParseError(UnexpectedToken, "Unrecognized character.", &tok)
		}
		item, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return NewProgramStmt(items), nil
}

// ParseExpr parses the whole token sequence as exactly one expression.
func (parser *Parser) ParseExpr() (Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isAtEnd() {
		tok, _ := parser.peek()
		return nil, NewParseError(UnexpectedToken, "Expect end of expression.", &tok)
	}
	return expr, nil
}

// decl --> funDecl | varDecl | exprStmt ;
func (parser *Parser) declaration() (Stmt, error) {
	if parser.match(FN) {
		return parser.function()
	}
	if parser.checkType() {
		return parser.varDeclaration()
	}
	// anything else is tried as an expression so the loop always advances or
	// fails
	return parser.exprStatement()
}

// funDecl --> "fn" type? IDENT "(" params? ")" "{" stmt* "}" ;
func (parser *Parser) function() (Stmt, error) {
	returnType := TypeUnspecified
	if parser.checkType() {
		returnType, _ = typeKindOf(parser.advance().Typ)
	}
	name, err := parser.consume(IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	var params []Param
	if !parser.check(RIGHT_PAREN) {
		if params, err = parser.parameters(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after function body."); err != nil {
		return nil, err
	}
	return NewFunctionStmt(returnType, name.Lexeme, params, body), nil
}

// A non-type token in the first slot means there are no parameters, the
// caller then reports the missing ')'.
//
// params --> type IDENT ( "," type IDENT )* ;
func (parser *Parser) parameters() ([]Param, error) {
	var params []Param
	if !parser.checkType() {
		return params, nil
	}
	for {
		if !parser.checkType() {
			tok, err := parser.peek()
			if err != nil {
				return nil, err
			}
			return nil, NewParseError(ExpectedTypeToken, "Expect parameter type.", &tok)
		}
		typ, _ := typeKindOf(parser.advance().Typ)
		name, err := parser.consume(IDENTIFIER, "Expect parameter name.")
		if err != nil {
			return nil, err
		}
		params = append(params, Param{typ, name.Lexeme})
		if !parser.match(COMMA) {
			return params, nil
		}
	}
}

// block parses statements up to, but not including, the closing '}'.
func (parser *Parser) block() (*BlockStmt, error) {
	var stmts []Stmt
	for !parser.isAtEnd() && !parser.check(RIGHT_BRACE) {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return NewBlockStmt(stmts), nil
}

// stmt --> varDecl | returnStmt | exprStmt ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.checkType() {
		return parser.varDeclaration()
	}
	if parser.match(RETURN) {
		return parser.returnStatement()
	}
	return parser.exprStatement()
}

// varDecl --> type IDENT "=" expr ";" ;
func (parser *Parser) varDeclaration() (Stmt, error) {
	typ, _ := typeKindOf(parser.advance().Typ)
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(EQUAL, "Expect '=' after variable name."); err != nil {
		return nil, err
	}
	initializer, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(
		SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(typ, name.Lexeme, initializer), nil
}

// returnStmt --> "return" expr ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	val, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(val), nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) exprStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expr --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `term` if does not hits "==".
//
// equality --> term ( "==" term )* ;
func (parser *Parser) equality() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(EQUAL_EQUAL) {
		op, err := parser.prev()
		if err != nil {
			return nil, err
		}
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Typ, expr, right)
	}
	return expr, nil
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op, err := parser.prev()
		if err != nil {
			return nil, err
		}
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Typ, expr, right)
	}
	return expr, nil
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op, err := parser.prev()
		if err != nil {
			return nil, err
		}
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Typ, expr, right)
	}
	return expr, nil
}

// unary --> "-" unary
//         | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(MINUS) {
		op, err := parser.prev()
		if err != nil {
			return nil, err
		}
		operand, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op.Typ, operand), nil
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for parser.match(LEFT_PAREN) {
		if expr, err = parser.finishCall(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// args --> expr ( "," expr )* ;
func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	ident, ok := callee.(*IdentExpr)
	if !ok {
		paren, err := parser.prev()
		if err != nil {
			return nil, err
		}
		return nil, NewParseError(UnexpectedToken, "Can only call identifiers.", &paren)
	}

	var args []Expr
	if !parser.check(RIGHT_PAREN) {
		for {
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return NewCallExpr(ident.Name, args), nil
}

// primary --> INT | FLOAT | STRING | IDENT | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(INT_LIT) {
		tok, err := parser.prev()
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, NewParseError(ExpectedIntLit, "Integer literal out of range.", &tok)
		}
		return NewIntLitExpr(value), nil
	}
	if parser.match(FLOAT_LIT) {
		tok, err := parser.prev()
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, NewParseError(ExpectedFloatLit, "Float literal out of range.", &tok)
		}
		return NewFloatLitExpr(value), nil
	}
	if parser.match(STRING_LIT) {
		tok, err := parser.prev()
		if err != nil {
			return nil, err
		}
		return NewStringLitExpr(tok.Lexeme), nil
	}
	if parser.match(IDENTIFIER) {
		tok, err := parser.prev()
		if err != nil {
			return nil, err
		}
		return NewIdentExpr(tok.Lexeme), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return expr, nil
	}

	tok, err := parser.peek()
	if err != nil {
		return nil, err
	}
	if tok.Typ == ERROR {
		return nil, NewParseError(UnexpectedToken, "Unrecognized character.", &tok)
	}
	return nil, NewParseError(ExpectedExpr, "Expect expression.", &tok)
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the given type or fails. The error kind
// names what was expected.
func (parser *Parser) consume(typ TokenType, message string) (Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	tok, err := parser.peek()
	if err != nil {
		return Token{}, err
	}
	return Token{}, NewParseError(expectedKindOf(typ), message, &tok)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isAtEnd() {
		return false
	}
	return parser.tokens[parser.current].Typ == tt
}

func (parser *Parser) checkType() bool {
	if parser.isAtEnd() {
		return false
	}
	_, ok := typeKindOf(parser.tokens[parser.current].Typ)
	return ok
}

// advance must only follow a successful check.
func (parser *Parser) advance() Token {
	tok := parser.tokens[parser.current]
	parser.current++
	return tok
}

func (parser *Parser) isAtEnd() bool {
	return parser.current >= len(parser.tokens)
}

func (parser *Parser) peek() (Token, error) {
	if parser.isAtEnd() {
		return Token{}, NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)
	}
	return parser.tokens[parser.current], nil
}

func (parser *Parser) prev() (Token, error) {
	if parser.current == 0 || parser.current > len(parser.tokens) {
		return Token{}, NewParseError(UnexpectedEOF, "No previous token.", nil)
	}
	return parser.tokens[parser.current-1], nil
}

func expectedKindOf(tt TokenType) ParseErrorKind {
	switch tt {
	case IDENTIFIER:
		return ExpectedIdentifier
	case INT_LIT:
		return ExpectedIntLit
	case FLOAT_LIT:
		return ExpectedFloatLit
	case STRING_LIT:
		return ExpectedStringLit
	}
	return FailedToFindToken
}
