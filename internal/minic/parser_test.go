package minic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"3", NewIntLitExpr(3)},
		{"9223372036854775807", NewIntLitExpr(9223372036854775807)},
		{"3.14", NewFloatLitExpr(3.14)},
		{"\"a string\"", NewStringLitExpr("a string")},
		{"x", NewIdentExpr("x")},
		{"(3)", NewIntLitExpr(3)},
		{"((x))", NewIdentExpr("x")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseUnary(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"-3.14", NewUnaryExpr(MINUS, NewFloatLitExpr(3.14))},
		{"--3", NewUnaryExpr(MINUS, NewUnaryExpr(MINUS, NewIntLitExpr(3)))},
		{"-f(1)", NewUnaryExpr(MINUS, NewCallExpr("f", []Expr{NewIntLitExpr(1)}))},
		{"-(x)", NewUnaryExpr(MINUS, NewIdentExpr("x"))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseOpPrecedence(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"1 + 2 * 3",
			NewBinaryExpr(PLUS,
				NewIntLitExpr(1),
				NewBinaryExpr(STAR, NewIntLitExpr(2), NewIntLitExpr(3)))},
		{"1 * 2 + 3",
			NewBinaryExpr(PLUS,
				NewBinaryExpr(STAR, NewIntLitExpr(1), NewIntLitExpr(2)),
				NewIntLitExpr(3))},
		{"(1 + 2) * 3",
			NewBinaryExpr(STAR,
				NewBinaryExpr(PLUS, NewIntLitExpr(1), NewIntLitExpr(2)),
				NewIntLitExpr(3))},
		{"1 == 2 + 3",
			NewBinaryExpr(EQUAL_EQUAL,
				NewIntLitExpr(1),
				NewBinaryExpr(PLUS, NewIntLitExpr(2), NewIntLitExpr(3)))},
		{"-1 * 2",
			NewBinaryExpr(STAR,
				NewUnaryExpr(MINUS, NewIntLitExpr(1)),
				NewIntLitExpr(2))},
		{"a - -b",
			NewBinaryExpr(MINUS,
				NewIdentExpr("a"),
				NewUnaryExpr(MINUS, NewIdentExpr("b")))},
		{"f(1) * 2",
			NewBinaryExpr(STAR,
				NewCallExpr("f", []Expr{NewIntLitExpr(1)}),
				NewIntLitExpr(2))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseAssociativity(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"1 - 2 - 3",
			NewBinaryExpr(MINUS,
				NewBinaryExpr(MINUS, NewIntLitExpr(1), NewIntLitExpr(2)),
				NewIntLitExpr(3))},
		{"6 / 3 / 2",
			NewBinaryExpr(SLASH,
				NewBinaryExpr(SLASH, NewIntLitExpr(6), NewIntLitExpr(3)),
				NewIntLitExpr(2))},
		{"a == b == c",
			NewBinaryExpr(EQUAL_EQUAL,
				NewBinaryExpr(EQUAL_EQUAL, NewIdentExpr("a"), NewIdentExpr("b")),
				NewIdentExpr("c"))},
		{"1 + 2 - 3",
			NewBinaryExpr(MINUS,
				NewBinaryExpr(PLUS, NewIntLitExpr(1), NewIntLitExpr(2)),
				NewIntLitExpr(3))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseCall(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"f()", NewCallExpr("f", nil)},
		{"f(1, x)", NewCallExpr("f", []Expr{NewIntLitExpr(1), NewIdentExpr("x")})},
		{"f(g(1), \"s\")",
			NewCallExpr("f", []Expr{
				NewCallExpr("g", []Expr{NewIntLitExpr(1)}),
				NewStringLitExpr("s"),
			})},
		{"(f)(2)", NewCallExpr("f", []Expr{NewIntLitExpr(2)})},
		{"f(1 + 2)",
			NewCallExpr("f", []Expr{
				NewBinaryExpr(PLUS, NewIntLitExpr(1), NewIntLitExpr(2)),
			})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseExprWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"5(1)",
			NewParseError(UnexpectedToken, "Can only call identifiers.", tokPtr(LEFT_PAREN, "("))},
		{"f(1)(2)",
			NewParseError(UnexpectedToken, "Can only call identifiers.", tokPtr(LEFT_PAREN, "("))},
		{"\"s\"()",
			NewParseError(UnexpectedToken, "Can only call identifiers.", tokPtr(LEFT_PAREN, "("))},
		{"",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"1 +",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"(1",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"f(1",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{")",
			NewParseError(ExpectedExpr, "Expect expression.", tokPtr(RIGHT_PAREN, ")"))},
		{"1 * ;",
			NewParseError(ExpectedExpr, "Expect expression.", tokPtr(SEMICOLON, ";"))},
		{"(1;",
			NewParseError(FailedToFindToken, "Expect ')' after expression.", tokPtr(SEMICOLON, ";"))},
		{"f(1;",
			NewParseError(FailedToFindToken, "Expect ')' after arguments.", tokPtr(SEMICOLON, ";"))},
		{"1 + @",
			NewParseError(UnexpectedToken, "Unrecognized character.", tokPtr(ERROR, "@"))},
		{"1 2",
			NewParseError(UnexpectedToken, "Expect end of expression.", tokPtr(INT_LIT, "2"))},
		{"99999999999999999999",
			NewParseError(ExpectedIntLit, "Integer literal out of range.", tokPtr(INT_LIT, "99999999999999999999"))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parseExprSource(tc.src)

		assert.Nil(expr, tc.src)
		assert.Equal(tc.err, err, tc.src)
	}
}

func TestParseProgram(t *testing.T) {
	testCases := []struct {
		src  string
		prog *ProgramStmt
	}{
		{"", NewProgramStmt(nil)},
		{"fn my_fn(int x, float y) { string my_str = \"hello\"; int a = 10; return a; }",
			NewProgramStmt([]Stmt{
				NewFunctionStmt(
					TypeUnspecified,
					"my_fn",
					[]Param{{TypeInt, "x"}, {TypeFloat, "y"}},
					NewBlockStmt([]Stmt{
						NewVarStmt(TypeString, "my_str", NewStringLitExpr("hello")),
						NewVarStmt(TypeInt, "a", NewIntLitExpr(10)),
						NewReturnStmt(NewIdentExpr("a")),
					}),
				),
			})},
		{"fn int add(int a, int b) { return a + b; }",
			NewProgramStmt([]Stmt{
				NewFunctionStmt(
					TypeInt,
					"add",
					[]Param{{TypeInt, "a"}, {TypeInt, "b"}},
					NewBlockStmt([]Stmt{
						NewReturnStmt(NewBinaryExpr(PLUS, NewIdentExpr("a"), NewIdentExpr("b"))),
					}),
				),
			})},
		{"fn main() { }",
			NewProgramStmt([]Stmt{
				NewFunctionStmt(TypeUnspecified, "main", nil, NewBlockStmt(nil)),
			})},
		{"fn string greet() { print(\"hi\"); return \"hi\"; }",
			NewProgramStmt([]Stmt{
				NewFunctionStmt(
					TypeString,
					"greet",
					nil,
					NewBlockStmt([]Stmt{
						NewExprStmt(NewCallExpr("print", []Expr{NewStringLitExpr("hi")})),
						NewReturnStmt(NewStringLitExpr("hi")),
					}),
				),
			})},
		{"int x = 1; float y = -2.5; fn f() { } f(x);",
			NewProgramStmt([]Stmt{
				NewVarStmt(TypeInt, "x", NewIntLitExpr(1)),
				NewVarStmt(TypeFloat, "y", NewUnaryExpr(MINUS, NewFloatLitExpr(2.5))),
				NewFunctionStmt(TypeUnspecified, "f", nil, NewBlockStmt(nil)),
				NewExprStmt(NewCallExpr("f", []Expr{NewIdentExpr("x")})),
			})},
		{"1 + 2 * 3;",
			NewProgramStmt([]Stmt{
				NewExprStmt(NewBinaryExpr(PLUS,
					NewIntLitExpr(1),
					NewBinaryExpr(STAR, NewIntLitExpr(2), NewIntLitExpr(3)))),
			})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		prog, err := parseSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.prog, prog, tc.src)
	}
}

func TestParseProgramWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"fn f( { }",
			NewParseError(FailedToFindToken, "Expect ')' after parameters.", tokPtr(LEFT_BRACE, "{"))},
		{"fn (",
			NewParseError(ExpectedIdentifier, "Expect function name.", tokPtr(LEFT_PAREN, "("))},
		{"fn f {",
			NewParseError(FailedToFindToken, "Expect '(' after function name.", tokPtr(LEFT_BRACE, "{"))},
		{"fn f() return",
			NewParseError(FailedToFindToken, "Expect '{' before function body.", tokPtr(RETURN, "return"))},
		{"fn f(int x, { }",
			NewParseError(ExpectedTypeToken, "Expect parameter type.", tokPtr(LEFT_BRACE, "{"))},
		{"fn f(int x,",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"fn f(int) { }",
			NewParseError(ExpectedIdentifier, "Expect parameter name.", tokPtr(RIGHT_PAREN, ")"))},
		{"fn f() { return 1 }",
			NewParseError(FailedToFindToken, "Expect ';' after return value.", tokPtr(RIGHT_BRACE, "}"))},
		{"fn f() { int a = 1;",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"fn f() { x = 1; }",
			NewParseError(FailedToFindToken, "Expect ';' after expression.", tokPtr(EQUAL, "="))},
		{"fn f() { fn g() { } }",
			NewParseError(ExpectedExpr, "Expect expression.", tokPtr(FN, "fn"))},
		{"int = 3;",
			NewParseError(ExpectedIdentifier, "Expect variable name.", tokPtr(EQUAL, "="))},
		{"int x 3;",
			NewParseError(FailedToFindToken, "Expect '=' after variable name.", tokPtr(INT_LIT, "3"))},
		{"int x = 3",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"@",
			NewParseError(UnexpectedToken, "Unrecognized character.", tokPtr(ERROR, "@"))},
		{"int x = 1; # int y = 2;",
			NewParseError(UnexpectedToken, "Unrecognized character.", tokPtr(ERROR, "#"))},
		{"x",
			NewParseError(UnexpectedEOF, "Unexpected end of input.", nil)},
		{"5(1);",
			NewParseError(UnexpectedToken, "Can only call identifiers.", tokPtr(LEFT_PAREN, "("))},
		{"float f = 1.5(2);",
			NewParseError(UnexpectedToken, "Can only call identifiers.", tokPtr(LEFT_PAREN, "("))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		prog, err := parseSource(tc.src)

		assert.Nil(prog, tc.src)
		assert.Equal(tc.err, err, tc.src)
	}
}

func TestParseErrorCarriesKindAndToken(t *testing.T) {
	_, err := parseSource("fn f( { }")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))

	assert := assert.New(t)
	assert.Equal(FailedToFindToken, parseErr.Kind)
	assert.Equal(tokPtr(LEFT_BRACE, "{"), parseErr.Token)
	assert.Equal("Error at '{': Expect ')' after parameters.", err.Error())

	_, err = parseSource("int x = 3")
	require.Error(t, err)
	assert.Equal("Error at end: Unexpected end of input.", err.Error())
}

func TestParseErrorKindString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("UnexpectedEOF", UnexpectedEOF.String())
	assert.Equal("ExpectedStringLit", ExpectedStringLit.String())
	assert.Equal("ParseErrorKind(42)", ParseErrorKind(42).String())
}

func TestConsumeErrorKinds(t *testing.T) {
	testCases := []struct {
		typ  TokenType
		kind ParseErrorKind
	}{
		{IDENTIFIER, ExpectedIdentifier},
		{INT_LIT, ExpectedIntLit},
		{FLOAT_LIT, ExpectedFloatLit},
		{STRING_LIT, ExpectedStringLit},
		{SEMICOLON, FailedToFindToken},
		{RIGHT_PAREN, FailedToFindToken},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		parser := NewParser([]Token{NewToken(COMMA, ",")})
		tok, err := parser.consume(tc.typ, "message")

		assert.Equal(Token{}, tok)
		assert.Equal(NewParseError(tc.kind, "message", tokPtr(COMMA, ",")), err)
	}
}

func TestParserCursorAtBounds(t *testing.T) {
	assert := assert.New(t)
	parser := NewParser(nil)

	_, err := parser.peek()
	assert.Equal(NewParseError(UnexpectedEOF, "Unexpected end of input.", nil), err)
	_, err = parser.prev()
	assert.Equal(NewParseError(UnexpectedEOF, "No previous token.", nil), err)
	assert.False(parser.match(IDENTIFIER))
}
