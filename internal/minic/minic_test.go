package minic

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tokPtr(typ TokenType, lexeme string) *Token {
	tok := NewToken(typ, lexeme)
	return &tok
}

func parseSource(src string) (*ProgramStmt, error) {
	return NewParser(Tokenize(src)).Parse()
}

func parseExprSource(src string) (Expr, error) {
	return NewParser(Tokenize(src)).ParseExpr()
}
