package minic

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a syntax tree as an indented outline, one node per line,
// children indented by two spaces under their parent.
type AstPrinter struct {
	indent int
	out    strings.Builder
}

// Print renders the tree rooted at stmt.
func (printer *AstPrinter) Print(stmt Stmt) string {
	printer.reset()
	_, _ = stmt.Accept(printer)
	return printer.out.String()
}

// PrintExpr renders the tree rooted at expr.
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	printer.reset()
	_, _ = expr.Accept(printer)
	return printer.out.String()
}

func (printer *AstPrinter) VisitProgramStmt(stmt *ProgramStmt) (interface{}, error) {
	printer.line("Program")
	printer.nested(func() {
		for _, item := range stmt.Items {
			_, _ = item.Accept(printer)
		}
	})
	return nil, nil
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	if stmt.ReturnType == TypeUnspecified {
		printer.line("FnDecl name=%s", stmt.Name)
	} else {
		printer.line("FnDecl name=%s return=%s", stmt.Name, stmt.ReturnType)
	}
	printer.nested(func() {
		printer.line("Params:")
		printer.nested(func() {
			for _, param := range stmt.Params {
				printer.line("%s %s", param.Type, param.Name)
			}
		})
		printer.line("Body:")
		printer.nested(func() {
			_, _ = stmt.Body.Accept(printer)
		})
	})
	return nil, nil
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	printer.line("Block")
	printer.nested(func() {
		for _, s := range stmt.Stmts {
			_, _ = s.Accept(printer)
		}
	})
	return nil, nil
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	printer.line("VarDecl %s %s =", stmt.Type, stmt.Name)
	printer.nested(func() {
		_, _ = stmt.Init.Accept(printer)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	printer.line("Return")
	printer.nested(func() {
		_, _ = stmt.Val.Accept(printer)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	printer.line("ExprStmt")
	printer.nested(func() {
		_, _ = stmt.Expr.Accept(printer)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	printer.line("Binary(%s)", expr.Op)
	printer.nested(func() {
		_, _ = expr.Left.Accept(printer)
		_, _ = expr.Right.Accept(printer)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	printer.line("Unary(%s)", expr.Op)
	printer.nested(func() {
		_, _ = expr.Operand.Accept(printer)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitIdentExpr(expr *IdentExpr) (interface{}, error) {
	printer.line("Ident %q", expr.Name)
	return nil, nil
}

func (printer *AstPrinter) VisitIntLitExpr(expr *IntLitExpr) (interface{}, error) {
	printer.line("Int %d", expr.Value)
	return nil, nil
}

func (printer *AstPrinter) VisitFloatLitExpr(expr *FloatLitExpr) (interface{}, error) {
	printer.line("Float %s", strconv.FormatFloat(expr.Value, 'f', -1, 64))
	return nil, nil
}

func (printer *AstPrinter) VisitStringLitExpr(expr *StringLitExpr) (interface{}, error) {
	printer.line("String %q", expr.Value)
	return nil, nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	printer.line("Call %q", expr.Callee)
	printer.nested(func() {
		printer.line("Args:")
		printer.nested(func() {
			for _, arg := range expr.Args {
				_, _ = arg.Accept(printer)
			}
		})
	})
	return nil, nil
}

func (printer *AstPrinter) reset() {
	printer.indent = 0
	printer.out.Reset()
}

func (printer *AstPrinter) nested(fn func()) {
	printer.indent += 2
	fn()
	printer.indent -= 2
}

func (printer *AstPrinter) line(format string, args ...interface{}) {
	printer.out.WriteString(strings.Repeat(" ", printer.indent))
	fmt.Fprintf(&printer.out, format, args...)
	printer.out.WriteByte('\n')
}
