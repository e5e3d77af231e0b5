/*
Package minic is the front end of a small C-like language: a scanner producing
tokens and a recursive-descent parser producing a syntax tree.

Grammars

	program    --> decl* EOF ;
	decl       --> funDecl
	             | varDecl
	             | exprStmt ;
	funDecl    --> "fn" type? IDENT "(" params? ")" "{" stmt* "}" ;
	params     --> type IDENT ( "," type IDENT )* ;
	stmt       --> varDecl
	             | returnStmt
	             | exprStmt ;
	varDecl    --> type IDENT "=" expr ";" ;
	returnStmt --> "return" expr ";" ;
	exprStmt   --> expr ";" ;
	type       --> "int" | "float" | "string" ;
	expr       --> equality ;
	equality   --> term ( "==" term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> "-" unary
	             | call ;
	call       --> primary ( "(" args? ")" )* ;
	args       --> expr ( "," expr )* ;
	primary    --> INT | FLOAT | STRING | IDENT
	             | "(" expr ")" ;

Only identifiers can be called. "f(x)(y)" is accepted by the grammar but
rejected when the second call is built.
*/
package minic

//go:generate go run ../cmd/ast_codegen .

// Param is a single typed function parameter.
type Param struct {
	Type TypeKind
	Name string
}
