package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// each family is closed: the visitor interface lists every variant, so a
// consumer that misses one does not compile
var expressionTypes = []string{
	"Binary: Op TokenType, Left Expr, Right Expr",
	"Unary: Op TokenType, Operand Expr",
	"Ident: Name string",
	"IntLit: Value int64",
	"FloatLit: Value float64",
	"StringLit: Value string",
	// Calls are only formed on identifiers, so the callee is kept by name.
	"Call: Callee string, Args []Expr",
}

var statementTypes = []string{
	"Var: Type TypeKind, Name string, Init Expr",
	"Return: Val Expr",
	"Expr: Expr Expr",
	"Block: Stmts []Stmt",
	"Function: ReturnType TypeKind, Name string, Params []Param, Body *BlockStmt",
	"Program: Items []Stmt",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		panic(err)
	}

	defineAst(outputDir, "Expr", expressionTypes)
	defineAst(outputDir, "Stmt", statementTypes)
}

func defineAst(outputDir string, baseName string, types []string) {
	var buf bytes.Buffer
	writer := &buf

	packageName := filepath.Base(outputDir)
	fmt.Fprintf(writer, "// Code generated by ast_codegen; DO NOT EDIT.\n\n")
	fmt.Fprintf(writer, "package %s\n\n", packageName)

	// Interface for the node family
	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(writer, "}\n\n")

	defineVisitor(writer, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(writer, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)
	if err := os.WriteFile(fpath, src, 0644); err != nil {
		panic(err)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	var fieldNames []string
	for _, field := range fields {
		fieldName := strings.TrimSpace(strings.Split(field, " ")[0])
		fieldNames = append(fieldNames, fieldName)
	}
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n")
}
