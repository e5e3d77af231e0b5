package main

// This is a front end for a small C-like language: it scans and parses a
// script, then prints the token stream and the syntax tree.

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/ltungv/minic/internal/config"
	"github.com/ltungv/minic/internal/logs"
	"github.com/ltungv/minic/internal/minic"
)

type options struct {
	dumpTokens bool
	dumpAST    bool
}

// session ties one run of the front end to its outputs.
type session struct {
	out         io.Writer
	reporter    minic.Reporter
	diagnostics minic.Reporter
	logger      *slog.Logger
	opts        options
}

func main() {
	configPath := flag.String("config", "", "CUE configuration file (default "+config.DefaultPath+" when present)")
	dumpTokens := flag.Bool("tokens", false, "print the token stream")
	dumpAST := flag.Bool("ast", true, "print the syntax tree")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: minic [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	cfg, err := loadConfig(*configPath)
	exitOnError(err, 78)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tokens":
			cfg.Dump.Tokens = *dumpTokens
		case "ast":
			cfg.Dump.AST = *dumpAST
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	logger, closeLog, err := newLogger(cfg.Log)
	exitOnError(err, 78)
	defer closeLog()

	s := &session{
		out:         os.Stdout,
		reporter:    minic.NewSimpleReporter(os.Stderr),
		diagnostics: minic.NewLogReporter(logger, slog.LevelWarn),
		logger:      logger,
		opts: options{
			dumpTokens: cfg.Dump.Tokens,
			dumpAST:    cfg.Dump.AST,
		},
	}
	if len(args) != 1 {
		exitOnError(s.runPrompt(os.Stdin, os.Stdout), 1)
	} else {
		status := s.runFile(args[0])
		closeLog()
		exitIf(status != 0, status)
	}
}

func loadConfig(fpath string) (config.Config, error) {
	if fpath != "" {
		return config.Load(fpath)
	}
	if _, err := os.Stat(config.DefaultPath); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(config.DefaultPath)
}

func newLogger(cfg config.Log) (*slog.Logger, func(), error) {
	level, err := logs.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := logs.Options{
		Level:   level,
		Journal: cfg.Journal,
	}
	closeLog := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		opts.File = f
		closeLog = sync.OnceFunc(func() { f.Close() })
	}
	return logs.New(os.Stderr, opts), closeLog, nil
}

// Parse the script as a program and print what was asked for.
func (s *session) run(script string) {
	tokens := s.scan(script)
	program, err := minic.NewParser(tokens).Parse()
	if err != nil {
		s.reporter.Report(err)
		return
	}
	s.logger.Debug("parsed program", "items", len(program.Items))
	s.printStmt(program)
}

// Parse one prompt line as a program, falling back to a bare expression.
func (s *session) runLine(line string) {
	tokens := s.scan(line)
	program, err := minic.NewParser(tokens).Parse()
	if err == nil {
		s.printStmt(program)
		return
	}
	if len(tokens) > 0 && startsDeclaration(tokens[0].Typ) {
		s.reporter.Report(err)
		return
	}
	expr, exprErr := minic.NewParser(tokens).ParseExpr()
	if exprErr != nil {
		s.reporter.Report(err)
		return
	}
	s.logger.Debug("parsed expression")
	if s.opts.dumpAST {
		printer := minic.AstPrinter{}
		fmt.Fprint(s.out, printer.PrintExpr(expr))
	}
}

func startsDeclaration(typ minic.TokenType) bool {
	switch typ {
	case minic.FN, minic.INT, minic.FLOAT, minic.STRING:
		return true
	}
	return false
}

func (s *session) scan(script string) []minic.Token {
	tokens := minic.NewScanner(script, s.diagnostics).Scan()
	s.logger.Debug("scanned", "tokens", len(tokens))
	if s.opts.dumpTokens {
		fmt.Fprintln(s.out, "=== TOKENS ===")
		for _, tok := range tokens {
			fmt.Fprintln(s.out, tok)
		}
	}
	return tokens
}

func (s *session) printStmt(stmt minic.Stmt) {
	if !s.opts.dumpAST {
		return
	}
	fmt.Fprintln(s.out, "=== AST ===")
	printer := minic.AstPrinter{}
	fmt.Fprint(s.out, printer.Print(stmt))
}

// Run the front end in prompt mode
func (s *session) runPrompt(in io.Reader, prompt io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanLines)
	for {
		fmt.Fprint(prompt, "> ")
		if !scanner.Scan() {
			break
		}
		s.runLine(scanner.Text())
		s.reporter.Reset()
		s.diagnostics.Reset()
	}
	return scanner.Err()
}

// Run the given file as script and return the exit status
func (s *session) runFile(fpath string) int {
	bytes, err := os.ReadFile(fpath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}

	s.run(string(bytes))
	if s.reporter.HadError() {
		return 65
	}
	return 0
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
