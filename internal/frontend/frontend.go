// Package frontend ties the lexer and parser into a single entry point
// for tools that consume AILang source.
package frontend

import (
	"errors"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
	"github.com/ailang-lang/ailang/internal/parser"
)

// LanguageVersion is the AILang language revision this front end accepts.
const LanguageVersion = "0.4.0"

// Options control how source is processed.
type Options struct {
	// Strict enables style diagnostics such as short-identifier warnings.
	Strict bool
}

// Result is the output of a successful parse.
type Result struct {
	Program   *ast.Program
	Functions *parser.FunctionRegistry
	Tokens    []lexer.Token
	Warnings  []lexer.Diagnostic
}

// Tokenize scans source and returns the token stream plus any non-fatal
// diagnostics the lexer produced along the way.
func Tokenize(source string, opts Options) ([]lexer.Token, []lexer.Diagnostic, error) {
	lx := lexer.NewWithMode(source, opts.Strict)
	toks, err := lx.Tokenize()
	return toks, lx.Diagnostics(), err
}

// Parse scans and parses source in one step. On success the returned
// Result carries the program, the declared-function registry, and any
// warnings; on failure the error is a *lexer.LexError or *parser.ParseError.
func Parse(source string, opts Options) (*Result, error) {
	toks, warnings, err := Tokenize(source, opts)
	if err != nil {
		return nil, err
	}
	p := parser.New(toks)
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return &Result{
		Program:   prog,
		Functions: p.Registry(),
		Tokens:    toks,
		Warnings:  warnings,
	}, nil
}

// ErrorDiagnostic converts a front-end error into a positioned diagnostic.
// It reports false for errors that carry no source location.
func ErrorDiagnostic(err error) (lexer.Diagnostic, bool) {
	var le *lexer.LexError
	if errors.As(err, &le) {
		return lexer.Diagnostic{
			Line:     le.Line,
			Column:   le.Column,
			Message:  le.Message,
			Severity: lexer.SeverityError,
		}, true
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return lexer.Diagnostic{
			Line:     pe.Line,
			Column:   pe.Column,
			Message:  "In " + pe.Context + ": " + pe.Message,
			Severity: lexer.SeverityError,
		}, true
	}
	return lexer.Diagnostic{}, false
}
