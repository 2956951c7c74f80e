// Package cli implements the ailang command: syntax checking, token and
// AST inspection for AILang source files.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/frontend"
	"github.com/ailang-lang/ailang/internal/lexer"
)

// Build metadata, overridden at link time.
var (
	Version = "0.4.0-dev"
	Commit  = "unknown"
)

const usageText = `usage: ailang <command> [flags] [files]

Commands:
  check    parse files and report diagnostics
  tokens   print the token stream of a file
  ast      print the parsed AST of a file as JSON
  version  print version information

Run 'ailang <command> -h' for command flags.
`

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return 2
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "tokens":
		return runTokens(args[1:], stdout, stderr)
	case "ast":
		return runAST(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "ailang %s (commit %s, language %s)\n", Version, Commit, frontend.LanguageVersion)
		return 0
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usageText)
		return 0
	default:
		fmt.Fprintf(stderr, "ailang: unknown command %q\n", args[0])
		fmt.Fprint(stderr, usageText)
		return 2
	}
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", true, "report style diagnostics such as short identifiers")
	watch := fs.Bool("watch", false, "re-check files when they change")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "ailang check: no input files")
		return 2
	}

	opts := frontend.Options{Strict: *strict}
	if *watch {
		if err := watchAndCheck(files, opts, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "ailang check: %v\n", err)
			return 1
		}
		return 0
	}

	ok := true
	for _, file := range files {
		if !checkFile(file, opts, stdout, stderr) {
			ok = false
		}
	}
	if !ok {
		return 1
	}
	return 0
}

// checkFile parses one file and prints its diagnostics. It returns false
// when the file has errors.
func checkFile(path string, opts frontend.Options, stdout, stderr io.Writer) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "ailang check: %v\n", err)
		return false
	}

	res, err := frontend.Parse(string(source), opts)
	if err != nil {
		if diag, ok := frontend.ErrorDiagnostic(err); ok {
			printDiagnostic(stderr, path, diag)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		return false
	}

	failed := false
	for _, diag := range checkPragmas(res.Tokens) {
		printDiagnostic(stderr, path, diag)
		if diag.Severity == lexer.SeverityError {
			failed = true
		}
	}
	for _, warn := range res.Warnings {
		printDiagnostic(stderr, path, warn)
	}
	if failed {
		return false
	}
	fmt.Fprintf(stdout, "%s: ok (%d declarations)\n", path, len(res.Program.Declarations))
	return true
}

func printDiagnostic(w io.Writer, path string, diag lexer.Diagnostic) {
	kind := "error"
	if diag.Severity == lexer.SeverityWarning {
		kind = "warning"
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, diag.Line, diag.Column, kind, diag.Message)
}

func runTokens(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", false, "enable style diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "ailang tokens: expected exactly one input file")
		return 2
	}
	path := fs.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "ailang tokens: %v\n", err)
		return 1
	}
	toks, _, err := frontend.Tokenize(string(source), frontend.Options{Strict: *strict})
	if err != nil {
		if diag, ok := frontend.ErrorDiagnostic(err); ok {
			printDiagnostic(stderr, path, diag)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		return 1
	}
	for _, tok := range toks {
		fmt.Fprintf(stdout, "%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
	}
	return 0
}

func runAST(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", false, "enable style diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "ailang ast: expected exactly one input file")
		return 2
	}
	path := fs.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "ailang ast: %v\n", err)
		return 1
	}
	res, err := frontend.Parse(string(source), frontend.Options{Strict: *strict})
	if err != nil {
		if diag, ok := frontend.ErrorDiagnostic(err); ok {
			printDiagnostic(stderr, path, diag)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		return 1
	}
	out, err := ast.Dump(res.Program)
	if err != nil {
		fmt.Fprintf(stderr, "ailang ast: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}
