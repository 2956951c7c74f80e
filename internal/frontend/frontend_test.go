package frontend

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

const sampleProgram = `Library.Math {
    Function.Double {
        Input: (value: Int32)
        Output: Int32
        Body: {
            ReturnValue(value Multiply 2)
        }
    }
}
Constant.Answer = 42
`

func TestParsePipeline(t *testing.T) {
	res, err := Parse(sampleProgram, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Program.Declarations) != 2 {
		t.Fatalf("declarations = %d, want 2", len(res.Program.Declarations))
	}
	if _, ok := res.Program.Declarations[0].(*ast.Library); !ok {
		t.Fatalf("first declaration = %T, want *ast.Library", res.Program.Declarations[0])
	}
	info, ok := res.Functions.Lookup("Double")
	if !ok {
		t.Fatalf("function Double not registered; have %v", res.Functions.Names())
	}
	if got := info.Signature(); got != "value: Int32 -> Int32" {
		t.Fatalf("signature = %q", got)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Type != lexer.TokenEOF {
		t.Fatalf("token stream missing EOF terminator")
	}
}

func TestStrictWarningsSurface(t *testing.T) {
	res, err := Parse("x = 1\n", Options{Strict: true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %#v, want one short-identifier warning", res.Warnings)
	}
	w := res.Warnings[0]
	if w.Severity != lexer.SeverityWarning || !strings.Contains(w.Message, "'x'") {
		t.Fatalf("warning = %#v", w)
	}
}

func TestNonStrictSuppressesWarnings(t *testing.T) {
	res, err := Parse("x = 1\n", Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %#v, want none", res.Warnings)
	}
}

func TestErrorDiagnosticFromLexError(t *testing.T) {
	_, err := Parse("Constant.A = \"open\n", Options{})
	if err == nil {
		t.Fatal("Parse succeeded, want unterminated string error")
	}
	diag, ok := ErrorDiagnostic(err)
	if !ok {
		t.Fatalf("no diagnostic for %v", err)
	}
	if diag.Severity != lexer.SeverityError || !strings.Contains(diag.Message, "Unterminated string") {
		t.Fatalf("diagnostic = %#v", diag)
	}
}

func TestErrorDiagnosticFromParseError(t *testing.T) {
	src := "IfCondition ready ThenBlock {\n    PrintMessage(\"hi\")\n"
	_, err := Parse(src, Options{})
	if err == nil {
		t.Fatal("Parse succeeded, want unclosed block error")
	}
	diag, ok := ErrorDiagnostic(err)
	if !ok {
		t.Fatalf("no diagnostic for %v", err)
	}
	if !strings.Contains(diag.Message, "IfCondition.ThenBlock") {
		t.Fatalf("diagnostic message = %q, want block context", diag.Message)
	}
}

func TestErrorDiagnosticUnknownError(t *testing.T) {
	if _, ok := ErrorDiagnostic(errors.New("disk full")); ok {
		t.Fatal("plain error produced a positioned diagnostic")
	}
}

func TestConcurrentParsesAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Parse(sampleProgram, Options{})
			if err != nil {
				t.Errorf("Parse failed: %v", err)
				return
			}
			if res.Functions.Len() != 1 {
				t.Errorf("registry leaked across parses: %v", res.Functions.Names())
			}
		}()
	}
	wg.Wait()
}
