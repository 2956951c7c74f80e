package lexer

import (
	"strings"
	"testing"
)

func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return toks
}

func TestConstantDeclarationTokens(t *testing.T) {
	toks := tokenize(t, "Constant.Foo = 42\n")

	want := []struct {
		tt      TokenType
		literal string
		line    int
		column  int
	}{
		{TokenConstant, "Constant", 1, 1},
		{TokenDot, ".", 1, 9},
		{TokenIdentifier, "Foo", 1, 10},
		{TokenEquals, "=", 1, 14},
		{TokenNumber, "42", 1, 16},
		{TokenNewline, "\n", 1, 18},
		{TokenEOF, "", 2, 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		got := toks[i]
		if got.Type != w.tt || got.Literal != w.literal {
			t.Fatalf("token %d = %s %q, want %s %q", i, got.Type, got.Literal, w.tt, w.literal)
		}
		if got.Pos.Line != w.line || got.Pos.Column != w.column {
			t.Fatalf("token %d position = %s, want %d:%d", i, got.Pos, w.line, w.column)
		}
	}
}

func TestKeywordExclusivity(t *testing.T) {
	tests := []struct {
		input string
		tt    TokenType
	}{
		{"Record", TokenRecord},
		{"RunTask", TokenRunTask},
		{"FixedPool", TokenFixedPool},
		{"IfCondition", TokenIfCondition},
		{"ThenBlock", TokenThenBlock},
		{"WhileLoop", TokenWhileLoop},
		{"ForEvery", TokenForEvery},
		{"in", TokenIn},
		{"PageTable", TokenPageTable},
		{"MemoryBarrier", TokenMemoryBarrier},
		{"RO", TokenReadOnly},
		{"RWX", TokenReadWriteExecute},
		{"L1", TokenL1Cache},
		{"True", TokenTrue},
		{"Null", TokenNull},
		{"PI", TokenPI},
		{"Bytes", TokenBytes},
		{"LibraryImport", TokenLibraryImport},
		{"Library", TokenLibraryImport},
		{"SubRoutine", TokenSubRoutine},
		{"InterruptHandler", TokenInterruptHandler},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != tt.tt {
			t.Fatalf("%q lexed as %s, want %s", tt.input, toks[0].Type, tt.tt)
		}
		if toks[0].Type == TokenIdentifier {
			t.Fatalf("%q leaked as identifier", tt.input)
		}
	}
}

func TestRecordDeclarationLexesKeyword(t *testing.T) {
	toks := tokenize(t, "Record.Timestamp {\n    seconds: Integer\n}\n")
	if toks[0].Type != TokenRecord {
		t.Fatalf("Record lexed as %s, want RECORD", toks[0].Type)
	}
	if toks[1].Type != TokenDot || toks[2].Type != TokenIdentifier || toks[2].Literal != "Timestamp" {
		t.Fatalf("unexpected tokens after Record: %v %v", toks[1], toks[2])
	}
}

func TestNewlinesProduceTokens(t *testing.T) {
	toks := tokenize(t, "a\nb\n\nc\n")
	var newlines int
	for _, tok := range toks {
		if tok.Type == TokenNewline {
			newlines++
		}
	}
	if newlines != 4 {
		t.Fatalf("newline count = %d, want 4", newlines)
	}
}

func TestPositionsAreMonotonic(t *testing.T) {
	input := "LibraryImport.Core {\n    Function.Add {\n        Body: { ReturnValue(1) }\n    }\n}\n"
	toks := tokenize(t, input)
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Pos.Before(prev.Pos) {
			t.Fatalf("token %d at %s precedes token %d at %s", i, cur.Pos, i-1, prev.Pos)
		}
	}
}

func TestDottedIdentifierChains(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"Pool.Time.Core", "Pool.Time.Core"},
		{"App.State.counter", "App.State.counter"},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != TokenIdentifier || toks[0].Literal != tt.literal {
			t.Fatalf("%q lexed as %s %q, want single IDENTIFIER %q",
				tt.input, toks[0].Type, toks[0].Literal, tt.literal)
		}
		if toks[1].Type != TokenEOF {
			t.Fatalf("%q produced trailing token %v", tt.input, toks[1])
		}
	}
}

func TestKeywordStopsDottedChain(t *testing.T) {
	toks := tokenize(t, "Constant.Foo")
	want := []TokenType{TokenConstant, TokenDot, TokenIdentifier, TokenEOF}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Fatalf("token %d = %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestFusedIdentifierTokens(t *testing.T) {
	tests := []struct {
		input   string
		want    []TokenType
		literal string // literal of the first token
	}{
		{"AddInt32", []TokenType{TokenFusedType, TokenEOF}, "AddInt32"},
		{"AddInt32+SIMD", []TokenType{TokenFusedType, TokenEOF}, "AddInt32+SIMD"},
		{"MatrixMultiplyFloat64+SIMD+Blocked", []TokenType{TokenFusedType, TokenEOF}, "MatrixMultiplyFloat64+SIMD+Blocked"},
		{"FixedPoolInt64+Cached", []TokenType{TokenFusedType, TokenEOF}, "FixedPoolInt64+Cached"},
		// Three modifiers exceed the limit: the base alone is still fused,
		// the rest lexes as ordinary operators and identifiers.
		{"AddInt32+SIMD+Fast+Extra", []TokenType{
			TokenFusedType, TokenAdd, TokenIdentifier, TokenAdd, TokenIdentifier,
			TokenAdd, TokenIdentifier, TokenEOF,
		}, "AddInt32"},
		// Not a fusion at all: plain identifiers around the Add operator.
		{"total+offset", []TokenType{TokenIdentifier, TokenAdd, TokenIdentifier, TokenEOF}, "total"},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if len(toks) != len(tt.want) {
			t.Fatalf("%q: token count = %d, want %d: %v", tt.input, len(toks), len(tt.want), toks)
		}
		for i, w := range tt.want {
			if toks[i].Type != w {
				t.Fatalf("%q: token %d = %s, want %s", tt.input, i, toks[i].Type, w)
			}
		}
		if toks[0].Literal != tt.literal {
			t.Fatalf("%q: first literal = %q, want %q", tt.input, toks[0].Literal, tt.literal)
		}
	}
}

func TestFusionBeatsKeywordLookup(t *testing.T) {
	// Add alone is a keyword; AddInt32 must become a fused type, never
	// ADD followed by a type token.
	toks := tokenize(t, "AddInt32(a, b)")
	if toks[0].Type != TokenFusedType {
		t.Fatalf("AddInt32 lexed as %s, want FUSEDTYPE", toks[0].Type)
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote \" inside"`, `quote " inside`},
		{`"back\\slash"`, `back\slash`},
		{`""`, ""},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != TokenString || toks[0].Literal != tt.want {
			t.Fatalf("%s lexed as %s %q, want STRING %q", tt.input, toks[0].Type, toks[0].Literal, tt.want)
		}
	}
}

func TestUnknownEscapeWarns(t *testing.T) {
	l := New(`"bad\qescape"`)
	toks, err := l.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Literal != "badqescape" {
		t.Fatalf("literal = %q, want %q", toks[0].Literal, "badqescape")
	}
	diags := l.Diagnostics()
	if len(diags) != 1 || diags[0].Severity != SeverityWarning {
		t.Fatalf("diagnostics = %v, want one warning", diags)
	}
	if !strings.Contains(diags[0].Message, "escape") {
		t.Fatalf("warning message = %q", diags[0].Message)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := New(`"no closing quote`).Tokenize()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("error type = %T, want *LexError", err)
	}
	if !strings.Contains(le.Message, "Unterminated string") {
		t.Fatalf("message = %q", le.Message)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1_000_000", "1000000"},
		{"0xFF", "0xFF"},
		{"0xDEAD_BEEF", "0xDEADBEEF"},
		{"2e10", "2e10"},
		{"1.5e-3", "1.5e-3"},
		{"6.02e+23", "6.02e+23"},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != TokenNumber || toks[0].Literal != tt.want {
			t.Fatalf("%q lexed as %s %q, want NUMBER %q", tt.input, toks[0].Type, toks[0].Literal, tt.want)
		}
	}
}

func TestSecondDotTerminatesNumber(t *testing.T) {
	toks := tokenize(t, "1.2.3")
	if toks[0].Type != TokenNumber || toks[0].Literal != "1.2" {
		t.Fatalf("first token = %s %q, want NUMBER 1.2", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != TokenDot {
		t.Fatalf("second token = %s, want DOT", toks[1].Type)
	}
}

func TestInvalidHexLiteral(t *testing.T) {
	_, err := New("0x").Tokenize()
	if err == nil {
		t.Fatal("expected error for 0x with no digits")
	}
	if !strings.Contains(err.Error(), "Invalid hexadecimal literal") {
		t.Fatalf("error = %v", err)
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		input   string
		tt      TokenType
		literal string
	}{
		{"// plain note", TokenComment, "plain note"},
		{"//TAG: requires-ailang >=0.1", TokenTagComment, "requires-ailang >=0.1"},
		{"//DOC: Adds two numbers //", TokenDocComment, "Adds two numbers"},
		{"//COM: internal remark //", TokenComComment, "internal remark"},
		// A word prefix that is not DOC/COM/TAG stays part of a plain comment.
		{"//Note: remember this", TokenComment, "Note: remember this"},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != tt.tt || toks[0].Literal != tt.literal {
			t.Fatalf("%q lexed as %s %q, want %s %q",
				tt.input, toks[0].Type, toks[0].Literal, tt.tt, tt.literal)
		}
	}
}

func TestBracketedCommentSpansLines(t *testing.T) {
	toks := tokenize(t, "//DOC: first line\nsecond line //\nx = 1\n")
	if toks[0].Type != TokenDocComment {
		t.Fatalf("first token = %s, want DOC_COMMENT", toks[0].Type)
	}
	if !strings.Contains(toks[0].Literal, "second line") {
		t.Fatalf("doc text = %q, want it to span lines", toks[0].Literal)
	}
	// Lexing resumes after the closing marker.
	var sawIdent bool
	for _, tok := range toks {
		if tok.Type == TokenIdentifier && tok.Literal == "x" {
			sawIdent = true
		}
	}
	if !sawIdent {
		t.Fatal("tokens after the bracketed comment were not lexed")
	}
}

func TestMultiCharOperators(t *testing.T) {
	tests := []struct {
		input string
		tt    TokenType
	}{
		{"<->", TokenArrowBidirectional},
		{"->", TokenArrowRight},
		{"<-", TokenArrowLeft},
		{">=", TokenGreaterEqual},
		{"<=", TokenLessEqual},
		{"==", TokenEqualTo},
		{"!=", TokenNotEqual},
		{"&&", TokenAnd},
		{"||", TokenOr},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Type != tt.tt || toks[0].Literal != tt.input {
			t.Fatalf("%q lexed as %s %q, want %s", tt.input, toks[0].Type, toks[0].Literal, tt.tt)
		}
	}
}

func TestShortIdentifierWarnings(t *testing.T) {
	l := New("x = value in xs\n")
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var warned []string
	for _, d := range l.Diagnostics() {
		if d.Severity != SeverityWarning {
			t.Fatalf("unexpected severity %d", d.Severity)
		}
		warned = append(warned, d.Message)
	}
	// x and xs warn; the preposition in is allowed.
	if len(warned) != 2 {
		t.Fatalf("warnings = %v, want 2", warned)
	}
	if !strings.Contains(warned[0], "'x'") || !strings.Contains(warned[1], "'xs'") {
		t.Fatalf("warnings = %v", warned)
	}
}

func TestShortIdentifierAllowList(t *testing.T) {
	l := New("EAX CR3 PI GRP to\n")
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("diagnostics = %v, want none", l.Diagnostics())
	}
}

func TestNonStrictModeSkipsWarnings(t *testing.T) {
	l := NewWithMode("x = 1\n", false)
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("diagnostics = %v, want none in non-strict mode", l.Diagnostics())
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, err := New("value @ rest").Tokenize()
	if err == nil {
		t.Fatal("expected error for unknown character")
	}
	if !strings.Contains(err.Error(), "Unknown character '@'") {
		t.Fatalf("error = %v", err)
	}
}

func TestTokenEnd(t *testing.T) {
	toks := tokenize(t, "RunTask")
	end := toks[0].End()
	if end.Line != 1 || end.Column != 8 {
		t.Fatalf("End() = %s, want 1:8", end)
	}
}

func BenchmarkTokenize(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("Function.Compute {\n")
		sb.WriteString("    Input: (first: Int32, second: Int32)\n")
		sb.WriteString("    Output: Int32\n")
		sb.WriteString("    Body: { ReturnValue(AddInt32+SIMD(first, second)) }\n")
		sb.WriteString("}\n")
	}
	input := sb.String()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewWithMode(input, false).Tokenize(); err != nil {
			b.Fatal(err)
		}
	}
}
