// Package lexer tokenizes AILang source text.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ailang-lang/ailang/internal/position"
)

// Diagnostic severities, matching the editor protocol convention.
const (
	SeverityError   = 1
	SeverityWarning = 2
)

// Diagnostic is a non-fatal finding produced while tokenizing.
type Diagnostic struct {
	Line     int
	Column   int
	Message  string
	Severity int
}

// LexError is a fatal tokenization failure. The lexer stops at the first one.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// allowedShortIdentifiers lists names exempt from the short-identifier
// warning: common prepositions, math constants, register names, and
// established acronyms.
var allowedShortIdentifiers = map[string]bool{
	"in": true, "to": true, "by": true, "of": true, "as": true,
	"is": true, "on": true, "at": true,
	"PI": true, "E": true,
	"GRP": true, "HW": true, "CFG": true, "MEM": true, "CPU": true,
	"SYS": true, "IO": true,
	"RG": true, "VG": true, "PG": true, "TG": true, "NG": true,
	"KG": true, "AG": true, "SG": true, "CG": true, "FG": true,
	"EAX": true, "EBX": true, "ECX": true, "EDX": true,
	"ESI": true, "EDI": true, "ESP": true, "EBP": true,
	"RAX": true, "RBX": true, "RCX": true, "RDX": true,
	"RSI": true, "RDI": true, "RSP": true, "RBP": true,
	"R8": true, "R9": true, "R10": true, "R11": true,
	"R12": true, "R13": true, "R14": true, "R15": true,
	"CS": true, "DS": true, "ES": true, "FS": true, "GS": true, "SS": true,
	"CR0": true, "CR1": true, "CR2": true, "CR3": true, "CR4": true, "CR8": true,
	"DR0": true, "DR1": true, "DR2": true, "DR3": true, "DR6": true, "DR7": true,
}

// Lexer scans AILang source text into tokens. It is single-use: create one
// per input with New and call Tokenize once.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
	strict bool
	diags  []Diagnostic
}

// New creates a lexer with the strict identifier policy enabled.
func New(input string) *Lexer {
	return NewWithMode(input, true)
}

// NewWithMode creates a lexer; strict toggles the short-identifier warnings.
func NewWithMode(input string, strict bool) *Lexer {
	return &Lexer{input: input, line: 1, column: 1, strict: strict}
}

// Diagnostics returns the warnings collected during tokenization.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diags
}

func (l *Lexer) errorf(line, column int, format string, args ...interface{}) error {
	return &LexError{Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

func (l *Lexer) warnf(line, column int, format string, args ...interface{}) {
	l.diags = append(l.diags, Diagnostic{
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}

// current returns the byte under the cursor, or 0 at end of input.
func (l *Lexer) current() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// peek returns the byte at the given offset past the cursor, or 0.
func (l *Lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

// advance moves the cursor one byte, tracking line and column.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) here() position.Position {
	return position.Position{Line: l.line, Column: l.column}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentByte(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// Tokenize scans the whole input. It stops at the first fatal error; the
// tokens scanned so far are returned alongside it. An EOF token always
// terminates a successful token stream.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.input) {
		ch := l.current()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '\n':
			tokens = append(tokens, Token{Type: TokenNewline, Literal: "\n", Pos: l.here(), Length: 1})
			l.advance()
		case ch == '/' && l.peek(1) == '/':
			tok := l.readComment()
			tokens = append(tokens, tok)
		case ch == '"':
			tok, err := l.readString()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case isDigit(ch):
			tok, err := l.readNumber()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		case isLetter(ch) || ch == '_':
			tokens = append(tokens, l.readIdentifier())
		default:
			tok, err := l.readOperator()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, Token{Type: TokenEOF, Literal: "", Pos: l.here(), Length: 0})
	return tokens, nil
}

// readComment scans a // comment. A DOC or COM prefix makes the comment
// bracketed: its text runs to the next // (consumed) or end of input. TAG
// and plain comments run to the end of the line.
func (l *Lexer) readComment() Token {
	start := l.here()
	startPos := l.pos
	l.advance() // /
	l.advance() // /

	// Probe for a comment-kind prefix; un-read it when it is not one.
	prefixPos, prefixCol := l.pos, l.column
	var prefix strings.Builder
	for isLetter(l.current()) {
		prefix.WriteByte(l.current())
		l.advance()
	}

	kind := TokenComment
	switch prefix.String() {
	case "DOC":
		kind = TokenDocComment
	case "COM":
		kind = TokenComComment
	case "TAG":
		kind = TokenTagComment
	default:
		l.pos, l.column = prefixPos, prefixCol
	}

	if l.current() == ':' {
		l.advance()
	}
	for l.current() == ' ' || l.current() == '\t' {
		l.advance()
	}

	var text strings.Builder
	if kind == TokenDocComment || kind == TokenComComment {
		for l.pos < len(l.input) {
			if l.current() == '/' && l.peek(1) == '/' {
				l.advance()
				l.advance()
				break
			}
			text.WriteByte(l.current())
			l.advance()
		}
	} else {
		for l.pos < len(l.input) && l.current() != '\n' {
			text.WriteByte(l.current())
			l.advance()
		}
	}

	return Token{
		Type:    kind,
		Literal: strings.TrimSpace(text.String()),
		Pos:     start,
		Length:  l.pos - startPos,
	}
}

// readString scans a double-quoted string literal, decoding escapes.
func (l *Lexer) readString() (Token, error) {
	start := l.here()
	startPos := l.pos
	l.advance() // opening quote

	var value strings.Builder
	for {
		if l.pos >= len(l.input) {
			return Token{}, l.errorf(start.Line, start.Column, "Unterminated string literal")
		}
		ch := l.current()
		if ch == '"' {
			l.advance()
			break
		}
		if ch == '\\' {
			escLine, escCol := l.line, l.column
			l.advance()
			esc := l.current()
			if l.pos >= len(l.input) {
				return Token{}, l.errorf(start.Line, start.Column, "Unterminated string literal")
			}
			switch esc {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			case '0':
				value.WriteByte(0)
			default:
				l.warnf(escLine, escCol, "Unknown escape sequence '\\%c'", esc)
				value.WriteByte(esc)
			}
			l.advance()
			continue
		}
		value.WriteByte(ch)
		l.advance()
	}

	return Token{
		Type:    TokenString,
		Literal: value.String(),
		Pos:     start,
		Length:  l.pos - startPos,
	}, nil
}

// readNumber scans a decimal or 0x-prefixed hexadecimal literal. Underscore
// separators are accepted and stripped from the stored literal.
func (l *Lexer) readNumber() (Token, error) {
	start := l.here()
	startPos := l.pos

	if l.current() == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		l.advance()
		l.advance()
		var digits strings.Builder
		for isHexDigit(l.current()) || l.current() == '_' {
			if l.current() != '_' {
				digits.WriteByte(l.current())
			}
			l.advance()
		}
		if digits.Len() == 0 {
			return Token{}, l.errorf(start.Line, start.Column, "Invalid hexadecimal literal")
		}
		return Token{
			Type:    TokenNumber,
			Literal: "0x" + digits.String(),
			Pos:     start,
			Length:  l.pos - startPos,
		}, nil
	}

	var digits strings.Builder
	dots := 0
	for {
		ch := l.current()
		if isDigit(ch) || ch == '_' {
			if ch != '_' {
				digits.WriteByte(ch)
			}
			l.advance()
			continue
		}
		if ch == '.' {
			if dots == 1 {
				break
			}
			dots++
			digits.WriteByte(ch)
			l.advance()
			continue
		}
		break
	}

	if ch := l.current(); ch == 'e' || ch == 'E' {
		next := l.peek(1)
		if isDigit(next) || (next == '+' || next == '-') && isDigit(l.peek(2)) {
			digits.WriteByte(ch)
			l.advance()
			if l.current() == '+' || l.current() == '-' {
				digits.WriteByte(l.current())
				l.advance()
			}
			for isDigit(l.current()) {
				digits.WriteByte(l.current())
				l.advance()
			}
		}
	}

	literal := digits.String()
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		return Token{}, l.errorf(start.Line, start.Column, "Invalid number literal: %s", literal)
	}
	return Token{
		Type:    TokenNumber,
		Literal: literal,
		Pos:     start,
		Length:  l.pos - startPos,
	}, nil
}

// readWord scans a bare identifier word at the cursor.
func (l *Lexer) readWord() string {
	start := l.pos
	for isIdentByte(l.current()) {
		l.advance()
	}
	return l.input[start:l.pos]
}

// readIdentifier scans an identifier, trying in order: a +-fused type, a
// keyword, then a dotted identifier chain. The fusion probe runs before the
// keyword lookup so AddInt32 becomes a fused type rather than the Add
// keyword followed by a type name.
func (l *Lexer) readIdentifier() Token {
	start := l.here()
	startPos := l.pos
	base := l.readWord()

	// Probe past + for fusion modifiers, rewinding on failure. Modifier
	// segments never cross lines, so only pos/column need restoring.
	basePos, baseCol := l.pos, l.column
	candidate := base
	for l.current() == '+' && isLetter(l.peek(1)) {
		l.advance()
		candidate += "+" + l.readWord()
	}
	if candidate != base && IsFusedIdentifier(candidate) {
		return Token{Type: TokenFusedType, Literal: candidate, Pos: start, Length: l.pos - startPos}
	}
	l.pos, l.column = basePos, baseCol
	if IsFusedIdentifier(base) {
		return Token{Type: TokenFusedType, Literal: base, Pos: start, Length: l.pos - startPos}
	}

	if tt, ok := keywords[base]; ok {
		return Token{Type: tt, Literal: base, Pos: start, Length: l.pos - startPos}
	}

	// Dotted chain: Pool.Time.Core lexes as one identifier. A keyword never
	// starts a chain, so Constant.Foo stays CONSTANT DOT IDENTIFIER.
	name := base
	for l.current() == '.' && isLetter(l.peek(1)) {
		l.advance()
		name += "." + l.readWord()
	}

	if l.strict {
		for _, seg := range strings.Split(name, ".") {
			if len(seg) < 3 && !allowedShortIdentifiers[seg] {
				l.warnf(start.Line, start.Column,
					"Identifier '%s' is short - consider using descriptive names for readability", seg)
			}
		}
	}

	return Token{Type: TokenIdentifier, Literal: name, Pos: start, Length: l.pos - startPos}
}

// multiCharOperators is ordered longest-first so <-> wins over <-.
var multiCharOperators = []struct {
	text string
	tt   TokenType
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

var singleCharOperators = map[byte]TokenType{
	'=': TokenEquals,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	':': TokenColon,
	';': TokenSemicolon,
	'.': TokenDot,
	'-': TokenDash,
	'+': TokenAdd,
	'*': TokenMultiply,
	'/': TokenDivide,
	'^': TokenPower,
	'>': TokenGreaterThan,
	'<': TokenLessThan,
	'&': TokenAnd,
	'|': TokenOr,
	'!': TokenNot,
}

func (l *Lexer) readOperator() (Token, error) {
	start := l.here()

	for _, op := range multiCharOperators {
		if strings.HasPrefix(l.input[l.pos:], op.text) {
			for range op.text {
				l.advance()
			}
			return Token{Type: op.tt, Literal: op.text, Pos: start, Length: len(op.text)}, nil
		}
	}

	ch := l.current()
	if tt, ok := singleCharOperators[ch]; ok {
		l.advance()
		return Token{Type: tt, Literal: string(ch), Pos: start, Length: 1}, nil
	}

	return Token{}, l.errorf(start.Line, start.Column, "Unknown character '%c'", ch)
}
