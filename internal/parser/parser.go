// Package parser builds AILang syntax trees from token streams.
//
// The parser is recursive descent with precedence climbing for infix
// expressions. It fails fast: the first grammar violation aborts the parse
// with a ParseError carrying the construct context and source position.
package parser

import (
	"fmt"
	"strings"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

// maxNestingDepth bounds recursion so hostile input cannot overflow the
// goroutine stack.
const maxNestingDepth = 256

// ParseError is a fatal grammar violation.
type ParseError struct {
	Message string
	Context string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: In %s: %s", e.Line, e.Column, e.Context, e.Message)
}

// Parser consumes a token stream produced by the lexer. It is single-use.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	contexts []string
	depth    int
	registry *FunctionRegistry
}

// New creates a parser over the given tokens. The stream must end with an
// EOF token, as the lexer guarantees.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, registry: NewFunctionRegistry()}
}

// Registry returns the function registry populated during Parse. Each
// parser owns its registry; concurrent parses share nothing.
func (p *Parser) Registry() *FunctionRegistry {
	return p.registry
}

// Parse consumes the whole token stream into a Program.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{NodeInfo: ast.NodeInfo{Line: 1, Column: 1}}
	p.skipNewlines()
	for !p.check(lexer.TokenEOF) {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}
		p.skipNewlines()
	}
	return prog, nil
}

// --- cursor helpers ---

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	if p.pos+offset >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	return p.tokens[p.pos+offset]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf("%s, got %s", message, p.describe(p.current()))
}

func (p *Parser) describe(tok lexer.Token) string {
	if tok.Type == lexer.TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Literal)
}

func isCommentToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenComment, lexer.TokenDocComment, lexer.TokenComComment, lexer.TokenTagComment:
		return true
	}
	return false
}

func (p *Parser) skipNewlines() {
	for p.check(lexer.TokenNewline) || isCommentToken(p.current().Type) {
		p.advance()
	}
}

// --- context stack ---

func (p *Parser) pushContext(name string) {
	p.contexts = append(p.contexts, name)
}

func (p *Parser) popContext() {
	if len(p.contexts) > 0 {
		p.contexts = p.contexts[:len(p.contexts)-1]
	}
}

func (p *Parser) context() string {
	if len(p.contexts) == 0 {
		return "top level"
	}
	return strings.Join(p.contexts, " > ")
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	tok := p.current()
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Context: p.context(),
		Line:    tok.Pos.Line,
		Column:  tok.Pos.Column,
	}
}

// --- nesting guard ---

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return p.errorf("nesting too deep")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// at builds a NodeInfo from a token's position.
func at(tok lexer.Token) ast.NodeInfo {
	return ast.NodeInfo{Line: tok.Pos.Line, Column: tok.Pos.Column}
}

// isWordToken reports whether the token's literal is a bare word. Keyword
// tokens qualify, so keyword-shaped names (Constant.E, DynamicPool.Cache)
// can serve wherever a name is consumed by literal.
func isWordToken(tok lexer.Token) bool {
	return len(tok.Literal) > 0 && (tok.Literal[0] >= 'A' && tok.Literal[0] <= 'Z' ||
		tok.Literal[0] >= 'a' && tok.Literal[0] <= 'z')
}

// parseDeclName reads a declaration name. The dot after the declaring
// keyword is optional: Constant.Foo and Constant Foo both bind Foo. A
// dotted tail (Math.Core) arrives as a single identifier token; a name
// that happens to be a keyword is taken by its literal.
func (p *Parser) parseDeclName(message string) (string, error) {
	p.match(lexer.TokenDot)
	tok := p.current()
	if tok.Type != lexer.TokenIdentifier && !isWordToken(tok) {
		return "", p.errorf("%s, got %s", message, p.describe(tok))
	}
	p.advance()
	return tok.Literal, nil
}
