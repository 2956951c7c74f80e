package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

// binaryPrecedence assigns climbing levels to infix operators. All levels
// are left-associative.
var binaryPrecedence = map[lexer.TokenType]int{
	lexer.TokenOr:           1,
	lexer.TokenAnd:          2,
	lexer.TokenEqualTo:      3,
	lexer.TokenNotEqual:     3,
	lexer.TokenLessThan:     4,
	lexer.TokenGreaterThan:  4,
	lexer.TokenLessEqual:    4,
	lexer.TokenGreaterEqual: 4,
	lexer.TokenAdd:          5,
	lexer.TokenSubtract:     5,
	lexer.TokenDash:         5,
	lexer.TokenMultiply:     6,
	lexer.TokenDivide:       6,
	lexer.TokenPower:        7,
}

// isWordOperator distinguishes the two infix spellings: Multiply folds to a
// FunctionCall, * folds to a BinaryExpression.
func isWordOperator(tok lexer.Token) bool {
	return isWordToken(tok)
}

// callableKeywords are the named built-ins that take a parenthesized
// argument list in expression position.
var callableKeywords = map[lexer.TokenType]bool{
	lexer.TokenAdd: true, lexer.TokenMultiply: true, lexer.TokenDivide: true,
	lexer.TokenSubtract: true, lexer.TokenPower: true, lexer.TokenModulo: true,
	lexer.TokenSquareRoot: true, lexer.TokenAbsoluteValue: true,
	lexer.TokenGreaterThan: true, lexer.TokenLessThan: true,
	lexer.TokenEqualTo: true, lexer.TokenNotEqual: true,
	lexer.TokenGreaterEqual: true, lexer.TokenLessEqual: true,
	lexer.TokenAnd: true, lexer.TokenOr: true, lexer.TokenNot: true,
	lexer.TokenReadInput: true, lexer.TokenReadInputNumber: true,
	lexer.TokenGetUserChoice: true,
	lexer.TokenStringEquals:  true, lexer.TokenStringContains: true,
	lexer.TokenStringConcat: true, lexer.TokenStringLength: true,
	lexer.TokenStringToNumber: true, lexer.TokenNumberToString: true,
	lexer.TokenWriteTextFile: true, lexer.TokenReadTextFile: true,
	lexer.TokenFileExists: true,
}

// lowLevelCallables are the memory and hardware built-ins; a handful build
// dedicated nodes, the rest fall back to FunctionCall.
var lowLevelCallables = map[lexer.TokenType]bool{
	lexer.TokenDereference: true, lexer.TokenAddressOf: true,
	lexer.TokenSizeOf: true, lexer.TokenAllocate: true,
	lexer.TokenDeallocate: true, lexer.TokenMemoryCopy: true,
	lexer.TokenPortRead: true, lexer.TokenPortWrite: true,
	lexer.TokenHardwareRegister: true,
	lexer.TokenAtomicRead:       true, lexer.TokenAtomicWrite: true,
	lexer.TokenMMIORead: true, lexer.TokenMMIOWrite: true,
}

var unitKeywords = map[lexer.TokenType]bool{
	lexer.TokenBytes: true, lexer.TokenKilobytes: true,
	lexer.TokenMegabytes: true, lexer.TokenGigabytes: true,
	lexer.TokenSeconds: true, lexer.TokenMilliseconds: true,
	lexer.TokenMicroseconds: true, lexer.TokenPercent: true,
}

// lowLevelTypeSizes maps machine-width type keywords to (size, signed).
var lowLevelTypeSizes = map[lexer.TokenType]struct {
	size   int
	signed bool
}{
	lexer.TokenByte:   {1, false},
	lexer.TokenWord:   {2, false},
	lexer.TokenDWord:  {4, false},
	lexer.TokenQWord:  {8, false},
	lexer.TokenUInt8:  {1, false},
	lexer.TokenUInt16: {2, false},
	lexer.TokenUInt32: {4, false},
	lexer.TokenUInt64: {8, false},
	lexer.TokenInt8:   {1, true},
	lexer.TokenInt16:  {2, true},
	lexer.TokenInt32:  {4, true},
	lexer.TokenInt64:  {8, true},
}

// Math constant values.
const (
	piValue  = 3.14159265358979323846
	eValue   = 2.71828182845904523536
	phiValue = 1.61803398874989484820
)

func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseBinary(1)
}

// parseBinary is the precedence climber. Named operators fold to
// FunctionCall, symbolic operators to BinaryExpression.
func (p *Parser) parseBinary(minPrec int) (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		if isWordOperator(tok) {
			left = &ast.FunctionCall{
				NodeInfo:  at(tok),
				Function:  tok.Literal,
				Arguments: []ast.Node{left, right},
			}
		} else {
			op := tok.Literal
			if tok.Type == lexer.TokenDash {
				op = "-"
			}
			left = &ast.BinaryExpression{
				NodeInfo: at(tok),
				Left:     left,
				Operator: op,
				Right:    right,
			}
		}
	}
}

// parseOperand parses one prefix-operator-and-operand unit.
func (p *Parser) parseOperand() (ast.Node, error) {
	tok := p.current()

	// Prefix operators. A word operator directly followed by ( is a call
	// instead: Subtract(a, b).
	switch tok.Type {
	case lexer.TokenSubtract, lexer.TokenDash, lexer.TokenAdd, lexer.TokenNot:
		if isWordOperator(tok) && p.peek(1).Type == lexer.TokenLParen {
			break
		}
		p.advance()
		op := tok.Literal
		if tok.Type == lexer.TokenSubtract || tok.Type == lexer.TokenDash {
			op = "-"
			if p.check(lexer.TokenNumber) {
				num, err := numberFromToken(p.advance())
				if err != nil {
					return nil, p.errorf("%s", err)
				}
				num.Value = -num.Value
				num.NodeInfo = at(tok)
				return num, nil
			}
		}
		operand, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{NodeInfo: at(tok), Operator: op, Operand: operand}, nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.current()
	switch {
	case tok.Type == lexer.TokenLParen:
		p.advance()
		p.skipNewlines()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.skipNewlines()
		if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close expression"); err != nil {
			return nil, err
		}
		return expr, nil

	case lowLevelCallables[tok.Type]:
		return p.parseLowLevelCall()

	case callableKeywords[tok.Type]:
		return p.parseNamedCall()

	case isVMNamespace(tok.Type):
		return p.parseVMOperation()

	case tok.Type == lexer.TokenFusedType:
		p.advance()
		if p.check(lexer.TokenLParen) {
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{NodeInfo: at(tok), Function: tok.Literal, Arguments: args}, nil
		}
		return &ast.FusedType{NodeInfo: at(tok), Name: tok.Literal}, nil

	case tok.Type == lexer.TokenNumber:
		p.advance()
		num, err := numberFromToken(tok)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		num.NodeInfo = at(tok)
		return num, nil

	case tok.Type == lexer.TokenString:
		p.advance()
		return &ast.String{NodeInfo: at(tok), Value: tok.Literal}, nil

	case tok.Type == lexer.TokenTrue:
		p.advance()
		return &ast.Boolean{NodeInfo: at(tok), Value: true}, nil

	case tok.Type == lexer.TokenFalse:
		p.advance()
		return &ast.Boolean{NodeInfo: at(tok), Value: false}, nil

	case tok.Type == lexer.TokenNull:
		p.advance()
		return &ast.Identifier{NodeInfo: at(tok), Name: "Null"}, nil

	case tok.Type == lexer.TokenPI:
		p.advance()
		return &ast.Number{NodeInfo: at(tok), Value: piValue}, nil

	case tok.Type == lexer.TokenE:
		p.advance()
		return &ast.Number{NodeInfo: at(tok), Value: eValue}, nil

	case tok.Type == lexer.TokenPHI:
		p.advance()
		return &ast.Number{NodeInfo: at(tok), Value: phiValue}, nil

	case tok.Type == lexer.TokenLambda:
		return p.parseLambda()

	case tok.Type == lexer.TokenApply:
		return p.parseApply()

	case tok.Type == lexer.TokenRunTask:
		return p.parseRunTask()

	case tok.Type == lexer.TokenRunMacro:
		return p.parseRunMacro()

	case tok.Type == lexer.TokenIdentifier:
		p.advance()
		return &ast.Identifier{NodeInfo: at(tok), Name: tok.Literal}, nil

	case tok.Type == lexer.TokenLBracket:
		return p.parseArrayLiteral()

	case tok.Type == lexer.TokenLBrace:
		return p.parseMapLiteral()

	case unitKeywords[tok.Type]:
		p.advance()
		return &ast.Identifier{NodeInfo: at(tok), Name: tok.Literal}, nil

	default:
		if info, ok := lowLevelTypeSizes[tok.Type]; ok {
			p.advance()
			return &ast.LowLevelType{
				NodeInfo: at(tok),
				TypeName: tok.Literal,
				Size:     info.size,
				Signed:   info.signed,
			}, nil
		}
		return nil, p.errorf("Unexpected token in expression: %s", p.describe(tok))
	}
}

// parseCallArguments reads a parenthesized positional argument list.
func (p *Parser) parseCallArguments() ([]ast.Node, error) {
	if _, err := p.expect(lexer.TokenLParen, "Expected '('"); err != nil {
		return nil, err
	}
	var args []ast.Node
	p.skipNewlines()
	for !p.check(lexer.TokenRParen) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ')' to close argument list")
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close argument list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseNamedCall() (ast.Node, error) {
	tok := p.advance()
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{NodeInfo: at(tok), Function: tok.Literal, Arguments: args}, nil
}

// parseLowLevelCall builds the specialized pointer and hardware nodes;
// everything else in the low-level set becomes a plain FunctionCall.
func (p *Parser) parseLowLevelCall() (ast.Node, error) {
	tok := p.advance()
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	argAt := func(i int) ast.Node {
		if i < len(args) {
			return args[i]
		}
		return nil
	}

	switch tok.Type {
	case lexer.TokenDereference:
		node := &ast.Dereference{NodeInfo: at(tok), Pointer: argAt(0)}
		if len(args) > 1 {
			node.SizeHint = exprText(args[1])
		}
		return node, nil
	case lexer.TokenAddressOf:
		return &ast.AddressOf{NodeInfo: at(tok), Variable: argAt(0)}, nil
	case lexer.TokenSizeOf:
		return &ast.SizeOf{NodeInfo: at(tok), Target: argAt(0)}, nil
	case lexer.TokenPortRead:
		node := &ast.PortOperation{NodeInfo: at(tok), Operation: "read", Port: argAt(0), Size: "byte"}
		if len(args) > 1 {
			node.Size = exprText(args[1])
		}
		return node, nil
	case lexer.TokenPortWrite:
		node := &ast.PortOperation{NodeInfo: at(tok), Operation: "write", Port: argAt(0), Size: "byte"}
		if len(args) > 1 {
			node.Size = exprText(args[1])
		}
		node.Value = argAt(2)
		return node, nil
	case lexer.TokenHardwareRegister:
		node := &ast.HardwareRegisterAccess{
			NodeInfo:     at(tok),
			RegisterType: "general",
			RegisterName: exprText(argAt(0)),
			Operation:    "read",
		}
		if len(args) > 1 {
			node.Operation = "write"
			node.Value = args[1]
		}
		return node, nil
	default:
		return &ast.FunctionCall{NodeInfo: at(tok), Function: tok.Literal, Arguments: args}, nil
	}
}

// parseVMOperation handles the virtual-memory namespaces:
//
//	PageTable.Map(virtual-0x1000, physical-0x2000, flags-RW)
//	TLB.FlushAll
//
// The call folds to FunctionCall "PageTable_Map" with the parameter names
// flattened in as string arguments before each value.
func (p *Parser) parseVMOperation() (ast.Node, error) {
	ns := p.advance()
	p.match(lexer.TokenDot)

	// Operation names routinely collide with keywords (Map, Flush,
	// Allocate), so any word token's literal is accepted here.
	tok := p.current()
	if tok.Type != lexer.TokenIdentifier && !isWordToken(tok) {
		return nil, p.errorf("Expected operation after %s, got %s", ns.Literal, p.describe(tok))
	}
	op := p.advance()

	call := &ast.FunctionCall{NodeInfo: at(ns), Function: ns.Literal + "_" + op.Literal}
	if !p.check(lexer.TokenLParen) {
		return call, nil
	}

	p.advance() // (
	p.skipNewlines()
	for !p.check(lexer.TokenRParen) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ')' to close %s arguments", call.Function)
		}
		name, err := p.expect(lexer.TokenIdentifier, "Expected parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenDash, "Expected '-' after parameter name"); err != nil {
			return nil, err
		}
		value, err := p.parseVMValue()
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments,
			&ast.String{NodeInfo: at(name), Value: name.Literal}, value)
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close argument list"); err != nil {
		return nil, err
	}
	return call, nil
}

// parseVMValue accepts ordinary expressions plus bare flag keywords
// (RW, Cached, PageSize4KB) which stand for themselves.
func (p *Parser) parseVMValue() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.TokenNumber, lexer.TokenString, lexer.TokenTrue, lexer.TokenFalse,
		lexer.TokenIdentifier, lexer.TokenFusedType, lexer.TokenLParen,
		lexer.TokenLBracket:
		return p.parseExpression()
	}
	if isWordOperator(tok) {
		p.advance()
		return &ast.Identifier{NodeInfo: at(tok), Name: tok.Literal}, nil
	}
	return nil, p.errorf("Unexpected token in expression: %s", p.describe(tok))
}

func (p *Parser) parseLambda() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after Lambda"); err != nil {
		return nil, err
	}
	var params []string
	for !p.check(lexer.TokenRParen) {
		param, err := p.expect(lexer.TokenIdentifier, "Expected lambda parameter")
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after lambda parameters"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' before lambda body"); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.TokenRBrace, "Expected '}' after lambda body"); err != nil {
		return nil, err
	}
	return &ast.Lambda{NodeInfo: at(start), Params: params, Body: body}, nil
}

func (p *Parser) parseApply() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after Apply"); err != nil {
		return nil, err
	}
	fn, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node := &ast.Apply{NodeInfo: at(start), Function: fn}
	for p.match(lexer.TokenComma) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Arguments = append(node.Arguments, arg)
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close Apply"); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseRunMacro() (ast.Node, error) {
	start := p.advance()
	path, err := p.parseDeclName("Expected macro path")
	if err != nil {
		return nil, err
	}
	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	return &ast.RunMacro{NodeInfo: at(start), MacroPath: path, Arguments: args}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Node, error) {
	start := p.advance()
	node := &ast.ArrayLiteral{NodeInfo: at(start)}
	p.skipNewlines()
	for !p.check(lexer.TokenRBracket) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ']' to close array literal")
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, elem)
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close array literal"); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseMapLiteral() (ast.Node, error) {
	start := p.advance()
	node := &ast.MapLiteral{NodeInfo: at(start)}
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close map literal")
		}
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenColon, "Expected ':' after map key"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Pairs = append(node.Pairs, ast.MapEntry{Key: key, Value: value})
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRBrace, "Expected '}' to close map literal"); err != nil {
		return nil, err
	}
	return node, nil
}

// numberFromToken converts a normalized number literal. Hexadecimal
// literals are always integers; a hex literal wider than 64 bits is an
// error rather than a silently clamped value.
func numberFromToken(tok lexer.Token) (*ast.Number, error) {
	lit := tok.Literal
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		v, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("Hexadecimal literal out of range: %s", lit)
		}
		return &ast.Number{Value: float64(v), IsInteger: true}, nil
	}
	v, _ := strconv.ParseFloat(lit, 64)
	isInt := !strings.ContainsAny(lit, ".eE")
	return &ast.Number{Value: v, IsInteger: isInt}, nil
}
