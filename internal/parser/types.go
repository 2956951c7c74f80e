package parser

import (
	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

func isPrimitiveType(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenInteger, lexer.TokenFloatingPoint, lexer.TokenText,
		lexer.TokenBoolean, lexer.TokenAddress, lexer.TokenVoid, lexer.TokenAny:
		return true
	}
	_, lowLevel := lowLevelTypeSizes[tt]
	return lowLevel
}

// parseType reads a type annotation.
func (p *Parser) parseType() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.current()
	switch {
	case isPrimitiveType(tok.Type):
		p.advance()
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: tok.Literal}, nil

	case tok.Type == lexer.TokenPointer:
		p.advance()
		inner, err := p.parseBracketedTypes(1, 1)
		if err != nil {
			return nil, err
		}
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: "Pointer", Parameters: inner}, nil

	case tok.Type == lexer.TokenOptionalType:
		p.advance()
		inner, err := p.parseBracketedTypes(1, 1)
		if err != nil {
			return nil, err
		}
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: "OptionalType", Parameters: inner}, nil

	case tok.Type == lexer.TokenArray:
		return p.parseArrayType()

	case tok.Type == lexer.TokenMap:
		p.advance()
		inner, err := p.parseBracketedTypes(2, 2)
		if err != nil {
			return nil, err
		}
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: "Map", Parameters: inner}, nil

	case tok.Type == lexer.TokenTuple:
		p.advance()
		inner, err := p.parseBracketedTypes(1, -1)
		if err != nil {
			return nil, err
		}
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: "Tuple", Parameters: inner}, nil

	case tok.Type == lexer.TokenRecord:
		return p.parseRecordType()

	case tok.Type == lexer.TokenFunction:
		return p.parseFunctionType()

	case tok.Type == lexer.TokenFusedType:
		p.advance()
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: tok.Literal}, nil

	case tok.Type == lexer.TokenIdentifier:
		p.advance()
		return &ast.TypeExpression{NodeInfo: at(tok), BaseType: tok.Literal}, nil

	default:
		return nil, p.errorf("Expected type, got %s", p.describe(tok))
	}
}

// parseBracketedTypes reads [T, T, ...] with the given arity bounds; max of
// -1 means unbounded.
func (p *Parser) parseBracketedTypes(min, max int) ([]ast.Node, error) {
	if _, err := p.expect(lexer.TokenLBracket, "Expected '[' after type name"); err != nil {
		return nil, err
	}
	var types []ast.Node
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close type parameters"); err != nil {
		return nil, err
	}
	if len(types) < min || (max >= 0 && len(types) > max) {
		return nil, p.errorf("Wrong number of type parameters: got %d", len(types))
	}
	return types, nil
}

// parseArrayType reads Array[T] or Array[T, size].
func (p *Parser) parseArrayType() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLBracket, "Expected '[' after Array"); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	params := []ast.Node{elem}
	if p.match(lexer.TokenComma) {
		size, err := p.expect(lexer.TokenNumber, "Expected array size")
		if err != nil {
			return nil, err
		}
		num, err := numberFromToken(size)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		num.NodeInfo = at(size)
		params = append(params, num)
	}
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close Array type"); err != nil {
		return nil, err
	}
	return &ast.TypeExpression{NodeInfo: at(start), BaseType: "Array", Parameters: params}, nil
}

// parseRecordType reads an inline Record{field: Type, ...} shape. Each
// field becomes a TypeExpression named after the field with its type as
// the single parameter.
func (p *Parser) parseRecordType() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after Record"); err != nil {
		return nil, err
	}
	var fields []ast.Node
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close Record type")
		}
		name, err := p.expect(lexer.TokenIdentifier, "Expected field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenColon, "Expected ':' after field name"); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.TypeExpression{
			NodeInfo:   at(name),
			BaseType:   name.Literal,
			Parameters: []ast.Node{fieldType},
		})
		p.match(lexer.TokenComma)
		p.skipNewlines()
	}
	p.advance() // }
	return &ast.TypeExpression{NodeInfo: at(start), BaseType: "Record", Parameters: fields}, nil
}

// parseFunctionType reads Function[A, B -> C]. A bare Function with no
// bracket is the unparameterized function type.
func (p *Parser) parseFunctionType() (ast.Node, error) {
	start := p.advance()
	if !p.check(lexer.TokenLBracket) {
		return &ast.TypeExpression{NodeInfo: at(start), BaseType: "Function"}, nil
	}
	p.advance() // [

	var params []ast.Node
	for !p.check(lexer.TokenArrowRight) {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, typ)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TokenArrowRight, "Expected '->' in Function type"); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	params = append(params, ret)
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close Function type"); err != nil {
		return nil, err
	}
	return &ast.TypeExpression{NodeInfo: at(start), BaseType: "Function", Parameters: params}, nil
}
