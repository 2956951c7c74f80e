package parser

import (
	"strconv"
	"strings"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

func isPoolKeyword(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenFixedPool, lexer.TokenDynamicPool, lexer.TokenTemporalPool,
		lexer.TokenNeuralPool, lexer.TokenKernelPool, lexer.TokenActorPool,
		lexer.TokenSecurityPool, lexer.TokenConstrainedPool, lexer.TokenFilePool:
		return true
	}
	return false
}

func isLoopKeyword(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenLoopMain, lexer.TokenLoopActor, lexer.TokenLoopStart, lexer.TokenLoopShadow:
		return true
	}
	return false
}

func (p *Parser) parseDeclaration() (ast.Node, error) {
	tok := p.current()
	switch {
	case tok.Type == lexer.TokenLibraryImport:
		return p.parseLibrary()
	case tok.Type == lexer.TokenIdentifier && p.peek(1).Type == lexer.TokenIdentifier &&
		p.peek(1).Literal == "AcronymDefinitions":
		return p.parseAcronymDefinitions()
	case isPoolKeyword(tok.Type):
		return p.parsePool()
	case isLoopKeyword(tok.Type):
		return p.parseLoop()
	case tok.Type == lexer.TokenSubRoutine:
		return p.parseSubRoutine()
	case tok.Type == lexer.TokenFunction:
		return p.parseFunction()
	case tok.Type == lexer.TokenCombinator:
		return p.parseCombinator()
	case tok.Type == lexer.TokenMacroBlock:
		return p.parseMacroBlock()
	case tok.Type == lexer.TokenSecurityContext:
		return p.parseSecurityContext()
	case tok.Type == lexer.TokenConstrainedType:
		return p.parseConstrainedType()
	case tok.Type == lexer.TokenConstant:
		return p.parseConstant()
	case tok.Type == lexer.TokenRecord:
		return p.parseRecord()
	case tok.Type == lexer.TokenInterruptHandler:
		return p.parseInterruptHandler()
	case tok.Type == lexer.TokenDeviceDriver:
		return p.parseDeviceDriver()
	case tok.Type == lexer.TokenBootloader:
		return p.parseBootloaderCode()
	case tok.Type == lexer.TokenKernelEntry:
		return p.parseKernelEntry()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseLibrary() (ast.Node, error) {
	start := p.advance()
	p.pushContext("library")
	defer p.popContext()

	name, err := p.parseDeclName("Expected library name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after library name"); err != nil {
		return nil, err
	}

	var body []ast.Node
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close library %s", name)
		}
		var member ast.Node
		switch p.current().Type {
		case lexer.TokenLibraryImport:
			member, err = p.parseLibrary()
		case lexer.TokenFunction:
			member, err = p.parseFunction()
		case lexer.TokenConstant:
			member, err = p.parseConstant()
		default:
			p.advance()
		}
		if err != nil {
			return nil, err
		}
		if member != nil {
			body = append(body, member)
		}
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.Library{NodeInfo: at(start), Name: name, Body: body}, nil
}

func (p *Parser) parsePool() (ast.Node, error) {
	start := p.advance()
	p.pushContext(start.Literal)
	defer p.popContext()

	name, err := p.parseDeclName("Expected pool name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after pool name"); err != nil {
		return nil, err
	}

	body, err := p.parsePoolBody(name)
	if err != nil {
		return nil, err
	}
	return &ast.Pool{NodeInfo: at(start), PoolType: start.Literal, Name: name, Body: body}, nil
}

// parsePoolBody reads resource items and subpools up to the closing brace,
// skipping anything else.
func (p *Parser) parsePoolBody(name string) ([]ast.Node, error) {
	var body []ast.Node
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close pool %s", name)
		}
		switch p.current().Type {
		case lexer.TokenSubPool:
			sub, err := p.parseSubPool()
			if err != nil {
				return nil, err
			}
			body = append(body, sub)
		case lexer.TokenString:
			item, err := p.parseResourceItem()
			if err != nil {
				return nil, err
			}
			body = append(body, item)
		default:
			p.advance()
		}
		p.skipNewlines()
	}
	p.advance() // }
	return body, nil
}

func (p *Parser) parseSubPool() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected subpool name")
	if err != nil {
		return nil, err
	}
	p.pushContext("SubPool." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after subpool name"); err != nil {
		return nil, err
	}

	var items []*ast.ResourceItem
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close subpool %s", name)
		}
		if p.check(lexer.TokenString) {
			item, err := p.parseResourceItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		} else {
			p.advance()
		}
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.SubPool{NodeInfo: at(start), Name: name, Items: items}, nil
}

// parseResourceItem reads a quoted-key entry:
//
//	"key": Initialize-0, CanChange-True, MaximumLength-64
func (p *Parser) parseResourceItem() (*ast.ResourceItem, error) {
	key := p.advance()
	if _, err := p.expect(lexer.TokenColon, "Expected ':' after resource key"); err != nil {
		return nil, err
	}

	item := &ast.ResourceItem{NodeInfo: at(key), Key: key.Literal}

	if p.check(lexer.TokenInitialize) {
		p.advance()
		if _, err := p.expect(lexer.TokenDash, "Expected '-' after Initialize"); err != nil {
			return nil, err
		}
		value, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		item.Value = value
	}

	for p.check(lexer.TokenComma) {
		p.advance()
		p.skipNewlines()
		attr := p.current()
		switch attr.Type {
		case lexer.TokenCanChange, lexer.TokenCanBeNull,
			lexer.TokenMaximumLength, lexer.TokenMinimumLength:
			p.advance()
			if _, err := p.expect(lexer.TokenDash, "Expected '-' after attribute name"); err != nil {
				return nil, err
			}
			value, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			item.Attributes = append(item.Attributes, ast.Attribute{Name: attr.Literal, Value: value})
		case lexer.TokenRange:
			p.advance()
			if _, err := p.expect(lexer.TokenDash, "Expected '-' after Range"); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			item.Attributes = append(item.Attributes, ast.Attribute{Name: attr.Literal, Value: value})
		case lexer.TokenElementType:
			p.advance()
			if _, err := p.expect(lexer.TokenDash, "Expected '-' after ElementType"); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			item.Attributes = append(item.Attributes, ast.Attribute{Name: attr.Literal, Value: typ})
		case lexer.TokenIdentifier:
			p.advance()
			if _, err := p.expect(lexer.TokenDash, "Expected '-' after attribute name"); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			item.Attributes = append(item.Attributes, ast.Attribute{Name: attr.Literal, Value: value})
		default:
			return item, nil
		}
	}
	return item, nil
}

func (p *Parser) parseRecord() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected record name")
	if err != nil {
		return nil, err
	}
	p.pushContext("Record." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after record name"); err != nil {
		return nil, err
	}

	var fields []ast.RecordField
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close record %s", name)
		}
		fieldName, err := p.expect(lexer.TokenIdentifier, "Expected field name")
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
		fields = append(fields, ast.RecordField{Name: fieldName.Literal, Type: fieldType})
		p.match(lexer.TokenComma)
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.Record{NodeInfo: at(start), Name: name, Fields: fields}, nil
}

func (p *Parser) parseAcronymDefinitions() (ast.Node, error) {
	start := p.advance() // system name
	p.advance()          // AcronymDefinitions
	p.pushContext("AcronymDefinitions")
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after AcronymDefinitions"); err != nil {
		return nil, err
	}

	var defs []ast.AcronymDef
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close AcronymDefinitions")
		}
		acronym, err := p.expect(lexer.TokenIdentifier, "Expected acronym")
		if err != nil {
			return nil, err
		}
		if acronym.Literal != strings.ToUpper(acronym.Literal) {
			return nil, p.errorf("Acronym '%s' must be uppercase", acronym.Literal)
		}
		if _, err := p.expect(lexer.TokenEquals, "Expected '=' after acronym"); err != nil {
			return nil, err
		}
		var expansion string
		switch p.current().Type {
		case lexer.TokenString, lexer.TokenIdentifier:
			expansion = p.advance().Literal
		default:
			return nil, p.errorf("Expected acronym expansion, got %s", p.describe(p.current()))
		}
		defs = append(defs, ast.AcronymDef{Acronym: acronym.Literal, Expansion: expansion})
		p.match(lexer.TokenComma)
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.AcronymDefinitions{NodeInfo: at(start), Definitions: defs}, nil
}

func (p *Parser) parseLoop() (ast.Node, error) {
	start := p.advance()
	p.pushContext(start.Literal)
	defer p.popContext()

	name, err := p.parseDeclName("Expected loop name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}

	loop := &ast.Loop{NodeInfo: at(start), LoopType: start.Literal, Name: name, Body: body}
	p.skipNewlines()
	if p.check(lexer.TokenLoopEnd) {
		p.advance()
		end, err := p.expect(lexer.TokenIdentifier, "Expected name after LoopEnd")
		if err != nil {
			return nil, err
		}
		loop.EndName = end.Literal
	}
	return loop, nil
}

func (p *Parser) parseSubRoutine() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected subroutine name")
	if err != nil {
		return nil, err
	}
	p.pushContext("SubRoutine." + name)
	defer p.popContext()

	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.SubRoutine{NodeInfo: at(start), Name: name, Body: body}, nil
}

func (p *Parser) parseFunction() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected function name")
	if err != nil {
		return nil, err
	}
	p.pushContext("Function." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after function name"); err != nil {
		return nil, err
	}

	fn := &ast.Function{NodeInfo: at(start), Name: name}
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		switch p.current().Type {
		case lexer.TokenInput:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after Input"); err != nil {
				return nil, err
			}
			if p.check(lexer.TokenLParen) {
				params, err := p.parseParameterList()
				if err != nil {
					return nil, err
				}
				fn.InputParams = append(fn.InputParams, params...)
			} else {
				param, err := p.parseParameter()
				if err != nil {
					return nil, err
				}
				fn.InputParams = append(fn.InputParams, param)
			}
		case lexer.TokenOutput:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after Output"); err != nil {
				return nil, err
			}
			output, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if typ, ok := output.(*ast.TypeExpression); ok {
				fn.OutputType = typ
			}
		case lexer.TokenBody:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after Body"); err != nil {
				return nil, err
			}
			body, err := p.parseStatementBlock()
			if err != nil {
				return nil, err
			}
			fn.Body = body
		case lexer.TokenEOF:
			return nil, p.errorf("Expected '}' to close function %s", name)
		default:
			return nil, p.errorf("Expected Input, Output, or Body, got %s", p.describe(p.current()))
		}
		p.skipNewlines()
	}
	p.advance() // }

	p.registry.Register(&FunctionInfo{
		Name:   name,
		Params: fn.InputParams,
		Output: fn.OutputType,
		Line:   start.Pos.Line,
		Column: start.Pos.Column,
	})
	return fn, nil
}

func (p *Parser) parseParameter() (ast.Parameter, error) {
	name, err := p.expect(lexer.TokenIdentifier, "Expected parameter name")
	if err != nil {
		return ast.Parameter{}, err
	}
	if _, err := p.expect(lexer.TokenColon, "Expected ':' after parameter name"); err != nil {
		return ast.Parameter{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Parameter{}, err
	}
	param := ast.Parameter{Name: name.Literal}
	if te, ok := typ.(*ast.TypeExpression); ok {
		param.Type = te
	}
	return param, nil
}

func (p *Parser) parseParameterList() ([]ast.Parameter, error) {
	if _, err := p.expect(lexer.TokenLParen, "Expected '('"); err != nil {
		return nil, err
	}
	var params []ast.Parameter
	p.skipNewlines()
	for !p.check(lexer.TokenRParen) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ')' to close parameter list")
		}
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCombinator() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected combinator name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEquals, "Expected '=' after combinator name"); err != nil {
		return nil, err
	}
	def, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Combinator{NodeInfo: at(start), Name: name, Definition: def}, nil
}

func (p *Parser) parseMacroBlock() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected macro block name")
	if err != nil {
		return nil, err
	}
	p.pushContext("MacroBlock." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after macro block name"); err != nil {
		return nil, err
	}

	var macros []*ast.MacroDefinition
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close macro block %s", name)
		}
		if p.check(lexer.TokenMacro) {
			macro, err := p.parseMacroDefinition()
			if err != nil {
				return nil, err
			}
			macros = append(macros, macro)
		} else {
			p.advance()
		}
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.MacroBlock{NodeInfo: at(start), Name: name, Macros: macros}, nil
}

func (p *Parser) parseMacroDefinition() (*ast.MacroDefinition, error) {
	start := p.advance() // Macro
	name, err := p.parseDeclName("Expected macro name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after macro name"); err != nil {
		return nil, err
	}
	var params []string
	for !p.check(lexer.TokenRParen) {
		param, err := p.expect(lexer.TokenIdentifier, "Expected macro parameter")
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after macro parameters"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEquals, "Expected '=' after macro signature"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.MacroDefinition{NodeInfo: at(start), Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseSecurityContext() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected security context name")
	if err != nil {
		return nil, err
	}
	p.pushContext("SecurityContext." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after security context name"); err != nil {
		return nil, err
	}

	var levels []*ast.SecurityLevel
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close security context %s", name)
		}
		if p.check(lexer.TokenLevel) {
			level, err := p.parseSecurityLevel()
			if err != nil {
				return nil, err
			}
			levels = append(levels, level)
		} else {
			p.advance()
		}
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.SecurityContext{NodeInfo: at(start), Name: name, Levels: levels}, nil
}

func (p *Parser) parseSecurityLevel() (*ast.SecurityLevel, error) {
	start := p.advance() // Level
	name, err := p.expect(lexer.TokenIdentifier, "Expected level name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEquals, "Expected '=' after level name"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after '='"); err != nil {
		return nil, err
	}

	level := &ast.SecurityLevel{NodeInfo: at(start), Name: name.Literal}
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close level %s", name.Literal)
		}
		switch p.current().Type {
		case lexer.TokenAllowedOperations:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after AllowedOperations"); err != nil {
				return nil, err
			}
			ops, err := p.parseStringArray()
			if err != nil {
				return nil, err
			}
			level.AllowedOperations = ops
		case lexer.TokenDeniedOperations:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after DeniedOperations"); err != nil {
				return nil, err
			}
			ops, err := p.parseStringArray()
			if err != nil {
				return nil, err
			}
			level.DeniedOperations = ops
		case lexer.TokenMemoryLimit:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after MemoryLimit"); err != nil {
				return nil, err
			}
			limit, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			level.MemoryLimit = limit
		case lexer.TokenCPUQuota:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after CPUQuota"); err != nil {
				return nil, err
			}
			quota, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			level.CPUQuota = quota
		default:
			return nil, p.errorf("Unexpected token in security level: %s", p.describe(p.current()))
		}
		p.match(lexer.TokenComma)
		p.skipNewlines()
	}
	p.advance() // }
	return level, nil
}

func (p *Parser) parseStringArray() ([]string, error) {
	if _, err := p.expect(lexer.TokenLBracket, "Expected '['"); err != nil {
		return nil, err
	}
	var values []string
	p.skipNewlines()
	for !p.check(lexer.TokenRBracket) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ']' to close string list")
		}
		str, err := p.expect(lexer.TokenString, "Expected string")
		if err != nil {
			return nil, err
		}
		values = append(values, str.Literal)
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close string list"); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *Parser) parseConstrainedType() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected constrained type name")
	if err != nil {
		return nil, err
	}
	p.pushContext("ConstrainedType." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenEquals, "Expected '=' after type name"); err != nil {
		return nil, err
	}
	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenWhere, "Expected 'Where' after base type"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after Where"); err != nil {
		return nil, err
	}
	p.skipNewlines()
	constraints, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.TokenRBrace, "Expected '}' to close constraint"); err != nil {
		return nil, err
	}

	return &ast.ConstrainedType{NodeInfo: at(start), Name: name, BaseType: base, Constraints: constraints}, nil
}

func (p *Parser) parseConstant() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected constant name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEquals, "Expected '=' after constant name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Constant{NodeInfo: at(start), Name: name, Value: value}, nil
}

func (p *Parser) parseInterruptHandler() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected interrupt handler name")
	if err != nil {
		return nil, err
	}
	p.pushContext("InterruptHandler." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after handler name"); err != nil {
		return nil, err
	}

	var items []*ast.ResourceItem
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close interrupt handler %s", name)
		}
		if p.check(lexer.TokenString) {
			item, err := p.parseResourceItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		} else {
			p.advance()
		}
		p.skipNewlines()
	}
	p.advance() // }

	handler := &ast.InterruptHandler{
		NodeInfo:    at(start),
		HandlerType: "interrupt",
		HandlerName: name,
		Body:        items,
	}
	for _, item := range items {
		if item.Key == "vector" {
			handler.Vector = exprText(item.Value)
		}
	}
	if handler.Vector == "" {
		return nil, p.errorf("InterruptHandler %s requires a 'vector' resource item", name)
	}
	return handler, nil
}

func (p *Parser) parseDeviceDriver() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected driver name")
	if err != nil {
		return nil, err
	}
	p.pushContext("DeviceDriver." + name)
	defer p.popContext()

	if _, err := p.expect(lexer.TokenColon, "Expected ':' after driver name"); err != nil {
		return nil, err
	}
	devType, err := p.expect(lexer.TokenIdentifier, "Expected device type")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after device type"); err != nil {
		return nil, err
	}

	var ops []ast.Attribute
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close device driver %s", name)
		}
		opName, err := p.expect(lexer.TokenIdentifier, "Expected operation name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenColon, "Expected ':' after operation name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ops = append(ops, ast.Attribute{Name: opName.Literal, Value: value})
		p.match(lexer.TokenComma)
		p.skipNewlines()
	}
	p.advance() // }

	return &ast.DeviceDriver{
		NodeInfo:   at(start),
		DriverName: name,
		DeviceType: devType.Literal,
		Operations: ops,
	}, nil
}

func (p *Parser) parseBootloaderCode() (ast.Node, error) {
	start := p.advance()
	stage, err := p.expect(lexer.TokenIdentifier, "Expected bootloader stage")
	if err != nil {
		return nil, err
	}
	p.pushContext("Bootloader." + stage.Literal)
	defer p.popContext()

	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.BootloaderCode{NodeInfo: at(start), Stage: stage.Literal, Body: body}, nil
}

func (p *Parser) parseKernelEntry() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected kernel entry name")
	if err != nil {
		return nil, err
	}
	p.pushContext("KernelEntry." + name)
	defer p.popContext()

	entry := &ast.KernelEntry{NodeInfo: at(start), EntryName: name}
	if p.check(lexer.TokenLParen) {
		params, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		entry.Parameters = params
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	entry.Body = body
	return entry, nil
}

// exprText renders a literal expression as plain text, for fields that
// store values textually (interrupt vectors, size hints).
func exprText(n ast.Node) string {
	switch v := n.(type) {
	case *ast.String:
		return v.Value
	case *ast.Identifier:
		return v.Name
	case *ast.Number:
		if v.IsInteger {
			return strconv.FormatInt(int64(v.Value), 10)
		}
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *ast.FusedType:
		return v.Name
	default:
		return ""
	}
}
