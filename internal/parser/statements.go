package parser

import (
	"fmt"

	"github.com/ailang-lang/ailang/internal/ast"
	"github.com/ailang-lang/ailang/internal/lexer"
)

func isArrowToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenArrowLeft, lexer.TokenArrowRight, lexer.TokenArrowBidirectional:
		return true
	}
	return false
}

func isVMNamespace(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenPageTable, lexer.TokenVirtualMemory, lexer.TokenMMIO,
		lexer.TokenCache, lexer.TokenTLB, lexer.TokenMemoryBarrier:
		return true
	}
	return false
}

// parseStatementBlock reads a brace-delimited statement list.
func (p *Parser) parseStatementBlock() ([]ast.Node, error) {
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{'"); err != nil {
		return nil, err
	}
	var body []ast.Node
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected '}' to close block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
		p.skipNewlines()
	}
	p.advance() // }
	return body, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.current()
	if isCommentToken(tok.Type) {
		p.advance()
		return nil, nil
	}

	// Single-token left sides of arrow assignments: counter <- 0.
	if isArrowToken(p.peek(1).Type) {
		return p.parseDataFlowAssignment()
	}

	switch tok.Type {
	case lexer.TokenRunTask:
		return p.parseRunTask()
	case lexer.TokenPrintMessage:
		return p.parsePrintMessage()
	case lexer.TokenReturnValue:
		return p.parseReturnValue()
	case lexer.TokenIfCondition:
		return p.parseIf()
	case lexer.TokenChoosePath:
		return p.parseChoosePath()
	case lexer.TokenWhileLoop:
		return p.parseWhile()
	case lexer.TokenForEvery:
		return p.parseForEvery()
	case lexer.TokenTryBlock:
		return p.parseTry()
	case lexer.TokenSendMessage:
		return p.parseSendMessage()
	case lexer.TokenReceiveMessage:
		return p.parseReceiveMessage()
	case lexer.TokenEveryInterval:
		return p.parseEveryInterval()
	case lexer.TokenWithSecurity:
		return p.parseWithSecurity()
	case lexer.TokenBreakLoop:
		return &ast.BreakLoop{NodeInfo: at(p.advance())}, nil
	case lexer.TokenContinueLoop:
		return &ast.ContinueLoop{NodeInfo: at(p.advance())}, nil
	case lexer.TokenHaltProgram:
		return p.parseHaltProgram()
	case lexer.TokenEnableInterrupts:
		return &ast.InterruptControl{NodeInfo: at(p.advance()), Operation: "enable"}, nil
	case lexer.TokenDisableInterrupts:
		return &ast.InterruptControl{NodeInfo: at(p.advance()), Operation: "disable"}, nil
	case lexer.TokenInlineAssembly:
		return p.parseInlineAssembly()
	case lexer.TokenSystemCall:
		return p.parseSystemCall()
	case lexer.TokenIdentifier:
		if p.peek(1).Type == lexer.TokenEquals {
			return p.parseAssignment()
		}
		return p.parseExpression()
	default:
		if isVMNamespace(tok.Type) {
			return p.parseVMOperation()
		}
		return p.parseExpression()
	}
}

func (p *Parser) parseDataFlowAssignment() (ast.Node, error) {
	start := p.current()
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	op := p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.DataFlowAssignment{
		NodeInfo: at(start),
		Operator: op.Literal,
		Left:     left,
		Right:    right,
	}, nil
}

func (p *Parser) parseAssignment() (ast.Node, error) {
	name := p.advance()
	p.advance() // =
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{NodeInfo: at(name), Target: name.Literal, Value: value}, nil
}

// parseRunTask handles both the statement and the expression form:
//
//	RunTask.Report(count-total, label-"done")
func (p *Parser) parseRunTask() (ast.Node, error) {
	start := p.advance()
	name, err := p.parseDeclName("Expected task name")
	if err != nil {
		return nil, err
	}
	task := &ast.RunTask{NodeInfo: at(start), TaskName: name}
	if p.check(lexer.TokenLParen) {
		args, err := p.parseNamedArguments()
		if err != nil {
			return nil, err
		}
		task.Arguments = args
	}
	return task, nil
}

// parseNamedArguments reads a (name-value, ...) argument list.
func (p *Parser) parseNamedArguments() ([]ast.Argument, error) {
	p.advance() // (
	var args []ast.Argument
	p.skipNewlines()
	for !p.check(lexer.TokenRParen) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ')' to close argument list")
		}
		name, err := p.expect(lexer.TokenIdentifier, "Expected argument name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenDash, "Expected '-' after argument name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument{Name: name.Literal, Value: value})
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

func (p *Parser) parsePrintMessage() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after PrintMessage"); err != nil {
		return nil, err
	}
	msg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after message"); err != nil {
		return nil, err
	}
	return &ast.PrintMessage{NodeInfo: at(start), Message: msg}, nil
}

func (p *Parser) parseReturnValue() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after ReturnValue"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnValue{NodeInfo: at(start), Value: value}, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	start := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.TokenThenBlock, "Expected ThenBlock after condition"); err != nil {
		return nil, err
	}

	p.pushContext("IfCondition.ThenBlock")
	thenBody, err := p.parseStatementBlock()
	p.popContext()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{NodeInfo: at(start), Condition: cond, ThenBody: thenBody}
	p.skipNewlines()
	if p.check(lexer.TokenElseBlock) {
		p.advance()
		p.pushContext("IfCondition.ElseBlock")
		elseBody, err := p.parseStatementBlock()
		p.popContext()
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = elseBody
	}
	return stmt, nil
}

func (p *Parser) parseChoosePath() (ast.Node, error) {
	start := p.advance()
	p.pushContext("ChoosePath")
	defer p.popContext()

	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after ChoosePath"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after expression"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace, "Expected '{' after ChoosePath expression"); err != nil {
		return nil, err
	}

	stmt := &ast.ChoosePath{NodeInfo: at(start), Expression: expr}
	p.skipNewlines()
	for !p.check(lexer.TokenRBrace) {
		switch p.current().Type {
		case lexer.TokenCaseOption:
			p.advance()
			value, err := p.expect(lexer.TokenString, "Expected case value string")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after case value"); err != nil {
				return nil, err
			}
			body, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			clause := ast.CaseClause{Value: value.Literal}
			if body != nil {
				clause.Body = []ast.Node{body}
			}
			stmt.Cases = append(stmt.Cases, clause)
		case lexer.TokenDefaultOption:
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after DefaultOption"); err != nil {
				return nil, err
			}
			body, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if body != nil {
				stmt.Default = []ast.Node{body}
			}
		case lexer.TokenEOF:
			return nil, p.errorf("Expected '}' to close ChoosePath")
		default:
			return nil, p.errorf("Expected CaseOption or DefaultOption, got %s", p.describe(p.current()))
		}
		p.skipNewlines()
	}
	p.advance() // }
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	start := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.pushContext("WhileLoop")
	defer p.popContext()
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{NodeInfo: at(start), Condition: cond, Body: body}, nil
}

func (p *Parser) parseForEvery() (ast.Node, error) {
	start := p.advance()
	variable, err := p.expect(lexer.TokenIdentifier, "Expected loop variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenIn, "Expected 'in' after loop variable"); err != nil {
		return nil, err
	}
	collection, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.pushContext(fmt.Sprintf("ForEvery(%s)", variable.Literal))
	defer p.popContext()
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForEvery{
		NodeInfo:   at(start),
		Variable:   variable.Literal,
		Collection: collection,
		Body:       body,
	}, nil
}

func (p *Parser) parseTry() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenColon, "Expected ':' after TryBlock"); err != nil {
		return nil, err
	}

	p.pushContext("TryBlock")
	body, err := p.parseStatementBlock()
	p.popContext()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Try{NodeInfo: at(start), Body: body}

	p.skipNewlines()
	for p.check(lexer.TokenCatchError) {
		p.advance()
		errType, err := p.expect(lexer.TokenIdentifier, "Expected error type after CatchError")
		if err != nil {
			return nil, err
		}
		p.pushContext("CatchError." + errType.Literal)
		catchBody, err := p.parseStatementBlock()
		p.popContext()
		if err != nil {
			return nil, err
		}
		stmt.CatchClauses = append(stmt.CatchClauses, ast.CatchClause{
			ErrorType: errType.Literal,
			Body:      catchBody,
		})
		p.skipNewlines()
	}

	if p.check(lexer.TokenFinallyBlock) {
		p.advance()
		if _, err := p.expect(lexer.TokenColon, "Expected ':' after FinallyBlock"); err != nil {
			return nil, err
		}
		p.pushContext("FinallyBlock")
		finallyBody, err := p.parseStatementBlock()
		p.popContext()
		if err != nil {
			return nil, err
		}
		stmt.FinallyBody = finallyBody
	}
	return stmt, nil
}

func (p *Parser) parseSendMessage() (ast.Node, error) {
	start := p.advance()
	target, err := p.parseDeclName("Expected message target")
	if err != nil {
		return nil, err
	}
	stmt := &ast.SendMessage{NodeInfo: at(start), Target: target}
	if p.check(lexer.TokenLParen) {
		args, err := p.parseNamedArguments()
		if err != nil {
			return nil, err
		}
		stmt.Parameters = args
	}
	return stmt, nil
}

func (p *Parser) parseReceiveMessage() (ast.Node, error) {
	start := p.advance()
	msgType, err := p.parseDeclName("Expected message type")
	if err != nil {
		return nil, err
	}
	p.pushContext("ReceiveMessage." + msgType)
	defer p.popContext()
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ReceiveMessage{NodeInfo: at(start), MessageType: msgType, Body: body}, nil
}

func (p *Parser) parseEveryInterval() (ast.Node, error) {
	start := p.advance()
	itype := p.current()
	if itype.Type != lexer.TokenIdentifier && !unitKeywords[itype.Type] {
		return nil, p.errorf("Expected interval type, got %s", p.describe(itype))
	}
	p.advance()
	if _, err := p.expect(lexer.TokenDash, "Expected '-' after interval type"); err != nil {
		return nil, err
	}
	value, err := p.expect(lexer.TokenNumber, "Expected interval value")
	if err != nil {
		return nil, err
	}
	interval, err := numberFromToken(value)
	if err != nil {
		return nil, p.errorf("%s", err)
	}
	p.pushContext(fmt.Sprintf("EveryInterval(%s-%s)", itype.Literal, value.Literal))
	defer p.popContext()
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.EveryInterval{
		NodeInfo:      at(start),
		IntervalType:  itype.Literal,
		IntervalValue: interval,
		Body:          body,
	}, nil
}

func (p *Parser) parseWithSecurity() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after WithSecurity"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenIdentifier, "Expected 'context' parameter"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenDash, "Expected '-' after parameter name"); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokenString, "Expected security context name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after context name"); err != nil {
		return nil, err
	}
	p.pushContext(fmt.Sprintf("WithSecurity(%s)", name.Literal))
	defer p.popContext()
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WithSecurity{NodeInfo: at(start), Context: name.Literal, Body: body}, nil
}

func (p *Parser) parseHaltProgram() (ast.Node, error) {
	start := p.advance()
	stmt := &ast.HaltProgram{NodeInfo: at(start)}
	if p.check(lexer.TokenLParen) {
		p.advance()
		msg, err := p.expect(lexer.TokenString, "Expected halt message string")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen, "Expected ')' after halt message"); err != nil {
			return nil, err
		}
		stmt.Message = msg.Literal
	}
	return stmt, nil
}

func (p *Parser) parseInlineAssembly() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after InlineAssembly"); err != nil {
		return nil, err
	}
	code, err := p.expect(lexer.TokenString, "Expected assembly string")
	if err != nil {
		return nil, err
	}
	stmt := &ast.InlineAssembly{NodeInfo: at(start), AssemblyCode: code.Literal}

	for p.match(lexer.TokenComma) {
		p.skipNewlines()
		section := p.current()
		switch {
		case section.Type == lexer.TokenIdentifier && section.Literal == "inputs":
			p.advance()
			bindings, err := p.parseAsmBindings()
			if err != nil {
				return nil, err
			}
			stmt.Inputs = bindings
		case section.Type == lexer.TokenIdentifier && section.Literal == "outputs":
			p.advance()
			bindings, err := p.parseAsmBindings()
			if err != nil {
				return nil, err
			}
			stmt.Outputs = bindings
		case section.Type == lexer.TokenIdentifier && section.Literal == "clobbers":
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after clobbers"); err != nil {
				return nil, err
			}
			clobbers, err := p.parseStringArray()
			if err != nil {
				return nil, err
			}
			stmt.Clobbers = clobbers
		case section.Type == lexer.TokenVolatile ||
			(section.Type == lexer.TokenIdentifier && section.Literal == "volatile"):
			p.advance()
			if _, err := p.expect(lexer.TokenColon, "Expected ':' after volatile"); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			stmt.Volatile = value
		default:
			return nil, p.errorf("Unexpected assembly section: %s", p.describe(section))
		}
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close InlineAssembly"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseAsmBindings() ([]ast.AsmBinding, error) {
	if _, err := p.expect(lexer.TokenColon, "Expected ':' after section name"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBracket, "Expected '[' to open bindings"); err != nil {
		return nil, err
	}
	var bindings []ast.AsmBinding
	p.skipNewlines()
	for !p.check(lexer.TokenRBracket) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorf("Expected ']' to close bindings")
		}
		if _, err := p.expect(lexer.TokenLParen, "Expected '(' to open binding"); err != nil {
			return nil, err
		}
		constraint, err := p.expect(lexer.TokenString, "Expected register constraint string")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenColon, "Expected ':' after constraint"); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close binding"); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.AsmBinding{Constraint: constraint.Literal, Expression: expr})
		if !p.match(lexer.TokenComma) {
			break
		}
		p.skipNewlines()
	}
	if _, err := p.expect(lexer.TokenRBracket, "Expected ']' to close bindings"); err != nil {
		return nil, err
	}
	return bindings, nil
}

func (p *Parser) parseSystemCall() (ast.Node, error) {
	start := p.advance()
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' after SystemCall"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLParen, "Expected '(' before call number"); err != nil {
		return nil, err
	}
	number, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.SystemCall{NodeInfo: at(start), CallNumber: number}
	for p.match(lexer.TokenComma) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Arguments = append(stmt.Arguments, arg)
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' after call arguments"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen, "Expected ')' to close SystemCall"); err != nil {
		return nil, err
	}
	return stmt, nil
}
