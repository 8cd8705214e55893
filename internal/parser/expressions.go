package parser

import (
	"strconv"

	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseParser,
			diagnostics.ErrP001,
			p.curToken,
			p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRU)}
}

// parsePrefixExpression handles 'not' and '~'. The operand binds looser
// than application, so `not f x` negates the application.
func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	unary := ast.UnaryExpression{Token: tok, Operand: operand}
	if tok.Type == token.NOT {
		return &ast.NotExpression{UnaryExpression: unary}
	}
	return &ast.NegExpression{UnaryExpression: unary}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPR) {
		return nil
	}
	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	bin := ast.BinaryExpression{Token: tok, Left: left, Right: right}
	switch tok.Type {
	case token.ADD:
		return &ast.AddExpression{BinaryExpression: bin}
	case token.SUB:
		return &ast.SubExpression{BinaryExpression: bin}
	case token.MUL:
		return &ast.MulExpression{BinaryExpression: bin}
	case token.DIV:
		return &ast.DivExpression{BinaryExpression: bin}
	case token.MOD:
		return &ast.ModExpression{BinaryExpression: bin}
	case token.EQL:
		return &ast.EqlExpression{BinaryExpression: bin}
	case token.LTH:
		return &ast.LthExpression{BinaryExpression: bin}
	case token.LEQ:
		return &ast.LeqExpression{BinaryExpression: bin}
	case token.GTH:
		// The AST carries no greater-than variant: a > b is b < a.
		return &ast.LthExpression{BinaryExpression: ast.BinaryExpression{Token: tok, Left: right, Right: left}}
	case token.AND:
		return &ast.AndExpression{BinaryExpression: bin}
	case token.ORX:
		return &ast.OrExpression{BinaryExpression: bin}
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
		diagnostics.PhaseParser,
		diagnostics.ErrP001,
		tok,
		tok.Lexeme,
	))
	return nil
}

// parseApplication folds one more atom into an application chain.
// curToken is positioned on the first token of the argument.
func (p *Parser) parseApplication(fn ast.Expression) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	arg := prefix()
	if arg == nil {
		return nil
	}
	return &ast.AppExpression{Token: fn.GetToken(), Fn: fn, Arg: arg}
}

func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.curToken

	p.nextToken()
	condition := p.parseExpression(LOWEST)
	if condition == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.THN) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	consequence := p.parseExpression(LOWEST)
	if consequence == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.ELS) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	alternative := p.parseExpression(LOWEST)
	if alternative == nil {
		return nil
	}

	return &ast.IfExpression{
		Token:       tok,
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}
}

func (p *Parser) parseLetExpression() ast.Expression {
	tok := p.curToken

	p.skipPeekNewlines()
	if !p.expectPeek(token.VAR) {
		return nil
	}
	name := p.curToken.Lexeme

	var annotation ast.Type
	if p.peekTokenIs(token.COL) {
		p.nextToken()
		p.nextToken()
		annotation = p.parseTypes()
		if annotation == nil {
			return nil
		}
	}

	if !p.expectPeek(token.ASN) {
		return nil
	}
	p.nextToken()
	def := p.parseExpression(LOWEST)
	if def == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.INX) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.END) {
		return nil
	}

	return &ast.LetExpression{
		Token:          tok,
		Name:           name,
		TypeAnnotation: annotation,
		Def:            def,
		Body:           body,
	}
}

func (p *Parser) parseFnExpression() ast.Expression {
	tok := p.curToken

	if !p.expectPeek(token.VAR) {
		return nil
	}
	param := p.curToken.Lexeme

	var annotation ast.Type
	if p.peekTokenIs(token.COL) {
		p.nextToken()
		p.nextToken()
		annotation = p.parseTypes()
		if annotation == nil {
			return nil
		}
	}

	if !p.expectPeek(token.ARW) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	return &ast.FnExpression{
		Token:     tok,
		Param:     param,
		ParamType: annotation,
		Body:      body,
	}
}
