package parser

import (
	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/token"
)

// Parser holds the state of our parser.
type Parser struct {
	stream    pipeline.TokenStream
	curToken  token.Token
	peekToken token.Token
	ctx       *pipeline.PipelineContext

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Precedence constants
const (
	LOWEST      = iota
	LOGIC_OR    // or
	LOGIC_AND   // and
	EQUALS      // =
	LESSGREATER // <= < >
	SUM         // + -
	PRODUCT     // * / div mod
	PREFIX      // not X or ~X
	CALL        // f x (application by juxtaposition)
)

var precedences = map[token.TokenType]int{
	token.ORX: LOGIC_OR,
	token.AND: LOGIC_AND,
	token.EQL: EQUALS,
	token.LEQ: LESSGREATER,
	token.LTH: LESSGREATER,
	token.GTH: LESSGREATER,
	token.ADD: SUM,
	token.SUB: SUM,
	token.MUL: PRODUCT,
	token.DIV: PRODUCT,
	token.MOD: PRODUCT,
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{
		stream: stream,
		ctx:    ctx,
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.VAR, p.parseIdentifier)
	p.registerPrefix(token.NUM, p.parseIntegerLiteral)
	p.registerPrefix(token.TRU, p.parseBoolean)
	p.registerPrefix(token.FLS, p.parseBoolean)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.NEG, p.parsePrefixExpression)
	p.registerPrefix(token.LPR, p.parseGroupedExpression)
	p.registerPrefix(token.LET, p.parseLetExpression)
	p.registerPrefix(token.IFX, p.parseIfExpression)
	p.registerPrefix(token.FNX, p.parseFnExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.ORX, token.AND, token.EQL,
		token.LEQ, token.LTH, token.GTH,
		token.ADD, token.SUB,
		token.MUL, token.DIV, token.MOD,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

// Parse consumes the token stream and returns the root expression.
// Anything left over after the expression is a parse error.
func (p *Parser) Parse() ast.Expression {
	for p.curTokenIs(token.NLN) {
		p.nextToken()
	}

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.peekTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseParser,
			diagnostics.ErrP001,
			p.peekToken,
			p.peekToken.Lexeme,
		))
		return nil
	}
	return exp
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil || (precedence > LOWEST && lowestOnly(p.curToken.Type)) {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix()

	for left != nil {
		if infix, ok := p.infixParseFns[p.peekToken.Type]; ok && precedence < p.peekPrecedence() {
			p.nextToken()
			left = infix(left)
			continue
		}
		// Application by juxtaposition binds tighter than any operator:
		// as long as the next token starts an atom, fold it in on the left.
		if precedence < CALL && p.peekStartsAtom() {
			p.nextToken()
			left = p.parseApplication(left)
			continue
		}
		break
	}
	return left
}

// lowestOnly reports whether the token's prefix form sits above the
// operator hierarchy: fn and if are legal only where a full expression
// is expected (top level, if branches, let def and body, inside
// parentheses), never as a bare operand of a unary or binary operator.
func lowestOnly(t token.TokenType) bool {
	return t == token.IFX || t == token.FNX
}

// peekStartsAtom reports whether the next token can begin an atom of an
// application chain. A newline ends the chain.
func (p *Parser) peekStartsAtom() bool {
	switch p.peekToken.Type {
	case token.VAR, token.NUM, token.TRU, token.FLS, token.LPR:
		return true
	}
	return false
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// skipPeekNewlines consumes newline tokens at expression joints, so that
// the next meaningful token becomes the peek token.
func (p *Parser) skipPeekNewlines() {
	for p.peekTokenIs(token.NLN) {
		p.nextToken()
	}
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
		diagnostics.PhaseParser,
		diagnostics.ErrP005,
		p.peekToken,
		t,
		p.peekToken.Type,
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.ILL {
		// An unrecognised character reaches the parser as an ILLEGAL
		// token; report it as a lexical failure.
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseLexer,
			diagnostics.ErrL001,
			tok,
			tok.Lexeme,
		))
		return
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewPhaseError(
		diagnostics.PhaseParser,
		diagnostics.ErrP004,
		tok,
		tok.Lexeme,
	))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}
