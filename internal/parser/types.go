package parser

import (
	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/config"
	"github.com/funvibe/minml/internal/token"
)

// parseTypes parses a type annotation. The arrow is right-associative:
//
//	types ::= type ('->' types)?
//	type  ::= 'int' | 'bool' | '(' types ')'
//
// curToken is positioned on the first token of the annotation; on return
// it sits on the last token consumed.
func (p *Parser) parseTypes() ast.Type {
	t := p.parseType()
	if t == nil {
		return nil
	}
	if p.peekTokenIs(token.TPF) {
		p.nextToken()
		arrow := p.curToken
		p.nextToken()
		codomain := p.parseTypes()
		if codomain == nil {
			return nil
		}
		return &ast.ArrowType{Token: arrow, Domain: t, Codomain: codomain}
	}
	return t
}

func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.INT:
		return &ast.NamedType{Token: p.curToken, Name: config.TypeInt}
	case token.LGC:
		return &ast.NamedType{Token: p.curToken, Name: config.TypeBool}
	case token.LPR:
		p.nextToken()
		t := p.parseTypes()
		if t == nil {
			return nil
		}
		if !p.expectPeek(token.RPR) {
			return nil
		}
		return t
	}
	p.noPrefixParseFnError(p.curToken)
	return nil
}
