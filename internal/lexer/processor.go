package lexer

import (
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/token"
)

const lookaheadBufferSize = 10

// bufferedLexer adapts the Lexer into a pipeline.TokenStream. It drops
// whitespace and comment tokens, so the parser only ever sees the
// filtered stream.
type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

// nextFiltered pulls raw tokens until one survives the trivia filter.
func (bl *bufferedLexer) nextFiltered() token.Token {
	for {
		tok := bl.l.NextToken()
		if token.Trivia(tok.Type) {
			continue
		}
		return tok
	}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.nextFiltered()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	// Ensure buffer has enough tokens for the requested lookahead.
	for len(bl.buffer)-bl.pos < n {
		nextTok := bl.nextFiltered()
		bl.buffer = append(bl.buffer, nextTok)
		if nextTok.Type == token.EOF {
			break
		}
	}

	// Trim buffer if it's too large
	if bl.pos > lookaheadBufferSize {
		bl.buffer = bl.buffer[bl.pos:]
		bl.pos = 0
	}

	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}

	return bl.buffer[bl.pos:end]
}

var _ pipeline.TokenStream = (*bufferedLexer)(nil)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}
