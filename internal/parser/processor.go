package parser

import (
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}
	if ctx.TokenStream == nil {
		err := diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP001, token.Token{}, "token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.Parse()

	return ctx
}
