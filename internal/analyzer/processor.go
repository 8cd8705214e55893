package analyzer

import (
	"github.com/funvibe/minml/internal/pipeline"
)

// UseDefProcessor records the program's free variables on the context.
type UseDefProcessor struct{}

func (up *UseDefProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}
	ctx.FreeVars = FreeVars(ctx.AstRoot, nil)
	return ctx
}

// RenameProcessor rewrites binder names in place. Codegen depends on it:
// registers named after identifiers are only sound once binders are
// globally unique.
type RenameProcessor struct{}

func (rp *RenameProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}
	NewRenamer().Rename(ctx.AstRoot)
	return ctx
}
