package codegen

import (
	"github.com/funvibe/minml/internal/asm"
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/pipeline"
)

// CodegenProcessor lowers the AST into a fresh asm.Program. Run it after
// the rename stage: register names are identifier names.
type CodegenProcessor struct{}

func (cp *CodegenProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	prog := asm.NewProgram()
	reg, err := NewGenerator().Gen(ctx.AstRoot, prog)
	if err != nil {
		form := err.Error()
		if ue, ok := err.(*UnsupportedError); ok {
			form = ue.Form
		}
		ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseCodegen,
			diagnostics.ErrG001,
			ctx.AstRoot.GetToken(),
			form,
		))
		return ctx
	}

	ctx.Program = prog
	ctx.ResultRegister = reg
	return ctx
}
