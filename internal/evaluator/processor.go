package evaluator

import (
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	result := Eval(ctx.AstRoot, NewEnvironment())
	if err, ok := result.(*Error); ok {
		code := diagnostics.ErrR002
		switch err.Kind {
		case DefError:
			code = diagnostics.ErrR001
		case ArithError:
			code = diagnostics.ErrR003
		}
		ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseRuntime,
			code,
			ctx.AstRoot.GetToken(),
			err.Message,
		))
		return ctx
	}

	ctx.Result = result
	return ctx
}
