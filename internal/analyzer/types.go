package analyzer

import (
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/typesystem"
)

// TypesProcessor generates the type-equality constraints for the program
// and closes them into an equivalence partition. Contradictory classes
// are not an error at this stage — Partition.Conflicts carries them for
// the caller.
type TypesProcessor struct{}

func (tp *TypesProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	gen := typesystem.NewGenerator()
	constraints, err := gen.Generate(ctx.AstRoot, gen.Fresh())
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewPhaseError(
			diagnostics.PhaseTypes,
			diagnostics.ErrT001,
			ctx.AstRoot.GetToken(),
			unsupportedForm(err),
		))
		return ctx
	}

	ctx.Constraints = constraints
	ctx.Types = typesystem.Unify(constraints)
	return ctx
}

func unsupportedForm(err error) string {
	if ue, ok := err.(*typesystem.UnsupportedError); ok {
		return ue.Form
	}
	return err.Error()
}
