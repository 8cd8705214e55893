package pipeline

import (
	"github.com/funvibe/minml/internal/asm"
	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/diagnostics"
	"github.com/funvibe/minml/internal/typesystem"
)

// PipelineContext holds all the data passed between pipeline stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // Path to the source file (if any)
	TokenStream TokenStream
	AstRoot     ast.Expression

	// FreeVars is the result of the use-def stage.
	FreeVars []string

	// Constraints and Types are the results of the typing stages.
	Constraints []typesystem.Constraint
	Types       *typesystem.Partition

	// Program and ResultRegister are the results of the codegen stage.
	Program        *asm.Program
	ResultRegister string

	// Result is the evaluator's value. It is declared as an interface to
	// keep the evaluator free to depend on this package.
	Result interface{ Inspect() string }

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// Failed reports whether any stage has recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}
