package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/minml/internal/analyzer"
	"github.com/funvibe/minml/internal/codegen"
	"github.com/funvibe/minml/internal/evaluator"
	"github.com/funvibe/minml/internal/lexer"
	"github.com/funvibe/minml/internal/parser"
	"github.com/funvibe/minml/internal/pipeline"
)

func fullPipeline() *pipeline.Pipeline {
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.UseDefProcessor{},
		&evaluator.EvaluatorProcessor{},
		&analyzer.RenameProcessor{},
		&codegen.CodegenProcessor{},
	)
}

func TestPipeline_FullRun(t *testing.T) {
	ctx := fullPipeline().Run(pipeline.NewPipelineContext("let x <- 5 in x + 3 end"))

	require.False(t, ctx.Failed())
	require.NotNil(t, ctx.AstRoot)
	assert.Empty(t, ctx.FreeVars)
	require.NotNil(t, ctx.Result)
	assert.Equal(t, "8", ctx.Result.Inspect())
	require.NotNil(t, ctx.Program)
	assert.NotZero(t, ctx.Program.Len())
	assert.NotEmpty(t, ctx.ResultRegister)
}

// Source-to-value scenarios through the evaluating pipeline.
func TestPipeline_Scenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 * (3 + 4)", "14"},
		{"let x <- 5 in x + 3 end", "8"},
		{"let a <- 2 in let b <- 3 in a + b end end", "5"},
		{"if 2 < 3 then 1 else 2", "1"},
		{"(fn v => v + 1) 2", "3"},
		{"let x <- 10 in let f <- fn y => y + x in let x <- 99 in f 1 end end end", "11"},
		{"not (4 < 4)", "true"},
	}

	for _, tc := range tests {
		ctx := pipeline.New(
			&lexer.LexerProcessor{},
			&parser.ParserProcessor{},
			&evaluator.EvaluatorProcessor{},
		).Run(pipeline.NewPipelineContext(tc.input))

		require.False(t, ctx.Failed(), "input: %s", tc.input)
		require.NotNil(t, ctx.Result, "input: %s", tc.input)
		assert.Equal(t, tc.expected, ctx.Result.Inspect(), "input: %s", tc.input)
	}
}

// A stage that fails stops everything after it.
func TestPipeline_FirstViolationWins(t *testing.T) {
	ctx := fullPipeline().Run(pipeline.NewPipelineContext("let x <- in x end"))

	require.True(t, ctx.Failed())
	assert.Nil(t, ctx.Result)
	assert.Nil(t, ctx.Program)
}

func TestPipeline_TypesStage(t *testing.T) {
	ctx := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.TypesProcessor{},
	).Run(pipeline.NewPipelineContext("let v <- 42 in v < 8 end"))

	require.False(t, ctx.Failed())
	require.NotEmpty(t, ctx.Constraints)
	require.NotNil(t, ctx.Types)

	// v ended up an int.
	sets := ctx.Types.Sets()
	assert.Contains(t, sets["v"], "int")
	assert.Empty(t, ctx.Types.Conflicts())
}

func TestPipeline_FreeVarsStage(t *testing.T) {
	ctx := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.UseDefProcessor{},
	).Run(pipeline.NewPipelineContext("let f <- fn y => y + x in f 1 end"))

	require.False(t, ctx.Failed())
	assert.Equal(t, []string{"x"}, ctx.FreeVars)
}
