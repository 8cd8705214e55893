package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/lexer"
	"github.com/funvibe/minml/internal/parser"
	"github.com/funvibe/minml/internal/pipeline"
	"github.com/funvibe/minml/internal/typesystem"
)

func parse(t *testing.T, input string) ast.Expression {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	require.Empty(t, ctx.Errors, "parse errors for %q", input)
	return ctx.AstRoot
}

func generate(t *testing.T, input string, expected typesystem.Type) []typesystem.Constraint {
	t.Helper()
	cs, err := typesystem.NewGenerator().Generate(parse(t, input), expected)
	require.NoError(t, err)
	return cs
}

func TestGenerate_Literals(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}

	cs := generate(t, "42", handle)
	assert.Equal(t, []typesystem.Constraint{{Left: typesystem.TInt, Right: handle}}, cs)

	cs = generate(t, "true", handle)
	assert.Equal(t, []typesystem.Constraint{{Left: typesystem.TBool, Right: handle}}, cs)

	cs = generate(t, "x", handle)
	assert.Equal(t, []typesystem.Constraint{{Left: typesystem.TVar{Name: "x"}, Right: handle}}, cs)
}

func TestGenerate_Operators(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}

	// ~x: the operand is int and so is the whole expression.
	cs := generate(t, "~x", handle)
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "x"}, Right: typesystem.TInt},
		{Left: typesystem.TInt, Right: handle},
	}, cs)

	// x < y: int operands, bool result.
	cs = generate(t, "x < y", handle)
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "x"}, Right: typesystem.TInt},
		{Left: typesystem.TVar{Name: "y"}, Right: typesystem.TInt},
		{Left: typesystem.TBool, Right: handle},
	}, cs)

	// not p or q: bool through and through.
	cs = generate(t, "not p or q", handle)
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "p"}, Right: typesystem.TBool},
		{Left: typesystem.TBool, Right: typesystem.TBool},
		{Left: typesystem.TVar{Name: "q"}, Right: typesystem.TBool},
		{Left: typesystem.TBool, Right: handle},
	}, cs)

	// mod follows the div schema.
	cs = generate(t, "x mod 2", handle)
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "x"}, Right: typesystem.TInt},
		{Left: typesystem.TInt, Right: typesystem.TInt},
		{Left: typesystem.TInt, Right: handle},
	}, cs)
}

// Equality ties both operands to one fresh variable.
func TestGenerate_Equality(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}
	cs := generate(t, "x = y", handle)

	fresh := typesystem.TVar{Name: "TV_1"}
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "x"}, Right: fresh},
		{Left: typesystem.TVar{Name: "y"}, Right: fresh},
		{Left: typesystem.TBool, Right: handle},
	}, cs)
}

// Both branches of a conditional share a fresh variable tied to the
// expected handle.
func TestGenerate_If(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}
	cs := generate(t, "if c then x else y", handle)

	fresh := typesystem.TVar{Name: "TV_1"}
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TVar{Name: "c"}, Right: typesystem.TBool},
		{Left: typesystem.TVar{Name: "x"}, Right: fresh},
		{Left: typesystem.TVar{Name: "y"}, Right: fresh},
		{Left: handle, Right: fresh},
	}, cs)
}

// A let generates its definition against the binder's own identifier.
func TestGenerate_Let(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}
	cs := generate(t, "let v <- 42 in v < 8 end", handle)

	fresh := typesystem.TVar{Name: "TV_1"}
	v := typesystem.TVar{Name: "v"}
	assert.Equal(t, []typesystem.Constraint{
		{Left: typesystem.TInt, Right: v},
		{Left: v, Right: typesystem.TInt},
		{Left: typesystem.TInt, Right: typesystem.TInt},
		{Left: typesystem.TBool, Right: fresh},
		{Left: handle, Right: fresh},
	}, cs)
}

// A base-type annotation ties the binder to the tag.
func TestGenerate_LetAnnotation(t *testing.T) {
	handle := typesystem.TVar{Name: "T"}
	cs := generate(t, "let v : int <- 42 in v end", handle)
	assert.Contains(t, cs, typesystem.Constraint{Left: typesystem.TVar{Name: "v"}, Right: typesystem.TInt})
}

func TestGenerate_FreshVariablesAreDistinct(t *testing.T) {
	gen := typesystem.NewGenerator()
	assert.Equal(t, "TV_1", gen.Fresh().Name)
	assert.Equal(t, "TV_2", gen.Fresh().Name)
	assert.Equal(t, "TV_3", gen.Fresh().Name)
}

// Functions and applications are outside the first-order constraint
// language.
func TestGenerate_Unsupported(t *testing.T) {
	gen := typesystem.NewGenerator()

	_, err := gen.Generate(parse(t, "fn x => x"), gen.Fresh())
	var unsupported *typesystem.UnsupportedError
	require.ErrorAs(t, err, &unsupported)

	_, err = gen.Generate(parse(t, "f 1"), gen.Fresh())
	require.ErrorAs(t, err, &unsupported)

	_, err = gen.Generate(parse(t, "1 + f 1"), gen.Fresh())
	require.ErrorAs(t, err, &unsupported)
}
