package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/minml/internal/analyzer"
	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/evaluator"
)

// collectBinders walks the tree gathering every binder name in order.
func collectBinders(node ast.Expression, out *[]string) {
	switch n := node.(type) {
	case *ast.LetExpression:
		collectBinders(n.Def, out)
		*out = append(*out, n.Name)
		collectBinders(n.Body, out)
	case *ast.FnExpression:
		*out = append(*out, n.Param)
		collectBinders(n.Body, out)
	case *ast.NegExpression:
		collectBinders(n.Operand, out)
	case *ast.NotExpression:
		collectBinders(n.Operand, out)
	case *ast.IfExpression:
		collectBinders(n.Condition, out)
		collectBinders(n.Consequence, out)
		collectBinders(n.Alternative, out)
	case *ast.AppExpression:
		collectBinders(n.Fn, out)
		collectBinders(n.Arg, out)
	case *ast.AddExpression:
		collectBinders(n.Left, out)
		collectBinders(n.Right, out)
	case *ast.SubExpression:
		collectBinders(n.Left, out)
		collectBinders(n.Right, out)
	case *ast.MulExpression:
		collectBinders(n.Left, out)
		collectBinders(n.Right, out)
	case *ast.EqlExpression:
		collectBinders(n.Left, out)
		collectBinders(n.Right, out)
	}
}

func rename(t *testing.T, input string) ast.Expression {
	t.Helper()
	root := parse(t, input)
	analyzer.NewRenamer().Rename(root)
	return root
}

func TestRename_BindersUnique(t *testing.T) {
	inputs := []string{
		"let x <- 2 in x + 3 end",
		"let x <- (let x <- 2 in x + 3 end) in x * 10 end",
		// Sibling scopes must not share a fresh name.
		"(let x <- 1 in x end) + (let x <- 2 in x end)",
		"let x <- 10 in let f <- fn y => y + x in let x <- 99 in f 1 end end end",
		"fn x => fn x => x",
		"let f <- fn x => x in f (let x <- 1 in x end) end",
	}

	for _, input := range inputs {
		root := rename(t, input)
		var binders []string
		collectBinders(root, &binders)

		seen := map[string]bool{}
		for _, name := range binders {
			assert.False(t, seen[name], "duplicate binder %q in %s", name, input)
			seen[name] = true
		}
	}
}

func TestRename_OccurrencesFollowBinders(t *testing.T) {
	root := rename(t, "let x <- 2 in x + 3 end")
	let, ok := root.(*ast.LetExpression)
	require.True(t, ok)
	assert.Equal(t, "x_0", let.Name)

	add, ok := let.Body.(*ast.AddExpression)
	require.True(t, ok)
	use, ok := add.Left.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, let.Name, use.Value)
}

func TestRename_InnermostBinderWins(t *testing.T) {
	root := rename(t, "let x <- 1 in let x <- 2 in x end end")
	outer := root.(*ast.LetExpression)
	inner := outer.Body.(*ast.LetExpression)
	use := inner.Body.(*ast.Identifier)

	assert.NotEqual(t, outer.Name, inner.Name)
	assert.Equal(t, inner.Name, use.Value)
}

// A definition is evaluated outside its own binding, so its occurrences
// refer to the enclosing binder.
func TestRename_DefOutsideScope(t *testing.T) {
	root := rename(t, "let x <- 1 in let x <- x in x end end")
	outer := root.(*ast.LetExpression)
	inner := outer.Body.(*ast.LetExpression)
	defUse := inner.Def.(*ast.Identifier)

	assert.Equal(t, outer.Name, defUse.Value)
	assert.Equal(t, inner.Name, inner.Body.(*ast.Identifier).Value)
}

// Occurrences bound by nothing are not the rename pass's concern.
func TestRename_FreeVarsUntouched(t *testing.T) {
	root := rename(t, "let x <- 1 in x + z end")
	free := analyzer.FreeVars(root, nil)
	assert.Equal(t, []string{"z"}, free)
}

// Renaming must not change what the program computes.
func TestRename_PreservesEvaluation(t *testing.T) {
	inputs := []string{
		"let x <- 5 in x + 3 end",
		"let a <- 2 in let b <- 3 in a + b end end",
		"let x <- 10 in let f <- fn y => y + x in let x <- 99 in f 1 end end end",
		"(let x <- 1 in x end) + (let x <- 2 in x end)",
		"let add <- fn x => fn y => x + y in add 2 3 end",
		"if 2 < 3 then 1 else 2",
	}
	for _, input := range inputs {
		plain := evaluator.Eval(parse(t, input), evaluator.NewEnvironment())
		renamed := evaluator.Eval(rename(t, input), evaluator.NewEnvironment())
		assert.Equal(t, plain.Inspect(), renamed.Inspect(), "input: %s", input)
	}
}
