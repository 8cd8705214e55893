package analyzer

import (
	"github.com/funvibe/minml/internal/ast"
)

// children returns the sub-expressions of a node in evaluation order.
// The binder variants are absent on purpose: every pass that cares about
// scope handles let and fn itself.
func children(node ast.Expression) []ast.Expression {
	switch n := node.(type) {
	case *ast.NegExpression:
		return []ast.Expression{n.Operand}
	case *ast.NotExpression:
		return []ast.Expression{n.Operand}
	case *ast.AddExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.SubExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.MulExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.DivExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.ModExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.EqlExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.LthExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.LeqExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.AndExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.OrExpression:
		return []ast.Expression{n.Left, n.Right}
	case *ast.IfExpression:
		return []ast.Expression{n.Condition, n.Consequence, n.Alternative}
	case *ast.AppExpression:
		return []ast.Expression{n.Fn, n.Arg}
	}
	return nil
}
