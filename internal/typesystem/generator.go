package typesystem

import (
	"fmt"

	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/config"
)

// UnsupportedError reports an expression outside the first-order
// constraint language (functions and applications need arrow terms).
type UnsupportedError struct {
	Form string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no constraint schema for %s expressions", e.Form)
}

// Generator mints fresh type variables and emits type-equality
// constraints. Each Generate call takes the expected type handle for the
// node and returns the constraints that make the node agree with it.
type Generator struct {
	counter int
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Fresh mints the next type variable: TV_1, TV_2, ...
func (g *Generator) Fresh() TVar {
	g.counter++
	return TVar{Name: fmt.Sprintf("%s%d", config.FreshTypeVarPrefix, g.counter)}
}

func (g *Generator) Generate(node ast.Expression, expected Type) ([]Constraint, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return []Constraint{{Left: TInt, Right: expected}}, nil

	case *ast.BooleanLiteral:
		return []Constraint{{Left: TBool, Right: expected}}, nil

	case *ast.Identifier:
		return []Constraint{{Left: TVar{Name: n.Value}, Right: expected}}, nil

	case *ast.NegExpression:
		return g.unary(n.Operand, TInt, TInt, expected)

	case *ast.NotExpression:
		return g.unary(n.Operand, TBool, TBool, expected)

	case *ast.AddExpression:
		return g.binary(n.Left, n.Right, TInt, TInt, expected)
	case *ast.SubExpression:
		return g.binary(n.Left, n.Right, TInt, TInt, expected)
	case *ast.MulExpression:
		return g.binary(n.Left, n.Right, TInt, TInt, expected)
	case *ast.DivExpression:
		return g.binary(n.Left, n.Right, TInt, TInt, expected)
	case *ast.ModExpression:
		return g.binary(n.Left, n.Right, TInt, TInt, expected)

	case *ast.LthExpression:
		return g.binary(n.Left, n.Right, TInt, TBool, expected)
	case *ast.LeqExpression:
		return g.binary(n.Left, n.Right, TInt, TBool, expected)

	case *ast.AndExpression:
		return g.binary(n.Left, n.Right, TBool, TBool, expected)
	case *ast.OrExpression:
		return g.binary(n.Left, n.Right, TBool, TBool, expected)

	case *ast.EqlExpression:
		// Both sides share a fresh handle; the result is boolean.
		fresh := g.Fresh()
		cs, err := g.Generate(n.Left, fresh)
		if err != nil {
			return nil, err
		}
		rcs, err := g.Generate(n.Right, fresh)
		if err != nil {
			return nil, err
		}
		cs = append(cs, rcs...)
		return append(cs, Constraint{Left: TBool, Right: expected}), nil

	case *ast.IfExpression:
		fresh := g.Fresh()
		cs, err := g.Generate(n.Condition, TBool)
		if err != nil {
			return nil, err
		}
		ccs, err := g.Generate(n.Consequence, fresh)
		if err != nil {
			return nil, err
		}
		cs = append(cs, ccs...)
		acs, err := g.Generate(n.Alternative, fresh)
		if err != nil {
			return nil, err
		}
		cs = append(cs, acs...)
		return append(cs, Constraint{Left: expected, Right: fresh}), nil

	case *ast.LetExpression:
		// The binder's identifier is itself a handle: the definition is
		// generated against it, so every use site ties back to it.
		fresh := g.Fresh()
		cs, err := g.Generate(n.Def, TVar{Name: n.Name})
		if err != nil {
			return nil, err
		}
		if named, ok := n.TypeAnnotation.(*ast.NamedType); ok {
			cs = append(cs, Constraint{Left: TVar{Name: n.Name}, Right: TCon{Name: named.Name}})
		}
		bcs, err := g.Generate(n.Body, fresh)
		if err != nil {
			return nil, err
		}
		cs = append(cs, bcs...)
		return append(cs, Constraint{Left: expected, Right: fresh}), nil

	case *ast.FnExpression:
		return nil, &UnsupportedError{Form: "function"}

	case *ast.AppExpression:
		return nil, &UnsupportedError{Form: "application"}
	}

	return nil, &UnsupportedError{Form: fmt.Sprintf("%T", node)}
}

func (g *Generator) unary(operand ast.Expression, operandType Type, result Type, expected Type) ([]Constraint, error) {
	cs, err := g.Generate(operand, operandType)
	if err != nil {
		return nil, err
	}
	return append(cs, Constraint{Left: result, Right: expected}), nil
}

func (g *Generator) binary(left, right ast.Expression, operandType Type, result Type, expected Type) ([]Constraint, error) {
	cs, err := g.Generate(left, operandType)
	if err != nil {
		return nil, err
	}
	rcs, err := g.Generate(right, operandType)
	if err != nil {
		return nil, err
	}
	cs = append(cs, rcs...)
	return append(cs, Constraint{Left: result, Right: expected}), nil
}
