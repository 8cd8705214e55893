package codegen

import (
	"fmt"

	"github.com/funvibe/minml/internal/asm"
	"github.com/funvibe/minml/internal/ast"
	"github.com/funvibe/minml/internal/config"
)

// UnsupportedError reports an expression that has no straight-line
// lowering: branching and closures are out of this generator's reach.
type UnsupportedError struct {
	Form string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("cannot lower %s expressions to straight-line code", e.Form)
}

// Generator lowers an AST to three-address instructions appended to an
// asm.Program. Each Gen call returns the name of the virtual register
// holding the sub-expression's result.
//
// Identifier results are registers named after the identifier itself, so
// the rename pass must have made binders unique before lowering.
type Generator struct {
	counter int
}

func NewGenerator() *Generator {
	return &Generator{}
}

// fresh mints the next result register: v1, v2, ...
func (g *Generator) fresh() string {
	g.counter++
	return fmt.Sprintf("%s%d", config.FreshRegPrefix, g.counter)
}

func (g *Generator) Gen(node ast.Expression, prog *asm.Program) (string, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		reg := g.fresh()
		prog.Append(asm.Addi{Rd: reg, Rs: config.ZeroRegister, Imm: n.Value})
		return reg, nil

	case *ast.BooleanLiteral:
		reg := g.fresh()
		var imm int64
		if n.Value {
			imm = 1
		}
		prog.Append(asm.Addi{Rd: reg, Rs: config.ZeroRegister, Imm: imm})
		return reg, nil

	case *ast.Identifier:
		// No instruction: the register carries the identifier's name.
		return n.Value, nil

	case *ast.NegExpression:
		operand, err := g.Gen(n.Operand, prog)
		if err != nil {
			return "", err
		}
		reg := g.fresh()
		prog.Append(asm.Sub{Rd: reg, Rs: config.ZeroRegister, Rt: operand})
		return reg, nil

	case *ast.NotExpression:
		// Logical complement is equality against zero.
		operand, err := g.Gen(n.Operand, prog)
		if err != nil {
			return "", err
		}
		return g.equality(operand, config.ZeroRegister, prog), nil

	case *ast.AddExpression:
		return g.binary(n.Left, n.Right, prog, func(rd, rs, rt string) asm.Instruction {
			return asm.Add{Rd: rd, Rs: rs, Rt: rt}
		})

	case *ast.SubExpression:
		return g.binary(n.Left, n.Right, prog, func(rd, rs, rt string) asm.Instruction {
			return asm.Sub{Rd: rd, Rs: rs, Rt: rt}
		})

	case *ast.MulExpression:
		return g.binary(n.Left, n.Right, prog, func(rd, rs, rt string) asm.Instruction {
			return asm.Mul{Rd: rd, Rs: rs, Rt: rt}
		})

	case *ast.DivExpression:
		return g.binary(n.Left, n.Right, prog, func(rd, rs, rt string) asm.Instruction {
			return asm.Div{Rd: rd, Rs: rs, Rt: rt}
		})

	case *ast.ModExpression:
		// a mod b = a - (a div b) * b
		lhs, err := g.Gen(n.Left, prog)
		if err != nil {
			return "", err
		}
		rhs, err := g.Gen(n.Right, prog)
		if err != nil {
			return "", err
		}
		quot := g.fresh()
		prog.Append(asm.Div{Rd: quot, Rs: lhs, Rt: rhs})
		prod := g.fresh()
		prog.Append(asm.Mul{Rd: prod, Rs: quot, Rt: rhs})
		reg := g.fresh()
		prog.Append(asm.Sub{Rd: reg, Rs: lhs, Rt: prod})
		return reg, nil

	case *ast.LthExpression:
		return g.binary(n.Left, n.Right, prog, func(rd, rs, rt string) asm.Instruction {
			return asm.Slt{Rd: rd, Rs: rs, Rt: rt}
		})

	case *ast.EqlExpression:
		lhs, err := g.Gen(n.Left, prog)
		if err != nil {
			return "", err
		}
		rhs, err := g.Gen(n.Right, prog)
		if err != nil {
			return "", err
		}
		return g.equality(lhs, rhs, prog), nil

	case *ast.LeqExpression:
		// l <= r is (l < r) + (l = r); the two are mutually exclusive
		// 0/1 values, so plain addition is safe.
		lhs, err := g.Gen(n.Left, prog)
		if err != nil {
			return "", err
		}
		rhs, err := g.Gen(n.Right, prog)
		if err != nil {
			return "", err
		}
		less := g.fresh()
		prog.Append(asm.Slt{Rd: less, Rs: lhs, Rt: rhs})
		eq := g.equality(lhs, rhs, prog)
		reg := g.fresh()
		prog.Append(asm.Add{Rd: reg, Rs: less, Rt: eq})
		return reg, nil

	case *ast.LetExpression:
		def, err := g.Gen(n.Def, prog)
		if err != nil {
			return "", err
		}
		// Copy the definition into a register named after the binder.
		prog.Append(asm.Add{Rd: n.Name, Rs: def, Rt: config.ZeroRegister})
		return g.Gen(n.Body, prog)

	case *ast.AndExpression, *ast.OrExpression:
		return "", &UnsupportedError{Form: "boolean connective"}
	case *ast.IfExpression:
		return "", &UnsupportedError{Form: "conditional"}
	case *ast.FnExpression:
		return "", &UnsupportedError{Form: "function"}
	case *ast.AppExpression:
		return "", &UnsupportedError{Form: "application"}
	}

	return "", &UnsupportedError{Form: fmt.Sprintf("%T", node)}
}

func (g *Generator) binary(left, right ast.Expression, prog *asm.Program, build func(rd, rs, rt string) asm.Instruction) (string, error) {
	lhs, err := g.Gen(left, prog)
	if err != nil {
		return "", err
	}
	rhs, err := g.Gen(right, prog)
	if err != nil {
		return "", err
	}
	reg := g.fresh()
	prog.Append(build(reg, lhs, rhs))
	return reg, nil
}

// equality emits the branch-free equality gadget: with d = lhs - rhs,
// (d < 1) xor (d < 0) is 1 exactly when d == 0.
func (g *Generator) equality(lhs, rhs string, prog *asm.Program) string {
	delta := g.fresh()
	cond1 := g.fresh()
	cond2 := g.fresh()
	reg := g.fresh()
	prog.Append(asm.Sub{Rd: delta, Rs: lhs, Rt: rhs})
	prog.Append(asm.Slti{Rd: cond1, Rs: delta, Imm: 1})
	prog.Append(asm.Slti{Rd: cond2, Rs: delta, Imm: 0})
	prog.Append(asm.Xor{Rd: reg, Rs: cond1, Rt: cond2})
	return reg
}
