package evaluator

import (
	"github.com/funvibe/minml/internal/ast"
)

// Eval interprets an expression under an environment. The result is an
// Integer, a Boolean, a Function, or an Error that aborted the walk.
func Eval(node ast.Expression, env *Environment) Object {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}

	case *ast.BooleanLiteral:
		return nativeBool(node.Value)

	case *ast.Identifier:
		if val, ok := env.Get(node.Value); ok {
			return val
		}
		return newError(DefError, "undefined variable: %s", node.Value)

	case *ast.NegExpression:
		return evalNeg(node, env)

	case *ast.NotExpression:
		return evalNot(node, env)

	case *ast.AddExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			return &Integer{Value: l + r}
		})

	case *ast.SubExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			return &Integer{Value: l - r}
		})

	case *ast.MulExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			return &Integer{Value: l * r}
		})

	case *ast.DivExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			if r == 0 {
				return newError(ArithError, "division by zero")
			}
			return &Integer{Value: floorDiv(l, r)}
		})

	case *ast.ModExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			if r == 0 {
				return newError(ArithError, "modulo by zero")
			}
			return &Integer{Value: floorMod(l, r)}
		})

	case *ast.LthExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			return nativeBool(l < r)
		})

	case *ast.LeqExpression:
		return evalArith(node.Left, node.Right, env, func(l, r int64) Object {
			return nativeBool(l <= r)
		})

	case *ast.EqlExpression:
		return evalEql(node, env)

	case *ast.AndExpression:
		return evalAnd(node, env)

	case *ast.OrExpression:
		return evalOr(node, env)

	case *ast.IfExpression:
		return evalIf(node, env)

	case *ast.LetExpression:
		return evalLet(node, env)

	case *ast.FnExpression:
		return &Function{Param: node.Param, Body: node.Body, Env: env}

	case *ast.AppExpression:
		return evalApp(node, env)
	}

	return newError(TypeError, "unknown expression: %T", node)
}

func evalNeg(node *ast.NegExpression, env *Environment) Object {
	operand := Eval(node.Operand, env)
	if isError(operand) {
		return operand
	}
	val, ok := operand.(*Integer)
	if !ok {
		return newError(TypeError, "operand of ~ is not an integer: %s", operand.Inspect())
	}
	return &Integer{Value: -val.Value}
}

func evalNot(node *ast.NotExpression, env *Environment) Object {
	operand := Eval(node.Operand, env)
	if isError(operand) {
		return operand
	}
	val, ok := operand.(*Boolean)
	if !ok {
		return newError(TypeError, "operand of not is not a boolean: %s", operand.Inspect())
	}
	return nativeBool(!val.Value)
}

// evalArith evaluates both operands, requires integers, and applies op.
// The comparison variants reuse it since they share the operand contract.
func evalArith(left, right ast.Expression, env *Environment, op func(l, r int64) Object) Object {
	lhs := Eval(left, env)
	if isError(lhs) {
		return lhs
	}
	lval, ok := lhs.(*Integer)
	if !ok {
		return newError(TypeError, "operand is not an integer: %s", lhs.Inspect())
	}
	rhs := Eval(right, env)
	if isError(rhs) {
		return rhs
	}
	rval, ok := rhs.(*Integer)
	if !ok {
		return newError(TypeError, "operand is not an integer: %s", rhs.Inspect())
	}
	return op(lval.Value, rval.Value)
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder consistent with floorDiv: it carries the
// divisor's sign.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func evalEql(node *ast.EqlExpression, env *Environment) Object {
	lhs := Eval(node.Left, env)
	if isError(lhs) {
		return lhs
	}
	rhs := Eval(node.Right, env)
	if isError(rhs) {
		return rhs
	}
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return nativeBool(l.Value == r.Value)
		}
	case *Boolean:
		if r, ok := rhs.(*Boolean); ok {
			return nativeBool(l.Value == r.Value)
		}
	}
	return newError(TypeError, "cannot compare %s with %s", lhs.Inspect(), rhs.Inspect())
}

func evalAnd(node *ast.AndExpression, env *Environment) Object {
	lhs := Eval(node.Left, env)
	if isError(lhs) {
		return lhs
	}
	lval, ok := lhs.(*Boolean)
	if !ok {
		return newError(TypeError, "operand of and is not a boolean: %s", lhs.Inspect())
	}
	if !lval.Value {
		// Short circuit: the right operand is never evaluated.
		return FALSE
	}
	rhs := Eval(node.Right, env)
	if isError(rhs) {
		return rhs
	}
	rval, ok := rhs.(*Boolean)
	if !ok {
		return newError(TypeError, "operand of and is not a boolean: %s", rhs.Inspect())
	}
	return nativeBool(rval.Value)
}

func evalOr(node *ast.OrExpression, env *Environment) Object {
	lhs := Eval(node.Left, env)
	if isError(lhs) {
		return lhs
	}
	lval, ok := lhs.(*Boolean)
	if !ok {
		return newError(TypeError, "operand of or is not a boolean: %s", lhs.Inspect())
	}
	if lval.Value {
		// Short circuit: the right operand is never evaluated.
		return TRUE
	}
	rhs := Eval(node.Right, env)
	if isError(rhs) {
		return rhs
	}
	rval, ok := rhs.(*Boolean)
	if !ok {
		return newError(TypeError, "operand of or is not a boolean: %s", rhs.Inspect())
	}
	return nativeBool(rval.Value)
}

func evalIf(node *ast.IfExpression, env *Environment) Object {
	condition := Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}
	cond, ok := condition.(*Boolean)
	if !ok {
		return newError(TypeError, "condition of if is not a boolean: %s", condition.Inspect())
	}
	// Only the selected branch is evaluated.
	if cond.Value {
		return Eval(node.Consequence, env)
	}
	return Eval(node.Alternative, env)
}

func evalLet(node *ast.LetExpression, env *Environment) Object {
	val := Eval(node.Def, env)
	if isError(val) {
		return val
	}
	extended := NewEnclosedEnvironment(env)
	extended.Set(node.Name, val)
	return Eval(node.Body, extended)
}

func evalApp(node *ast.AppExpression, env *Environment) Object {
	fn := Eval(node.Fn, env)
	if isError(fn) {
		return fn
	}
	function, ok := fn.(*Function)
	if !ok {
		return newError(TypeError, "not a function: %s", fn.Inspect())
	}
	arg := Eval(node.Arg, env)
	if isError(arg) {
		return arg
	}
	// Lexical scoping: the body runs in the closure's captured
	// environment, extended with the formal parameter.
	extended := NewEnclosedEnvironment(function.Env)
	extended.Set(function.Param, arg)
	return Eval(function.Body, extended)
}
