package evaluator

import (
	"fmt"

	"github.com/funvibe/minml/internal/ast"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	BOOLEAN_OBJ  = "BOOLEAN"
	FUNCTION_OBJ = "FUNCTION"
	ERROR_OBJ    = "ERROR"
)

// Object is a value produced by evaluation: an integer, a boolean, or a
// function closure.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Function is a closure: the formal parameter, the body, and a snapshot
// of the environment in force where the fn expression was evaluated.
type Function struct {
	Param string
	Body  ast.Expression
	Env   *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return fmt.Sprintf("fn(%s)", f.Param) }

// ErrorKind classifies run-time failures.
type ErrorKind string

const (
	DefError   ErrorKind = "DefError"   // unbound variable
	TypeError  ErrorKind = "TypeError"  // operand of the wrong kind
	ArithError ErrorKind = "ArithError" // division or modulo by zero
)

// Error aborts the evaluation that produced it; every visit propagates
// it upward untouched.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBool(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
