package diagnostics

import (
	"fmt"

	"github.com/funvibe/minml/internal/token"
)

// Phase represents the processing phase where an error occurred
type Phase string

const (
	PhaseLexer   Phase = "lexer"
	PhaseParser  Phase = "parser"
	PhaseTypes   Phase = "types"
	PhaseRuntime Phase = "runtime"
	PhaseCodegen Phase = "codegen"
)

type ErrorCode string

const (
	// Lexer Errors
	ErrL001 ErrorCode = "L001" // Invalid character

	// Parser Errors
	ErrP001 ErrorCode = "P001" // Unexpected token
	ErrP004 ErrorCode = "P004" // No prefix parse function found
	ErrP005 ErrorCode = "P005" // Expected a specific token

	// Runtime Errors
	ErrR001 ErrorCode = "R001" // Undefined variable (DefError)
	ErrR002 ErrorCode = "R002" // Wrong operand kind (TypeError)
	ErrR003 ErrorCode = "R003" // Division or modulo by zero (ArithError)

	// Typesystem Errors
	ErrT001 ErrorCode = "T001" // Expression outside the constraint language

	// Codegen Errors
	ErrG001 ErrorCode = "G001" // Expression needs branching or closures
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrP001: "unexpected token: '%s'",
	ErrP004: "cannot parse expression starting with '%s'",
	ErrP005: "expected next token to be '%s', but got '%s' instead",
	ErrR001: "def error: %s",
	ErrR002: "type error: %s",
	ErrR003: "arith error: %s",
	ErrT001: "no constraint schema for %s expressions",
	ErrG001: "cannot lower %s expressions to straight-line code",
}

type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	File  string
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// NewError creates an error with just code and token
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Token: tok,
		Args:  args,
	}
}

// NewPhaseError creates an error with phase information
func NewPhaseError(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Token: tok,
		Args:  args,
	}
}

// WrapError wraps an existing error with phase and location info
func WrapError(phase Phase, tok token.Token, err error) *DiagnosticError {
	if de, ok := err.(*DiagnosticError); ok {
		if de.Phase == "" {
			de.Phase = phase
		}
		if de.Token.Line == 0 && tok.Line > 0 {
			de.Token = tok
		}
		return de
	}
	code := ErrR002
	return NewPhaseError(phase, code, tok, err.Error())
}
