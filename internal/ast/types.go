package ast

import (
	"github.com/funvibe/minml/internal/token"
)

// Type is the annotation attached to let and fn binders. A nil Type
// means the binder is untyped.
type Type interface {
	typeNode()
	String() string
}

// NamedType is a base type tag: int or bool.
type NamedType struct {
	Token token.Token
	Name  string
}

func (nt *NamedType) typeNode()      {}
func (nt *NamedType) String() string { return nt.Name }

// ArrowType is a function type. The arrow is right-associative:
// int -> int -> bool is int -> (int -> bool).
type ArrowType struct {
	Token    token.Token // the '->' token
	Domain   Type
	Codomain Type
}

func (at *ArrowType) typeNode() {}
func (at *ArrowType) String() string {
	if _, ok := at.Domain.(*ArrowType); ok {
		return "(" + at.Domain.String() + ") -> " + at.Codomain.String()
	}
	return at.Domain.String() + " -> " + at.Codomain.String()
}
