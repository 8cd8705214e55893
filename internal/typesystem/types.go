package typesystem

import (
	"fmt"
)

// Type is a handle in the constraint language: a base type tag, a
// program identifier, or a minted type variable. The language is first
// order on purpose — there are no arrow terms.
type Type interface {
	typeHandle()
	String() string
}

// TCon is a base type tag: int or bool.
type TCon struct {
	Name string
}

func (t TCon) typeHandle()    {}
func (t TCon) String() string { return t.Name }

// TVar names either a program variable or a minted type variable.
type TVar struct {
	Name string
}

func (t TVar) typeHandle()    {}
func (t TVar) String() string { return t.Name }

// The two base tags of the language.
var (
	TInt  = TCon{Name: "int"}
	TBool = TCon{Name: "bool"}
)

// Constraint demands that its two handles denote the same type.
type Constraint struct {
	Left  Type
	Right Type
}

func (c Constraint) String() string {
	return fmt.Sprintf("(%s, %s)", c.Left, c.Right)
}
