package analyzer

import (
	"fmt"

	"github.com/funvibe/minml/internal/ast"
)

// Renamer rewrites identifiers in place so that no two binders in the
// tree share a name. It keeps one stack per source name, so occurrences
// always pick up the innermost binding; occurrences bound by no binder
// are left untouched. Fresh names use a per-source-name counter that
// never decreases, which keeps sibling scopes apart.
//
// This is the only pass that mutates the tree; it must not run
// concurrently with any other pass over the same AST.
type Renamer struct {
	scopes map[string][]string
	counts map[string]int
}

func NewRenamer() *Renamer {
	return &Renamer{
		scopes: make(map[string][]string),
		counts: make(map[string]int),
	}
}

func (r *Renamer) Rename(node ast.Expression) {
	r.walk(node)
}

func (r *Renamer) walk(node ast.Expression) {
	switch n := node.(type) {
	case *ast.Identifier:
		n.Value = r.current(n.Value)
	case *ast.LetExpression:
		// The definition is evaluated outside the binding's scope.
		r.walk(n.Def)
		source := n.Name
		n.Name = r.push(source)
		r.walk(n.Body)
		r.pop(source)
	case *ast.FnExpression:
		source := n.Param
		n.Param = r.push(source)
		r.walk(n.Body)
		r.pop(source)
	default:
		for _, child := range children(n) {
			r.walk(child)
		}
	}
}

func (r *Renamer) push(name string) string {
	fresh := fmt.Sprintf("%s_%d", name, r.counts[name])
	r.counts[name]++
	r.scopes[name] = append(r.scopes[name], fresh)
	return fresh
}

func (r *Renamer) pop(name string) {
	if stack := r.scopes[name]; len(stack) > 0 {
		r.scopes[name] = stack[:len(stack)-1]
	}
}

func (r *Renamer) current(name string) string {
	if stack := r.scopes[name]; len(stack) > 0 {
		return stack[len(stack)-1]
	}
	return name
}
