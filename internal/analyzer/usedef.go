package analyzer

import (
	"sort"

	"github.com/samber/lo"

	"github.com/funvibe/minml/internal/ast"
)

// FreeVars computes the set of identifiers used without being bound by an
// enclosing let or fn, given an initial set of bound names. The result is
// sorted for stable output. The pass is pure and never fails.
func FreeVars(node ast.Expression, bound []string) []string {
	boundSet := make(map[string]struct{}, len(bound))
	for _, name := range bound {
		boundSet[name] = struct{}{}
	}
	free := make(map[string]struct{})
	collectFree(node, boundSet, free)

	names := lo.Keys(free)
	sort.Strings(names)
	return names
}

func collectFree(node ast.Expression, bound map[string]struct{}, free map[string]struct{}) {
	switch n := node.(type) {
	case *ast.Identifier:
		if _, ok := bound[n.Value]; !ok {
			free[n.Value] = struct{}{}
		}
	case *ast.LetExpression:
		// The definition is outside the binding's scope.
		collectFree(n.Def, bound, free)
		collectFree(n.Body, extend(bound, n.Name), free)
	case *ast.FnExpression:
		collectFree(n.Body, extend(bound, n.Param), free)
	default:
		for _, child := range children(n) {
			collectFree(child, bound, free)
		}
	}
}

func extend(bound map[string]struct{}, name string) map[string]struct{} {
	extended := make(map[string]struct{}, len(bound)+1)
	for k := range bound {
		extended[k] = struct{}{}
	}
	extended[name] = struct{}{}
	return extended
}
