package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/minml/internal/ast"
)

// TreePrinter renders the AST structure, one node per line, children
// indented under their parent.
type TreePrinter struct {
	sb    strings.Builder
	depth int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (tp *TreePrinter) String() string {
	return tp.sb.String()
}

func (tp *TreePrinter) line(label string) {
	tp.sb.WriteString(strings.Repeat("  ", tp.depth))
	tp.sb.WriteString(label)
	tp.sb.WriteByte('\n')
}

func (tp *TreePrinter) nested(label string, children ...ast.Expression) {
	tp.line(label)
	tp.depth++
	for _, child := range children {
		child.Accept(tp)
	}
	tp.depth--
}

func (tp *TreePrinter) VisitInteger(e *ast.IntegerLiteral) { tp.line(fmt.Sprintf("Num(%d)", e.Value)) }
func (tp *TreePrinter) VisitBoolean(e *ast.BooleanLiteral) { tp.line(fmt.Sprintf("Bln(%t)", e.Value)) }
func (tp *TreePrinter) VisitIdentifier(e *ast.Identifier)  { tp.line(fmt.Sprintf("Var(%s)", e.Value)) }

func (tp *TreePrinter) VisitNeg(e *ast.NegExpression) { tp.nested("Neg", e.Operand) }
func (tp *TreePrinter) VisitNot(e *ast.NotExpression) { tp.nested("Not", e.Operand) }

func (tp *TreePrinter) VisitAdd(e *ast.AddExpression) { tp.nested("Add", e.Left, e.Right) }
func (tp *TreePrinter) VisitSub(e *ast.SubExpression) { tp.nested("Sub", e.Left, e.Right) }
func (tp *TreePrinter) VisitMul(e *ast.MulExpression) { tp.nested("Mul", e.Left, e.Right) }
func (tp *TreePrinter) VisitDiv(e *ast.DivExpression) { tp.nested("Div", e.Left, e.Right) }
func (tp *TreePrinter) VisitMod(e *ast.ModExpression) { tp.nested("Mod", e.Left, e.Right) }
func (tp *TreePrinter) VisitEql(e *ast.EqlExpression) { tp.nested("Eql", e.Left, e.Right) }
func (tp *TreePrinter) VisitLth(e *ast.LthExpression) { tp.nested("Lth", e.Left, e.Right) }
func (tp *TreePrinter) VisitLeq(e *ast.LeqExpression) { tp.nested("Leq", e.Left, e.Right) }
func (tp *TreePrinter) VisitAnd(e *ast.AndExpression) { tp.nested("And", e.Left, e.Right) }
func (tp *TreePrinter) VisitOr(e *ast.OrExpression)   { tp.nested("Or", e.Left, e.Right) }

func (tp *TreePrinter) VisitIf(e *ast.IfExpression) {
	tp.nested("IfThenElse", e.Condition, e.Consequence, e.Alternative)
}

func (tp *TreePrinter) VisitLet(e *ast.LetExpression) {
	label := fmt.Sprintf("Let(%s)", e.Name)
	if e.TypeAnnotation != nil {
		label = fmt.Sprintf("Let(%s: %s)", e.Name, e.TypeAnnotation)
	}
	tp.nested(label, e.Def, e.Body)
}

func (tp *TreePrinter) VisitFn(e *ast.FnExpression) {
	label := fmt.Sprintf("Fn(%s)", e.Param)
	if e.ParamType != nil {
		label = fmt.Sprintf("Fn(%s: %s)", e.Param, e.ParamType)
	}
	tp.nested(label, e.Body)
}

func (tp *TreePrinter) VisitApp(e *ast.AppExpression) { tp.nested("App", e.Fn, e.Arg) }

var _ ast.Visitor = (*TreePrinter)(nil)
