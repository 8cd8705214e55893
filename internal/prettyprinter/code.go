package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/funvibe/minml/internal/ast"
)

// CodePrinter reconstructs source text from the AST. Every compound
// sub-expression is parenthesized, so the output re-parses to the same
// tree regardless of the precedence that produced it.
type CodePrinter struct {
	sb strings.Builder
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (cp *CodePrinter) String() string {
	return cp.sb.String()
}

func (cp *CodePrinter) write(s string) {
	cp.sb.WriteString(s)
}

func (cp *CodePrinter) binary(left ast.Expression, op string, right ast.Expression) {
	cp.write("(")
	left.Accept(cp)
	cp.write(" " + op + " ")
	right.Accept(cp)
	cp.write(")")
}

func (cp *CodePrinter) VisitInteger(e *ast.IntegerLiteral) { cp.write(fmt.Sprintf("%d", e.Value)) }
func (cp *CodePrinter) VisitBoolean(e *ast.BooleanLiteral) { cp.write(fmt.Sprintf("%t", e.Value)) }
func (cp *CodePrinter) VisitIdentifier(e *ast.Identifier)  { cp.write(e.Value) }

func (cp *CodePrinter) VisitNeg(e *ast.NegExpression) {
	cp.write("(~")
	e.Operand.Accept(cp)
	cp.write(")")
}

func (cp *CodePrinter) VisitNot(e *ast.NotExpression) {
	cp.write("(not ")
	e.Operand.Accept(cp)
	cp.write(")")
}

func (cp *CodePrinter) VisitAdd(e *ast.AddExpression) { cp.binary(e.Left, "+", e.Right) }
func (cp *CodePrinter) VisitSub(e *ast.SubExpression) { cp.binary(e.Left, "-", e.Right) }
func (cp *CodePrinter) VisitMul(e *ast.MulExpression) { cp.binary(e.Left, "*", e.Right) }
func (cp *CodePrinter) VisitDiv(e *ast.DivExpression) { cp.binary(e.Left, "/", e.Right) }
func (cp *CodePrinter) VisitMod(e *ast.ModExpression) { cp.binary(e.Left, "mod", e.Right) }
func (cp *CodePrinter) VisitEql(e *ast.EqlExpression) { cp.binary(e.Left, "=", e.Right) }
func (cp *CodePrinter) VisitLth(e *ast.LthExpression) { cp.binary(e.Left, "<", e.Right) }
func (cp *CodePrinter) VisitLeq(e *ast.LeqExpression) { cp.binary(e.Left, "<=", e.Right) }
func (cp *CodePrinter) VisitAnd(e *ast.AndExpression) { cp.binary(e.Left, "and", e.Right) }
func (cp *CodePrinter) VisitOr(e *ast.OrExpression)   { cp.binary(e.Left, "or", e.Right) }

func (cp *CodePrinter) VisitIf(e *ast.IfExpression) {
	cp.write("(if ")
	e.Condition.Accept(cp)
	cp.write(" then ")
	e.Consequence.Accept(cp)
	cp.write(" else ")
	e.Alternative.Accept(cp)
	cp.write(")")
}

func (cp *CodePrinter) VisitLet(e *ast.LetExpression) {
	cp.write("(let " + e.Name)
	if e.TypeAnnotation != nil {
		cp.write(" : " + e.TypeAnnotation.String())
	}
	cp.write(" <- ")
	e.Def.Accept(cp)
	cp.write(" in ")
	e.Body.Accept(cp)
	cp.write(" end)")
}

func (cp *CodePrinter) VisitFn(e *ast.FnExpression) {
	cp.write("(fn " + e.Param)
	if e.ParamType != nil {
		cp.write(" : " + e.ParamType.String())
	}
	cp.write(" => ")
	e.Body.Accept(cp)
	cp.write(")")
}

func (cp *CodePrinter) VisitApp(e *ast.AppExpression) {
	cp.write("(")
	e.Fn.Accept(cp)
	cp.write(" ")
	e.Arg.Accept(cp)
	cp.write(")")
}

var _ ast.Visitor = (*CodePrinter)(nil)
