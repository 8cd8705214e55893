package ast

import (
	"github.com/funvibe/minml/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Expression is a Node that evaluates to a value. Every MinML program is
// a single expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Visitor dispatches over the closed family of expression variants. The
// pretty printers use this contract; the semantic passes dispatch with a
// type switch instead, which lets them thread arguments and results.
type Visitor interface {
	VisitInteger(e *IntegerLiteral)
	VisitBoolean(e *BooleanLiteral)
	VisitIdentifier(e *Identifier)
	VisitNeg(e *NegExpression)
	VisitNot(e *NotExpression)
	VisitAdd(e *AddExpression)
	VisitSub(e *SubExpression)
	VisitMul(e *MulExpression)
	VisitDiv(e *DivExpression)
	VisitMod(e *ModExpression)
	VisitEql(e *EqlExpression)
	VisitLth(e *LthExpression)
	VisitLeq(e *LeqExpression)
	VisitAnd(e *AndExpression)
	VisitOr(e *OrExpression)
	VisitIf(e *IfExpression)
	VisitLet(e *LetExpression)
	VisitFn(e *FnExpression)
	VisitApp(e *AppExpression)
}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitInteger(il) }
func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// BooleanLiteral represents the literals true and false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Accept(v Visitor)      { v.VisitBoolean(b) }
func (b *BooleanLiteral) expressionNode()       {}
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token { return b.Token }

// Identifier represents a variable occurrence. Value is rewritten in
// place by the rename pass; everything else in the tree is read-only.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// UnaryExpression is the shared shape of the unary variants.
type UnaryExpression struct {
	Token   token.Token
	Operand Expression
}

func (ue *UnaryExpression) TokenLiteral() string  { return ue.Token.Lexeme }
func (ue *UnaryExpression) GetToken() token.Token { return ue.Token }

// NegExpression is the arithmetic negation ~e.
type NegExpression struct{ UnaryExpression }

func (e *NegExpression) Accept(v Visitor) { v.VisitNeg(e) }
func (e *NegExpression) expressionNode()  {}

// NotExpression is the logical complement.
type NotExpression struct{ UnaryExpression }

func (e *NotExpression) Accept(v Visitor) { v.VisitNot(e) }
func (e *NotExpression) expressionNode()  {}

// BinaryExpression is the shared shape of the binary variants.
type BinaryExpression struct {
	Token token.Token
	Left  Expression
	Right Expression
}

func (be *BinaryExpression) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token { return be.Token }

type AddExpression struct{ BinaryExpression }

func (e *AddExpression) Accept(v Visitor) { v.VisitAdd(e) }
func (e *AddExpression) expressionNode()  {}

type SubExpression struct{ BinaryExpression }

func (e *SubExpression) Accept(v Visitor) { v.VisitSub(e) }
func (e *SubExpression) expressionNode()  {}

type MulExpression struct{ BinaryExpression }

func (e *MulExpression) Accept(v Visitor) { v.VisitMul(e) }
func (e *MulExpression) expressionNode()  {}

type DivExpression struct{ BinaryExpression }

func (e *DivExpression) Accept(v Visitor) { v.VisitDiv(e) }
func (e *DivExpression) expressionNode()  {}

type ModExpression struct{ BinaryExpression }

func (e *ModExpression) Accept(v Visitor) { v.VisitMod(e) }
func (e *ModExpression) expressionNode()  {}

type EqlExpression struct{ BinaryExpression }

func (e *EqlExpression) Accept(v Visitor) { v.VisitEql(e) }
func (e *EqlExpression) expressionNode()  {}

type LthExpression struct{ BinaryExpression }

func (e *LthExpression) Accept(v Visitor) { v.VisitLth(e) }
func (e *LthExpression) expressionNode()  {}

type LeqExpression struct{ BinaryExpression }

func (e *LeqExpression) Accept(v Visitor) { v.VisitLeq(e) }
func (e *LeqExpression) expressionNode()  {}

type AndExpression struct{ BinaryExpression }

func (e *AndExpression) Accept(v Visitor) { v.VisitAnd(e) }
func (e *AndExpression) expressionNode()  {}

type OrExpression struct{ BinaryExpression }

func (e *OrExpression) Accept(v Visitor) { v.VisitOr(e) }
func (e *OrExpression) expressionNode()  {}

// IfExpression: if Condition then Consequence else Alternative.
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) Accept(v Visitor)      { v.VisitIf(ie) }
func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }

// LetExpression: let Name [: T] <- Def in Body end. Name is rewritten in
// place by the rename pass. TypeAnnotation is nil when absent.
type LetExpression struct {
	Token          token.Token // the 'let' token
	Name           string
	TypeAnnotation Type
	Def            Expression
	Body           Expression
}

func (le *LetExpression) Accept(v Visitor)      { v.VisitLet(le) }
func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token { return le.Token }

// FnExpression: fn Param [: T] => Body. Param is rewritten in place by
// the rename pass. ParamType is nil when absent.
type FnExpression struct {
	Token     token.Token // the 'fn' token
	Param     string
	ParamType Type
	Body      Expression
}

func (fe *FnExpression) Accept(v Visitor)      { v.VisitFn(fe) }
func (fe *FnExpression) expressionNode()       {}
func (fe *FnExpression) TokenLiteral() string  { return fe.Token.Lexeme }
func (fe *FnExpression) GetToken() token.Token { return fe.Token }

// AppExpression is function application by juxtaposition, f x.
type AppExpression struct {
	Token token.Token // the first token of the function expression
	Fn    Expression
	Arg   Expression
}

func (ae *AppExpression) Accept(v Visitor)      { v.VisitApp(ae) }
func (ae *AppExpression) expressionNode()       {}
func (ae *AppExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AppExpression) GetToken() token.Token { return ae.Token }
