/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ast

// An Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// LiteralExpr is a literal expression.
type LiteralExpr struct {
	Span    Span
	Literal Literal
}

func (n *LiteralExpr) exprNode() {}

func (n *LiteralExpr) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// ListExpr is a sequence of expressions appearing where a single expression
// is expected. The parser currently emits it only for parameter lists; the
// variant is part of the surface tree nevertheless.
type ListExpr struct {
	Span  Span
	Elems []Expr
}

func (n *ListExpr) exprNode() {}

func (n *ListExpr) Walk(v Visitor) {
	v.Enter(n)
	for _, e := range n.Elems {
		e.Walk(v)
	}
	v.Leave(n)
}

// LetExpr binds the result of Value to Name while evaluating Body.
type LetExpr struct {
	NameSpan Span
	Name     Ident
	Value    Expr
	Body     Expr
}

func (n *LetExpr) exprNode() {}

func (n *LetExpr) Walk(v Visitor) {
	v.Enter(n)
	n.Value.Walk(v)
	n.Body.Walk(v)
	v.Leave(n)
}

// ThenExpr evaluates First, discards its result, and evaluates Second.
type ThenExpr struct {
	First  Expr
	Second Expr
}

func (n *ThenExpr) exprNode() {}

func (n *ThenExpr) Walk(v Visitor) {
	v.Enter(n)
	n.First.Walk(v)
	n.Second.Walk(v)
	v.Leave(n)
}

// IdentExpr is an identifier in expression position.
type IdentExpr struct {
	Span Span
	Name Ident
}

func (n *IdentExpr) exprNode() {}

func (n *IdentExpr) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// CallExpr is a call form: the first item is the callee, the remaining items
// are the arguments.
type CallExpr struct {
	Span  Span
	Items []Expr
}

func (n *CallExpr) exprNode() {}

func (n *CallExpr) Walk(v Visitor) {
	v.Enter(n)
	for _, e := range n.Items {
		e.Walk(v)
	}
	v.Leave(n)
}

// IfExpr is a two-armed conditional expression.
type IfExpr struct {
	Span Span
	Cond Expr
	Then Expr
	Else Expr
}

func (n *IfExpr) exprNode() {}

func (n *IfExpr) Walk(v Visitor) {
	v.Enter(n)
	n.Cond.Walk(v)
	n.Then.Walk(v)
	n.Else.Walk(v)
	v.Leave(n)
}
