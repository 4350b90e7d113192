/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ir

import "github.com/vireo-lang/vireo/pkg/ast"

// A Span locates an IR node in the source code. Spans survive lowering
// unchanged, so they still point into the original source.
type Span = ast.Span

// An Ident is an identifier at the IR level.
type Ident string

// Matches checks if the identifier equals s.
func (i Ident) Matches(s string) bool {
	return string(i) == s
}

// A Variable is an identifier in binding position, with its source location.
type Variable struct {
	Span Span
	Name Ident
}

// A Module is a lowered Vireo program.
type Module struct {
	Statements []Statement
}

// A Statement is a top-level IR statement.
type Statement interface {
	statementNode()
}

// FunctionStatement is a named function. Unlike its AST counterpart, the body
// is a single expression.
type FunctionStatement struct {
	Span   Span
	Name   Ident
	Params []Variable
	Body   Expr
}

func (*FunctionStatement) statementNode() {}

// ExprStatement is a top-level expression statement.
type ExprStatement struct {
	Expr Expr
}

func (*ExprStatement) statementNode() {}

// An Expr is an IR expression.
type Expr interface {
	exprNode()
}

// LiteralExpr is a literal expression.
type LiteralExpr struct {
	Span    Span
	Literal Literal
}

func (*LiteralExpr) exprNode() {}

// ListExpr is a sequence of expressions in expression position.
type ListExpr struct {
	Span  Span
	Elems []Expr
}

func (*ListExpr) exprNode() {}

// LetExpr binds the result of Value to Name while evaluating Body.
type LetExpr struct {
	Name  Variable
	Value Expr
	Body  Expr
}

func (*LetExpr) exprNode() {}

// ThenExpr evaluates First, discards its result, and evaluates Second.
type ThenExpr struct {
	First  Expr
	Second Expr
}

func (*ThenExpr) exprNode() {}

// IdentExpr is an identifier in expression position.
type IdentExpr struct {
	Span Span
	Name Ident
}

func (*IdentExpr) exprNode() {}

// LambdaExpr is an anonymous function. It only exists at the IR level; the
// frontend expresses lambdas as ordinary call forms.
type LambdaExpr struct {
	Span   Span
	Params []Variable
	Body   Expr
}

func (*LambdaExpr) exprNode() {}

// CallExpr is a call: the first item is the callee, the rest are arguments.
type CallExpr struct {
	Span  Span
	Items []Expr
}

func (*CallExpr) exprNode() {}

// IfExpr is a two-armed conditional.
type IfExpr struct {
	Span Span
	Cond Expr
	Then Expr
	Else Expr
}

func (*IfExpr) exprNode() {}

// A Literal is a literal at the IR level. Like in the AST, payloads are kept
// in source form.
type Literal interface {
	literalNode()
}

// NumberLiteral is an integer literal, kept in source form.
type NumberLiteral struct {
	Source string
}

func (NumberLiteral) literalNode() {}

// DecimalLiteral is a decimal literal, kept in source form.
type DecimalLiteral struct {
	Source string
}

func (DecimalLiteral) literalNode() {}

// StringLiteral is a string literal.
type StringLiteral struct {
	Value string
}

func (StringLiteral) literalNode() {}

// BytesLiteral is a raw bytes literal.
type BytesLiteral struct {
	Value []byte
}

func (BytesLiteral) literalNode() {}

// BoolLiteral is a boolean literal. Booleans become literals here: the AST
// spells them as the identifiers `true` and `false`.
type BoolLiteral struct {
	Source string
}

func (BoolLiteral) literalNode() {}
