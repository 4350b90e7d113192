/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-lang/vireo/pkg/ast"
)

func TestParseDefine(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (add a b) (+ a b))`)
	require.Nil(t, err)
	require.Len(t, mod.Statements, 1)

	fn, ok := mod.Statements[0].(*ast.FunctionStatement)
	require.True(t, ok)
	assert.Equal(t, ast.Ident("add"), fn.Name)
	assert.Equal(t, []ast.Ident{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)

	body, ok := fn.Body[0].(*ast.ExprStatement)
	require.True(t, ok)
	call, ok := body.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Items, 3)

	head, ok := call.Items[0].(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Ident("+"), head.Name)
}

func TestParseDefineMultiBody(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) 1 2 3)`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	assert.Len(t, fn.Body, 3)
}

func TestParseTopLevelExpression(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(+ 1 2)`)
	require.Nil(t, err)
	require.Len(t, mod.Statements, 1)

	_, ok := mod.Statements[0].(*ast.ExprStatement)
	assert.True(t, ok)
}

func TestParseIf(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) (if true 1 2))`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	ifExpr, ok := fn.Body[0].(*ast.ExprStatement).Expr.(*ast.IfExpr)
	require.True(t, ok)

	cond, ok := ifExpr.Cond.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Ident("true"), cond.Name)
}

func TestParseIfArityError(t *testing.T) {
	_, err := ParseSource("test.vrs", `(define (main) (if true 1))`)
	assert.NotNil(t, err)
}

func TestParseLet(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) (let ((x 1) (y 2)) (+ x y)))`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	let, ok := fn.Body[0].(*ast.ExprStatement).Expr.(*ast.LetExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Ident("x"), let.Name)

	inner, ok := let.Body.(*ast.LetExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Ident("y"), inner.Name)
}

func TestParseLetMultiBody(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) (let ((x 1)) x x))`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	let := fn.Body[0].(*ast.ExprStatement).Expr.(*ast.LetExpr)
	_, ok := let.Body.(*ast.ThenExpr)
	assert.True(t, ok)
}

func TestParseLetNeedsBody(t *testing.T) {
	_, err := ParseSource("test.vrs", `(define (main) (let ((x 1))))`)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "let form needs a body")
}

func TestParseLambda(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) (lambda (x) x))`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	call, ok := fn.Body[0].(*ast.ExprStatement).Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Items, 3)

	head := call.Items[0].(*ast.IdentExpr)
	assert.Equal(t, ast.Ident("lambda"), head.Name)

	params, ok := call.Items[1].(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, params.Elems, 1)
}

func TestParseStringLiteral(t *testing.T) {
	mod, err := ParseSource("test.vrs", `(define (main) "hi\n")`)
	require.Nil(t, err)

	fn := mod.Statements[0].(*ast.FunctionStatement)
	lit, ok := fn.Body[0].(*ast.ExprStatement).Expr.(*ast.LiteralExpr)
	require.True(t, ok)
	str, ok := lit.Literal.(ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hi\n", str.Value)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := ParseSource("test.vrs", `(define (main) (+ 1 2)`)
	assert.NotNil(t, err)
}

func TestParseDefineNeedsSignature(t *testing.T) {
	_, err := ParseSource("test.vrs", `(define main 1)`)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestParseErrorHasLineNumber(t *testing.T) {
	_, err := ParseSource("test.vrs", "(define (main)\n  (if true 1))")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "test.vrs:2")
}
