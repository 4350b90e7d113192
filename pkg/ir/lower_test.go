/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-lang/vireo/pkg/ast"
	"github.com/vireo-lang/vireo/pkg/frontend"
	"github.com/vireo-lang/vireo/pkg/ir"
)

// lowerSource parses and lowers a source string.
func lowerSource(t *testing.T, source string) *ir.Module {
	t.Helper()
	astMod, err := frontend.ParseSource("test.vrs", source)
	require.Nil(t, err)
	irMod, lErr := ir.Lower("test.vrs", astMod)
	require.Nil(t, lErr)
	return irMod
}

func TestLowerFunctionBodyBecomesExpression(t *testing.T) {
	mod := lowerSource(t, `(define (main) 1 2)`)
	require.Len(t, mod.Statements, 1)

	fn, ok := mod.Statements[0].(*ir.FunctionStatement)
	require.True(t, ok)
	assert.Equal(t, ir.Ident("main"), fn.Name)

	// Two body expressions sequence through Then.
	then, ok := fn.Body.(*ir.ThenExpr)
	require.True(t, ok)
	_, ok = then.First.(*ir.LiteralExpr)
	assert.True(t, ok)
	_, ok = then.Second.(*ir.LiteralExpr)
	assert.True(t, ok)
}

func TestLowerBooleansBecomeLiterals(t *testing.T) {
	mod := lowerSource(t, `(define (main) true)`)
	fn := mod.Statements[0].(*ir.FunctionStatement)

	lit, ok := fn.Body.(*ir.LiteralExpr)
	require.True(t, ok)
	b, ok := lit.Literal.(ir.BoolLiteral)
	require.True(t, ok)
	assert.Equal(t, "true", b.Source)

	mod = lowerSource(t, `(define (main) false)`)
	fn = mod.Statements[0].(*ir.FunctionStatement)
	lit = fn.Body.(*ir.LiteralExpr)
	b = lit.Literal.(ir.BoolLiteral)
	assert.Equal(t, "false", b.Source)
}

func TestLowerLambdaForm(t *testing.T) {
	mod := lowerSource(t, `(define (main) (lambda (x y) (+ x y)))`)
	fn := mod.Statements[0].(*ir.FunctionStatement)

	lambda, ok := fn.Body.(*ir.LambdaExpr)
	require.True(t, ok)
	require.Len(t, lambda.Params, 2)
	assert.Equal(t, ir.Ident("x"), lambda.Params[0].Name)
	assert.Equal(t, ir.Ident("y"), lambda.Params[1].Name)

	_, ok = lambda.Body.(*ir.CallExpr)
	assert.True(t, ok)
}

func TestLowerLambdaMultiBody(t *testing.T) {
	mod := lowerSource(t, `(define (main) (lambda (x) 1 x))`)
	fn := mod.Statements[0].(*ir.FunctionStatement)

	lambda := fn.Body.(*ir.LambdaExpr)
	_, ok := lambda.Body.(*ir.ThenExpr)
	assert.True(t, ok)
}

func TestLowerPlainCallStaysCall(t *testing.T) {
	mod := lowerSource(t, `(define (main) (f 1 2))`)
	fn := mod.Statements[0].(*ir.FunctionStatement)

	call, ok := fn.Body.(*ir.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Items, 3)
}

func TestLowerNumberStaysInSourceForm(t *testing.T) {
	mod := lowerSource(t, `(define (main) 0x2a)`)
	fn := mod.Statements[0].(*ir.FunctionStatement)

	lit := fn.Body.(*ir.LiteralExpr)
	n, ok := lit.Literal.(ir.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "0x2a", n.Source)
}

func TestLowerTopLevelExpressionSurvives(t *testing.T) {
	mod := lowerSource(t, `(+ 1 2)`)
	_, ok := mod.Statements[0].(*ir.ExprStatement)
	assert.True(t, ok)
}

func TestLowerNestedDefineRejected(t *testing.T) {
	astMod := &ast.Module{Statements: []ast.Statement{
		&ast.FunctionStatement{
			Name: "main",
			Body: []ast.Statement{
				&ast.FunctionStatement{Name: "inner"},
			},
		},
	}}
	_, err := ir.Lower("test.vrs", astMod)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "only expressions are allowed")
}

func TestLowerEmptyBodyRejected(t *testing.T) {
	astMod := &ast.Module{Statements: []ast.Statement{
		&ast.FunctionStatement{Name: "main"},
	}}
	_, err := ir.Lower("test.vrs", astMod)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "empty function body")
}
