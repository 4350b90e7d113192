/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ir

import (
	"github.com/vireo-lang/vireo/pkg/ast"
	"github.com/vireo-lang/vireo/pkg/errs"
)

// Lower lowers a surface AST module into the IR. fileName is used for error
// reporting only.
func Lower(fileName string, mod *ast.Module) (*Module, errs.Error) {
	l := &lowerer{fileName: fileName}

	out := &Module{}
	for _, stmt := range mod.Statements {
		lowered, err := l.lowerStatement(stmt)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, lowered)
	}
	return out, nil
}

// lowerer holds the state of one lowering pass.
type lowerer struct {
	fileName string
}

func (l *lowerer) lowerStatement(stmt ast.Statement) (Statement, errs.Error) {
	switch n := stmt.(type) {
	case *ast.FunctionStatement:
		body, err := l.lowerBody(n.Span, n.Body)
		if err != nil {
			return nil, err
		}
		params := make([]Variable, len(n.Params))
		for i, p := range n.Params {
			params[i] = Variable{Span: n.Span, Name: Ident(p)}
		}
		return &FunctionStatement{
			Span:   n.Span,
			Name:   Ident(n.Name),
			Params: params,
			Body:   body,
		}, nil

	case *ast.ExprStatement:
		e, err := l.lowerExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		return &ExprStatement{Expr: e}, nil

	default:
		return nil, errs.NewICE("unknown statement type: %T", n)
	}
}

// lowerBody lowers a function body (a sequence of statements) into a single
// expression, sequencing with Then and discarding intermediate results.
func (l *lowerer) lowerBody(span ast.Span, body []ast.Statement) (Expr, errs.Error) {
	if len(body) == 0 {
		return nil, errs.NewCompileTime(l.fileName, span.Line, "empty function body")
	}

	exprs := make([]Expr, 0, len(body))
	for _, stmt := range body {
		es, ok := stmt.(*ast.ExprStatement)
		if !ok {
			return nil, errs.NewCompileTime(l.fileName, span.Line,
				"only expressions are allowed in a function body")
		}
		e, err := l.lowerExpr(es.Expr)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}

	return thenChain(exprs), nil
}

// thenChain folds a nonempty sequence of expressions into a right-nested
// chain of Then expressions.
func thenChain(exprs []Expr) Expr {
	e := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		e = &ThenExpr{First: exprs[i], Second: e}
	}
	return e
}

func (l *lowerer) lowerExpr(expr ast.Expr) (Expr, errs.Error) {
	switch n := expr.(type) {
	case *ast.LiteralExpr:
		return &LiteralExpr{Span: n.Span, Literal: lowerLiteral(n.Literal)}, nil

	case *ast.ListExpr:
		elems, err := l.lowerExprs(n.Elems)
		if err != nil {
			return nil, err
		}
		return &ListExpr{Span: n.Span, Elems: elems}, nil

	case *ast.LetExpr:
		value, err := l.lowerExpr(n.Value)
		if err != nil {
			return nil, err
		}
		body, err := l.lowerExpr(n.Body)
		if err != nil {
			return nil, err
		}
		return &LetExpr{
			Name:  Variable{Span: n.NameSpan, Name: Ident(n.Name)},
			Value: value,
			Body:  body,
		}, nil

	case *ast.ThenExpr:
		first, err := l.lowerExpr(n.First)
		if err != nil {
			return nil, err
		}
		second, err := l.lowerExpr(n.Second)
		if err != nil {
			return nil, err
		}
		return &ThenExpr{First: first, Second: second}, nil

	case *ast.IdentExpr:
		// Booleans become literals at this stage.
		if n.Name.Matches("true") || n.Name.Matches("false") {
			return &LiteralExpr{
				Span:    n.Span,
				Literal: BoolLiteral{Source: string(n.Name)},
			}, nil
		}
		return &IdentExpr{Span: n.Span, Name: Ident(n.Name)}, nil

	case *ast.CallExpr:
		if lambda, ok, err := l.lowerLambda(n); ok || err != nil {
			return lambda, err
		}
		items, err := l.lowerExprs(n.Items)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errs.NewCompileTime(l.fileName, n.Span.Line, "empty call form")
		}
		return &CallExpr{Span: n.Span, Items: items}, nil

	case *ast.IfExpr:
		cond, err := l.lowerExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := l.lowerExpr(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := l.lowerExpr(n.Else)
		if err != nil {
			return nil, err
		}
		return &IfExpr{Span: n.Span, Cond: cond, Then: then, Else: els}, nil

	default:
		return nil, errs.NewICE("unknown expression type: %T", n)
	}
}

// lowerLambda checks whether a call form is a lambda form -- the head is the
// identifier `lambda` and the second item is a parameter list -- and lowers
// it to a LambdaExpr if so. Returns ok == false if call is a plain call.
func (l *lowerer) lowerLambda(call *ast.CallExpr) (Expr, bool, errs.Error) {
	if len(call.Items) == 0 {
		return nil, false, nil
	}
	head, ok := call.Items[0].(*ast.IdentExpr)
	if !ok || !head.Name.Matches("lambda") {
		return nil, false, nil
	}

	if len(call.Items) < 3 {
		return nil, true, errs.NewCompileTime(l.fileName, call.Span.Line,
			"lambda form needs a parameter list and a body")
	}
	paramList, ok := call.Items[1].(*ast.ListExpr)
	if !ok {
		return nil, true, errs.NewCompileTime(l.fileName, call.Span.Line,
			"lambda form needs a parameter list as its first operand")
	}

	params := make([]Variable, len(paramList.Elems))
	for i, p := range paramList.Elems {
		ident, ok := p.(*ast.IdentExpr)
		if !ok {
			return nil, true, errs.NewCompileTime(l.fileName, call.Span.Line,
				"lambda parameters must be identifiers")
		}
		params[i] = Variable{Span: ident.Span, Name: Ident(ident.Name)}
	}

	bodyExprs := make([]Expr, 0, len(call.Items)-2)
	for _, b := range call.Items[2:] {
		e, err := l.lowerExpr(b)
		if err != nil {
			return nil, true, err
		}
		bodyExprs = append(bodyExprs, e)
	}

	return &LambdaExpr{
		Span:   call.Span,
		Params: params,
		Body:   thenChain(bodyExprs),
	}, true, nil
}

func (l *lowerer) lowerExprs(exprs []ast.Expr) ([]Expr, errs.Error) {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		lowered, err := l.lowerExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

// lowerLiteral maps an AST literal to the corresponding IR literal. This is a
// plain re-tagging: payloads stay in source form.
func lowerLiteral(lit ast.Literal) Literal {
	switch n := lit.(type) {
	case ast.NumberLiteral:
		return NumberLiteral{Source: n.Source}
	case ast.DecimalLiteral:
		return DecimalLiteral{Source: n.Source}
	case ast.StringLiteral:
		return StringLiteral{Value: n.Value}
	case ast.BytesLiteral:
		return BytesLiteral{Value: n.Value}
	default:
		// Can't happen: the AST literal set is closed.
		panic("unknown literal type")
	}
}
