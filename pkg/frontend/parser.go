/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"github.com/vireo-lang/vireo/pkg/ast"
	"github.com/vireo-lang/vireo/pkg/errs"
)

// parser is a parser for the Vireo language. It converts source code into an
// AST.
type parser struct {
	// fileName is the name of the file being parsed, for error reporting.
	fileName string

	// currentToken is the current token we are parsing.
	currentToken *Token

	// previousToken is the previous token we have parsed.
	previousToken *Token

	// scanner is the Scanner from where we get our tokens.
	scanner *Scanner
}

// newParser returns a new parser that will parse source.
func newParser(fileName, source string) *parser {
	return &parser{
		fileName: fileName,
		scanner:  NewScanner(source),
	}
}

// parse parses the source and returns the resulting AST.
func (p *parser) parse() (*ast.Module, errs.Error) {
	mod := &ast.Module{}

	if err := p.advance(); err != nil {
		return nil, err
	}
	for !p.check(TokenKindEOF) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		mod.Statements = append(mod.Statements, stmt)
	}

	return mod, nil
}

//
// Parsing building blocks
//

// advance advances the parser by one token. Error tokens become syntax
// errors right here.
func (p *parser) advance() errs.Error {
	p.previousToken = p.currentToken
	p.currentToken = p.scanner.Token()
	if p.currentToken.Kind == TokenKindError {
		return p.errorAtCurrent("%v", p.currentToken.Lexeme)
	}
	return nil
}

// check checks if the current token is of a given kind.
func (p *parser) check(kind TokenKind) bool {
	return p.currentToken.Kind == kind
}

// checkIdentifier checks if the current token is the given identifier.
func (p *parser) checkIdentifier(name string) bool {
	return p.check(TokenKindIdentifier) && p.currentToken.Lexeme == name
}

// consume consumes the current token if it is of a given kind; otherwise it
// reports a syntax error with the given message.
func (p *parser) consume(kind TokenKind, format string, a ...any) errs.Error {
	if !p.check(kind) {
		return p.errorAtCurrent(format, a...)
	}
	return p.advance()
}

// errorAtCurrent reports a syntax error at the current token.
func (p *parser) errorAtCurrent(format string, a ...any) errs.Error {
	err := errs.NewCompileTime(p.fileName, p.currentToken.Line, format, a...)
	if p.currentToken.Kind == TokenKindEOF {
		err.Lexeme = "end of file"
	} else {
		err.Lexeme = p.currentToken.Lexeme
	}
	return err
}

// span builds an ast.Span from a token.
func span(tok *Token) ast.Span {
	return ast.Span{Start: tok.Start, End: tok.End, Line: tok.Line}
}

//
// Declarations
//

// declaration parses one top-level form. A define form becomes a function
// statement; anything else is an expression statement.
func (p *parser) declaration() (ast.Statement, errs.Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if call, ok := expr.(*ast.CallExpr); ok && len(call.Items) > 0 {
		if head, ok := call.Items[0].(*ast.IdentExpr); ok && head.Name.Matches("define") {
			return p.defineToFunction(call)
		}
	}

	return &ast.ExprStatement{Expr: expr}, nil
}

// defineToFunction reshapes a (define (name params...) body...) call form
// into a function statement.
func (p *parser) defineToFunction(call *ast.CallExpr) (ast.Statement, errs.Error) {
	if len(call.Items) < 3 {
		return nil, errs.NewCompileTime(p.fileName, call.Span.Line,
			"define form needs a signature and a body")
	}

	sig, ok := call.Items[1].(*ast.CallExpr)
	if !ok || len(sig.Items) == 0 {
		return nil, errs.NewCompileTime(p.fileName, call.Span.Line,
			"define form needs a (name params...) signature")
	}

	names := make([]ast.Ident, len(sig.Items))
	for i, item := range sig.Items {
		ident, ok := item.(*ast.IdentExpr)
		if !ok {
			return nil, errs.NewCompileTime(p.fileName, sig.Span.Line,
				"function name and parameters must be identifiers")
		}
		names[i] = ident.Name
	}

	body := make([]ast.Statement, 0, len(call.Items)-2)
	for _, e := range call.Items[2:] {
		body = append(body, &ast.ExprStatement{Expr: e})
	}

	return &ast.FunctionStatement{
		Span:   call.Span,
		Name:   names[0],
		Params: names[1:],
		Body:   body,
	}, nil
}

//
// Expressions
//

// expression parses one expression.
func (p *parser) expression() (ast.Expr, errs.Error) {
	switch p.currentToken.Kind {
	case TokenKindNumber:
		tok := p.currentToken
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.LiteralExpr{
			Span:    span(tok),
			Literal: ast.NumberLiteral{Source: tok.Lexeme},
		}, nil

	case TokenKindString:
		tok := p.currentToken
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.LiteralExpr{
			Span:    span(tok),
			Literal: ast.StringLiteral{Value: tok.Lexeme},
		}, nil

	case TokenKindIdentifier:
		tok := p.currentToken
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IdentExpr{Span: span(tok), Name: ast.Ident(tok.Lexeme)}, nil

	case TokenKindLeftParen:
		return p.form()

	default:
		return nil, p.errorAtCurrent("Expected an expression.")
	}
}

// form parses one parenthesized form, dispatching on its head for the
// special forms (if, let, lambda).
func (p *parser) form() (ast.Expr, errs.Error) {
	open := p.currentToken
	if err := p.advance(); err != nil { // consume the '('
		return nil, err
	}

	switch {
	case p.checkIdentifier("if"):
		return p.ifForm(open)
	case p.checkIdentifier("let"):
		return p.letForm(open)
	case p.checkIdentifier("lambda"):
		return p.lambdaForm(open)
	}

	items, err := p.expressionsUntilRightParen()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Span: span(open), Items: items}, nil
}

// ifForm parses (if cond then else). The '(' is already consumed and the
// current token is the `if` identifier.
func (p *parser) ifForm(open *Token) (ast.Expr, errs.Error) {
	if err := p.advance(); err != nil { // consume the `if`
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.expression()
	if err != nil {
		return nil, err
	}
	els, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(TokenKindRightParen, "Expected `)` after the else expression."); err != nil {
		return nil, err
	}

	return &ast.IfExpr{Span: span(open), Cond: cond, Then: then, Else: els}, nil
}

// letForm parses (let ((name value)...) body...). Multiple bindings desugar
// to nested lets; multiple body expressions to a then-chain.
func (p *parser) letForm(open *Token) (ast.Expr, errs.Error) {
	if err := p.advance(); err != nil { // consume the `let`
		return nil, err
	}
	if err := p.consume(TokenKindLeftParen, "Expected `(` starting the binding list."); err != nil {
		return nil, err
	}

	type binding struct {
		nameSpan ast.Span
		name     ast.Ident
		value    ast.Expr
	}
	bindings := []binding{}

	for !p.check(TokenKindRightParen) {
		if err := p.consume(TokenKindLeftParen, "Expected `(` starting a binding."); err != nil {
			return nil, err
		}
		nameTok := p.currentToken
		if err := p.consume(TokenKindIdentifier, "Expected the bound name."); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(TokenKindRightParen, "Expected `)` after the binding."); err != nil {
			return nil, err
		}
		bindings = append(bindings, binding{
			nameSpan: span(nameTok),
			name:     ast.Ident(nameTok.Lexeme),
			value:    value,
		})
	}
	if err := p.advance(); err != nil { // consume the binding list's ')'
		return nil, err
	}

	body, err := p.expressionsUntilRightParen()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errs.NewCompileTime(p.fileName, open.Line, "let form needs a body")
	}

	expr := thenChain(body)
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		expr = &ast.LetExpr{
			NameSpan: b.nameSpan,
			Name:     b.name,
			Value:    b.value,
			Body:     expr,
		}
	}
	return expr, nil
}

// lambdaForm parses (lambda (params...) body...) into the call form the
// lowering pass recognizes: the head identifier, a parameter list, and the
// body expressions.
func (p *parser) lambdaForm(open *Token) (ast.Expr, errs.Error) {
	head := p.currentToken
	if err := p.advance(); err != nil { // consume the `lambda`
		return nil, err
	}

	paramsOpen := p.currentToken
	if err := p.consume(TokenKindLeftParen, "Expected `(` starting the parameter list."); err != nil {
		return nil, err
	}
	params := []ast.Expr{}
	for !p.check(TokenKindRightParen) {
		tok := p.currentToken
		if err := p.consume(TokenKindIdentifier, "Expected a parameter name."); err != nil {
			return nil, err
		}
		params = append(params, &ast.IdentExpr{Span: span(tok), Name: ast.Ident(tok.Lexeme)})
	}
	if err := p.advance(); err != nil { // consume the parameter list's ')'
		return nil, err
	}

	body, err := p.expressionsUntilRightParen()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errs.NewCompileTime(p.fileName, open.Line, "lambda form needs a body")
	}

	items := make([]ast.Expr, 0, len(body)+2)
	items = append(items,
		&ast.IdentExpr{Span: span(head), Name: ast.Ident(head.Lexeme)},
		&ast.ListExpr{Span: span(paramsOpen), Elems: params})
	items = append(items, body...)

	return &ast.CallExpr{Span: span(open), Items: items}, nil
}

// expressionsUntilRightParen parses expressions until the closing paren of
// the current form, consuming it.
func (p *parser) expressionsUntilRightParen() ([]ast.Expr, errs.Error) {
	exprs := []ast.Expr{}
	for !p.check(TokenKindRightParen) {
		if p.check(TokenKindEOF) {
			return nil, p.errorAtCurrent("Expected `)` closing the form.")
		}
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	if err := p.advance(); err != nil { // consume the ')'
		return nil, err
	}
	return exprs, nil
}

// thenChain folds a nonempty sequence of expressions into a right-nested
// chain of then expressions.
func thenChain(exprs []ast.Expr) ast.Expr {
	e := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		e = &ast.ThenExpr{First: exprs[i], Second: e}
	}
	return e
}
