/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vireo-lang/vireo/pkg/ast"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/frontend"
)

var devPrintASTCmd = &cobra.Command{
	Use:   "print-ast <path>",
	Short: "Parses a Vireo program and prints its AST",
	Long:  `Parses a Vireo program and prints its AST.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		mod, plainErr := frontend.ParseProgram(args[0])
		if plainErr != nil {
			if e, ok := plainErr.(errs.Error); ok {
				reportAndExit(e)
			}
			reportAndExit(errs.NewICE("unexpected parse error: %v", plainErr))
		}

		printer := &astPrinter{}
		mod.Walk(printer)
		reportAndExit(nil)
	},
}

// astPrinter is an ast.Visitor that prints one line per node, indented by
// tree depth.
type astPrinter struct {
	depth int
}

func (p *astPrinter) Enter(node ast.Node) {
	fmt.Printf("%v%v\n", strings.Repeat("    ", p.depth), nodeLabel(node))
	p.depth++
}

func (p *astPrinter) Leave(node ast.Node) {
	p.depth--
}

// nodeLabel builds the one-line description of a node.
func nodeLabel(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Module:
		return "Module"
	case *ast.FunctionStatement:
		params := make([]string, len(n.Params))
		for i, prm := range n.Params {
			params[i] = string(prm)
		}
		return fmt.Sprintf("Function %v(%v)", n.Name, strings.Join(params, ", "))
	case *ast.ExprStatement:
		return "ExprStatement"
	case *ast.LiteralExpr:
		return fmt.Sprintf("Literal %v", literalLabel(n.Literal))
	case *ast.ListExpr:
		return "List"
	case *ast.LetExpr:
		return fmt.Sprintf("Let %v", n.Name)
	case *ast.ThenExpr:
		return "Then"
	case *ast.IdentExpr:
		return fmt.Sprintf("Ident %v", n.Name)
	case *ast.CallExpr:
		return "Call"
	case *ast.IfExpr:
		return "If"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// literalLabel builds the description of a literal.
func literalLabel(lit ast.Literal) string {
	switch l := lit.(type) {
	case ast.NumberLiteral:
		return fmt.Sprintf("number %v", l.Source)
	case ast.DecimalLiteral:
		return fmt.Sprintf("decimal %v", l.Source)
	case ast.StringLiteral:
		return fmt.Sprintf("string %q", l.Value)
	case ast.BytesLiteral:
		return fmt.Sprintf("bytes (%v bytes)", len(l.Value))
	default:
		return fmt.Sprintf("%T", l)
	}
}
