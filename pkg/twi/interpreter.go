/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package twi

import (
	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/compile"
	"github.com/vireo-lang/vireo/pkg/errs"
	"github.com/vireo-lang/vireo/pkg/ir"
	"github.com/vireo-lang/vireo/pkg/vm"
)

// Params groups the embedder-provided hooks the interpreter needs. They are
// the same hooks the compiler and the VM take, so one embedder setup serves
// both engines.
type Params struct {
	LiteralMapper  func(lit ir.Literal) (bytecode.Literal, error)
	LiteralToValue func(lit bytecode.Literal) bytecode.Value
}

// An Interpreter evaluates a lowered module directly, without compiling it.
type Interpreter struct {
	params Params
	ns     compile.Namespace
	env    *compile.Environment
	funcs  map[string]*ir.FunctionStatement
}

// funcValue is the interpreter's runtime representation of a user function.
// It rides inside a bytecode.Value like any embedder-defined payload would.
type funcValue struct {
	params []ir.Variable
	body   ir.Expr
}

// nifValue is the interpreter's runtime representation of a NIF reference.
type nifValue struct {
	id bytecode.NifId
}

// New creates an Interpreter for a module mounted at the given namespace,
// resolving intrinsics and globals against env.
func New(params Params, ns compile.Namespace, mod *ir.Module, env *compile.Environment) (*Interpreter, errs.Error) {
	in := &Interpreter{
		params: params,
		ns:     ns,
		env:    env,
		funcs:  map[string]*ir.FunctionStatement{},
	}

	for _, stmt := range mod.Statements {
		switch n := stmt.(type) {
		case *ir.FunctionStatement:
			path := compile.NewAbsPath(ns, string(n.Name)).String()
			if _, exists := in.funcs[path]; exists {
				return nil, errs.NewRuntime("duplicate definition of function '%v'", n.Name)
			}
			in.funcs[path] = n

		case *ir.ExprStatement:
			return nil, errs.NewRuntime("top-level expressions are not supported; wrap the code in a function")

		default:
			return nil, errs.NewICE("unknown statement type: %T", n)
		}
	}

	return in, nil
}

// CallPath calls the function registered under the given absolute path with
// the given arguments.
func (in *Interpreter) CallPath(path string, args []bytecode.Value) (bytecode.Value, errs.Error) {
	fn, ok := in.funcs[path]
	if !ok {
		return bytecode.Value{}, errs.NewRuntime("no function at path %v", path)
	}
	return in.apply(funcValue{params: fn.Params, body: fn.Body}, args)
}

// apply calls a user function value with the given arguments.
//
// Parameters are the only bindings the callee starts with: Vireo callables
// carry no environment, so a lambda body referencing an enclosing local
// fails to resolve, exactly like it fails to compile on the VM path.
func (in *Interpreter) apply(fn funcValue, args []bytecode.Value) (bytecode.Value, errs.Error) {
	if len(args) != len(fn.params) {
		return bytecode.Value{}, &vm.ArityError{Expected: len(fn.params), Got: len(args)}
	}

	sc := &scope{vars: map[ir.Ident]bytecode.Value{}}
	for i, p := range fn.params {
		sc.vars[p.Name] = args[i]
	}
	return in.eval(sc, fn.body)
}

// scope is one lexical scope: a set of bindings plus a link to the enclosing
// scope of the same function.
type scope struct {
	parent *scope
	vars   map[ir.Ident]bytecode.Value
}

// lookup resolves a name through the scope chain.
func (sc *scope) lookup(name ir.Ident) (bytecode.Value, bool) {
	for s := sc; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return bytecode.Value{}, false
}

// eval evaluates one expression within a scope.
func (in *Interpreter) eval(sc *scope, expr ir.Expr) (bytecode.Value, errs.Error) {
	switch n := expr.(type) {
	case *ir.LiteralExpr:
		lit, err := in.params.LiteralMapper(n.Literal)
		if err != nil {
			return bytecode.Value{}, errs.NewRuntime("%v", err)
		}
		return in.params.LiteralToValue(lit), nil

	case *ir.ListExpr:
		return bytecode.Value{}, errs.NewRuntime("list expressions are not supported")

	case *ir.LetExpr:
		value, err := in.eval(sc, n.Value)
		if err != nil {
			return bytecode.Value{}, err
		}
		inner := &scope{parent: sc, vars: map[ir.Ident]bytecode.Value{n.Name.Name: value}}
		return in.eval(inner, n.Body)

	case *ir.ThenExpr:
		if _, err := in.eval(sc, n.First); err != nil {
			return bytecode.Value{}, err
		}
		return in.eval(sc, n.Second)

	case *ir.IdentExpr:
		return in.resolve(sc, n)

	case *ir.LambdaExpr:
		return bytecode.Value{Value: funcValue{params: n.Params, body: n.Body}}, nil

	case *ir.CallExpr:
		callee, err := in.eval(sc, n.Items[0])
		if err != nil {
			return bytecode.Value{}, err
		}
		args := make([]bytecode.Value, len(n.Items)-1)
		for i, item := range n.Items[1:] {
			args[i], err = in.eval(sc, item)
			if err != nil {
				return bytecode.Value{}, err
			}
		}
		return in.call(callee, args)

	case *ir.IfExpr:
		cond, err := in.eval(sc, n.Cond)
		if err != nil {
			return bytecode.Value{}, err
		}
		b, err := vm.BoolValue(cond)
		if err != nil {
			return bytecode.Value{}, err
		}
		if b {
			return in.eval(sc, n.Then)
		}
		return in.eval(sc, n.Else)

	default:
		return bytecode.Value{}, errs.NewICE("unknown expression type: %T", n)
	}
}

// resolve resolves an identifier: scope bindings first, then functions, NIFs
// and globals -- in the module's namespace, then in the root namespace.
func (in *Interpreter) resolve(sc *scope, n *ir.IdentExpr) (bytecode.Value, errs.Error) {
	if v, ok := sc.lookup(n.Name); ok {
		return v, nil
	}

	paths := []string{
		compile.NewAbsPath(in.ns, string(n.Name)).String(),
		compile.NewAbsPath(compile.RootNamespace(), string(n.Name)).String(),
	}
	for _, path := range paths {
		if fn, ok := in.funcs[path]; ok {
			return bytecode.Value{Value: funcValue{params: fn.Params, body: fn.Body}}, nil
		}
		if id, ok := in.env.NifByPath(path); ok {
			return bytecode.Value{Value: nifValue{id: id}}, nil
		}
		if id, ok := in.env.GlobalByPath(path); ok {
			return in.env.GlobalAt(id), nil
		}
	}

	return bytecode.Value{}, errs.NewRuntime("undefined identifier '%v'", n.Name)
}

// call applies a callee value to its arguments.
func (in *Interpreter) call(callee bytecode.Value, args []bytecode.Value) (bytecode.Value, errs.Error) {
	switch c := callee.Value.(type) {
	case funcValue:
		return in.apply(c, args)

	case nifValue:
		nif := in.env.NifAt(c.id)
		if nif.Call.Pure == nil {
			return bytecode.Value{}, errs.NewRuntime(
				"intrinsic '%v' needs the bytecode virtual machine", nif.Name)
		}
		return nif.Call.Pure(args)

	default:
		return bytecode.Value{}, &vm.ValueKindUnexpected{
			Expected: bytecode.ValueKindFun,
			Got:      bytecode.KindOf(callee),
		}
	}
}
