/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package ir defines the intermediate representation the compiler works on,
// and the lowering pass that produces it from the surface AST.
//
// The IR is close to the AST but desugared: function bodies are single
// expressions, lambdas are explicit nodes, and booleans are literals (in the
// AST they are still plain identifiers).
package ir
