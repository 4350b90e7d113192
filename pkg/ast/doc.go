/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package ast defines the Abstract Syntax Tree for the surface Vireo
// language, as produced by the frontend.
//
// The AST is the first of the three program representations used by the
// toolchain (AST, IR, bytecode). Each representation carries its own
// identifier and literal types; the stages are linked only by explicit
// lowering passes.
package ast
