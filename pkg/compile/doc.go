/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package compile implements the IR-to-bytecode compiler and the
// compile-time environment.
//
// The environment is where an embedder registers its native intrinsic
// functions (NIFs), globals and constructors before compilation; the
// compiler resolves identifiers against it and the result is a finalized
// bytecode.CompiledModule plus a vm.ExecutionEnviron to run it in.
package compile
