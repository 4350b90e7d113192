/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package vm implements the Vireo Virtual Machine: a stack-based interpreter
// for compiled Vireo modules.
//
// An ExecutionMachine executes one compiled module. Exec seeds the initial
// call frame and runs the dispatch loop until the outermost return yields the
// program value, or until an execution error is raised. Execution is
// single-threaded and cooperative: the only cross-thread interaction allowed
// is flipping the machine's abort flag, which the dispatch loop observes
// between instructions.
package vm
