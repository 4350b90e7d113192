/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package twi implements a tree-walk interpreter over the Vireo IR.
//
// The tree-walk interpreter is the reference engine: slower than the
// bytecode VM and without its cooperative-abort machinery, but simple enough
// to trust. The test suite runs programs on both engines and compares the
// results.
package twi
