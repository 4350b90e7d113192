/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package run wires the whole toolchain together: parse, lower, compile and
// execute -- on either the bytecode VM or the tree-walk interpreter. It is
// the layer the CLI and the end-to-end test suite sit on.
package run
