/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package test implements the runner for Vireo's end-to-end test suite: a
// tree of test cases, each a directory with a test.toml configuration and a
// program source directory. Cases run on the bytecode VM and on the
// tree-walk interpreter, and both engines must agree with the expectations.
package test
