/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package bytecode defines the compiled representation of a Vireo program
// and the runtime values the virtual machine manipulates.
//
// A compiled module is a flat sequence of byte-encoded instructions plus a
// set of tables (literals, functions, constructors, globals), all referenced
// through compact typed indices. The module is immutable once handed to the
// VM and may be shared by reference across machines.
package bytecode
