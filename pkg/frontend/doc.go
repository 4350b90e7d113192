/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package frontend contains the Vireo scanner and parser: everything needed
// to turn source code into an AST.
package frontend
