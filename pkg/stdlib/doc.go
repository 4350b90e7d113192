/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package stdlib provides the stock Vireo environment: the native intrinsic
// functions every frontend tool registers (arithmetic, comparison, printing,
// cooperative abort), and the default literal mappings for the fixed-width
// integer backend.
package stdlib
