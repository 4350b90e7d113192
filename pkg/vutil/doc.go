/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package vutil contains assorted utilities used throughout the Vireo
// toolchain: binary serialization helpers, filesystem traversal, and the I/O
// abstractions used by programs and by the test suite.
package vutil
