/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeCompileTimeError indicates a compile-time error.
	StatusCodeCompileTimeError = 1

	// StatusCodeTestSuiteError indicates a failure while running Vireo's own
	// test suite.
	StatusCodeTestSuiteError = 2

	// StatusCodeExecutionError indicates a runtime error while executing a
	// compiled module.
	StatusCodeExecutionError = 3

	// StatusCodeBadUsage indicates some user error in the usage of the vireo
	// tool (e.g., passing the wrong number of arguments, or passing a
	// nonexisting command-line flag).
	StatusCodeBadUsage = 50

	// StatusCodeCommandPrepError indicates an error while preparing to run a
	// command (e.g., a missing input file).
	StatusCodeCommandPrepError = 51

	// StatusCodeICE indicates an Internal Compiler Error.
	StatusCodeICE = 125
)
