/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"
	"os"
)

// ReportAndExit reports the error err to the end user and exits with the
// appropriate status code. It's fine if err is nil, we handle this case here.
func ReportAndExit(err error) {
	if err == nil {
		os.Exit(StatusCodeSuccess)
	}

	if e, ok := err.(Error); ok {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(e.ExitCode())
	}

	fmt.Fprintf(os.Stderr, "Internal error: unexpected error of type %T: %v\n", err, err)
	os.Exit(StatusCodeICE)
}
