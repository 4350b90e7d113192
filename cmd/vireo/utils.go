/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vireo-lang/vireo/pkg/errs"
)

// newTraceLogger builds the logger used for VM instruction tracing: a
// development-style zap logger at debug level, writing to stderr so traces
// don't mix with program output.
func newTraceLogger() (*zap.Logger, errs.Error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errs.NewCommandPrep("creating the trace logger: %v", err)
	}
	return logger, nil
}
