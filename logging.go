package main

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Warnings and errors go to stderr so
// they never mix with masked output; repeated -v flags lower the level to
// debug.
func NewLogger(verbosity int) *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbosity > 0 {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(config.Build())
}
