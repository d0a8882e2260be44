package utils

import "go.uber.org/zap"

// NewLogger builds the process logger. Debug selects zap's development
// preset (console encoder, debug level); otherwise the production preset
// (JSON encoder, info level) is used.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
