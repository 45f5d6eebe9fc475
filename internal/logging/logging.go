// Package logging builds the zap logger used for opt-in request tracing.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development logger writing debug output to stderr when debug
// is set, and a no-op logger otherwise.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
