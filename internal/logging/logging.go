// Package logging provides the shared zap logger used across selact.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger at the given level. When development is true, output
// is human-readable with colored levels; otherwise JSON production encoding
// is used. Unknown level strings fall back to info.
func New(level string, development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	return cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
}

// Nop returns a logger that discards everything. Used by tests and as the
// default when no logger is injected.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
