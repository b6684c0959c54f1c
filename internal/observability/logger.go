package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the project
type Logger = *zap.SugaredLogger

// Log is the global logger instance
var Log Logger = newSugared("info")

func newSugared(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel rebuilds the global logger at the given level.
// Valid levels: "debug", "info", "warn", "error", "fatal".
func SetLevel(level string) {
	Log = newSugared(level)
}

// New creates a named component logger
// Example: observability.New("rack-service", "info")
func New(name, level string) Logger {
	base := Log
	if level != "" {
		base = newSugared(level)
	}
	return base.With("component", name)
}

// WithFields creates a logger with contextual fields
// Example: observability.WithFields("cinema_id", "abc123")
func WithFields(args ...any) Logger {
	return Log.With(args...)
}
