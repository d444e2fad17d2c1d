package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide zap logger. LOG_LEVEL controls verbosity
// (debug/info/warn/error, default info); LOG_FORMAT=console switches off JSON.
func New() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			level = zapcore.InfoLevel
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("LOG_FORMAT") == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build()
}

// NewNop returns a no-op logger for tests
func NewNop() *zap.Logger {
	return zap.NewNop()
}
