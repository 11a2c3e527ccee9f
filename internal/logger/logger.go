package logger

import (
	"context"

	"github.com/deespora/backoffice/internal/config"
	"github.com/deespora/backoffice/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates a Logger at the level named in the configuration
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg != nil {
		level, err := zapcore.ParseLevel(string(cfg.Logging.Level))
		if err == nil {
			zapConfig.Level = zap.NewAtomicLevelAt(level)
		}
		if cfg.Logging.Level == types.LogLevelDebug {
			zapConfig.Development = true
		}
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// NewNoopLogger discards everything. Used by tests and by the CLI when it
// writes tables to stdout.
func NewNoopLogger() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Initialize default logger and set it as global while also using Dependency Injection.
// Scripts and the CLI reach for L; everything else gets a Logger injected.
func init() {
	L, _ = NewLogger(nil)
	if L == nil {
		L = NewNoopLogger()
	}
}

// WithContext returns a logger annotated with the request id carried by ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if requestID := types.GetRequestID(ctx); requestID != "" {
		return &Logger{SugaredLogger: l.With("request_id", requestID)}
	}
	return l
}

// Helper methods to make logging more convenient
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.SugaredLogger.Debugf(template, args...)
}

func (l *Logger) Infof(template string, args ...interface{}) {
	l.SugaredLogger.Infof(template, args...)
}

func (l *Logger) Warnf(template string, args ...interface{}) {
	l.SugaredLogger.Warnf(template, args...)
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	l.SugaredLogger.Errorf(template, args...)
}

func (l *Logger) Fatalf(template string, args ...interface{}) {
	l.SugaredLogger.Fatalf(template, args...)
}
