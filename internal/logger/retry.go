package logger

import "github.com/hashicorp/go-retryablehttp"

// retryLogger adapts our Logger to retryablehttp's leveled logging interface
type retryLogger struct {
	logger *Logger
}

// GetRetryLogger returns a retryablehttp-compatible logger
func (l *Logger) GetRetryLogger() retryablehttp.LeveledLogger {
	return &retryLogger{logger: l}
}

func (r *retryLogger) Debug(msg string, keyvals ...interface{}) {
	r.logger.Debugw(msg, keyvals...)
}

func (r *retryLogger) Info(msg string, keyvals ...interface{}) {
	r.logger.Infow(msg, keyvals...)
}

func (r *retryLogger) Warn(msg string, keyvals ...interface{}) {
	r.logger.Warnw(msg, keyvals...)
}

func (r *retryLogger) Error(msg string, keyvals ...interface{}) {
	r.logger.Errorw(msg, keyvals...)
}
