package logger

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *Logger
}

// NewWrappedLogger creates a new WrappedLogger.
func NewWrappedLogger(logger *Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// Logger return the underlying logger.
func (l *WrappedLogger) Logger() *Logger {
	return l.logger
}

// LogDebugw logs a message with some additional context.
func (l *WrappedLogger) LogDebugw(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Debugw(msg, keysAndValues...)
	}
}

// LogInfow logs a message with some additional context.
func (l *WrappedLogger) LogInfow(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Infow(msg, keysAndValues...)
	}
}

// LogWarnw logs a message with some additional context.
func (l *WrappedLogger) LogWarnw(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Warnw(msg, keysAndValues...)
	}
}
