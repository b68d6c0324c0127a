// Package logging decouples the application from the underlying logging
// framework. Production code uses the logrus adapter; tests use MockLogger.
package logging

// Field is a key-value pair attached to a structured log message.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for constructing a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the structured logging interface used throughout the
// application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatalf logs at fatal level with formatting and exits the program.
	Fatalf(format string, args ...interface{})

	// WithField returns a logger with a field attached to every message.
	WithField(key string, value interface{}) Logger

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger
}
