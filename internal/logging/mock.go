package logging

import "fmt"

// MockLogger captures log entries for verification in tests. Loggers
// derived with WithField or WithError record into the root logger's
// Entries, so a test can assert on everything its injected logger saw.
type MockLogger struct {
	Entries       []LogEntry
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log message.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) sink() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	all := append(append([]Field{}, m.pendingFields...), fields...)
	s := m.sink()
	s.Entries = append(s.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatalf records the message instead of exiting, so tests can assert on it.
func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &MockLogger{
		root:          m.sink(),
		pendingError:  m.pendingError,
		pendingFields: append(append([]Field{}, m.pendingFields...), Field{Key: key, Value: value}),
	}
}

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.sink(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// HasMessage reports whether any captured entry contains msg.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.sink().Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
