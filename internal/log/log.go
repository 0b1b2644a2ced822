// Package log provides structured logging for NumCrypt.
// By default, logging is disabled (null logger) so the GUI stays silent;
// the CLI enables it with --verbose.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// nullLogger is a no-op logger that discards all output.
type nullLogger struct{}

func (n *nullLogger) Debug(msg string, fields ...Field) {}
func (n *nullLogger) Info(msg string, fields ...Field)  {}
func (n *nullLogger) Warn(msg string, fields ...Field)  {}
func (n *nullLogger) Error(msg string, fields ...Field) {}

// simpleLogger writes logs to an io.Writer.
type simpleLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// NewSimpleLogger creates a simple logger that writes to the given writer.
func NewSimpleLogger(out io.Writer, level Level) Logger {
	return &simpleLogger{out: out, level: level}
}

func (s *simpleLogger) log(level Level, msg string, fields ...Field) {
	if level < s.level {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Format: timestamp level message field1=value1 field2=value2
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(s.out, "%s %s %s", timestamp, level.String(), msg)
	for _, f := range fields {
		fmt.Fprintf(s.out, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(s.out)
}

func (s *simpleLogger) Debug(msg string, fields ...Field) { s.log(LevelDebug, msg, fields...) }
func (s *simpleLogger) Info(msg string, fields ...Field)  { s.log(LevelInfo, msg, fields...) }
func (s *simpleLogger) Warn(msg string, fields ...Field)  { s.log(LevelWarn, msg, fields...) }
func (s *simpleLogger) Error(msg string, fields ...Field) { s.log(LevelError, msg, fields...) }

// Package-level logger (null by default for zero overhead)
var (
	defaultLogger Logger = &nullLogger{}
	loggerMu      sync.RWMutex
)

// SetLogger sets the package-level logger.
// Call with nil to disable logging.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		defaultLogger = &nullLogger{}
	} else {
		defaultLogger = l
	}
}

// GetLogger returns the current package-level logger.
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// EnableDebugLogging enables debug logging to stderr.
func EnableDebugLogging() {
	SetLogger(NewSimpleLogger(os.Stderr, LevelDebug))
}

// Debug logs a debug message with the package-level logger.
func Debug(msg string, fields ...Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message with the package-level logger.
func Info(msg string, fields ...Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message with the package-level logger.
func Warn(msg string, fields ...Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message with the package-level logger.
func Error(msg string, fields ...Field) {
	GetLogger().Error(msg, fields...)
}
