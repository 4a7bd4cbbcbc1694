// Package logging provides structured logging for the transport catalogue.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger provides structured logging capabilities for the transport catalogue.
type Logger struct {
	*slog.Logger
	level slog.Level
}

// LogLevel represents different logging levels.
type LogLevel int

const (
	// LevelDebug provides detailed debugging information.
	LevelDebug LogLevel = iota
	// LevelInfo provides general informational messages.
	LevelInfo
	// LevelWarn provides warning messages for potentially problematic situations.
	LevelWarn
	// LevelError provides error messages for serious problems.
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
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

// ToSlogLevel converts LogLevel to slog.Level.
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerConfig holds configuration for logger creation.
type LoggerConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Format specifies the output format ("json" or "text").
	Format string
	// Output specifies the output destination. Defaults to stderr so that
	// stdout remains a pure response stream.
	Output io.Writer
	// IncludeSource adds source code information to log entries.
	IncludeSource bool
	// Component identifies the logging component.
	Component string
}

// NewLogger creates a new structured logger with the specified configuration.
func NewLogger(config LoggerConfig) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	if config.Format == "" {
		config.Format = "text"
	}

	if config.Component == "" {
		config.Component = "transport-catalogue"
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.IncludeSource,
	}

	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	// Add component context to all log entries
	logger := slog.New(handler).With("component", config.Component)

	return &Logger{
		Logger: logger,
		level:  config.Level.ToSlogLevel(),
	}
}

// NewDefaultLogger creates a logger with sensible defaults.
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerConfig{
		Level:         LevelInfo,
		Format:        "text",
		Output:        os.Stderr,
		IncludeSource: false,
		Component:     "transport-catalogue",
	})
}

// NewDebugLogger creates a logger with debug level and source information.
func NewDebugLogger() *Logger {
	return NewLogger(LoggerConfig{
		Level:         LevelDebug,
		Format:        "text",
		Output:        os.Stderr,
		IncludeSource: true,
		Component:     "transport-catalogue",
	})
}

// WithStop returns a logger with stop context.
func (l *Logger) WithStop(name string) *Logger {
	return &Logger{
		l.With("stop", name),
		l.level,
	}
}

// WithBus returns a logger with bus route context.
func (l *Logger) WithBus(route string) *Logger {
	return &Logger{
		l.With("bus", route),
		l.level,
	}
}

// WithRequest returns a logger with stat request context.
func (l *Logger) WithRequest(requestID int, requestType string) *Logger {
	return &Logger{
		l.With(
			"request_id", requestID,
			"request_type", requestType,
		),
		l.level,
	}
}

// WithError returns a logger with error context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		l.With("error", err.Error()),
		l.level,
	}
}

// WithDuration returns a logger with duration context.
func (l *Logger) WithDuration(operation string, duration time.Duration) *Logger {
	return &Logger{
		l.With(
			"operation", operation,
			"duration_ms", duration.Milliseconds(),
		),
		l.level,
	}
}

// IngestStart logs the start of catalogue ingestion.
func (l *Logger) IngestStart(stopCount, busCount int) {
	l.Info("Starting ingestion",
		"stops", stopCount,
		"buses", busCount,
	)
}

// IngestComplete logs catalogue ingestion completion.
func (l *Logger) IngestComplete(stopCount, busCount, distanceCount int, duration time.Duration) {
	l.Info("Ingestion completed",
		"stops", stopCount,
		"buses", busCount,
		"distances", distanceCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// BusRejected logs a bus definition refused during ingestion.
func (l *Logger) BusRejected(route string, reason string) {
	l.Warn("Bus rejected",
		"bus", route,
		"reason", reason,
	)
}

// GraphBuilt logs completion of the routing graph construction.
func (l *Logger) GraphBuilt(vertexCount, edgeCount int, duration time.Duration) {
	l.Info("Routing graph built",
		"vertices", vertexCount,
		"edges", edgeCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// RenderCompleted logs completion of a map render.
func (l *Logger) RenderCompleted(busCount, stopCount int, duration time.Duration) {
	l.Debug("Map rendered",
		"buses", busCount,
		"stops", stopCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// QueryCompleted logs completion of a single stat request.
func (l *Logger) QueryCompleted(requestID int, requestType string, duration time.Duration) {
	l.Debug("Query completed",
		"request_id", requestID,
		"request_type", requestType,
		"duration_ms", duration.Milliseconds(),
	)
}

// QueryFailed logs a stat request answered with a per-request error entry.
func (l *Logger) QueryFailed(requestID int, requestType string, err error) {
	l.Debug("Query failed",
		"request_id", requestID,
		"request_type", requestType,
		"error", err.Error(),
	)
}

// IsLevelEnabled checks if a log level is enabled.
func (l *Logger) IsLevelEnabled(level LogLevel) bool {
	return l.level <= level.ToSlogLevel()
}

// Global logger instance for convenience.
var defaultLogger = NewDefaultLogger()

// SetDefaultLogger sets the global default logger.
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the global default logger.
func GetDefaultLogger() *Logger {
	return defaultLogger
}

// Convenience functions for global logger.

// Debug logs a debug message using the default logger.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message using the default logger.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message using the default logger.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message using the default logger.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
