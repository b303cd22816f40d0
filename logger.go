package berkas

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a wrapper around slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// NewLogger membuat logger baru dengan JSON output format dan specified log level.
// Output dikirim ke stdout. Gunakan untuk structured logging yang bisa di-parse
// oleh log aggregation tools.
//
// Example:
//
//	logger := NewLogger(slog.LevelInfo)
//	logger.Info("user authenticated", "username", "test")
func NewLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(handler)}
}

// NewLoggerWithWriter membuat logger baru dengan JSON output format dan custom writer.
// Berguna untuk logging ke file, buffer, atau custom destinations.
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(handler)}
}

// NewTextLogger membuat logger baru dengan text output format.
// Gunakan untuk development environment atau ketika structured JSON tidak diperlukan.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(handler)}
}

// Info menulis info-level log message dengan optional key-value attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info(msg, args...)
}

// Error menulis error-level log message dengan optional key-value attributes.
func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error(msg, args...)
}

// Warn menulis warn-level log message dengan optional key-value attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, args...)
}

// Debug menulis debug-level log message dengan optional key-value attributes.
// Hanya ditampilkan jika logger level di-set ke LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug(msg, args...)
}
