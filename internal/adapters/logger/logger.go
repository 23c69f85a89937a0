// Package logger implements ports.Logger on log/slog with a colored
// terminal handler and a JSON handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/steady/internal/adapters/detector"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	format domain.LogFormat
	output io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr, format: domain.LogFormatPretty}
	l.rebuild()
	return l
}

// SetOutput changes the destination, keeping the format. A nil w writes to stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetFormat switches the encoding. LogFormatAuto picks pretty output on an
// interactive terminal and JSON otherwise.
func (l *Logger) SetFormat(format domain.LogFormat) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = detector.ResolveFormat(format, detector.DetectEnvironment())
	l.rebuild()
}

// Format returns the resolved encoding.
func (l *Logger) Format() domain.LogFormat {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.format
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if l.format == domain.LogFormatJSON {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. JSON output carries zerr metadata as fields; pretty output
// prints the cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.format == domain.LogFormatJSON {
		zerr.Log(context.Background(), l.logger, err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
