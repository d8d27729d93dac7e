// Package tui provides terminal output components: the Splog logger, color
// helpers, and the submit progress display.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if maxSizeStr := os.Getenv("PRSHIP_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("PRSHIP_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("PRSHIP_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool           // When true, suppresses all console output
}

// NewSplog creates a new splog instance with console-only logging.
// Debug messages are enabled when PRSHIP_DEBUG is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig("")
	return splog
}

// NewSplogWithWriter creates a console-only splog writing to w. Used by
// tests that need to capture output.
func NewSplogWithWriter(w io.Writer, debugMode bool) *Splog {
	splog := &Splog{writer: w}
	handler := &simpleHandler{
		writer:    w,
		debugMode: debugMode,
		quiet:     &splog.quiet,
	}
	splog.logger = slog.New(&multiHandler{handlers: []slog.Handler{handler}})
	return splog
}

// NewSplogWithConfig creates a new splog instance with optional rotating
// file logging at logFilePath.
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	writer := os.Stdout
	debugMode := os.Getenv("PRSHIP_DEBUG") != ""
	splog := &Splog{
		writer: writer,
	}

	consoleHandler := &simpleHandler{
		writer:    writer,
		debugMode: debugMode,
		quiet:     &splog.quiet,
	}

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})

	return splog, nil
}

// SetQuiet sets the quiet mode for the logger.
// When quiet is true, all console output is suppressed (used during TUI mode).
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether the logger is in quiet mode.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func (s *Splog) format(prefix, format string, args ...interface{}) string {
	if len(args) == 0 {
		return prefix + format
	}
	return fmt.Sprintf(prefix+format, args...)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.format("", format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, s.format("⚠️  ", format, args...))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, s.format("❌ ", format, args...))
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, s.format("", format, args...))
}

// Newline writes a newline
func (s *Splog) Newline() {
	if !s.quiet {
		_, _ = fmt.Fprintln(s.writer)
	}
}

// Close releases the file log writer, if any
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
