// Package logging provides the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logPath string
	logFile *os.File

	setupOnce sync.Once
	writer    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Must be called before the first Get to take effect.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			writer = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			writer = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			writer = os.Stdout
			return
		}

		writer = io.MultiWriter(os.Stdout, logFile)
	})
}

// Get returns the shared logger.
func Get() *slog.Logger {
	loggerOnce.Do(func() {
		setup()

		handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLevel sets the minimum level for the shared logger.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLogLevel parses and sets the level from a string (e.g. "debug", "error").
func SetRawLogLevel(raw string) {
	SetLevel(ParseLevel(raw))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Close releases the log file, if one was opened.
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
