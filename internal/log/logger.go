package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides centralized debug logging for the entire application
type Logger struct {
	logger *slog.Logger
	file   *os.File
	level  *slog.LevelVar
}

var globalLogger *Logger

// init creates the global logger with stderr output by default
func init() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	globalLogger = &Logger{
		logger: slog.New(handler),
		file:   os.Stderr,
		level:  level,
	}
}

// SetFileOutput configures the logger to write to the specified file
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}

	if globalLogger != nil {
		logger.level.Set(globalLogger.level.Level())
		globalLogger.closeFile()
	}

	globalLogger = logger
	return nil
}

// SetOutput redirects logging to w. Used by the CLI (stderr) and by tests.
func SetOutput(w io.Writer) {
	level := new(slog.LevelVar)
	if globalLogger != nil {
		level.Set(globalLogger.level.Level())
		globalLogger.closeFile()
	}
	globalLogger = &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		level:  level,
	}
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(level slog.Level) {
	if globalLogger != nil {
		globalLogger.level.Set(level)
	}
}

// ParseLevel maps a config string to a slog level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a new debug logger that writes to the specified file
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
		level:  level,
	}, nil
}

func (l *Logger) closeFile() {
	if l.file != nil && l.file != os.Stdout && l.file != os.Stderr {
		l.file.Close()
	}
}

// Standard logging methods
func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file
func Close() {
	if globalLogger != nil {
		globalLogger.closeFile()
	}
}
