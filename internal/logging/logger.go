package logging

// Leveled logging for stockdeck

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Options controls where and how much a Logger writes.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File, when set, receives every record in addition to the console.
	File string
	// Console enables writing to stderr. The TUI turns this off so the
	// terminal stays owned by the program renderer.
	Console bool
}

// Logger wraps the structured logger with file lifecycle handling.
type Logger struct {
	l    *charmlog.Logger
	file *os.File
}

// New creates a logger. Callers must Close it to flush the log file.
func New(opts Options) (*Logger, error) {
	level := charmlog.InfoLevel
	if opts.Level != "" {
		parsed, err := charmlog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, os.Stderr)
	}

	var file *os.File
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return &Logger{l: l, file: file}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{l: charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// With returns a logger with the given key-value context attached.
// The returned logger shares the parent's outputs; Close stays with
// the parent.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: l.l.With(keyvals...)}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyvals ...any) { l.l.Debug(msg, keyvals...) }

// Info logs at info level.
func (l *Logger) Info(msg string, keyvals ...any) { l.l.Info(msg, keyvals...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyvals ...any) { l.l.Warn(msg, keyvals...) }

// Error logs at error level.
func (l *Logger) Error(msg string, keyvals ...any) { l.l.Error(msg, keyvals...) }
