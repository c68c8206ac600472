// Package logging provides the append-only run log written to
// ~/.s3load/s3load.log, one line per record. The logger is constructed once
// at process start and passed by reference; there is no package-level state.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	logDirName  = ".s3load"
	logFileName = "s3load.log"
)

// Logger writes timestamped records in the format
// "2006-01-02 15:04:05 | LEVEL | message".
type Logger struct {
	w      io.Writer
	closer io.Closer
	now    func() time.Time
}

// Open appends to the log file under the user's home directory, creating
// the file and its parent directory on first use.
func Open() (*Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return OpenPath(filepath.Join(home, logDirName, logFileName))
}

// OpenPath appends to the log file at path, creating parent directories as
// needed.
func OpenPath(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{w: f, closer: f, now: time.Now}, nil
}

// New returns a Logger writing records to w. Used by callers and tests that
// manage their own sink.
func New(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Infof writes one INFO record.
func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", format, args)
}

// Errorf writes one ERROR record.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", format, args)
}

func (l *Logger) write(level, format string, args []any) {
	fmt.Fprintf(l.w, "%s | %s | %s\n",
		l.now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

// Close closes the underlying file when the logger owns one.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
