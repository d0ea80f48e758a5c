package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the session log file, relative to the working directory.
const DefaultPath = "logs/session.txt"

// Logger stores timestamped lines in memory and appends them to a file on
// disk. With an empty path it is memory-only, which is what tests use.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger appending to the given file, creating its directory.
// An empty path disables the file and keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log appends a line, prefixed with a [timestamp], to memory and to the log
// file if one is configured. File errors are ignored; losing a diagnostic
// line never interrupts a frame.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
