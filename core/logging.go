package core

import (
	"fmt"
	"io"
	"sync"
)

// Logger is the diagnostic collaborator injected into components that
// emit notices (size fallbacks, failure explanations). Nothing in this
// module logs through a global.
type Logger interface {
	// Debugf logs a verbose diagnostic message.
	Debugf(format string, args ...any)
	// Warnf logs a recoverable condition, such as a size fallback.
	Warnf(format string, args ...any)
	// Errorf logs a terminal failure before it is surfaced to the caller.
	Errorf(format string, args ...any)
}

// NopLogger discards all messages. It is the default wherever a Logger
// is optional.
type NopLogger struct{}

// Debugf does nothing.
func (NopLogger) Debugf(string, ...any) {}

// Warnf does nothing.
func (NopLogger) Warnf(string, ...any) {}

// Errorf does nothing.
func (NopLogger) Errorf(string, ...any) {}

var _ Logger = NopLogger{}

// WriterLogger writes line-oriented diagnostics to an io.Writer, one
// severity prefix per line. Debug output is suppressed unless enabled.
// WriterLogger is safe for concurrent use.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
}

// NewWriterLogger creates a WriterLogger targeting w.
func NewWriterLogger(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{w: w, debug: debug}
}

// Debugf logs a verbose message when debug output is enabled.
func (l *WriterLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.emit("debug", format, args)
	}
}

// Warnf logs a warning message.
func (l *WriterLogger) Warnf(format string, args ...any) {
	l.emit("warn", format, args)
}

// Errorf logs an error message.
func (l *WriterLogger) Errorf(format string, args ...any) {
	l.emit("error", format, args)
}

func (l *WriterLogger) emit(level, format string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s: %s\n", level, fmt.Sprintf(format, args...))
}

var _ Logger = (*WriterLogger)(nil)
