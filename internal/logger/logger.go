// Package logger provides the minimal leveled logger used by the commands.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes timestamped lines to w.
func New(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

// Discard returns a Logger that drops informational messages but still
// reports errors to w.
func Discard(w io.Writer) Logger {
	return &quietLogger{stdLogger{l: log.New(w, "", log.LstdFlags)}}
}

func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }

type quietLogger struct {
	stdLogger
}

func (l *quietLogger) Infof(format string, v ...any) {}
