// Package telemetry provides the driver's logging, timing, and
// Prometheus metrics.
package telemetry

import (
	"log"
	"os"
	"time"
)

// Logger wraps the standard library logger with leveled prefixes.
type Logger struct {
	l *log.Logger
}

// NewLogger returns a Logger writing to stderr with a timestamp prefix.
func NewLogger() *Logger {
	return &Logger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (lg *Logger) Info(format string, args ...any)  { lg.l.Printf("INFO  "+format, args...) }
func (lg *Logger) Warn(format string, args ...any)  { lg.l.Printf("WARN  "+format, args...) }
func (lg *Logger) Error(format string, args ...any) { lg.l.Printf("ERROR "+format, args...) }

// Timer measures elapsed wall-clock time from construction.
type Timer struct {
	start time.Time
}

// NewTimer starts a Timer.
func NewTimer() Timer { return Timer{start: time.Now()} }

// Elapsed returns the time since the Timer was created.
func (t Timer) Elapsed() time.Duration { return time.Since(t.start) }
