// Package clog provides the compiler driver's leveled logging, built on
// top of the standard log package with github.com/hashicorp/logutils
// doing the level filtering.
package clog

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// Level is one of the four levels clog ever logs at.
type Level string

// The four levels clog understands, lowest to highest severity.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger is a leveled wrapper around *log.Logger.  Debug entries are
// filtered out unless the logger was built with debug enabled.
type Logger struct {
	out *log.Logger
}

// New returns a Logger writing to w.  When debug is false, Debug() calls
// are silently dropped; Info/Warn/Error are always shown.
func New(w io.Writer, debug bool) *Logger {
	min := LevelInfo
	if debug {
		min = LevelDebug
	}

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{logutils.LogLevel(LevelDebug), logutils.LogLevel(LevelInfo), logutils.LogLevel(LevelWarn), logutils.LogLevel(LevelError)},
		MinLevel: logutils.LogLevel(min),
		Writer:   w,
	}

	return &Logger{out: log.New(filter, "", log.LstdFlags)}
}

// Default returns a Logger writing to stderr.
func Default(debug bool) *Logger {
	return New(os.Stderr, debug)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.out.Printf("["+string(level)+"] "+format, args...)
}

// Debug logs a stage-transition diagnostic (token counts, AST shape,
// instruction counts, frame size); hidden unless debug mode is active.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }

// Info logs a normal, always-visible driver message.
func (l *Logger) Info(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }

// Warn logs a recoverable driver condition.
func (l *Logger) Warn(format string, args ...interface{}) { l.log(LevelWarn, format, args...) }

// Error logs a pipeline-stage failure before the driver exits non-zero.
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }
