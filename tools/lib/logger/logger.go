// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides leveled logging carried through a context.
package logger

import (
	"context"
	"fmt"
	"io"
	goLog "log"
	"os"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the logger carried by ctx, or nil.
func LoggerFromContext(ctx context.Context) *Logger {
	if v, ok := ctx.Value(loggerKey{}).(*Logger); ok && v != nil {
		return v
	}
	return nil
}

// LogLevel selects how much detail a Logger emits. It implements flag.Value.
type LogLevel int

const (
	NoLogLevel LogLevel = iota
	FatalLevel
	ErrorLevel
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

var levelNames = []string{
	NoLogLevel:   "no",
	FatalLevel:   "fatal",
	ErrorLevel:   "error",
	WarningLevel: "warning",
	InfoLevel:    "info",
	DebugLevel:   "debug",
	TraceLevel:   "trace",
}

// levelTags precede each message of the given level.
var levelTags = []string{
	FatalLevel:   "FATAL: ",
	ErrorLevel:   "ERROR: ",
	WarningLevel: "WARN: ",
	InfoLevel:    "",
	DebugLevel:   "DEBUG: ",
	TraceLevel:   "TRACE: ",
}

func (l *LogLevel) String() string {
	if *l < 0 || int(*l) >= len(levelNames) {
		return ""
	}
	return levelNames[*l]
}

func (l *LogLevel) Set(s string) error {
	for level, name := range levelNames {
		if name == s {
			*l = LogLevel(level)
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid level", s)
}

// Ldate and friends mirror the flags of package log.
const (
	Ldate = 1 << iota
	Ltime
	Lmicroseconds
	Llongfile
	Lshortfile
	LUTC
	Lmsgprefix
	LstdFlags = Ldate | Lmicroseconds
)

// Logger writes messages at or below its level. Errors and fatal messages go
// to a separate writer.
type Logger struct {
	LoggerLevel LogLevel
	out         *goLog.Logger
	errOut      *goLog.Logger
	prefix      string
}

// NewLogger returns a Logger writing to out and errOut, which default to
// stdout and stderr. prefix starts every message.
func NewLogger(level LogLevel, out, errOut io.Writer, prefix string) *Logger {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Logger{
		LoggerLevel: level,
		out:         goLog.New(out, "", LstdFlags),
		errOut:      goLog.New(errOut, "", LstdFlags),
		prefix:      prefix,
	}
}

func (l *Logger) SetFlags(flags int) {
	l.out.SetFlags(flags)
	l.errOut.SetFlags(flags)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l.LoggerLevel >= level
}

// output writes a message for the caller depth frames up the stack.
func (l *Logger) output(depth int, level LogLevel, format string, a ...interface{}) {
	if level <= NoLogLevel || int(level) >= len(levelTags) {
		panic(fmt.Sprintf("undefined log level %d, log message: %s", level, fmt.Sprintf(format, a...)))
	}
	if !l.Enabled(level) {
		return
	}
	dest := l.out
	if level <= ErrorLevel {
		dest = l.errOut
	}
	dest.Output(depth+1, l.prefix+levelTags[level]+fmt.Sprintf(format, a...))
	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *Logger) Logf(level LogLevel, format string, a ...interface{}) {
	l.output(2, level, format, a...)
}

func (l *Logger) Fatalf(format string, a ...interface{})   { l.output(2, FatalLevel, format, a...) }
func (l *Logger) Errorf(format string, a ...interface{})   { l.output(2, ErrorLevel, format, a...) }
func (l *Logger) Warningf(format string, a ...interface{}) { l.output(2, WarningLevel, format, a...) }
func (l *Logger) Infof(format string, a ...interface{})    { l.output(2, InfoLevel, format, a...) }
func (l *Logger) Debugf(format string, a ...interface{})   { l.output(2, DebugLevel, format, a...) }
func (l *Logger) Tracef(format string, a ...interface{})   { l.output(2, TraceLevel, format, a...) }

// logf routes to the context logger, or to package log when there is none.
func logf(ctx context.Context, level LogLevel, format string, a ...interface{}) {
	if l := LoggerFromContext(ctx); l != nil {
		l.output(3, level, format, a...)
		return
	}
	goLog.Output(3, levelTags[level]+fmt.Sprintf(format, a...))
	if level == FatalLevel {
		os.Exit(1)
	}
}

func Logf(ctx context.Context, level LogLevel, format string, a ...interface{}) {
	logf(ctx, level, format, a...)
}

func Fatalf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, FatalLevel, format, a...)
}

func Errorf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, ErrorLevel, format, a...)
}

func Warningf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, WarningLevel, format, a...)
}

func Infof(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, InfoLevel, format, a...)
}

func Debugf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, DebugLevel, format, a...)
}

func Tracef(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, TraceLevel, format, a...)
}
