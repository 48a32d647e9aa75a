// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides the leveled console logger used by the
// treewalk command.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes timestamped, leveled messages to a writer.
// Level tags are colored when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to w.
// If w is nil, messages are discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// Anything else means "info".
func NewConsoleLogger(w io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		logLevel:    NormalizeLevel(logLevel),
		colorOutput: IsTerminal(w),
		now:         time.Now,
	}
}

// IsTerminal reports whether w is a terminal that should receive
// colored output. NO_COLOR disables color even on terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NormalizeLevel lowercases level and maps unknown levels to "info".
func NormalizeLevel(level string) string {
	if !ValidLevel(level) {
		return "info"
	}
	return strings.ToLower(strings.TrimSpace(level))
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

func levelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	}
	return levelInfo
}

func (cl *ConsoleLogger) shouldLog(level string) bool {
	return levelToInt(level) >= levelToInt(cl.logLevel)
}

func (cl *ConsoleLogger) log(level, format string, args ...interface{}) {
	if cl == nil || cl.writer == nil || !cl.shouldLog(level) {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := strings.ToUpper(level)
	if cl.colorOutput {
		tag = colorLevel(level).Sprint(tag)
	}
	ts := cl.now().Format("15:04:05")
	fmt.Fprintf(cl.writer, "[%s] %s %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func colorLevel(level string) *color.Color {
	var c *color.Color
	switch level {
	case "trace":
		c = color.New(color.FgHiBlack)
	case "debug":
		c = color.New(color.FgCyan)
	case "warn":
		c = color.New(color.FgYellow)
	case "error":
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgBlue)
	}
	// The writer may be a terminal even when stdout is not.
	c.EnableColor()
	return c
}

func (cl *ConsoleLogger) Tracef(format string, args ...interface{}) { cl.log("trace", format, args...) }
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) { cl.log("debug", format, args...) }
func (cl *ConsoleLogger) Infof(format string, args ...interface{})  { cl.log("info", format, args...) }
func (cl *ConsoleLogger) Warnf(format string, args ...interface{})  { cl.log("warn", format, args...) }
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) { cl.log("error", format, args...) }
