/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for the example extension.
// Adapters log through the package default unless the host installs its own
// Logger with SetDefault.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level defines log levels
type Level int

const (
	// DEBUG displays per-row and per-registration details
	DEBUG Level = iota
	// INFO displays general information
	INFO
	// WARN displays rejected merges and other recoverable conditions
	WARN
	// ERROR only displays errors
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a configured level name into a Level.
// Matching is case-insensitive; "WARNING" is accepted as an alias of WARN.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// With returns a child logger that prefixes every line with the component name.
	// The child shares the parent's level and output.
	With(component string) Logger
}

// levelHolder is shared between a logger and its children so that SetLevel
// on any of them applies to all.
type levelHolder struct {
	mu    sync.RWMutex
	level Level
}

func (h *levelHolder) get() Level {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.level
}

func (h *levelHolder) set(level Level) {
	h.mu.Lock()
	h.level = level
	h.mu.Unlock()
}

// defaultLogger is the default log implementation
type defaultLogger struct {
	level     *levelHolder
	logger    *log.Logger
	component string
}

// NewLogger creates a new logger
// Parameters:
//   - level: log level
//   - output: output destination, such as os.Stdout, os.Stderr, or file
//
// Example:
//
//	l := NewLogger(INFO, os.Stderr).With("aggregator")
//	l.Warn("factories %s and %s cannot be merged", a, b)
func NewLogger(level Level, output io.Writer) Logger {
	return &defaultLogger{
		level:  &levelHolder{level: level},
		logger: log.New(output, "", 0), // 使用自定义格式，不使用标准库的前缀
	}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.level.set(level)
}

func (l *defaultLogger) With(component string) Logger {
	name := component
	if l.component != "" {
		name = l.component + "." + component
	}
	return &defaultLogger{
		level:     l.level,
		logger:    l.logger,
		component: name,
	}
}

// log formats and writes one line: [time] [LEVEL] [component] message
func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := l.level.get()
	if current == OFF || level < current {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.logger.Printf("[%s] [%s] [%s] %s", timestamp, level.String(), l.component, message)
		return
	}
	l.logger.Printf("[%s] [%s] %s", timestamp, level.String(), message)
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

func (d *discardLogger) Debug(format string, args ...interface{}) {}
func (d *discardLogger) Info(format string, args ...interface{})  {}
func (d *discardLogger) Warn(format string, args ...interface{})  {}
func (d *discardLogger) Error(format string, args ...interface{}) {}
func (d *discardLogger) SetLevel(level Level)                     {}
func (d *discardLogger) With(component string) Logger             { return d }

var (
	defaultMu       sync.RWMutex
	defaultInstance Logger = NewLogger(INFO, os.Stderr)
)

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultMu.Lock()
	defaultInstance = logger
	defaultMu.Unlock()
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInstance
}

// Named returns a child of the current default logger.
// The child is resolved on every call, so a later SetDefault is honored.
func Named(component string) Logger {
	return &namedLogger{component: component}
}

type namedLogger struct {
	component string
}

func (n *namedLogger) target() Logger {
	return GetDefault().With(n.component)
}

func (n *namedLogger) Debug(format string, args ...interface{}) {
	n.target().Debug(format, args...)
}

func (n *namedLogger) Info(format string, args ...interface{}) {
	n.target().Info(format, args...)
}

func (n *namedLogger) Warn(format string, args ...interface{}) {
	n.target().Warn(format, args...)
}

func (n *namedLogger) Error(format string, args ...interface{}) {
	n.target().Error(format, args...)
}

// SetLevel applies to the default logger the component writes through.
func (n *namedLogger) SetLevel(level Level) {
	GetDefault().SetLevel(level)
}

func (n *namedLogger) With(component string) Logger {
	return &namedLogger{component: n.component + "." + component}
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
