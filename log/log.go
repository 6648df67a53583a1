// (c) Siemens AG 2025
//
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"sync"
)

// Level of a log message, with [ErrorLevel] being the most severe and
// [DebugLevel] the most chatty level.
type Level uint32

const (
	// ErrorLevel signals that a detection-related operation failed; the
	// failure will have been contained, but diagnosis might be in order.
	ErrorLevel Level = iota
	// WarnLevel signals unusual, yet non-failing situations.
	WarnLevel
	// InfoLevel signals purely informational messages.
	InfoLevel
	// DebugLevel traces the individual steps of detections.
	DebugLevel
)

// String returns the lower-case name of this level.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	}
	return "invalid"
}

// Logger is the minimal interface through which this module emits its
// leveled log messages. Adapters implement it on top of a real logging
// backend, see the logrus adapter in the “logrus” sub-package.
type Logger interface {
	// Log the given (single-line) message at the given level.
	Log(level Level, msg string)
}

var (
	mu     sync.RWMutex
	logger Logger // nil discards all log messages
	level  = InfoLevel
)

// SetLogger installs the adapter that log messages get emitted through from
// now on. Passing nil returns to the default of discarding all messages.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetLevel sets the maximum (=chattiest) level of log messages still
// emitted; it defaults to [InfoLevel], so debug messages are normally
// suppressed.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// LevelEnabled returns true if messages of the given level currently get
// emitted instead of suppressed. Callers can use it to avoid costly
// construction of log messages that would go nowhere anyway.
func LevelEnabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return logger != nil && l <= level
}

// Debugf logs a formatted message at [DebugLevel].
func Debugf(format string, args ...any) { logf(DebugLevel, format, args...) }

// Infof logs a formatted message at [InfoLevel].
func Infof(format string, args ...any) { logf(InfoLevel, format, args...) }

// Warnf logs a formatted message at [WarnLevel].
func Warnf(format string, args ...any) { logf(WarnLevel, format, args...) }

// Errorf logs a formatted message at [ErrorLevel].
func Errorf(format string, args ...any) { logf(ErrorLevel, format, args...) }

func logf(l Level, format string, args ...any) {
	mu.RLock()
	adapter, max := logger, level
	mu.RUnlock()
	if adapter == nil || l > max {
		return
	}
	adapter.Log(l, fmt.Sprintf(format, args...))
}
