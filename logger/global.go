package logger

import (
	"io"
	"sync/atomic"
)

// NullLogger drops every message. It is what the package-level functions
// write to until SetGlobalLogger installs something else.
type NullLogger struct {
	level atomic.Int32
}

// NewNullLogger returns a NullLogger at LogLevelNone
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Debug(string, ...any) {}
func (*NullLogger) Info(string, ...any)  {}
func (*NullLogger) Warn(string, ...any)  {}
func (*NullLogger) Error(string, ...any) {}
func (*NullLogger) SetOutput(io.Writer)  {}

func (n *NullLogger) SetLevel(level LogLevel) { n.level.Store(int32(level)) }
func (n *NullLogger) GetLevel() LogLevel      { return LogLevel(n.level.Load()) }

type holder struct{ Logger }

var global atomic.Pointer[holder]

func init() {
	global.Store(&holder{NewNullLogger()})
}

// SetGlobalLogger replaces the process-wide logger; nil restores a NullLogger
func SetGlobalLogger(l Logger) {
	if l == nil {
		l = NewNullLogger()
	}
	global.Store(&holder{l})
}

// GetGlobalLogger returns the process-wide logger
func GetGlobalLogger() Logger {
	return global.Load().Logger
}

func Debug(format string, args ...any) { GetGlobalLogger().Debug(format, args...) }
func Info(format string, args ...any)  { GetGlobalLogger().Info(format, args...) }
func Warn(format string, args ...any)  { GetGlobalLogger().Warn(format, args...) }
func Error(format string, args ...any) { GetGlobalLogger().Error(format, args...) }
