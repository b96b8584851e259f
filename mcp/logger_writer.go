package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rediwo/redi-dsn/logger"
)

// LoggerWriter is an io.Writer that forwards SDK transport traffic to a Logger
type LoggerWriter struct {
	logger logger.Logger
	prefix string
}

// NewLoggerWriter creates a new logger writer
func NewLoggerWriter(l logger.Logger, prefix string) *LoggerWriter {
	return &LoggerWriter{
		logger: l,
		prefix: prefix,
	}
}

// Write logs one JSON-RPC frame or plain line per call
func (w *LoggerWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return len(p), nil
	}

	var frame map[string]any
	if err := json.Unmarshal([]byte(msg), &frame); err != nil {
		w.logger.Debug("%s%s", w.tag(), msg)
		return len(p), nil
	}

	switch {
	case frame["method"] != nil:
		w.logger.Debug("%s→ Request #%s: %v %s", w.tag(), formatID(frame["id"]), frame["method"], truncate(compact(frame["params"]), 200))
	case frame["error"] != nil:
		w.logger.Error("%s← Error #%s: %s", w.tag(), formatID(frame["id"]), truncate(compact(frame["error"]), 200))
	case frame["result"] != nil:
		w.logger.Debug("%s← Response #%s: %s", w.tag(), formatID(frame["id"]), truncate(compact(frame["result"]), 200))
	default:
		w.logger.Debug("%s%s", w.tag(), truncate(msg, 200))
	}
	return len(p), nil
}

func (w *LoggerWriter) tag() string {
	if w.prefix == "" {
		return ""
	}
	return "[" + w.prefix + "] "
}

func formatID(id any) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprintf("%v", id)
}

func compact(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
