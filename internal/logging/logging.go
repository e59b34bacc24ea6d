// Package logging writes one JSON object per line, the log shape shared by the
// request logger, database migrations, tracing setup and the server lifecycle.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger encodes log entries as JSON lines. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w with timestamps in loc (UTC when nil).
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Stdout returns a Logger writing to standard output.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Log writes data as a single line. It sets "ts" and, when absent, derives
// "level" from "status" ("error" status logs at error level).
func (l *Logger) Log(data map[string]any) {
	data["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(data)
}

// Info logs msg with optional fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	entry := copyFields(fields)
	entry["level"] = "info"
	entry["msg"] = msg
	l.Log(entry)
}

// Error logs msg and err with optional fields.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	entry := copyFields(fields)
	entry["level"] = "error"
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}
	l.Log(entry)
}

// Location returns the time zone used for timestamps.
func (l *Logger) Location() *time.Location {
	return l.loc
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		out[k] = v
	}
	return out
}
