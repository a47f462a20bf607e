// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/gc"
	"github.com/goccy/go-json"
)

// JSONFormatter renders an entry as a single JSON object:
//
//	{"timestamp":"2026-10-16T09:30:00Z","level":"WARN","message":"disk low","metadata":{"pct":92}}
//
// Timestamps are written in UTC using [time.RFC3339Nano]. Metadata that
// cannot be encoded is replaced by its fmt representation as a string, and
// values that refer back to themselves render as "<cycle>".
type JSONFormatter struct{}

// NewJSONFormatter returns a JSONFormatter.
func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

type jsonEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Metadata  any    `json:"metadata,omitempty"`
}

// Format implements [Formatter].
func (j *JSONFormatter) Format(entry Entry) string {
	out := jsonEntry{
		Level:   entry.Level.String(),
		Message: entry.Message,
	}
	if entry.HasTimestamp() {
		out.Timestamp = entry.Timestamp.UTC().Format(time.RFC3339Nano)
	}
	var md Metadata
	if len(entry.Metadata) > 0 {
		md = breakCycles(entry.Metadata)
		out.Metadata = md
	}

	return gc.Default.Line(func(buf gc.Buffer) {
		if err := encodeJSON(buf, out); err != nil {
			buf.Reset()
			out.Metadata = fmt.Sprintf("%v", map[string]any(md))
			// Only strings remain, which always encode.
			_ = encodeJSON(buf, out)
		}
	})
}

func encodeJSON(buf gc.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
