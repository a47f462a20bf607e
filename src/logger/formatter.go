// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"

	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/gc"
	"github.com/goccy/go-json"
)

// Formatter renders an [Entry] into the string handed to transports.
//
// Format must be deterministic and must not fail for any entry; absent
// fields are simply left out of the output.
type Formatter interface {
	Format(entry Entry) string
}

// DefaultTimeLayout is the timestamp layout used by [SimpleFormatter].
const DefaultTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// SimpleFormatter renders an entry on a single line:
//
//	2026-10-16T09:30:00.000Z [WARN] disk low {"pct":92}
//
// The timestamp is omitted when the entry has none and the metadata, rendered
// as JSON with sorted keys, is omitted when the entry has none.
type SimpleFormatter struct {
	// TimeLayout is passed to [time.Time.Format]. Empty means DefaultTimeLayout.
	TimeLayout string
}

// NewSimpleFormatter returns a SimpleFormatter using DefaultTimeLayout.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{TimeLayout: DefaultTimeLayout}
}

// Format implements [Formatter].
func (f *SimpleFormatter) Format(entry Entry) string {
	return f.format(entry, func(lvl Level) string { return "[" + lvl.String() + "]" })
}

func (f *SimpleFormatter) format(entry Entry, token func(Level) string) string {
	return gc.Default.Line(func(buf gc.Buffer) {
		if entry.HasTimestamp() {
			layout := f.TimeLayout
			if layout == "" {
				layout = DefaultTimeLayout
			}
			buf.WriteString(entry.Timestamp.Format(layout))
			buf.WriteByte(' ')
		}

		buf.WriteString(token(entry.Level))
		buf.WriteByte(' ')
		buf.WriteString(entry.Message)

		if len(entry.Metadata) > 0 {
			buf.WriteByte(' ')
			buf.WriteString(renderMetadata(entry.Metadata))
		}
	})
}

// renderMetadata renders md as compact JSON, falling back to the fmt
// representation when a value cannot be encoded (funcs, channels). Values
// that refer back to themselves render as "<cycle>".
func renderMetadata(md Metadata) string {
	md = breakCycles(md)
	data, err := json.Marshal(md)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(md))
	}
	return string(data)
}
