// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "time"

// Metadata is the open key/value payload attached to an entry. Values should
// be JSON serializable (string, number, bool, nil, nested maps and slices);
// other values are still rendered, using their fmt representation.
type Metadata map[string]any

// Entry is the structured input to a [Formatter]. A zero Timestamp means the
// entry carries no timestamp; a nil Metadata means it carries no metadata.
type Entry struct {
	Level     Level
	Message   string
	Metadata  Metadata
	Timestamp time.Time
}

// HasTimestamp reports whether the entry carries a timestamp.
func (e Entry) HasTimestamp() bool { return !e.Timestamp.IsZero() }

// Record is the input to a [Transport]: the already formatted entry.
type Record struct {
	Message string
}
