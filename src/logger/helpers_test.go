// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"sync"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
)

// recordingTransport keeps every record it receives and, when trace is set,
// appends its name to it so tests can check delivery order.
type recordingTransport struct {
	mu      sync.Mutex
	name    string
	trace   *[]string
	err     error
	records []logger.Record
}

func (r *recordingTransport) Handle(record logger.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.trace != nil {
		*r.trace = append(*r.trace, r.name)
	}
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func (r *recordingTransport) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Message
	}
	return out
}

// entryFormatter keeps the last entry it formatted and counts calls.
type entryFormatter struct {
	calls   int
	entries []logger.Entry
}

func (f *entryFormatter) Format(entry logger.Entry) string {
	f.calls++
	f.entries = append(f.entries, entry)
	return entry.Level.String() + " " + entry.Message
}

func (f *entryFormatter) last() logger.Entry {
	return f.entries[len(f.entries)-1]
}
