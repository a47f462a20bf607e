// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Transport delivers a formatted [Record] to a sink. A non-nil error from
// Handle stops delivery to the remaining transports and is returned to the
// caller of the log method.
type Transport interface {
	Handle(record Record) error
}

// TransportFunc adapts an ordinary function to the [Transport] interface.
type TransportFunc func(record Record) error

// Handle calls f(record).
func (f TransportFunc) Handle(record Record) error { return f(record) }

// WriterTransport writes each record as one line to an [io.Writer].
//
// WriterTransport is safe for concurrent use by multiple goroutines; writes
// are serialized so lines never interleave.
type WriterTransport struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterTransport returns a transport writing to w. A nil w discards output.
func NewWriterTransport(w io.Writer) *WriterTransport {
	if w == nil {
		w = io.Discard
	}
	return &WriterTransport{w: w}
}

// Handle implements [Transport].
func (t *WriterTransport) Handle(record Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintln(t.w, record.Message); err != nil {
		return fmt.Errorf("logger: write record: %w", err)
	}
	return nil
}

// ConsoleTransport writes each record as one line to the process's standard
// output. It is the transport a [Logger] uses when none is configured.
type ConsoleTransport struct {
	WriterTransport
}

// NewConsoleTransport returns a transport writing to [os.Stdout] as it is at
// the time of the call.
func NewConsoleTransport() *ConsoleTransport {
	return &ConsoleTransport{WriterTransport: WriterTransport{w: os.Stdout}}
}

// NewStderrTransport returns a transport writing to [os.Stderr].
func NewStderrTransport() *WriterTransport { return NewWriterTransport(os.Stderr) }

// FileTransport appends each record as one line to a file.
//
// FileTransport is safe for concurrent use by multiple goroutines.
type FileTransport struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewFileTransport opens path for appending, creating it with mode 0644 if
// it does not exist.
func NewFileTransport(path string) (*FileTransport, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file: %w", err)
	}
	return &FileTransport{path: path, f: f}, nil
}

// Path returns the file the transport appends to.
func (t *FileTransport) Path() string { return t.path }

// Handle implements [Transport]. It returns [ErrTransportClosed] after Close.
func (t *FileTransport) Handle(record Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f == nil {
		return ErrTransportClosed
	}
	if _, err := fmt.Fprintln(t.f, record.Message); err != nil {
		return fmt.Errorf("logger: write %s: %w", t.path, err)
	}
	return nil
}

// Close closes the underlying file. Closing twice is a no-op.
func (t *FileTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f == nil {
		return nil
	}
	err := t.f.Close()
	t.f = nil
	return err
}
