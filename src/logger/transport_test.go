// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterTransport(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "OneLinePerRecord",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				tr := logger.NewWriterTransport(&buf)

				require.NoError(t, tr.Handle(logger.Record{Message: "first"}))
				require.NoError(t, tr.Handle(logger.Record{Message: "second"}))

				assert.Equal(t, "first\nsecond\n", buf.String())
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				tr := logger.NewWriterTransport(nil)
				assert.NoError(t, tr.Handle(logger.Record{Message: "dropped"}))
			},
		},
		{
			name: "WriteError",
			testFunc: func(t *testing.T) {
				tr := logger.NewWriterTransport(failingWriter{})
				err := tr.Handle(logger.Record{Message: "x"})
				assert.ErrorIs(t, err, io.ErrClosedPipe)
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				tr := logger.NewWriterTransport(&buf)

				const numGoroutines = 50
				const messagesPerGoroutine = 20

				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							tr.Handle(logger.Record{Message: fmt.Sprintf("goroutine %d message %d", id, j)})
						}
					}(i)
				}
				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, numGoroutines*messagesPerGoroutine)
				for _, line := range lines {
					assert.True(t, strings.HasPrefix(line, "goroutine "), "interleaved line %q", line)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestConsoleTransport(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	origStdout := os.Stdout
	os.Stdout = w
	tr := logger.NewConsoleTransport()
	os.Stdout = origStdout

	require.NoError(t, tr.Handle(logger.Record{Message: "to the console"}))
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "to the console\n", string(out))
}

func TestFileTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0644))

	tr, err := logger.NewFileTransport(path)
	require.NoError(t, err)
	assert.Equal(t, path, tr.Path())

	require.NoError(t, tr.Handle(logger.Record{Message: "appended"}))
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close(), "second close should be a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing\nappended\n", string(data))

	err = tr.Handle(logger.Record{Message: "late"})
	assert.ErrorIs(t, err, logger.ErrTransportClosed)
}

func TestFileTransport_OpenError(t *testing.T) {
	_, err := logger.NewFileTransport(filepath.Join(t.TempDir(), "missing", "dir", "app.log"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTransportFunc(t *testing.T) {
	var got []string
	tr := logger.TransportFunc(func(r logger.Record) error {
		got = append(got, r.Message)
		return nil
	})
	require.NoError(t, tr.Handle(logger.Record{Message: "a"}))

	sentinel := errors.New("sink down")
	failing := logger.TransportFunc(func(logger.Record) error { return sentinel })

	assert.Equal(t, []string{"a"}, got)
	assert.ErrorIs(t, failing.Handle(logger.Record{}), sentinel)
}
