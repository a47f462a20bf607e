// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"io"

	"github.com/valyala/bytebufferpool"
)

// MaxRetained is the largest buffer capacity, in bytes, that goes back to
// the pool. A line carrying an unusually large metadata payload would
// otherwise keep its buffer alive for every later, ordinary line.
const MaxRetained = 64 << 10

// Buffer is the scratch space a formatter renders one log line into.
type Buffer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool hands out line buffers.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	// Line renders one log line.
	//
	// Parameters:
	//   - fill: Writes the line into the scratch buffer; it may Reset the buffer and start over.
	//
	// Returns:
	//   - string: A copy of what fill wrote, without a single trailing newline.
	Line(fill func(Buffer)) string
}

// linePool implements Pool on top of [bytebufferpool.Pool].
type linePool struct {
	p           bytebufferpool.Pool
	maxRetained int
}

// New returns a Pool that drops buffers whose capacity grew past maxRetained
// instead of reusing them. A non-positive maxRetained means MaxRetained.
func New(maxRetained int) Pool {
	if maxRetained <= 0 {
		maxRetained = MaxRetained
	}
	return &linePool{maxRetained: maxRetained}
}

func (p *linePool) Line(fill func(Buffer)) string {
	buf := p.p.Get()
	defer p.release(buf)

	fill(buf)
	return string(bytes.TrimSuffix(buf.B, []byte{'\n'}))
}

func (p *linePool) release(buf *bytebufferpool.ByteBuffer) {
	if cap(buf.B) > p.maxRetained {
		return
	}
	p.p.Put(buf)
}

// Default is the pool shared by the log formatters.
//
// Typical usage:
//
//	return gc.Default.Line(func(buf gc.Buffer) {
//		buf.WriteString(entry.Message)
//	})
var Default = New(MaxRetained)
