// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
)

// diagnostics reports misuse and swallowed failures. It writes straight to
// its writer, never through the formatter or transports.
type diagnostics struct{ logger *log.Logger }

func newDiagnostics(w io.Writer) *diagnostics {
	if w == nil {
		w = io.Discard
	}
	return &diagnostics{logger: log.New(w, "logfacade: ", 0)}
}

func (d *diagnostics) Printf(format string, v ...any) { d.logger.Printf(format, v...) }
