// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"time"
)

// Logger filters, formats and dispatches log entries.
//
// Its configuration is fixed at construction. A Logger holds no lock of its
// own; it may be shared across goroutines as long as its formatter and
// transports are safe for concurrent use, which all transports in this
// package are.
type Logger struct {
	timestamps bool
	threshold  Level
	formatter  Formatter
	transports []Transport
	diag       *diagnostics
	now        func() time.Time
}

// Option configures a [Logger] in [New].
type Option func(*Logger)

// WithTimestamps controls whether entries carry the current time. Default true.
func WithTimestamps(enabled bool) Option {
	return func(l *Logger) { l.timestamps = enabled }
}

// WithThreshold sets the minimum level that is emitted. Default [DebugLevel].
func WithThreshold(level Level) Option {
	return func(l *Logger) { l.threshold = level }
}

// WithFormatter sets the formatter. Default [SimpleFormatter]; nil keeps the default.
func WithFormatter(f Formatter) Option {
	return func(l *Logger) {
		if f != nil {
			l.formatter = f
		}
	}
}

// WithTransports replaces the transport list. Entries are delivered in the
// given order. Calling it with no transports leaves the logger with none,
// so admitted entries are formatted and then dropped.
func WithTransports(transports ...Transport) Option {
	return func(l *Logger) { l.transports = append([]Transport{}, transports...) }
}

// WithDiagnostics sets where the logger reports problems it cannot return to
// a caller, such as wrapping a value that is not a function. Default [os.Stderr].
func WithDiagnostics(w io.Writer) Option {
	return func(l *Logger) { l.diag = newDiagnostics(w) }
}

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a Logger. Without options it emits every level with
// timestamps, using a [SimpleFormatter] and a single [ConsoleTransport].
func New(opts ...Option) *Logger {
	l := &Logger{
		timestamps: true,
		threshold:  DebugLevel,
		formatter:  NewSimpleFormatter(),
		transports: []Transport{NewConsoleTransport()},
		diag:       newDiagnostics(os.Stderr),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Threshold returns the minimum emitted level.
func (l *Logger) Threshold() Level { return l.threshold }

// Timestamps reports whether entries carry a timestamp.
func (l *Logger) Timestamps() bool { return l.timestamps }

// Formatter returns the configured formatter.
func (l *Logger) Formatter() Formatter { return l.formatter }

// Transports returns a copy of the configured transports in delivery order.
func (l *Logger) Transports() []Transport { return append([]Transport{}, l.transports...) }

// Enabled reports whether an entry at level passes the threshold.
func (l *Logger) Enabled(level Level) bool { return level >= l.threshold }

// LogOption carries per-call options to the level methods.
type LogOption func(*logOptions)

type logOptions struct {
	metadata Metadata
}

// WithMetadata attaches md to the entry. The map is copied, so later
// changes by the caller do not affect the entry. Repeated options merge,
// later keys winning.
func WithMetadata(md Metadata) LogOption {
	return func(o *logOptions) {
		if len(md) == 0 {
			return
		}
		if o.metadata == nil {
			o.metadata = make(Metadata, len(md))
		}
		maps.Copy(o.metadata, md)
	}
}

// Log emits message at level.
//
// Calls below the threshold return nil without formatting anything.
// Otherwise the entry is formatted once and the resulting line is handed to
// every transport in order. The first transport error stops delivery; later
// transports do not see the line.
//
// Parameters:
//   - level: Severity of the entry
//   - message: Text of the entry
//   - opts: Per-call options such as [WithMetadata]
//
// Returns:
//   - error: nil when the entry was filtered out or delivered everywhere, otherwise the first transport error, wrapped with its index
func (l *Logger) Log(level Level, message string, opts ...LogOption) error {
	if !l.Enabled(level) {
		return nil
	}

	var o logOptions
	for _, opt := range opts {
		opt(&o)
	}

	entry := Entry{
		Level:    level,
		Message:  message,
		Metadata: o.metadata,
	}
	if l.timestamps {
		entry.Timestamp = l.now()
	}

	record := Record{Message: l.formatter.Format(entry)}
	for i, t := range l.transports {
		if err := t.Handle(record); err != nil {
			return fmt.Errorf("logger: transport %d: %w", i, err)
		}
	}
	return nil
}

// Debug logs message at [DebugLevel].
func (l *Logger) Debug(message string, opts ...LogOption) error {
	return l.Log(DebugLevel, message, opts...)
}

// Info logs message at [InfoLevel].
func (l *Logger) Info(message string, opts ...LogOption) error {
	return l.Log(InfoLevel, message, opts...)
}

// Warn logs message at [WarnLevel].
func (l *Logger) Warn(message string, opts ...LogOption) error {
	return l.Log(WarnLevel, message, opts...)
}

// Error logs message at [ErrorLevel].
func (l *Logger) Error(message string, opts ...LogOption) error {
	return l.Log(ErrorLevel, message, opts...)
}

// Fatal logs message at [FatalLevel]. It does not exit the process.
func (l *Logger) Fatal(message string, opts ...LogOption) error {
	return l.Log(FatalLevel, message, opts...)
}
