// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logAt calls the level method matching lvl.
func logAt(l *logger.Logger, lvl logger.Level, msg string, opts ...logger.LogOption) error {
	switch lvl {
	case logger.DebugLevel:
		return l.Debug(msg, opts...)
	case logger.InfoLevel:
		return l.Info(msg, opts...)
	case logger.WarnLevel:
		return l.Warn(msg, opts...)
	case logger.ErrorLevel:
		return l.Error(msg, opts...)
	default:
		return l.Fatal(msg, opts...)
	}
}

func TestLogger_Threshold(t *testing.T) {
	for _, threshold := range logger.Levels() {
		for _, lvl := range logger.Levels() {
			t.Run(threshold.String()+"/"+lvl.String(), func(t *testing.T) {
				rec := &recordingTransport{}
				f := &entryFormatter{}
				l := logger.New(
					logger.WithThreshold(threshold),
					logger.WithFormatter(f),
					logger.WithTransports(rec),
				)

				require.NoError(t, logAt(l, lvl, "msg"))

				if lvl >= threshold {
					require.Len(t, rec.messages(), 1)
					assert.Equal(t, lvl.String()+" msg", rec.messages()[0])
					assert.Equal(t, lvl, f.last().Level)
				} else {
					assert.Empty(t, rec.messages())
					assert.Zero(t, f.calls, "formatter must not run below threshold")
				}
				assert.Equal(t, lvl >= threshold, l.Enabled(lvl))
			})
		}
	}
}

func TestLogger_Defaults(t *testing.T) {
	l := logger.New()

	assert.Equal(t, logger.DebugLevel, l.Threshold())
	assert.True(t, l.Timestamps())
	assert.IsType(t, &logger.SimpleFormatter{}, l.Formatter())

	transports := l.Transports()
	require.Len(t, transports, 1)
	assert.IsType(t, &logger.ConsoleTransport{}, transports[0])
}

func TestLogger_Overrides(t *testing.T) {
	tests := []struct {
		name     string
		opt      logger.Option
		testFunc func(t *testing.T, l *logger.Logger)
	}{
		{
			name: "Threshold",
			opt:  logger.WithThreshold(logger.ErrorLevel),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.Equal(t, logger.ErrorLevel, l.Threshold())
				assert.True(t, l.Timestamps())
				assert.IsType(t, &logger.SimpleFormatter{}, l.Formatter())
				assert.Len(t, l.Transports(), 1)
			},
		},
		{
			name: "Timestamps",
			opt:  logger.WithTimestamps(false),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.False(t, l.Timestamps())
				assert.Equal(t, logger.DebugLevel, l.Threshold())
			},
		},
		{
			name: "Formatter",
			opt:  logger.WithFormatter(logger.NewJSONFormatter()),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.IsType(t, &logger.JSONFormatter{}, l.Formatter())
				assert.IsType(t, &logger.ConsoleTransport{}, l.Transports()[0])
			},
		},
		{
			name: "NilFormatterKeepsDefault",
			opt:  logger.WithFormatter(nil),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.IsType(t, &logger.SimpleFormatter{}, l.Formatter())
			},
		},
		{
			name: "Transports",
			opt:  logger.WithTransports(&recordingTransport{name: "a"}, &recordingTransport{name: "b"}),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.Len(t, l.Transports(), 2)
				assert.Equal(t, logger.DebugLevel, l.Threshold())
			},
		},
		{
			name: "NoTransports",
			opt:  logger.WithTransports(),
			testFunc: func(t *testing.T, l *logger.Logger) {
				assert.Empty(t, l.Transports())
				assert.NoError(t, l.Fatal("nowhere to go"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, logger.New(tt.opt))
		})
	}
}

func TestLogger_Timestamps(t *testing.T) {
	clock := func() time.Time { return fixedTime }

	f := &entryFormatter{}
	l := logger.New(logger.WithFormatter(f), logger.WithTransports(), logger.WithClock(clock))
	require.NoError(t, l.Info("with"))
	assert.Equal(t, fixedTime, f.last().Timestamp)
	assert.True(t, f.last().HasTimestamp())

	f = &entryFormatter{}
	l = logger.New(logger.WithFormatter(f), logger.WithTransports(), logger.WithTimestamps(false))
	require.NoError(t, l.Info("without"))
	assert.False(t, f.last().HasTimestamp())
}

func TestLogger_FanOutOrder(t *testing.T) {
	var trace []string
	a := &recordingTransport{name: "A", trace: &trace}
	b := &recordingTransport{name: "B", trace: &trace}
	c := &recordingTransport{name: "C", trace: &trace}

	l := logger.New(logger.WithTransports(a, b, c), logger.WithTimestamps(false))
	require.NoError(t, l.Info("hello"))

	assert.Equal(t, []string{"A", "B", "C"}, trace)
	for _, tr := range []*recordingTransport{a, b, c} {
		assert.Equal(t, []string{"[INFO] hello"}, tr.messages())
	}
}

func TestLogger_TransportFailureStopsDelivery(t *testing.T) {
	sentinel := errors.New("sink down")

	var trace []string
	a := &recordingTransport{name: "A", trace: &trace}
	b := &recordingTransport{name: "B", trace: &trace, err: sentinel}
	c := &recordingTransport{name: "C", trace: &trace}

	l := logger.New(logger.WithTransports(a, b, c))
	err := l.Error("boom")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, []string{"A", "B"}, trace, "transports after the failing one must not run")
	assert.Len(t, a.messages(), 1)
	assert.Empty(t, c.messages())
}

func TestLogger_FormatterPanicPropagates(t *testing.T) {
	l := logger.New(
		logger.WithFormatter(panicFormatter{}),
		logger.WithTransports(&recordingTransport{}),
	)
	assert.PanicsWithValue(t, "cannot format", func() { _ = l.Info("x") })
}

type panicFormatter struct{}

func (panicFormatter) Format(logger.Entry) string { panic("cannot format") }

func TestLogger_MetadataIsCopied(t *testing.T) {
	f := &entryFormatter{}
	l := logger.New(logger.WithFormatter(f), logger.WithTransports())

	md := logger.Metadata{"pct": 92}
	require.NoError(t, l.Warn("disk low", logger.WithMetadata(md)))
	md["pct"] = 99

	assert.Equal(t, logger.Metadata{"pct": 92}, f.last().Metadata)
}

func TestLogger_MetadataMerge(t *testing.T) {
	f := &entryFormatter{}
	l := logger.New(logger.WithFormatter(f), logger.WithTransports())

	require.NoError(t, l.Info("m",
		logger.WithMetadata(logger.Metadata{"a": 1, "b": 1}),
		logger.WithMetadata(logger.Metadata{"b": 2}),
		logger.WithMetadata(nil),
	))
	assert.Equal(t, logger.Metadata{"a": 1, "b": 2}, f.last().Metadata)

	require.NoError(t, l.Info("plain"))
	assert.Nil(t, f.last().Metadata)
}

func TestLogger_WarnScenario(t *testing.T) {
	rec := &recordingTransport{}
	l := logger.New(logger.WithThreshold(logger.InfoLevel), logger.WithTransports(rec))

	require.NoError(t, l.Warn("disk low", logger.WithMetadata(logger.Metadata{"pct": 92})))

	msgs := rec.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "WARN")
	assert.Contains(t, msgs[0], "disk low")
	assert.Contains(t, msgs[0], `{"pct":92}`)
}

func TestLogger_DebugBelowWarn(t *testing.T) {
	rec := &recordingTransport{}
	l := logger.New(logger.WithThreshold(logger.WarnLevel), logger.WithTransports(rec))

	require.NoError(t, l.Debug("trace"))
	assert.Empty(t, rec.messages())
}

func TestLogger_ConcurrentUsage(t *testing.T) {
	rec := &recordingTransport{}
	l := logger.New(logger.WithTransports(rec))

	const numGoroutines = 20
	done := make(chan struct{})
	for range numGoroutines {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 10 {
				l.Info("concurrent")
			}
		}()
	}
	for range numGoroutines {
		<-done
	}

	assert.Len(t, rec.messages(), numGoroutines*10)
}
