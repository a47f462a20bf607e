// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides a small structured logging façade.
//
// A [Logger] accepts calls at one of five ordered severities ([DebugLevel]
// through [FatalLevel]), drops calls below its threshold, renders admitted
// calls into a single string with a [Formatter], and hands that string to each
// configured [Transport] in order. Everything runs synchronously on the
// caller's goroutine; nothing is buffered or retried.
//
// Basic usage:
//
//	log := logger.New(logger.WithThreshold(logger.InfoLevel))
//	log.Warn("disk low", logger.WithMetadata(logger.Metadata{"pct": 92}))
//
// The [Decorator] returned by [Logger.Decorate] wraps existing functions so
// that each call is logged with its arguments, its return value and,
// optionally, its execution time:
//
//	func add(a, b int) int { return a + b }
//
//	d := log.Decorate(logger.InfoLevel, logger.WithExecutionTime(true))
//	tracedAdd := logger.Wrap2(d, add)
//	tracedAdd(2, 3) // logs "[add]" with args, returns and executionTime
package logger
