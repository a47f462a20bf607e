// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a level name or value is not one of
	// DEBUG, INFO, WARN, ERROR or FATAL.
	ErrInvalidLevel = errors.New("logger: invalid level")

	// ErrTransportClosed is returned by a transport that was used after Close.
	ErrTransportClosed = errors.New("logger: transport closed")
)
