// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Level is a log severity. Levels are ordered by declaration, so a plain
// comparison decides whether an entry passes a threshold.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel is the highest severity. Logging at FatalLevel does not
	// terminate the process.
	FatalLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// Levels returns every valid level from lowest to highest.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// String returns the upper-case level name, e.g. "WARN".
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int8(l))
}

// Valid reports whether l is one of the five declared levels.
func (l Level) Valid() bool { return l >= DebugLevel && l <= FatalLevel }

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseLevel].
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// ParseLevel converts a level name into a Level. Matching is case-insensitive
// and also accepts the aliases "warning", "err" and "critical".
func ParseLevel(s string) (Level, error) {
	// A Caser is stateful, so each call gets its own.
	key := cases.Fold().String(strings.TrimSpace(s))

	for _, lvl := range Levels() {
		if cases.Fold().String(lvl.String()) == key {
			return lvl, nil
		}
	}

	switch key {
	case "warning":
		return WarnLevel, nil
	case "err":
		return ErrorLevel, nil
	case "critical":
		return FatalLevel, nil
	}

	return DebugLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
