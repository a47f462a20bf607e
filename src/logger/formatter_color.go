// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "github.com/fatih/color"

// LevelColors maps each level to the attributes used by [ColorFormatter].
var LevelColors = map[Level][]color.Attribute{
	DebugLevel: {color.FgCyan},
	InfoLevel:  {color.FgBlue},
	WarnLevel:  {color.FgYellow},
	ErrorLevel: {color.FgRed},
	FatalLevel: {color.FgRed, color.Bold},
}

// ColorFormatter uses the [SimpleFormatter] layout with the level token
// colored according to [LevelColors]. Color is disabled automatically when
// stdout is not a terminal or NO_COLOR is set, unless [ColorFormatter.ForceColor]
// is called.
type ColorFormatter struct {
	base   *SimpleFormatter
	styles map[Level]*color.Color
}

// NewColorFormatter returns a ColorFormatter using DefaultTimeLayout.
func NewColorFormatter() *ColorFormatter {
	styles := make(map[Level]*color.Color, len(LevelColors))
	for lvl, attrs := range LevelColors {
		styles[lvl] = color.New(attrs...)
	}
	return &ColorFormatter{base: NewSimpleFormatter(), styles: styles}
}

// ForceColor enables escape sequences regardless of the output terminal.
func (c *ColorFormatter) ForceColor() *ColorFormatter {
	for _, style := range c.styles {
		style.EnableColor()
	}
	return c
}

// Format implements [Formatter].
func (c *ColorFormatter) Format(entry Entry) string {
	return c.base.format(entry, c.token)
}

func (c *ColorFormatter) token(lvl Level) string {
	tok := "[" + lvl.String() + "]"
	if style, ok := c.styles[lvl]; ok {
		return style.Sprint(tok)
	}
	return tok
}
