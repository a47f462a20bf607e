// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the base name of os.Args[0] with any ".exe" suffix
// removed, or fallback when os.Args[0] is unavailable.
//
// Both '/' and '\' are treated as separators so that a Windows style path
// resolves to the same name on every platform.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}

	parts := strings.FieldsFunc(os.Args[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return fallback
	}

	return strings.TrimSuffix(parts[len(parts)-1], ".exe")
}
