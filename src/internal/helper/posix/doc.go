// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - ExecutableName: Returns the executable name without extension for CLI usage strings
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/logfacade" → "logfacade"
//   - Windows: "C:\bin\logfacade.exe" → "logfacade"
//   - Empty args: the caller supplied fallback
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
