// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled scratch buffers for rendering log lines.
// It abstracts the [bytebufferpool] library so that a formatter renders each
// entry into a reused buffer and only allocates the final string.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
