// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// logfacade is a command-line front end to the logfacade logger, useful for
// emitting consistently formatted log lines from shell scripts.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/logfacade/cmd/logfacade@latest
//
// # Usage
//
//	logfacade emit [FLAGS] MESSAGE...
//	logfacade levels
//
// # Flags (emit)
//
//	-c, --config         Configuration file (.json, .yaml, .yml)
//	-l, --level          Level of the message (default: info)
//	-t, --threshold      Minimum level to emit
//	-f, --formatter      simple, json or color
//	    --no-timestamps  Omit timestamps
//	-m, --meta           Metadata as key=value, repeatable
//
// # Examples
//
// Log a warning with metadata:
//
//	logfacade emit --level warn --meta pct=92 disk low
//
// Log through the transports of a configuration file:
//
//	logfacade emit -c logging.yaml -l error "payment failed"
package main
