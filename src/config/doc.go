// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads a declarative logger configuration from a JSON or
// YAML file and builds a [logger.Logger] from it.
//
// A configuration file looks like:
//
//	threshold: info
//	timestamps: true
//	formatter: json
//	transports:
//	  - type: console
//	  - type: file
//	    path: /var/log/app.log
//
// Every field is optional. Missing fields take the logger defaults; an
// explicitly empty transports list yields a logger with no transports.
// Files are validated against an embedded JSON schema before decoding.
package config
