// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for logfacade.
// It implements a Cobra-based CLI with two commands: emit, which sends one
// message through a logger built from flags and an optional configuration
// file, and levels, which prints the severity scale as a markdown table.
package cli
