// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

// Package logging configures process-wide zerolog logging for services.
//
// A service calls Initialize once at startup. From then on every record is
// checked against one global minimum severity and, if it passes, rendered
// by each sink as a single text line:
//
//	2026-10-19 08:15:42.123456 (chain.Ab3xZ) [apply.go:88] <info>: block applied height=42
//
// # Quick Start
//
//	import "github.com/tomtom215/svclog/internal/logging"
//
//	if err := logging.Initialize(logging.Config{
//	    ApplicationName: "chain",
//	    FilterLevel:     "info",
//	    LogDirectory:    "/var/log/chain",
//	    Color:           true,
//	    DateTime:        true,
//	}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logging.Info().Msg("Service starting")
//	logging.Error().Err(err).Msg("Block rejected")
//
// # Severities
//
// Six severities, in order: trace, debug, info, warning, error, fatal. The
// filter level is given as one of these tokens, matched exactly; any other
// token makes Initialize fail with ErrInvalidLevel. Fatal records do not
// exit the process. Records at any other level (zerolog panic or no level)
// render as "unknown".
//
// # Sinks
//
// The console sink writes to Config.Output (stderr by default), with
// optional ANSI colored severities and an optional timestamp prefix. When
// Config.LogDirectory is set, a file sink writes uncolored, timestamped
// lines to {LogDirectory}/{ApplicationName}.log. The file rotates at 1 MiB
// and at most 100 rotated files are kept, oldest removed first.
//
// # Service Identifier
//
// Every record carries "{ApplicationName}.{Identifier}". When Identifier is
// empty a random 5 character alphanumeric identifier is generated, so
// co-located instances of one application stay distinguishable.
//
// # Structured Messages
//
// Protobuf messages are logged through Render, which produces single-line
// text format with bytes fields hex encoded:
//
//	logging.Debug().Msg(logging.Render(block))
//	logging.Info().Stringer("header", logging.Message(header)).Msg("Applied")
//
// # Initialization Rules
//
// Initialize is not safe for concurrent use and must complete before other
// goroutines log. Calling it again returns ErrAlreadyInitialized and keeps
// the first configuration; reconfiguration is not supported. Records
// emitted before Initialize go to stderr without color.
package logging
