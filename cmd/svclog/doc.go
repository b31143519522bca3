// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

// Command svclog writes log records through the svclog logging core.
//
// It is both a thin operator tool and a working example of service startup:
//
//  1. Configuration: flags, SVCLOG_* variables and an optional YAML file (Koanf v2)
//  2. Logging: Initialize with console and optional rotating file sinks
//  3. slog: the default slog logger is routed to the same sinks
//  4. Metrics (optional): Prometheus endpoint on --metrics-addr
//
// # Usage
//
//	svclog --app chain --id node1 --severity warning "peer dropped"
//	journalctl -f -u chain | svclog --app chain --log-dir /var/log/chain
//
// Arguments are joined into one record. Without arguments each non-empty
// stdin line is one record, until EOF, SIGINT or SIGTERM.
//
// # Flags
//
//	--config, -c     config file
//	--app            application name (required)
//	--id             instance identifier (default random)
//	--level          minimum severity (default info)
//	--log-dir        rotating file sink directory
//	--color          auto, always or never (auto honors NO_COLOR and needs a terminal)
//	--datetime       timestamp prefix on console records (default true)
//	--severity       severity of the records written (default info)
//	--metrics-addr   Prometheus listen address
//
// Flags override environment variables, which override the config file.
//
// # Exit Status
//
// svclog exits 1 when configuration is invalid or logging cannot be
// initialized, for example when --level is not one of trace, debug, info,
// warning, error or fatal.
package main
