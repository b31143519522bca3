// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package metrics provides Prometheus counters for the logging core.

# Available Metrics

  - svclog_records_total: Records that passed the severity filter (counter)
    Labels: severity (trace, debug, info, warning, error, fatal, unknown)
  - svclog_sink_render_errors_total: Records rendered from an undecodable payload (counter)
    Labels: sink (console, file)
  - svclog_sink_write_errors_total: Failed writes to a sink destination (counter)
    Labels: sink
  - svclog_initializations_total: Initialization attempts (counter)
    Labels: result (success, invalid, rejected)

# Metrics Endpoint

The svclog command serves the default registry when started with
--metrics-addr:

	svclog --metrics-addr :9102 --app indexer < events.log
	curl http://localhost:9102/metrics

All collectors are registered with promauto on the default registry, so
any promhttp.Handler in the process exposes them.
*/
package metrics
