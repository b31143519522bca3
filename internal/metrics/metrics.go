// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LogRecords counts records that passed the severity filter.
	LogRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svclog_records_total",
			Help: "Total number of log records emitted, by severity",
		},
		[]string{"severity"},
	)

	// SinkRenderErrors counts records a sink could not decode and rendered raw.
	SinkRenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svclog_sink_render_errors_total",
			Help: "Total number of log records a sink rendered from an undecodable payload",
		},
		[]string{"sink"},
	)

	// SinkWriteErrors counts failed writes to a sink's destination.
	SinkWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svclog_sink_write_errors_total",
			Help: "Total number of failed sink writes",
		},
		[]string{"sink"},
	)

	// Initializations counts Initialize calls by result (success, invalid, rejected).
	Initializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svclog_initializations_total",
			Help: "Total number of logging initialization attempts, by result",
		},
		[]string{"result"},
	)
)

// RecordLogRecord increments the emitted record counter for severity.
func RecordLogRecord(severity string) {
	LogRecords.WithLabelValues(severity).Inc()
}

// RecordSinkRenderError increments the render error counter for sink.
func RecordSinkRenderError(sink string) {
	SinkRenderErrors.WithLabelValues(sink).Inc()
}

// RecordSinkWriteError increments the write error counter for sink.
func RecordSinkWriteError(sink string) {
	SinkWriteErrors.WithLabelValues(sink).Inc()
}

// RecordInitialization increments the initialization counter for result.
func RecordInitialization(result string) {
	Initializations.WithLabelValues(result).Inc()
}
