// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordLogRecord(t *testing.T) {
	tests := []string{"trace", "debug", "info", "warning", "error", "fatal", "unknown"}

	for _, severity := range tests {
		t.Run(severity, func(t *testing.T) {
			before := testutil.ToFloat64(LogRecords.WithLabelValues(severity))
			RecordLogRecord(severity)
			after := testutil.ToFloat64(LogRecords.WithLabelValues(severity))
			if after != before+1 {
				t.Errorf("svclog_records_total{severity=%q} = %v, want %v", severity, after, before+1)
			}
		})
	}
}

func TestRecordSinkErrors(t *testing.T) {
	renderBefore := testutil.ToFloat64(SinkRenderErrors.WithLabelValues("console"))
	writeBefore := testutil.ToFloat64(SinkWriteErrors.WithLabelValues("file"))

	RecordSinkRenderError("console")
	RecordSinkWriteError("file")
	RecordSinkWriteError("file")

	if got := testutil.ToFloat64(SinkRenderErrors.WithLabelValues("console")); got != renderBefore+1 {
		t.Errorf("render errors = %v, want %v", got, renderBefore+1)
	}
	if got := testutil.ToFloat64(SinkWriteErrors.WithLabelValues("file")); got != writeBefore+2 {
		t.Errorf("write errors = %v, want %v", got, writeBefore+2)
	}
}

func TestRecordInitialization(t *testing.T) {
	before := testutil.ToFloat64(Initializations.WithLabelValues("invalid"))
	RecordInitialization("invalid")
	if got := testutil.ToFloat64(Initializations.WithLabelValues("invalid")); got != before+1 {
		t.Errorf("initializations{result=invalid} = %v, want %v", got, before+1)
	}
}
