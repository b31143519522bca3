// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"strings"
	"testing"
	"time"
)

func TestColorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityTrace, "\033[34mtrace\033[0m"},
		{SeverityDebug, "\033[34mdebug\033[0m"},
		{SeverityInfo, "\033[32minfo\033[0m"},
		{SeverityWarning, "\033[33mwarning\033[0m"},
		{SeverityError, "\033[31merror\033[0m"},
		{SeverityFatal, "\033[31mfatal\033[0m"},
		{Severity(42), "\033[31munknown\033[0m"},
	}

	for _, tt := range tests {
		if got := Colorize(tt.severity.String(), tt.severity, true); got != tt.want {
			t.Errorf("Colorize(%q, enabled) = %q, want %q", tt.severity.String(), got, tt.want)
		}
		if got := Colorize(tt.severity.String(), tt.severity, false); got != tt.severity.String() {
			t.Errorf("Colorize(%q, disabled) = %q, want token unchanged", tt.severity.String(), got)
		}
	}
}

func TestRenderTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"microseconds", time.Date(2024, time.March, 5, 7, 8, 9, 123456789, time.UTC), "2024-03-05 07:08:09.123456"},
		{"midnight", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "2026-01-01 00:00:00.000000"},
		{"afternoon", time.Date(1999, time.December, 31, 23, 59, 59, 999999000, time.UTC), "1999-12-31 23:59:59.999999"},
		{"sub microsecond", time.Date(2024, time.June, 1, 12, 0, 0, 999, time.UTC), "2024-06-01 12:00:00.000000"},
	}

	for _, tt := range tests {
		if got := RenderTimestamp(tt.in); got != tt.want {
			t.Errorf("%s: RenderTimestamp() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestToHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x00, 0xFF, 0x0A}, "0x00ff0a"},
		{[]byte{0xDE, 0xAD, 0xBE, 0xEF}, "0xdeadbeef"},
		{[]byte{}, "0x"},
		{nil, "0x"},
	}

	for _, tt := range tests {
		if got := ToHex(tt.in); got != tt.want {
			t.Errorf("ToHex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRandomAlphanumeric(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		s := RandomAlphanumeric(5)
		if len(s) != 5 {
			t.Fatalf("RandomAlphanumeric(5) = %q, length %d", s, len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(alphanumeric, c) {
				t.Fatalf("RandomAlphanumeric(5) = %q contains %q", s, c)
			}
		}
	}

	if got := RandomAlphanumeric(0); got != "" {
		t.Errorf("RandomAlphanumeric(0) = %q, want empty", got)
	}
}

func TestRandomAlphanumericDistribution(t *testing.T) {
	t.Parallel()

	const samples = 12400 // 62000 characters, 1000 expected per symbol
	counts := make(map[rune]int, len(alphanumeric))
	total := 0
	for i := 0; i < samples; i++ {
		for _, c := range RandomAlphanumeric(5) {
			counts[c]++
			total++
		}
	}

	if len(counts) != len(alphanumeric) {
		t.Errorf("saw %d distinct symbols, want %d", len(counts), len(alphanumeric))
	}

	expected := float64(total) / float64(len(alphanumeric))
	chi2 := 0.0
	for _, c := range alphanumeric {
		d := float64(counts[c]) - expected
		chi2 += d * d / expected
	}

	// 61 degrees of freedom; 130 is far beyond the 1e-6 tail.
	if chi2 > 130 {
		t.Errorf("chi-square = %.1f over %d symbols, distribution is not uniform", chi2, len(alphanumeric))
	}
}
