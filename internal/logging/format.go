// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"
)

// ANSI escape sequences used for severity tokens.
const (
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

const alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// severityColor returns the escape sequence for s. Unknown severities are red.
func severityColor(s Severity) string {
	switch s {
	case SeverityTrace, SeverityDebug:
		return colorBlue
	case SeverityInfo:
		return colorGreen
	case SeverityWarning:
		return colorYellow
	default:
		return colorRed
	}
}

// Colorize wraps token in the color for s followed by a reset.
// With enabled false the token is returned unchanged.
func Colorize(token string, s Severity, enabled bool) string {
	if !enabled {
		return token
	}
	return severityColor(s) + token + colorReset
}

// RenderTimestamp formats t as "YYYY-MM-DD HH:MM:SS.ffffff".
func RenderTimestamp(t time.Time) string {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06d",
		abs(year), int(month), day,
		abs(hour), abs(minute), abs(second),
		abs(t.Nanosecond()/int(time.Microsecond)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ToHex renders b as a 0x-prefixed lowercase hex string.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// RandomAlphanumeric returns n characters drawn uniformly from [0-9A-Za-z].
// Not suitable for anything security related.
func RandomAlphanumeric(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphanumeric[rand.IntN(len(alphanumeric))] //nolint:gosec // identifiers only disambiguate log streams
	}
	return string(buf)
}
