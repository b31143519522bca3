// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Severity is the level of a log record.
type Severity int8

// Severities in increasing order.
const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Severity tokens, as accepted by ParseSeverity and rendered by sinks.
const (
	TraceToken   = "trace"
	DebugToken   = "debug"
	InfoToken    = "info"
	WarningToken = "warning"
	ErrorToken   = "error"
	FatalToken   = "fatal"
	UnknownToken = "unknown"
)

// severityUnknown is used for zerolog levels outside the six severities.
const severityUnknown Severity = -1

// ErrInvalidLevel is returned when a filter level token is not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// String returns the lowercase token for s, or "unknown".
func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return TraceToken
	case SeverityDebug:
		return DebugToken
	case SeverityInfo:
		return InfoToken
	case SeverityWarning:
		return WarningToken
	case SeverityError:
		return ErrorToken
	case SeverityFatal:
		return FatalToken
	default:
		return UnknownToken
	}
}

// Valid reports whether s is one of the six severities.
func (s Severity) Valid() bool {
	return s >= SeverityTrace && s <= SeverityFatal
}

// ParseSeverity converts a token to a Severity. The match is exact and
// case-sensitive.
func ParseSeverity(token string) (Severity, error) {
	switch token {
	case TraceToken:
		return SeverityTrace, nil
	case DebugToken:
		return SeverityDebug, nil
	case InfoToken:
		return SeverityInfo, nil
	case WarningToken:
		return SeverityWarning, nil
	case ErrorToken:
		return SeverityError, nil
	case FatalToken:
		return SeverityFatal, nil
	default:
		return severityUnknown, fmt.Errorf("%w: %q", ErrInvalidLevel, token)
	}
}

// ValidTokens returns the recognized severity tokens in increasing order.
func ValidTokens() []string {
	return []string{TraceToken, DebugToken, InfoToken, WarningToken, ErrorToken, FatalToken}
}

// Set implements pflag.Value.
func (s *Severity) Set(token string) error {
	parsed, err := ParseSeverity(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Severity) Type() string {
	return "severity"
}

// zerologLevel maps s to the zerolog level used for emission and filtering.
func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case SeverityTrace:
		return zerolog.TraceLevel
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// severityFromZerolog maps a zerolog level back to a Severity. Panic, no
// level and anything else are unknown.
func severityFromZerolog(l zerolog.Level) Severity {
	switch l {
	case zerolog.TraceLevel:
		return SeverityTrace
	case zerolog.DebugLevel:
		return SeverityDebug
	case zerolog.InfoLevel:
		return SeverityInfo
	case zerolog.WarnLevel:
		return SeverityWarning
	case zerolog.ErrorLevel:
		return SeverityError
	case zerolog.FatalLevel:
		return SeverityFatal
	default:
		return severityUnknown
	}
}
