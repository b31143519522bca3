// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/svclog/internal/metrics"
)

// ServiceIDFieldName is the record field holding the service identifier.
const ServiceIDFieldName = "service_id"

// Sink names used for metrics labels.
const (
	ConsoleSinkName = "console"
	FileSinkName    = "file"
)

// unknownCaller is rendered when a record carries no caller field.
const unknownCaller = "unknown:0"

// SinkOptions selects how a Sink renders records.
type SinkOptions struct {
	// Name labels the sink in metrics. Default: "console".
	Name string

	// Color wraps the severity token in ANSI color codes.
	Color bool

	// DateTime prefixes each line with the record timestamp.
	DateTime bool
}

// Sink renders zerolog events as single text lines:
//
//	[2026-10-19 08:15:42.123456 ](indexer.Ab3xZ) [main.go:42] <info>: message key=value
//
// It implements zerolog.LevelWriter and is safe for concurrent use.
type Sink struct {
	mu   sync.Mutex
	out  io.Writer
	opts SinkOptions
}

// NewSink creates a Sink writing rendered lines to w.
func NewSink(w io.Writer, opts SinkOptions) *Sink {
	if opts.Name == "" {
		opts.Name = ConsoleSinkName
	}
	return &Sink{out: w, opts: opts}
}

// Write implements io.Writer. The severity is taken from the record's level field.
func (s *Sink) Write(p []byte) (int, error) {
	level := zerolog.NoLevel
	if evt, err := decodeEvent(p); err == nil {
		if str, ok := evt[zerolog.LevelFieldName].(string); ok {
			if parsed, perr := zerolog.ParseLevel(str); perr == nil {
				level = parsed
			}
		}
	}
	return s.WriteLevel(level, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (s *Sink) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	line := s.Render(level, p)

	s.mu.Lock()
	_, err := s.out.Write(line)
	s.mu.Unlock()

	if err != nil {
		metrics.RecordSinkWriteError(s.opts.Name)
		return 0, err
	}
	return len(p), nil
}

// Render formats one zerolog event payload as a newline-terminated line.
// It never fails: an undecodable payload is rendered verbatim as the message.
func (s *Sink) Render(level zerolog.Level, p []byte) []byte {
	evt, err := decodeEvent(p)
	if err != nil {
		metrics.RecordSinkRenderError(s.opts.Name)
		evt = map[string]interface{}{
			zerolog.MessageFieldName: string(bytes.TrimSpace(p)),
		}
	}

	severity := severityFromZerolog(level)

	var buf bytes.Buffer
	if s.opts.DateTime {
		buf.WriteString(RenderTimestamp(eventTime(evt[zerolog.TimestampFieldName])))
		buf.WriteByte(' ')
	}

	buf.WriteByte('(')
	buf.WriteString(fieldString(evt[ServiceIDFieldName]))
	buf.WriteString(") [")
	buf.WriteString(eventCaller(evt[zerolog.CallerFieldName]))
	buf.WriteString("] <")
	buf.WriteString(Colorize(severity.String(), severity, s.opts.Color))
	buf.WriteString(">: ")
	buf.WriteString(fieldString(evt[zerolog.MessageFieldName]))

	for _, key := range extraFieldNames(evt) {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteByte('=')
		buf.WriteString(fieldValue(evt[key]))
	}

	buf.WriteByte('\n')
	return buf.Bytes()
}

// decodeEvent decodes a zerolog JSON payload, keeping numbers exact.
func decodeEvent(p []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	var evt map[string]interface{}
	if err := dec.Decode(&evt); err != nil {
		return nil, fmt.Errorf("decode log event: %w", err)
	}
	if evt == nil {
		return nil, fmt.Errorf("decode log event: not an object")
	}
	return evt, nil
}

// eventTime interprets the timestamp field according to zerolog.TimeFieldFormat.
// A missing or unreadable timestamp yields the current time.
func eventTime(v interface{}) time.Time {
	switch ts := v.(type) {
	case string:
		if t, err := time.Parse(zerolog.TimeFieldFormat, ts); err == nil {
			return t
		}
	case json.Number:
		n, err := ts.Int64()
		if err != nil {
			break
		}
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(n)
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(n)
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, n)
		default:
			return time.Unix(n, 0)
		}
	}
	return time.Now()
}

// eventCaller reduces a "path/to/file.go:line" caller to "file.go:line".
func eventCaller(v interface{}) string {
	caller, ok := v.(string)
	if !ok || caller == "" {
		return unknownCaller
	}
	idx := strings.LastIndexByte(caller, ':')
	if idx < 0 {
		return filepath.Base(caller) + ":0"
	}
	return filepath.Base(caller[:idx]) + caller[idx:]
}

// extraFieldNames returns the record fields not already part of the line layout.
func extraFieldNames(evt map[string]interface{}) []string {
	keys := make([]string, 0, len(evt))
	for key := range evt {
		switch key {
		case zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName,
			zerolog.CallerFieldName, ServiceIDFieldName:
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// fieldValue renders an extra field value, quoting strings that would
// break the single-line record.
func fieldValue(v interface{}) string {
	str, ok := v.(string)
	if !ok {
		return fieldString(v)
	}
	if strings.IndexFunc(str, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		return strconv.Quote(str)
	}
	return str
}

func fieldString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
