// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tomtom215/svclog/internal/metrics"
)

// File sink rotation policy: rotate at 1 MiB, keep at most 100 rotated
// files, so a log directory holds roughly 100 MiB per application.
const (
	FileRotationSizeMB = 1
	FileMaxBackups     = 100
)

// IdentifierLength is the length of a generated instance identifier.
const IdentifierLength = 5

var (
	// ErrInvalidConfig is returned for configuration Initialize cannot use.
	ErrInvalidConfig = errors.New("invalid logging configuration")

	// ErrAlreadyInitialized is returned by every Initialize call after the
	// first successful one. Logging is configured once per process.
	ErrAlreadyInitialized = errors.New("logging already initialized")
)

// Config holds logging configuration.
type Config struct {
	// ApplicationName is the first half of the service identifier and the
	// base name of the log file. Required.
	ApplicationName string

	// Identifier is the instance identifier. Empty generates a random
	// 5 character alphanumeric identifier.
	Identifier string

	// FilterLevel is the minimum severity token: trace, debug, info,
	// warning, error or fatal. Matched exactly.
	FilterLevel string

	// LogDirectory enables the rotating file sink when non-empty.
	LogDirectory string

	// Color enables ANSI colored severities on the console.
	Color bool

	// DateTime enables the timestamp prefix on the console.
	DateTime bool

	// Output is the console destination.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration. ApplicationName
// must still be set.
func DefaultConfig() Config {
	return Config{
		FilterLevel: InfoToken,
		Color:       true,
		DateTime:    true,
		Output:      os.Stderr,
	}
}

// core is the process-wide logging state.
type core struct {
	mu          sync.RWMutex
	initialized bool
	logger      zerolog.Logger
	serviceID   string
	filter      Severity
	file        *lumberjack.Logger
}

var std = newCore()

func newCore() *core {
	c := &core{}
	c.setDefaults()
	return c
}

// setDefaults installs the pre-initialization logger: plain lines on stderr
// at info, identified by the executable name.
func (c *core) setDefaults() {
	c.initialized = false
	c.serviceID = filepath.Base(os.Args[0])
	c.filter = SeverityInfo
	c.file = nil
	c.logger = zerolog.New(NewSink(os.Stderr, SinkOptions{DateTime: true})).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str(ServiceIDFieldName, c.serviceID).
		Logger()
}

// Initialize configures the process-wide logger: a console sink, an optional
// rotating file sink, and the minimum severity filter. Every later record
// carries the service identifier "{ApplicationName}.{Identifier}".
//
// Initialize must be called once, from a single goroutine, before other
// goroutines log. A second call returns ErrAlreadyInitialized and leaves the
// existing configuration untouched. On any error no sink is registered.
func Initialize(cfg Config) error {
	return std.initialize(cfg)
}

func (c *core) initialize(cfg Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		metrics.RecordInitialization("rejected")
		return ErrAlreadyInitialized
	}

	filter, err := ParseSeverity(cfg.FilterLevel)
	if err != nil {
		metrics.RecordInitialization("invalid")
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.ApplicationName == "" {
		metrics.RecordInitialization("invalid")
		return fmt.Errorf("%w: application name is required", ErrInvalidConfig)
	}

	id := cfg.Identifier
	if id == "" {
		id = RandomAlphanumeric(IdentifierLength)
	}
	serviceID := cfg.ApplicationName + "." + id

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	writers := []io.Writer{
		NewSink(zerolog.SyncWriter(output), SinkOptions{
			Name:     ConsoleSinkName,
			Color:    cfg.Color,
			DateTime: cfg.DateTime,
		}),
	}

	var file *lumberjack.Logger
	if cfg.LogDirectory != "" {
		if err := os.MkdirAll(cfg.LogDirectory, 0o755); err != nil {
			metrics.RecordInitialization("invalid")
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file = newRotatingFile(cfg.LogDirectory, cfg.ApplicationName)
		writers = append(writers, NewSink(file, SinkOptions{
			Name:     FileSinkName,
			DateTime: true,
		}))
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(filter.zerologLevel())

	c.logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(filter.zerologLevel()).
		Hook(recordCounter{}).
		With().
		Timestamp().
		Str(ServiceIDFieldName, serviceID).
		Logger()
	c.serviceID = serviceID
	c.filter = filter
	c.file = file
	c.initialized = true

	metrics.RecordInitialization("success")
	return nil
}

// newRotatingFile returns the file sink destination {dir}/{application}.log.
// Rotated files are named {application}-{timestamp}.log in the same directory.
func newRotatingFile(dir, application string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, application+".log"),
		MaxSize:    FileRotationSizeMB,
		MaxBackups: FileMaxBackups,
		LocalTime:  true,
	}
}

// recordCounter counts records that passed the filter.
type recordCounter struct{}

func (recordCounter) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	metrics.RecordLogRecord(severityFromZerolog(level).String())
}

// Close flushes and closes the file sink. Logging stays initialized; a later
// record reopens the file.
func Close() error {
	std.mu.RLock()
	defer std.mu.RUnlock()

	if std.file == nil {
		return nil
	}
	if err := std.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Rotate forces the file sink to start a new file. It is a no-op without a
// log directory.
func Rotate() error {
	std.mu.RLock()
	defer std.mu.RUnlock()

	if std.file == nil {
		return nil
	}
	if err := std.file.Rotate(); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

// reset returns the package to its uninitialized state. Tests only.
func reset() {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.file != nil {
		_ = std.file.Close()
	}
	std.setDefaults()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// Initialized reports whether Initialize has succeeded.
func Initialized() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.initialized
}

// ServiceID returns the service identifier attached to every record.
func ServiceID() string {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.serviceID
}

// FilterLevel returns the active minimum severity.
func FilterLevel() Severity {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.filter
}

// Logger returns the global logger instance.
// Events built from it directly carry no caller unless .Caller() is added.
func Logger() zerolog.Logger {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.logger
}

// With creates a child logger with additional context.
//
//	blockLogger := logging.With().Uint64("height", h).Logger()
func With() zerolog.Context {
	return Logger().With()
}

// Trace starts a new message with trace severity.
//
//	logging.Trace().Msg("entering apply")
func Trace() *zerolog.Event {
	l := Logger()
	return l.Trace().Caller(1)
}

// Debug starts a new message with debug severity.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug().Caller(1)
}

// Info starts a new message with info severity.
//
//	logging.Info().Msgf("connected to %s", addr)
func Info() *zerolog.Event {
	l := Logger()
	return l.Info().Caller(1)
}

// Warning starts a new message with warning severity.
func Warning() *zerolog.Event {
	l := Logger()
	return l.Warn().Caller(1)
}

// Error starts a new message with error severity.
//
//	logging.Error().Err(err).Msg("block rejected")
func Error() *zerolog.Event {
	l := Logger()
	return l.Error().Caller(1)
}

// Fatal starts a new message with fatal severity.
// Unlike zerolog's Fatal it does not exit the process.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.WithLevel(zerolog.FatalLevel).Caller(1)
}

// Log starts a new message with severity s. Severities outside the six
// known ones are emitted without a level and render as "unknown".
func Log(s Severity) *zerolog.Event {
	l := Logger()
	return l.WithLevel(s.zerologLevel()).Caller(1)
}

// IsEnabled reports whether records at s pass the active filter.
func IsEnabled(s Severity) bool {
	return s.Valid() && s >= FilterLevel()
}
