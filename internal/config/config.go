// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/svclog/internal/logging"
)

// Config holds svclog configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML file (svclog.yaml, or CONFIG_PATH)
//  3. Environment Variables: SVCLOG_* variables
//  4. Overrides: values set explicitly by the caller, e.g. command flags
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LoggingConfig holds the logging initialization settings.
//
// Environment Variables:
//   - SVCLOG_APPLICATION: application name (required)
//   - SVCLOG_IDENTIFIER: instance identifier (default: random)
//   - SVCLOG_LEVEL: trace, debug, info, warning, error, fatal (default: info)
//   - SVCLOG_LOG_DIR: directory for the rotating file sink (default: none)
//   - SVCLOG_COLOR: true/false (default: true)
//   - SVCLOG_DATETIME: true/false (default: true)
type LoggingConfig struct {
	Application string `koanf:"application" validate:"required,excludesall=/\\"`
	Identifier  string `koanf:"identifier" validate:"omitempty,max=64"`
	Level       string `koanf:"level" validate:"oneof=trace debug info warning error fatal"`
	Directory   string `koanf:"directory"`
	Color       bool   `koanf:"color"`
	DateTime    bool   `koanf:"datetime"`
}

// MetricsConfig holds the Prometheus endpoint settings.
//
// Environment Variables:
//   - SVCLOG_METRICS_ADDR: listen address for /metrics (default: disabled)
type MetricsConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// ErrValidation is wrapped by every error returned from Validate.
var ErrValidation = errors.New("configuration validation failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the configuration and lists every invalid field.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port, got %q", field, fe.Value())
	case "excludesall":
		return field + " must not contain path separators"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// LoggingConfig converts the settings to a logging.Config writing console
// output to out.
func (c *Config) LoggingConfig(out io.Writer) logging.Config {
	return logging.Config{
		ApplicationName: c.Logging.Application,
		Identifier:      c.Logging.Identifier,
		FilterLevel:     c.Logging.Level,
		LogDirectory:    c.Logging.Directory,
		Color:           c.Logging.Color,
		DateTime:        c.Logging.DateTime,
		Output:          out,
	}
}
