// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"svclog.yaml",
	"svclog.yml",
	"/etc/svclog/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SVCLOG_"

// Options controls Load.
type Options struct {
	// Path is an explicit config file. It must exist when set.
	Path string

	// Overrides are applied last, keyed by koanf path (e.g. "logging.level").
	Overrides map[string]interface{}
}

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Application: "",
			Identifier:  "", // Generated at initialization if empty
			Level:       "info",
			Directory:   "", // File sink disabled by default
			Color:       true,
			DateTime:    true,
		},
		Metrics: MetricsConfig{
			Address: "", // Metrics endpoint disabled by default
		},
	}
}

// Load builds the configuration from defaults, the config file, SVCLOG_*
// environment variables and opts.Overrides, then validates it.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := findConfigFile(opts.Path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns the explicit path, CONFIG_PATH, or the first
// default path that exists. An explicit path that does not exist is an error.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// envTransformFunc maps SVCLOG_* variables to koanf paths. Unmapped
// variables are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	envMappings := map[string]string{
		"application":  "logging.application",
		"identifier":   "logging.identifier",
		"level":        "logging.level",
		"log_dir":      "logging.directory",
		"color":        "logging.color",
		"datetime":     "logging.datetime",
		"metrics_addr": "metrics.address",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
