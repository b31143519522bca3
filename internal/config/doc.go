// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package config loads svclog configuration with Koanf v2.

# Configuration Sources

Later sources override earlier ones:
  - Built-in defaults
  - YAML file: Options.Path, $CONFIG_PATH, ./svclog.yaml, ./svclog.yml, /etc/svclog/config.yaml
  - Environment variables with the SVCLOG_ prefix
  - Options.Overrides (the svclog command passes explicitly set flags here)

# Example File

	logging:
	  application: chain
	  identifier: node1
	  level: warning
	  directory: /var/log/chain
	  color: false
	  datetime: true
	metrics:
	  address: localhost:9102

# Validation

Load validates with go-playground/validator. The application name is
required, the level must be one of the six severity tokens, and the metrics
address must be host:port. All failures are reported together, wrapped in
ErrValidation.
*/
package config
