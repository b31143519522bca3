// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomtom215/svclog/internal/config"
	"github.com/tomtom215/svclog/internal/logging"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

const metricsShutdownTimeout = 5 * time.Second

// options holds the flag values that are not part of config.Config.
type options struct {
	configPath string
	color      string
	severity   logging.Severity
}

// flagOverrides maps command flags to config keys. A flag only overrides
// lower layers when it was set explicitly.
var flagOverrides = map[string]string{
	"app":          "logging.application",
	"id":           "logging.identifier",
	"level":        "logging.level",
	"log-dir":      "logging.directory",
	"datetime":     "logging.datetime",
	"metrics-addr": "metrics.address",
}

func newRootCmd(stdin io.Reader, stderr io.Writer) *cobra.Command {
	opts := &options{severity: logging.SeverityInfo}

	cmd := &cobra.Command{
		Use:   "svclog [message...]",
		Short: "Write service log records through the configured sinks",
		Long: `svclog initializes service logging from flags, SVCLOG_* environment
variables and an optional YAML config file, then logs its arguments as a
single record. Without arguments every line read from stdin becomes a record.

Records go to stderr and, when a log directory is set, to a rotating
{application}.log file in that directory.`,
		Example: `  svclog --app chain --id node1 --severity warning "peer dropped"
  tail -f chain.out | svclog --app chain --log-dir /var/log/chain`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), opts, args, stdin, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is ./svclog.yaml or $CONFIG_PATH)")
	flags.String("app", "", "application name (required)")
	flags.String("id", "", "instance identifier (default random)")
	flags.String("level", logging.InfoToken, "minimum severity: "+strings.Join(logging.ValidTokens(), ", "))
	flags.String("log-dir", "", "directory for the rotating log file")
	flags.StringVar(&opts.color, "color", colorAuto, "colored severities: auto, always, never")
	flags.Bool("datetime", true, "prefix console records with a timestamp")
	flags.Var(&opts.severity, "severity", "severity of the records written")
	flags.String("metrics-addr", "", "serve Prometheus metrics on host:port")

	return cmd
}

func run(ctx context.Context, flags *pflag.FlagSet, opts *options, args []string, stdin io.Reader, stderr io.Writer) error {
	overrides, err := buildOverrides(flags, opts.color, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{Path: opts.configPath, Overrides: overrides})
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LoggingConfig(stderr)); err != nil {
		return err
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}()
	slog.SetDefault(logging.NewSlogLogger())

	if cfg.Metrics.Address != "" {
		stopMetrics := serveMetrics(cfg.Metrics.Address)
		defer stopMetrics()
	}

	emit := func(line string) {
		logging.Log(opts.severity).Msg(line)
	}

	if len(args) > 0 {
		emit(strings.Join(args, " "))
		return nil
	}
	return emitLines(ctx, stdin, emit)
}

// buildOverrides collects explicitly set flags as config overrides and
// resolves the color mode.
func buildOverrides(flags *pflag.FlagSet, color string, stderr io.Writer) (map[string]interface{}, error) {
	overrides := make(map[string]interface{})
	for name, key := range flagOverrides {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() == "bool" {
			v, err := flags.GetBool(name)
			if err != nil {
				return nil, err
			}
			overrides[key] = v
			continue
		}
		overrides[key] = f.Value.String()
	}

	switch color {
	case colorAlways:
		overrides["logging.color"] = true
	case colorNever:
		overrides["logging.color"] = false
	case colorAuto:
		if !colorSupported(stderr) {
			overrides["logging.color"] = false
		}
	default:
		return nil, fmt.Errorf("invalid --color %q: want %s, %s or %s", color, colorAuto, colorAlways, colorNever)
	}

	return overrides, nil
}

// colorSupported reports whether w is a terminal and NO_COLOR is unset.
func colorSupported(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// emitLines passes every non-empty line of r to emit until EOF or ctx is done.
// On cancellation r is closed when it is an io.Closer, which releases the
// reading goroutine; otherwise that goroutine stays blocked until r returns.
func emitLines(ctx context.Context, r io.Reader, emit func(string)) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			emit(line)
		}
	}
}

// serveMetrics starts the Prometheus endpoint and returns its shutdown func.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", addr).Msg("Serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("Metrics server failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logging.Warning().Err(err).Msg("Metrics server shutdown failed")
		}
	}
}
