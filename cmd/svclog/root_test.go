// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/svclog/internal/logging"
)

func TestBuildOverrides_OnlyChangedFlags(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	if err := cmd.Flags().Parse([]string{"--app", "chain", "--datetime=false", "--color", "always"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := buildOverrides(cmd.Flags(), colorAlways, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("buildOverrides() error = %v", err)
	}

	want := map[string]interface{}{
		"logging.application": "chain",
		"logging.datetime":    false,
		"logging.color":       true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildOverrides() = %v, want %v", got, want)
	}
}

func TestBuildOverrides_ColorModes(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		wantColor interface{}
		wantSet   bool
		wantErr   bool
	}{
		{name: "always", mode: colorAlways, wantColor: true, wantSet: true},
		{name: "never", mode: colorNever, wantColor: false, wantSet: true},
		{name: "auto without terminal", mode: colorAuto, wantColor: false, wantSet: true},
		{name: "invalid", mode: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
			got, err := buildOverrides(cmd.Flags(), tt.mode, &bytes.Buffer{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("buildOverrides() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildOverrides() error = %v", err)
			}
			color, ok := got["logging.color"]
			if ok != tt.wantSet || color != tt.wantColor {
				t.Errorf("logging.color = %v (set %v), want %v (set %v)", color, ok, tt.wantColor, tt.wantSet)
			}
		})
	}
}

func TestColorSupported_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if colorSupported(os.Stderr) {
		t.Error("colorSupported() = true with NO_COLOR set")
	}
}

func TestEmitLines(t *testing.T) {
	t.Parallel()

	var got []string
	err := emitLines(context.Background(), strings.NewReader("first\n\n  \nsecond\nthird"), func(line string) {
		got = append(got, line)
	})
	if err != nil {
		t.Fatalf("emitLines() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("emitLines() emitted %q, want %q", got, want)
	}
}

// blockingReader blocks every Read until Close is called.
type blockingReader struct {
	closed chan struct{}
	once   sync.Once
}

func newBlockingReader() *blockingReader {
	return &blockingReader{closed: make(chan struct{})}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.closed
	return 0, io.EOF
}

func (r *blockingReader) Close() error {
	r.once.Do(func() { close(r.closed) })
	return nil
}

func TestEmitLines_Canceled(t *testing.T) {
	t.Parallel()

	r := newBlockingReader()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- emitLines(ctx, r, func(string) {})
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("emitLines() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("emitLines() did not return after cancel")
	}

	select {
	case <-r.closed:
	case <-time.After(5 * time.Second):
		t.Fatal("emitLines() did not close the reader after cancel")
	}
}

func TestRootCommand_InvalidLevel(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	var stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &stderr)
	cmd.SetArgs([]string{"--app", "chain", "--level", "verbose", "hello"})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want invalid level error")
	}
	if logging.Initialized() {
		t.Error("logging initialized despite invalid level")
	}
}

func TestRootCommand_InvalidSeverityFlag(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--app", "chain", "--severity", "loud", "hello"})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want flag error")
	}
}

// TestRootCommand_Run is the only test in this package that initializes
// logging, which can happen once per process.
func TestRootCommand_Run(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	var stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader("peer connected\npeer dropped\n"), &stderr)
	cmd.SetArgs([]string{
		"--app", "chain",
		"--id", "node1",
		"--level", "warning",
		"--severity", "error",
		"--datetime=false",
		"--log-dir", dir,
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := logging.ServiceID(); got != "chain.node1" {
		t.Errorf("ServiceID() = %q, want %q", got, "chain.node1")
	}

	console := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(console) != 2 {
		t.Fatalf("console lines = %d, want 2:\n%s", len(console), stderr.String())
	}
	for i, msg := range []string{"peer connected", "peer dropped"} {
		if !strings.HasPrefix(console[i], "(chain.node1) [") {
			t.Errorf("console line %q lacks service id prefix", console[i])
		}
		if !strings.HasSuffix(console[i], "<error>: "+msg) {
			t.Errorf("console line %q, want suffix %q", console[i], "<error>: "+msg)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "chain.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if n := strings.Count(string(data), "<error>: peer"); n != 2 {
		t.Errorf("log file has %d records, want 2:\n%s", n, data)
	}
}
