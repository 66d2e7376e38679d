// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_ConsoleOnlyShowsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Options{}, &buf)
	defer closer.Close()

	logger.Info("parties loaded", "count", 2)
	if buf.Len() != 0 {
		t.Errorf("info record reached the console: %q", buf.String())
	}

	logger.Error("results load failed", "error", os.ErrNotExist)
	if !strings.Contains(buf.String(), "results load failed") {
		t.Errorf("error record missing from console output: %q", buf.String())
	}
}

func TestNew_DebugShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Options{Debug: true}, &buf)
	defer closer.Close()

	logger.Debug("action started", "action", "3")
	if !strings.Contains(buf.String(), "action started") {
		t.Errorf("debug record missing: %q", buf.String())
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elections.log")

	var console bytes.Buffer
	logger, closer := New(Options{File: path, MaxSizeMB: 1, MaxBackups: 1}, &console)

	logger.Info("constituencies loaded", "count", 6)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log file is not JSON: %v (%q)", err, data)
	}
	if record["msg"] != "constituencies loaded" {
		t.Errorf("expected msg 'constituencies loaded', got %v", record["msg"])
	}
	if record["count"] != float64(6) {
		t.Errorf("expected count 6, got %v", record["count"])
	}

	// Info stays off the console
	if console.Len() != 0 {
		t.Errorf("info record reached the console: %q", console.String())
	}
}

func TestLogColors_NonFileWriter(t *testing.T) {
	if logColors(&bytes.Buffer{}) {
		t.Error("expected no colours for a buffer")
	}
}
