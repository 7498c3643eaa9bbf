package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"debouncems = 100",
		"trace = ~/sierp.log",
		"exportdir = /tmp/exports",
		"garbage line without equals",
		"unknownkey = whatever",
	}, "\n")

	config := parseConfig(strings.NewReader(input), "/home/someone")

	if config.DebounceDelay != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", config.DebounceDelay)
	}
	if config.TracePath != "/home/someone/sierp.log" {
		t.Errorf("expected tilde expansion, got %q", config.TracePath)
	}
	if config.ExportDirectory != "/tmp/exports" {
		t.Errorf("expected /tmp/exports, got %q", config.ExportDirectory)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config := parseConfig(strings.NewReader(""), "/home/someone")

	if config.DebounceDelay != defaultDebounceMs*time.Millisecond {
		t.Errorf("expected default delay, got %v", config.DebounceDelay)
	}
	if config.TracePath != "" || config.ExportDirectory != "" {
		t.Errorf("expected empty paths, got %q / %q", config.TracePath, config.ExportDirectory)
	}
}

func TestParseConfigRejectsBadDelay(t *testing.T) {
	for _, line := range []string{"debouncems = abc", "debouncems = -5", "debouncems = 0"} {
		config := parseConfig(strings.NewReader(line), "/home/someone")
		if config.DebounceDelay != defaultDebounceMs*time.Millisecond {
			t.Errorf("%q should keep the default delay, got %v", line, config.DebounceDelay)
		}
	}
}

func TestGetExportPath(t *testing.T) {
	config := defaultConfig()
	if got := config.GetExportPath("a.png"); got != "a.png" {
		t.Errorf("no export dir should pass names through, got %q", got)
	}

	dir := t.TempDir()
	config.ExportDirectory = dir
	if got := config.GetExportPath("a.png"); got != filepath.Join(dir, "a.png") {
		t.Errorf("expected %q, got %q", filepath.Join(dir, "a.png"), got)
	}
}
