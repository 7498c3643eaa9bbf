package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DebounceDelay   time.Duration
	TracePath       string
	ExportDirectory string
}

func defaultConfig() *Config {
	return &Config{
		DebounceDelay: defaultDebounceMs * time.Millisecond,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	configPath := filepath.Join(homeDir, ".sierprc")
	file, err := os.Open(configPath)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	expand := func(value string) string {
		if strings.HasPrefix(value, "~") {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
		if !filepath.IsAbs(value) {
			if absPath, err := filepath.Abs(value); err == nil {
				value = absPath
			}
		}
		return value
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "debouncems", "debounce_ms", "debounce":
			if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
				config.DebounceDelay = time.Duration(ms) * time.Millisecond
			}
		case "tracefile", "trace_file", "trace":
			config.TracePath = expand(value)
		case "exportdirectory", "export_directory", "exportdir":
			config.ExportDirectory = expand(value)
		}
	}

	return config
}

func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
