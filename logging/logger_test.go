package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := LoggerConfig{
		Level:         LevelInfo,
		Format:        "json",
		Output:        &buf,
		IncludeSource: false,
		Component:     "test-component",
	}

	logger := NewLogger(config)
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected log output to contain 'test message', got: %s", output)
	}

	if !strings.Contains(output, "test-component") {
		t.Errorf("Expected log output to contain component name, got: %s", output)
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, want %s", test.level, got, test.expected)
		}
	}
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}

	// Test that it doesn't panic
	logger.Info("test message")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LevelInfo,
		Format: "json",
		Output: &buf,
	})

	logger.Info("test json message", "key", "value")

	output := buf.String()

	// Verify it's valid JSON
	var jsonData map[string]interface{}
	if err := json.Unmarshal([]byte(output), &jsonData); err != nil {
		t.Errorf("Output is not valid JSON: %v\nOutput: %s", err, output)
	}

	if jsonData["msg"] != "test json message" {
		t.Errorf("Expected message 'test json message', got: %v", jsonData["msg"])
	}

	if jsonData["key"] != "value" {
		t.Errorf("Expected key 'value', got: %v", jsonData["key"])
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	logger.WithStop("Rasskazovka").Info("stop context")
	logger.WithBus("750").Info("bus context")
	logger.WithError(errors.New("boom")).Warn("error context")
	logger.WithRequest(7, "Route").Debug("request context")

	output := buf.String()
	for _, expected := range []string{"Rasskazovka", "750", "boom", "request_type"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, got: %s", expected, output)
		}
	}
}

func TestLifecycleHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	logger.IngestComplete(10, 3, 12, 5*time.Millisecond)
	logger.GraphBuilt(20, 64, 2*time.Millisecond)
	logger.QueryCompleted(1, "Bus", time.Millisecond)
	logger.BusRejected("828", "unknown stop \"Nowhere\"")

	output := buf.String()
	for _, expected := range []string{"Ingestion completed", "Routing graph built", "Query completed", "Bus rejected"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, got: %s", expected, output)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LevelWarn,
		Format: "text",
		Output: &buf,
	})

	logger.Debug("should be filtered")
	logger.Info("should be filtered too")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "filtered") {
		t.Errorf("Expected debug/info to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("Expected warn message in output, got: %s", output)
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: LevelWarn, Output: &bytes.Buffer{}})

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("Debug should not be enabled at warn level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("Error should be enabled at warn level")
	}
}
