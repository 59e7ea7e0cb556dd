package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "json", &buf)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", "text", &buf)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	logger.Debug("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("unexpected text output: %s", buf.String())
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New("loud", "text", &bytes.Buffer{}); err == nil {
		t.Error("New() expected error for invalid level")
	}
	if _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
		t.Error("New() expected error for invalid format")
	}
}
