package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "default config", config: nil},
		{
			name: "json format",
			config: &Config{
				Level:  LevelInfo,
				Format: "json",
				Output: &bytes.Buffer{},
			},
		},
		{
			name: "text format",
			config: &Config{
				Level:   LevelDebug,
				Format:  "text",
				Output:  &bytes.Buffer{},
				NoColor: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if NewLogger(tt.config) == nil {
				t.Error("NewLogger() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{
		Level:  LevelInfo,
		Format: "json",
		Output: &buf,
	})

	logger.Debug("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("debug message was not filtered: %q", buf.String())
	}

	logger.Info("visible", "code", "0x8044B401")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("info message missing: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "0x8044B401") {
		t.Errorf("kv pair missing: %q", buf.String())
	}
}

func TestKvPairs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	logger.Debug("encoding", "name", "GPIO_GET_CHIPINFO_IOCTL", "size", 68)

	out := buf.String()
	for _, want := range []string{"GPIO_GET_CHIPINFO_IOCTL", `"size":68`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	})

	logger.WithError(errors.New("broken pipe")).Error("write failed")
	if !strings.Contains(buf.String(), "broken pipe") {
		t.Errorf("error context missing: %q", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	custom := NewLogger(&Config{Level: LevelWarn, Format: "json", Output: &bytes.Buffer{}})
	SetDefault(custom)

	if Default() != custom {
		t.Error("SetDefault did not take effect")
	}
}
