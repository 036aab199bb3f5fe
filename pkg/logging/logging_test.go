package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestNewWithoutFile 未配置文件时返回空日志
func TestNewWithoutFile(t *testing.T) {
	log, closer, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closer.Close()

	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got %v", log.GetLevel())
	}
}

// TestNewInvalidLevel 非法日志级别
func TestNewInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	if _, _, err := New(cfg); err == nil {
		t.Error("Expected error for invalid level")
	}
}

// TestNewWritesFile 日志写入文件
func TestNewWritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.File = filepath.Join(dir, "logs", "gochart.log")

	log, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debug().Int("start", 3).Msg("窗口更新")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"start":3`) {
		t.Errorf("Expected structured field in log, got %s", data)
	}
}

// TestLevelFilter 低于级别的日志被丢弃
func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, zerolog.WarnLevel, false)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info message should be filtered")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"app":"gochart"`) {
		t.Errorf("Unexpected output %q", out)
	}
}
