package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kevin-Rudy/gochart/pkg/config"
	"github.com/Kevin-Rudy/gochart/pkg/series"
	"github.com/Kevin-Rudy/gochart/pkg/tui"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// newTestApp 创建输出写入buf且不会退出进程的应用
func newTestApp(buf *bytes.Buffer) *cli.App {
	app := createCliApp()
	app.Writer = buf
	app.ErrWriter = buf
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

// writeSample 通过sample子命令生成数据文件
func writeSample(t *testing.T, n string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{AppName, "sample",
		"-n", n, "--from", "2020-01-01", "--to", "2024-01-01", "--seed", "3", "-o", path})
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	return path
}

// TestSampleCommand 测试合成数据文件
func TestSampleCommand(t *testing.T) {
	path := writeSample(t, "300")

	doc, err := series.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	store, err := doc.Store()
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if store.Len() != 300 {
		t.Errorf("Expected 300 points, got %d", store.Len())
	}
}

// TestSampleRejectsBadRange 测试结束日期早于起始日期
func TestSampleRejectsBadRange(t *testing.T) {
	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{AppName, "sample", "--from", "2024-01-01", "--to", "2020-01-01"})
	if err == nil {
		t.Error("Expected error for reversed date range")
	}
}

// TestRenderCommand 测试纯文本输出
func TestRenderCommand(t *testing.T) {
	path := writeSample(t, "500")

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{AppName, "render",
		"--file", path, "--timezone", "UTC", "--preset", "All",
		"--width", "100", "--height", "30"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<All>") {
		t.Errorf("Expected active preset in period bar, got:\n%s", out)
	}
	if !strings.Contains(out, "500 点") {
		t.Errorf("Expected window size in header, got:\n%s", out)
	}
	if strings.Contains(out, "[yellow]") {
		t.Error("Plain render should not contain color tags")
	}
}

// TestRenderPositionalFile 测试位置参数指定数据文件
func TestRenderPositionalFile(t *testing.T) {
	path := writeSample(t, "50")

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{AppName, "render", "--width", "80", "--height", "24", path})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "50 点") {
		t.Errorf("Expected 50 points in header, got:\n%s", buf.String())
	}
}

// TestRenderErrors 测试缺少文件和非法参数
func TestRenderErrors(t *testing.T) {
	path := writeSample(t, "50")

	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{"render", "--width", "80", "--height", "24"}},
		{"missing file", []string{"render", "--file", filepath.Join(t.TempDir(), "nope.json")}},
		{"bad preset", []string{"render", "--file", path, "--preset", "2y"}},
		{"bad label style", []string{"render", "--file", path, "--label-style", "weekly"}},
		{"bad tick count", []string{"render", "--file", path, "--tick-count", "1"}},
		{"bad timezone", []string{"render", "--file", path, "--timezone", "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := newTestApp(&buf).Run(append([]string{AppName}, tt.args...)); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

// TestRenderSize 测试输出尺寸
func TestRenderSize(t *testing.T) {
	w, h := renderSize(80, 20)
	if w != 80 || h != 20 {
		t.Errorf("Expected 80x20, got %dx%d", w, h)
	}

	w, h = renderSize(0, 0)
	if w <= 0 || h <= 0 {
		t.Errorf("Expected positive fallback size, got %dx%d", w, h)
	}
}

// TestOpenChartRejectsUnknownNames 未经校验的配置中出现未知名称时报错
func TestOpenChartRejectsUnknownNames(t *testing.T) {
	path := writeSample(t, "50")

	newAppConfig := func() *AppConfig {
		cfg := config.Default()
		cfg.Data.Path = path
		return &AppConfig{File: cfg, TUIConfig: tui.DefaultConfig(), Location: time.UTC}
	}

	if _, _, err := openChart(newAppConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("Default config should open, got %v", err)
	}

	badStyle := newAppConfig()
	badStyle.File.Chart.LabelStyle = "weekly"
	if _, _, err := openChart(badStyle, zerolog.Nop()); err == nil || !strings.Contains(err.Error(), "weekly") {
		t.Errorf("Expected label style error, got %v", err)
	}

	badPreset := newAppConfig()
	badPreset.File.Chart.Preset = "2y"
	if _, _, err := openChart(badPreset, zerolog.Nop()); err == nil || !strings.Contains(err.Error(), "2y") {
		t.Errorf("Expected preset error, got %v", err)
	}
}
