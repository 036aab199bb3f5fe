package window

import (
	"testing"
	"time"
)

// TestPresetLabels 按钮文本与解析互逆
func TestPresetLabels(t *testing.T) {
	want := []string{"1w", "1m", "3m", "6m", "YTD", "1y", "5y", "All"}
	for i, p := range Presets {
		if p.String() != want[i] {
			t.Errorf("Preset %d: expected %q, got %q", i, want[i], p.String())
		}
		back, ok := ParsePreset(p.String())
		if !ok || back != p {
			t.Errorf("ParsePreset(%q) = %v, %v", p.String(), back, ok)
		}
	}
	if _, ok := ParsePreset("2w"); ok {
		t.Error("Unknown preset should not parse")
	}
	if p, ok := ParsePreset("ytd"); !ok || p != PresetYearToDate {
		t.Error("Lower-case ytd should parse")
	}
}

// TestPresetCutoff 截止时间按日历天计算
func TestPresetCutoff(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	cutoff, ok := PresetWeek.Cutoff(now)
	if !ok || cutoff != time.Date(2024, 3, 3, 15, 30, 0, 0, time.UTC).Unix() {
		t.Errorf("Unexpected 1w cutoff %d", cutoff)
	}

	cutoff, ok = PresetYearToDate.Cutoff(now)
	if !ok || cutoff != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix() {
		t.Errorf("Unexpected YTD cutoff %d", cutoff)
	}

	cutoff, _ = PresetFiveYears.Cutoff(now)
	if cutoff != now.AddDate(0, 0, -1825).Unix() {
		t.Errorf("Unexpected 5y cutoff %d", cutoff)
	}

	if _, ok := PresetAll.Cutoff(now); ok {
		t.Error("All preset should be unbounded")
	}
}
