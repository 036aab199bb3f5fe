package core

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestPadRange 测试非对称缓冲
func TestPadRange(t *testing.T) {
	lo, hi := PadRange(10, 20)
	if !almostEqual(lo, 9.5) {
		t.Errorf("Expected padded min 9.5, got %f", lo)
	}
	if !almostEqual(hi, 21.0) {
		t.Errorf("Expected padded max 21.0, got %f", hi)
	}

	// 所有值相同时扩展为单位范围
	lo, hi = PadRange(5, 5)
	if !(lo < 5 && hi > 5) {
		t.Errorf("Expected flat range to be widened around 5, got [%f, %f]", lo, hi)
	}
	if !almostEqual(lo, 4.45) || !almostEqual(hi, 5.6) {
		t.Errorf("Expected [4.45, 5.6], got [%f, %f]", lo, hi)
	}
}

// TestComputeBounds 测试坐标轴范围计算
func TestComputeBounds(t *testing.T) {
	points := []DataPoint{
		{Timestamp: 100, PE: 10, Index: 1000},
		{Timestamp: 200, PE: 20, Index: 1200},
		{Timestamp: 300, PE: 15, Index: 1100},
	}

	b, ok := ComputeBounds(points)
	if !ok {
		t.Fatal("ComputeBounds should succeed for non-empty input")
	}

	if !almostEqual(b.YLeftMin, 9.5) || !almostEqual(b.YLeftMax, 21.0) {
		t.Errorf("Unexpected PE bounds [%f, %f]", b.YLeftMin, b.YLeftMax)
	}
	if !almostEqual(b.YRightMin, 990) || !almostEqual(b.YRightMax, 1220) {
		t.Errorf("Unexpected Index bounds [%f, %f]", b.YRightMin, b.YRightMax)
	}
	if b.XMin != 100 || b.XMax != 300 {
		t.Errorf("Expected X bounds [100, 300], got [%d, %d]", b.XMin, b.XMax)
	}

	if _, ok := ComputeBounds(nil); ok {
		t.Error("ComputeBounds should report false for empty input")
	}
}

// TestVisibleWindowSpan 测试窗口时间跨度
func TestVisibleWindowSpan(t *testing.T) {
	w := VisibleWindow{Points: []DataPoint{{Timestamp: 0}, {Timestamp: 86400}}}
	if w.Span() != 24*time.Hour {
		t.Errorf("Expected span 24h, got %v", w.Span())
	}

	single := VisibleWindow{Points: []DataPoint{{Timestamp: 5}}}
	if single.Span() != 0 {
		t.Errorf("Expected zero span for a single point, got %v", single.Span())
	}

	if !(VisibleWindow{}).Empty() {
		t.Error("Zero window should be empty")
	}
}

// TestUpdateSourceString 测试来源名称
func TestUpdateSourceString(t *testing.T) {
	cases := map[UpdateSource]string{
		SourceProgrammatic:    "programmatic",
		SourceExternalGesture: "gesture",
		SourcePresetButton:    "preset",
		SourceSelectorDrag:    "selector",
	}
	for src, want := range cases {
		if got := src.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

// TestListenerFunc 测试函数适配器
func TestListenerFunc(t *testing.T) {
	var got WindowChange
	var l WindowListener = ListenerFunc(func(c WindowChange) { got = c })

	l.OnWindowChange(WindowChange{Source: SourceSelectorDrag})
	if got.Source != SourceSelectorDrag {
		t.Errorf("Expected listener to receive selector source, got %v", got.Source)
	}
}

// TestSelectorWidth 测试选择器宽度
func TestSelectorWidth(t *testing.T) {
	s := SelectorPosition{StartRatio: 0.25, EndRatio: 0.75}
	if !almostEqual(s.Width(), 0.5) {
		t.Errorf("Expected width 0.5, got %f", s.Width())
	}
}
