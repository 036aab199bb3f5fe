package overlay

import (
	"math"
	"testing"

	"github.com/Kevin-Rudy/gochart/pkg/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestRoundTrip 下标→比例→下标必须还原
func TestRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 7, 10, 101, 1000} {
		for i0 := 0; i0 < n; i0 += 1 + n/17 {
			for i1 := i0; i1 < n; i1 += 1 + n/13 {
				pos := RatioRangeFor(i0, i1, n)
				g0, g1 := IndexRangeFor(pos.StartRatio, pos.EndRatio, n)
				if g0 != i0 || g1 != i1 {
					t.Fatalf("n=%d: (%d,%d) -> %+v -> (%d,%d)", n, i0, i1, pos, g0, g1)
				}
			}
		}
	}
}

// TestIndexRangeForClamps 越界比例被钳制
func TestIndexRangeForClamps(t *testing.T) {
	s, e := IndexRangeFor(-0.5, 1.7, 10)
	if s != 0 || e != 9 {
		t.Errorf("Expected (0,9), got (%d,%d)", s, e)
	}

	s, e = IndexRangeFor(0.8, 0.2, 11)
	if s != 2 || e != 8 {
		t.Errorf("Inverted ratios should be ordered, got (%d,%d)", s, e)
	}

	s, e = IndexRangeFor(0, 0.5, 1000)
	if s != 0 || e != 499 {
		t.Errorf("Expected (0,499), got (%d,%d)", s, e)
	}

	s, e = IndexRangeFor(math.NaN(), 1, 5)
	if s != 0 || e != 4 {
		t.Errorf("NaN should clamp to 0, got (%d,%d)", s, e)
	}

	if s, e := IndexRangeFor(0.3, 0.6, 1); s != 0 || e != 0 {
		t.Errorf("Single point store should map to (0,0), got (%d,%d)", s, e)
	}
}

// TestTrackMapping 像素与比例互转
func TestTrackMapping(t *testing.T) {
	tr := Track{Width: 110, HandleWidth: 10}

	if !near(tr.PixelFor(0), 5) || !near(tr.PixelFor(1), 105) {
		t.Errorf("Unexpected edges %f %f", tr.PixelFor(0), tr.PixelFor(1))
	}
	if !near(tr.RatioFor(55), 0.5) {
		t.Errorf("Expected 0.5, got %f", tr.RatioFor(55))
	}
	if tr.RatioFor(-100) != 0 || tr.RatioFor(500) != 1 {
		t.Error("RatioFor should clamp")
	}

	zero := Track{Width: 4, HandleWidth: 10}
	if zero.RatioFor(3) != 0 || zero.DeltaRatio(3) != 0 {
		t.Error("Degenerate track should map everything to 0")
	}
}

func newTestModel() *Model {
	return NewModel(Track{Width: 110, HandleWidth: 10})
}

// TestLeftHandleCannotCrossRight 左把手不能越过右把手
func TestLeftHandleCannotCrossRight(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0.2, EndRatio: 0.6})

	m.Drag(DragLeftHandle, PhaseBegan, 0)
	live, notify := m.Drag(DragLeftHandle, PhaseChanged, 80) // +0.8
	if notify {
		t.Error("Changed phase must not notify")
	}
	if !near(live.StartRatio, 0.6) || !near(live.EndRatio, 0.6) {
		t.Errorf("Left handle should stop at right edge, got %+v", live)
	}

	// 提交前提交位置不变
	if !near(m.Committed().StartRatio, 0.2) {
		t.Errorf("Committed position should not change during drag, got %+v", m.Committed())
	}

	pos, notify := m.Drag(DragLeftHandle, PhaseEnded, 0)
	if !notify {
		t.Error("Ended phase must notify")
	}
	if !near(pos.StartRatio, 0.6) {
		t.Errorf("Expected committed start 0.6, got %+v", pos)
	}
	if m.Dragging() {
		t.Error("Model should not be dragging after end")
	}
}

// TestRightHandleCannotCrossLeft 右把手不能越过左把手，也不能超出1
func TestRightHandleCannotCrossLeft(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0.4, EndRatio: 0.6})

	m.Drag(DragRightHandle, PhaseBegan, 0)
	live, _ := m.Drag(DragRightHandle, PhaseChanged, -50)
	if !near(live.EndRatio, 0.4) {
		t.Errorf("Right handle should stop at left edge, got %+v", live)
	}
	live, _ = m.Drag(DragRightHandle, PhaseChanged, 500)
	if !near(live.EndRatio, 1) {
		t.Errorf("Right handle should stop at 1, got %+v", live)
	}
}

// TestBodyMovePreservesWidth 整体拖动保持宽度
func TestBodyMovePreservesWidth(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0.2, EndRatio: 0.5})

	m.Drag(DragBody, PhaseBegan, 0)
	live, _ := m.Drag(DragBody, PhaseChanged, 1000)
	if !near(live.EndRatio, 1) || !near(live.Width(), 0.3) {
		t.Errorf("Body should clamp at right edge keeping width, got %+v", live)
	}
	live, _ = m.Drag(DragBody, PhaseChanged, -1000)
	if !near(live.StartRatio, 0) || !near(live.Width(), 0.3) {
		t.Errorf("Body should clamp at left edge keeping width, got %+v", live)
	}
}

// TestCancelledCommitsLikeEnded 取消的拖动与结束的拖动一样提交
func TestCancelledCommitsLikeEnded(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0, EndRatio: 1})

	m.Drag(DragLeftHandle, PhaseBegan, 0)
	m.Drag(DragLeftHandle, PhaseChanged, 25)
	pos, notify := m.Drag(DragLeftHandle, PhaseCancelled, 0)
	if !notify {
		t.Error("Cancelled phase must notify")
	}
	if !near(pos.StartRatio, 0.25) || !near(m.Committed().StartRatio, 0.25) {
		t.Errorf("Cancelled drag should commit current geometry, got %+v", pos)
	}
}

// TestSetPositionIgnoredWhileDragging 拖动中忽略程序化更新
func TestSetPositionIgnoredWhileDragging(t *testing.T) {
	m := newTestModel()
	m.Drag(DragBody, PhaseBegan, 0)
	if m.SetPosition(core.SelectorPosition{StartRatio: 0.1, EndRatio: 0.2}) {
		t.Error("SetPosition should be rejected during a drag")
	}
	m.Drag(DragBody, PhaseEnded, 0)
	if !m.SetPosition(core.SelectorPosition{StartRatio: 0.9, EndRatio: 0.1}) {
		t.Error("SetPosition should be accepted after the drag")
	}
	if got := m.Committed(); !near(got.StartRatio, 0.1) || !near(got.EndRatio, 0.9) {
		t.Errorf("SetPosition should order ratios, got %+v", got)
	}
}

// TestResizeKeepsRatios 轨道尺寸变化时从比例重建
func TestResizeKeepsRatios(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0.25, EndRatio: 0.75})

	x, w := m.Frame()
	if !near(x, 30) || !near(w, 50) {
		t.Errorf("Unexpected frame (%f, %f)", x, w)
	}

	m.Resize(210)
	x, w = m.Frame()
	if !near(x, 55) || !near(w, 100) {
		t.Errorf("Frame should scale with the track, got (%f, %f)", x, w)
	}
	if got := m.Committed(); !near(got.StartRatio, 0.25) || !near(got.EndRatio, 0.75) {
		t.Errorf("Resize must not change ratios, got %+v", got)
	}
}

// TestHitTest 测试按下位置的判定
func TestHitTest(t *testing.T) {
	m := newTestModel()
	m.SetPosition(core.SelectorPosition{StartRatio: 0.25, EndRatio: 0.75}) // 像素 30..80

	cases := []struct {
		px   float64
		want DragKind
	}{
		{30, DragLeftHandle},
		{33, DragLeftHandle},
		{80, DragRightHandle},
		{77, DragRightHandle},
		{55, DragBody},
		{10, DragNone},
		{100, DragNone},
	}
	for _, c := range cases {
		if got := m.HitTest(c.px); got != c.want {
			t.Errorf("HitTest(%f) = %v, want %v", c.px, got, c.want)
		}
	}
}

// TestHitTestCollapsed 把手重叠时仍能把选择器拉开
func TestHitTestCollapsed(t *testing.T) {
	m := newTestModel()

	// 收缩在左端，只有右把手能展开
	m.SetPosition(core.SelectorPosition{StartRatio: 0, EndRatio: 0})
	for _, px := range []float64{0.5, 5, 9} {
		if got := m.HitTest(px); got != DragRightHandle {
			t.Errorf("Collapsed at 0: HitTest(%f) = %v, want right handle", px, got)
		}
	}
	kind := m.HitTest(5)
	m.Drag(kind, PhaseBegan, 0)
	pos, _ := m.Drag(kind, PhaseEnded, 40)
	if !near(pos.StartRatio, 0) || !near(pos.EndRatio, 0.4) {
		t.Errorf("Expected {0 0.4} after widening, got %+v", pos)
	}

	// 收缩在右端，只有左把手能展开
	m.SetPosition(core.SelectorPosition{StartRatio: 1, EndRatio: 1})
	kind = m.HitTest(105)
	if kind != DragLeftHandle {
		t.Fatalf("Collapsed at 1: HitTest = %v, want left handle", kind)
	}
	m.Drag(kind, PhaseBegan, 0)
	pos, _ = m.Drag(kind, PhaseEnded, -40)
	if !near(pos.StartRatio, 0.6) || !near(pos.EndRatio, 1) {
		t.Errorf("Expected {0.6 1} after widening, got %+v", pos)
	}

	// 中间的窄选择器按按下的一侧决定，像素 55..57
	m.SetPosition(core.SelectorPosition{StartRatio: 0.5, EndRatio: 0.52})
	cases := []struct {
		px   float64
		want DragKind
	}{
		{54, DragLeftHandle},
		{55.5, DragLeftHandle},
		{56.5, DragRightHandle},
		{58, DragRightHandle},
	}
	for _, c := range cases {
		if got := m.HitTest(c.px); got != c.want {
			t.Errorf("Narrow selector: HitTest(%f) = %v, want %v", c.px, got, c.want)
		}
	}
}

// TestNudge 键盘微调
func TestNudge(t *testing.T) {
	m := newTestModel()
	pos := m.Nudge(DragLeftHandle, 0.1)
	if !near(pos.StartRatio, 0.1) || !near(pos.EndRatio, 1) {
		t.Errorf("Unexpected nudge result %+v", pos)
	}
	pos = m.Nudge(DragBody, 0.5)
	if !near(pos.EndRatio, 1) || !near(pos.StartRatio, 0.1) {
		t.Errorf("Body nudge at the right edge should not move, got %+v", pos)
	}
	if m.Dragging() {
		t.Error("Nudge should leave no drag in progress")
	}
}
