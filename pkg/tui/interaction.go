// Package tui 交互控制模块
package tui

import (
	"math"
	"time"

	"github.com/Kevin-Rudy/gochart/pkg/core"
	"github.com/Kevin-Rudy/gochart/pkg/overlay"
	"github.com/Kevin-Rudy/gochart/pkg/window"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// navThrottle 导航事件频率控制
// 连续threshold次事件后休息rest时长，期间的事件被忽略
type navThrottle struct {
	counter   int
	threshold int
	rest      time.Duration
	resting   bool
	last      time.Time
	now       func() time.Time
}

func newNavThrottle(threshold int, rest time.Duration) *navThrottle {
	return &navThrottle{threshold: threshold, rest: rest, now: time.Now}
}

// allow 判断是否应该处理导航事件
func (n *navThrottle) allow() bool {
	// 如果正在休息中，检查是否休息够了
	if n.resting {
		if n.now().Sub(n.last) >= n.rest {
			n.resting = false
			n.counter = 0
			return true
		}
		return false
	}
	return true
}

// record 记录导航事件
func (n *navThrottle) record() {
	n.counter++
	n.last = n.now()

	// 检查是否达到阈值
	if n.counter >= n.threshold {
		n.resting = true
	}
}

// throttled 在频率允许时执行导航操作
func (t *TUI) throttled(action func()) {
	if t.throttle.allow() {
		action()
		t.throttle.record()
	}
}

// chartDrag 主图拖动平移状态
type chartDrag struct {
	active bool
	moved  bool
	lastX  int
}

// selectorDrag 选择器拖动状态
type selectorDrag struct {
	kind  overlay.DragKind
	lastX int
}

// setupKeyBindings 设置键盘绑定
func (t *TUI) setupKeyBindings() {
	t.app.SetInputCapture(t.handleKey)
}

// handleKey 处理按键，返回nil表示事件已处理
func (t *TUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlC:
		t.Stop()
		return nil
	case tcell.KeyLeft:
		t.throttled(func() { t.pan(-1) })
		return nil
	case tcell.KeyRight:
		t.throttled(func() { t.pan(1) })
		return nil
	case tcell.KeyEscape:
		t.cancelSelectorDrag()
		t.clearCrosshair()
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		switch {
		case r == 'q' || r == 'Q':
			t.Stop()
			return nil
		case r >= '1' && int(r-'1') < len(window.Presets):
			t.selectPreset(window.Presets[r-'1'])
			return nil
		}

		switch r {
		case '+', '=':
			t.throttled(func() { t.zoom(t.tuiConfig.ZoomFactor, 0.5) })
		case '-', '_':
			t.throttled(func() { t.zoom(1/t.tuiConfig.ZoomFactor, 0.5) })
		case '[':
			t.throttled(func() { t.nudge(overlay.DragLeftHandle, -1) })
		case ']':
			t.throttled(func() { t.nudge(overlay.DragLeftHandle, 1) })
		case '{':
			t.throttled(func() { t.nudge(overlay.DragRightHandle, -1) })
		case '}':
			t.throttled(func() { t.nudge(overlay.DragRightHandle, 1) })
		case '<':
			t.throttled(func() { t.nudge(overlay.DragBody, -1) })
		case '>':
			t.throttled(func() { t.nudge(overlay.DragBody, 1) })
		case ',':
			t.throttled(func() { t.moveCrosshair(-1) })
		case '.':
			t.throttled(func() { t.moveCrosshair(1) })
		default:
			return event
		}
		return nil
	}
	return event
}

// selectPreset 选择周期预设
func (t *TUI) selectPreset(p window.Preset) {
	if !t.coord.SelectPreset(p) {
		t.log.Info().Str("preset", p.String()).Msg("该周期内没有数据")
	}
}

// pan 按配置步长平移，direction为-1或1
func (t *TUI) pan(direction int) {
	step := int(math.Round(t.tuiConfig.PanStep * float64(t.coord.Window().Len())))
	if step < 1 {
		step = 1
	}
	t.coord.Pan(direction * step)
}

// zoom 以anchor为中心缩放
func (t *TUI) zoom(factor, anchor float64) {
	t.coord.ZoomBy(factor, anchor)
}

// nudge 键盘微调选择器，步长至少一个样本
func (t *TUI) nudge(kind overlay.DragKind, direction int) {
	if t.overlay.Dragging() {
		return
	}
	step := t.tuiConfig.NudgeRatio
	if n := t.coord.Store().Len(); n > 1 {
		step = math.Max(step, 1/float64(n-1))
	}
	pos := t.overlay.Nudge(kind, float64(direction)*step)
	t.coord.SelectByRatio(pos.StartRatio, pos.EndRatio, core.SourceSelectorDrag)
}

// handleChartMouse 处理主图上的鼠标事件，x、y为相对主图左上角的坐标
// 返回值：事件是否被处理，是否需要继续捕获鼠标
func (t *TUI) handleChartMouse(action tview.MouseAction, x, y int) (bool, bool) {
	bodyX, bodyWidth := t.geometry.bodyX, t.geometry.bodyWidth
	if bodyWidth <= 0 {
		return false, false
	}
	inBody := x >= bodyX && x < bodyX+bodyWidth && y >= 0 && y < t.geometry.bodyHeight
	ratio := xToRatio(x-bodyX, bodyWidth)

	switch action {
	case tview.MouseLeftDown:
		if !inBody {
			return false, false
		}
		t.chartDrag = chartDrag{active: true, lastX: x}
		return true, true

	case tview.MouseMove:
		if !t.chartDrag.active {
			return false, false
		}
		// 向右拖动看更早的数据
		dx := x - t.chartDrag.lastX
		samples := -int(math.Round(float64(dx) / float64(bodyWidth) * float64(t.coord.Window().Len())))
		if samples != 0 {
			t.coord.Pan(samples)
			t.chartDrag.lastX = x
			t.chartDrag.moved = true
		}
		return true, true

	case tview.MouseLeftUp:
		if !t.chartDrag.active {
			return false, false
		}
		t.chartDrag.active = false
		return true, false

	case tview.MouseLeftClick:
		moved := t.chartDrag.moved
		t.chartDrag.moved = false
		if !inBody || moved {
			return moved, false
		}
		t.setCrosshairAt(ratio)
		return true, false

	case tview.MouseScrollUp:
		if !inBody {
			return false, false
		}
		t.zoom(t.tuiConfig.ZoomFactor, ratio)
		return true, false

	case tview.MouseScrollDown:
		if !inBody {
			return false, false
		}
		t.zoom(1/t.tuiConfig.ZoomFactor, ratio)
		return true, false
	}
	return false, false
}

// handleSelectorMouse 处理选择器上的鼠标事件，x为相对选择器左侧的列
// 拖动过程中只移动显示位置，松开时提交并通知协调器一次
func (t *TUI) handleSelectorMouse(action tview.MouseAction, x int) (bool, bool) {
	switch action {
	case tview.MouseLeftDown:
		kind := t.overlay.HitTest(float64(x) + 0.5) // 取单元格中心
		if kind == overlay.DragNone {
			return false, false
		}
		t.overlay.Drag(kind, overlay.PhaseBegan, 0)
		t.selDrag = selectorDrag{kind: kind, lastX: x}
		return true, true

	case tview.MouseMove:
		if !t.overlay.Dragging() {
			return false, false
		}
		t.overlay.Drag(t.selDrag.kind, overlay.PhaseChanged, float64(x-t.selDrag.lastX))
		t.selDrag.lastX = x
		return true, true

	case tview.MouseLeftUp:
		if !t.overlay.Dragging() {
			return false, false
		}
		pos, notify := t.overlay.Drag(t.selDrag.kind, overlay.PhaseEnded, float64(x-t.selDrag.lastX))
		t.selDrag = selectorDrag{}
		if notify {
			t.coord.SelectByRatio(pos.StartRatio, pos.EndRatio, core.SourceSelectorDrag)
		}
		return true, false
	}
	return false, false
}

// cancelSelectorDrag 取消进行中的拖动，按当前位置提交
func (t *TUI) cancelSelectorDrag() {
	if !t.overlay.Dragging() {
		return
	}
	pos, notify := t.overlay.Drag(t.selDrag.kind, overlay.PhaseCancelled, 0)
	t.selDrag = selectorDrag{}
	if notify {
		t.coord.SelectByRatio(pos.StartRatio, pos.EndRatio, core.SourceSelectorDrag)
	}
}

// handlePeriodClick 处理周期按钮点击
func (t *TUI) handlePeriodClick(x int) bool {
	for _, span := range periodLayout() {
		if x >= span.start && x < span.end {
			t.selectPreset(span.preset)
			return true
		}
	}
	return false
}
