// Package tui 时间管理模块
package tui

import (
	"github.com/Kevin-Rudy/gochart/pkg/core"
)

// timestampToX 将时间戳转换为X坐标，窗口两端分别对应0和width
func timestampToX(timestamp, windowStart, windowEnd int64, width int) int {
	windowDuration := windowEnd - windowStart
	if windowDuration <= 0 {
		return 0
	}

	offset := timestamp - windowStart
	if offset < 0 {
		return -1 // 在窗口左边界外
	}
	if offset > windowDuration {
		return width + 1 // 在窗口右边界外
	}

	return int(float64(offset) / float64(windowDuration) * float64(width))
}

// xToRatio 将绘图区内的列转换为[0,1]比例
func xToRatio(x, width int) float64 {
	if width <= 1 {
		return 0
	}
	ratio := float64(x) / float64(width-1)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// highlighted 返回十字线所在的数据点
func (t *TUI) highlighted() (core.DataPoint, int, bool) {
	if t.crosshair < 0 {
		return core.DataPoint{}, -1, false
	}
	return t.coord.Store().At(t.crosshair), t.crosshair, true
}

// setCrosshairAt 把十字线放在X轴比例位置最近的数据点上
func (t *TUI) setCrosshairAt(ratio float64) {
	_, t.crosshair = t.coord.HighlightAt(ratio)
	t.refreshText()
}

// moveCrosshair 在窗口内按样本移动十字线
// 尚未显示时，向左从窗口末端开始，向右从窗口起点开始
func (t *TUI) moveCrosshair(delta int) {
	win := t.coord.Window()
	switch {
	case t.crosshair < 0 && delta < 0:
		t.crosshair = win.End
	case t.crosshair < 0:
		t.crosshair = win.Start
	default:
		t.crosshair += delta
	}
	t.crosshair = clampInt(t.crosshair, win.Start, win.End)
	t.refreshText()
}

// clearCrosshair 隐藏十字线
func (t *TUI) clearCrosshair() {
	t.crosshair = -1
	t.refreshText()
}
