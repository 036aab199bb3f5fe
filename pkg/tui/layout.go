// Package tui 布局管理模块
package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpLine = "1-8 周期  ←/→ 平移  +/- 缩放  [ ] { } < > 选择器  , . 十字线  q 退出"

// chartView 主图，绘制时按当前尺寸重新渲染
type chartView struct {
	*tview.Box
	tui *TUI
}

// Draw 绘制主图
func (v *chartView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	drawLines(screen, v.tui.renderChart(width, height), x, y, width, height)
}

// MouseHandler 点击放置十字线，拖动平移，滚轮缩放
func (v *chartView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !v.InRect(mx, my) && !v.tui.chartDrag.active {
			return false, nil
		}
		x, y, _, _ := v.GetInnerRect()
		consumed, captured := v.tui.handleChartMouse(action, mx-x, my-y)
		if captured {
			capture = v
		}
		return consumed, capture
	})
}

// selectorView 范围选择器
type selectorView struct {
	*tview.Box
	tui *TUI
}

// Draw 绘制选择器
func (v *selectorView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	drawLines(screen, v.tui.renderSelector(width, height), x, y, width, height)
}

// MouseHandler 拖动把手或整个选择框
func (v *selectorView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !v.InRect(mx, my) && !v.tui.overlay.Dragging() {
			return false, nil
		}
		x, _, _, _ := v.GetInnerRect()
		consumed, captured := v.tui.handleSelectorMouse(action, mx-x)
		if captured {
			capture = v
		}
		return consumed, capture
	})
}

// periodBar 周期按钮
type periodBar struct {
	*tview.Box
	tui *TUI
}

// Draw 绘制周期按钮
func (v *periodBar) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	drawLines(screen, v.tui.renderPeriodBar(), x, y, width, height)
}

// MouseHandler 点击按钮选择周期
func (v *periodBar) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if action != tview.MouseLeftClick || !v.InRect(mx, my) {
			return false, nil
		}
		x, _, _, _ := v.GetInnerRect()
		return v.tui.handlePeriodClick(mx - x), nil
	})
}

// setupUI 设置用户界面布局
func (t *TUI) setupUI() {
	t.header = tview.NewTextView()
	t.header.SetDynamicColors(true)
	t.header.SetWrap(false)
	t.header.SetText(t.headerText())

	t.chart = &chartView{Box: tview.NewBox(), tui: t}
	t.selector = &selectorView{Box: tview.NewBox(), tui: t}
	t.periods = &periodBar{Box: tview.NewBox(), tui: t}

	t.help = tview.NewTextView()
	t.help.SetDynamicColors(true)
	t.help.SetText("[gray]" + tview.Escape(helpLine) + "[white]")

	// 创建主垂直布局
	t.flex = tview.NewFlex()
	t.flex.SetDirection(tview.FlexRow)
	t.flex.AddItem(t.header, 2, 0, false)
	t.flex.AddItem(t.chart, 0, 1, false)
	t.flex.AddItem(t.selector, t.tuiConfig.SelectorHeight, 0, false)
	t.flex.AddItem(t.periods, 1, 0, false)
	t.flex.AddItem(t.help, 1, 0, false)

	t.app.SetRoot(t.flex, true)
	t.app.EnableMouse(true)
}

// Render 按给定终端尺寸输出完整界面的文本快照
func (t *TUI) Render(width, height int) string {
	selectorHeight := t.tuiConfig.SelectorHeight
	chartHeight := height - 2 - selectorHeight - 1
	if chartHeight < t.tuiConfig.MinChartHeight {
		chartHeight = t.tuiConfig.MinChartHeight
	}

	parts := []string{
		t.headerText(),
		t.renderChart(width, chartHeight),
		t.renderSelector(width, selectorHeight),
		t.renderPeriodBar(),
	}
	return strings.Join(parts, "\n")
}

// drawLines 按行输出带颜色标签的文本
func drawLines(screen tcell.Screen, text string, x, y, width, height int) {
	for i, line := range strings.Split(text, "\n") {
		if i >= height {
			break
		}
		tview.Print(screen, line, x, y+i, width, tview.AlignLeft, tcell.ColorWhite)
	}
}
