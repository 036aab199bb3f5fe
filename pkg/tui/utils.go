// Package tui 工具函数和辅助类型
package tui

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// formatPE 市盈率保留两位小数
func formatPE(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// formatIndex 指数带千位分隔符
func formatIndex(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return humanize.FormatFloat("#,###.##", v)
}

// formatPercent 百分比
func formatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// formatMarketCap 市值带千位分隔符
func formatMarketCap(v int64) string {
	return humanize.Comma(v)
}

// headerText 信息栏：十字线（或窗口最后一点）的日期与数值、窗口范围、财务快照
func (t *TUI) headerText() string {
	win := t.coord.Window()
	if win.Empty() {
		return "没有数据"
	}
	labeler := t.coord.Labeler()

	p, _, ok := t.highlighted()
	if !ok {
		p = win.Points[len(win.Points)-1]
	}

	first, last := win.Points[0], win.Points[len(win.Points)-1]
	line1 := fmt.Sprintf("%s  %s %s  %s %s  %s",
		t.colorize(selectedColor, labeler.DayMonthYear(p.Timestamp)),
		t.colorize(peColor, "PE"), formatPE(p.PE),
		t.colorize(indexColor, "Index"), formatIndex(p.Index),
		t.colorize(axisColor, fmt.Sprintf("%s ~ %s (%s 点)",
			labeler.DayMonthYear(first.Timestamp),
			labeler.DayMonthYear(last.Timestamp),
			humanize.Comma(int64(win.Len())))),
	)

	now, past := t.finance.Now, t.finance.Past
	line2 := fmt.Sprintf("%s  PE %s/%s  PB %s/%s  ROE %s/%s  ROA %s/%s  市值 %s/%s",
		t.colorize(axisColor, "当前/历史"),
		formatPE(now.PE), formatPE(past.PE),
		formatPE(now.PB), formatPE(past.PB),
		formatPercent(now.ROE), formatPercent(past.ROE),
		formatPercent(now.ROA), formatPercent(past.ROA),
		formatMarketCap(now.MarketCap), formatMarketCap(past.MarketCap),
	)

	return line1 + "\n" + line2
}

// maxLen 字符串切片中最长的长度
func maxLen(items []string) int {
	n := 0
	for _, s := range items {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// clampInt 把v钳制到[lo, hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
