// Package tui 图表渲染模块
package tui

import (
	"fmt"
	"strings"

	"github.com/Kevin-Rudy/gochart/pkg/core"
)

// brailleCell 定义盲文字符的cell结构
type brailleCell struct {
	char  int
	color string
}

// 盲文点阵的映射关系 (2x4 grid)
var brailleDotMap = [4][2]int{
	{0b00000001, 0b00001000}, // (y:0, x:0), (y:0, x:1)
	{0b00000010, 0b00010000}, // (y:1, x:0), (y:1, x:1)
	{0b00000100, 0b00100000}, // (y:2, x:0), (y:2, x:1)
	{0b01000000, 0b10000000}, // (y:3, x:0), (y:3, x:1)
}

const (
	peColor        = "[yellow]"
	indexColor     = "[cyan]"
	axisColor      = "[gray]"
	crosshairColor = "[red]"
)

// colorize 为文本加上颜色标签，纯文本模式下原样返回
func (t *TUI) colorize(color, text string) string {
	if t.plain || color == "" {
		return text
	}
	return color + text + "[white]"
}

// newCanvas 创建 width x height 个字符的盲文画布，按 [x][y] 索引
func newCanvas(width, height int) [][]brailleCell {
	canvas := make([][]brailleCell, width)
	for i := range canvas {
		canvas[i] = make([]brailleCell, height)
	}
	return canvas
}

// validateChartSize 验证图表尺寸是否合理
func (t *TUI) validateChartSize(width, height int) string {
	if height < t.tuiConfig.MinChartHeight || width < t.tuiConfig.MinChartWidth {
		return "终端尺寸过小"
	}
	if width > t.tuiConfig.MaxChartSize || height > t.tuiConfig.MaxChartSize {
		return "终端尺寸过大"
	}
	return ""
}

// renderChart 绘制双坐标轴主图：左轴PE，右轴指数，底部为X轴刻度
func (t *TUI) renderChart(width, height int) string {
	// 检查图表尺寸是否合理
	if sizeErr := t.validateChartSize(width, height); sizeErr != "" {
		return sizeErr
	}

	win := t.coord.Window()
	bounds := t.coord.Bounds()
	if win.Empty() {
		return "没有数据"
	}

	// 1. 计算两侧Y轴标签及宽度
	labelCount := t.tuiConfig.YAxisLabelCount
	chartBodyHeight := height - 2 // 为X轴和刻度留出2行空间
	if chartBodyHeight < labelCount {
		labelCount = chartBodyHeight
	}
	leftLabels := axisLabels(bounds.YLeftMin, bounds.YLeftMax, labelCount, formatPE)
	rightLabels := axisLabels(bounds.YRightMin, bounds.YRightMax, labelCount, formatIndex)
	leftWidth := maxLen(leftLabels) + 2 // 标签后的空格和│
	rightWidth := maxLen(rightLabels) + 2

	chartWidth := width - leftWidth - rightWidth
	if chartBodyHeight <= 0 || chartWidth <= 0 {
		return "可绘制区域过小"
	}
	t.geometry = chartGeometry{bodyX: leftWidth, bodyWidth: chartWidth, bodyHeight: chartBodyHeight}

	// 2. 绘制两条曲线，PE在上层
	canvas := newCanvas(chartWidth, chartBodyHeight)
	xs := make([]int, len(win.Points))
	peValues := make([]float64, len(win.Points))
	indexValues := make([]float64, len(win.Points))
	for i, p := range win.Points {
		xs[i] = timestampToX(p.Timestamp, bounds.XMin, bounds.XMax, chartWidth*2-1)
		peValues[i] = p.PE
		indexValues[i] = p.Index
	}
	plotSeries(canvas, xs, indexValues, bounds.YRightMin, bounds.YRightMax, indexColor)
	plotSeries(canvas, xs, peValues, bounds.YLeftMin, bounds.YLeftMax, peColor)

	crossCol := -1
	if p, _, ok := t.highlighted(); ok {
		crossCol = timestampToX(p.Timestamp, bounds.XMin, bounds.XMax, chartWidth*2-1) / 2
	}

	// 3. Y轴标签所在行
	leftRows := labelRows(leftLabels, chartBodyHeight)
	rightRows := labelRows(rightLabels, chartBodyHeight)

	lines := make([]string, 0, height)
	for row := 0; row < chartBodyHeight; row++ {
		var sb strings.Builder
		sb.WriteString(t.colorize(peColor, fmt.Sprintf("%*s", leftWidth-2, leftRows[row])))
		sb.WriteString(" ")
		sb.WriteString(t.colorize(axisColor, "│"))

		for col := 0; col < chartWidth; col++ {
			cell := canvas[col][row]
			switch {
			case cell.char != 0:
				sb.WriteString(t.colorize(cell.color, string(rune(0x2800+cell.char))))
			case col == crossCol:
				sb.WriteString(t.colorize(crosshairColor, "│"))
			default:
				sb.WriteString(" ")
			}
		}

		sb.WriteString(t.colorize(axisColor, "│"))
		sb.WriteString(" ")
		sb.WriteString(t.colorize(indexColor, rightRows[row]))
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	// 4. X轴与刻度
	lines = append(lines, t.colorize(axisColor, axisLine(t.coord.Ticks(), leftWidth, chartWidth)))
	lines = append(lines, t.colorize(axisColor, tickRow(t.coord.Ticks(), leftWidth, chartWidth)))

	// 保护性检查：确保输出不会超过可用高度
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// axisLabels 从最大值到最小值均匀生成n个标签
func axisLabels(minVal, maxVal float64, n int, format func(float64) string) []string {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []string{format(maxVal)}
	}
	labels := make([]string, n)
	valueRange := maxVal - minVal
	for i := 0; i < n; i++ {
		normalized := float64(i) / float64(n-1) // 0.0 到 1.0
		labels[i] = format(maxVal - normalized*valueRange)
	}
	return labels
}

// labelRows 把标签均匀分配到各行，没有标签的行为空串
func labelRows(labels []string, rows int) []string {
	out := make([]string, rows)
	if len(labels) == 1 {
		out[0] = labels[0]
		return out
	}
	for i, label := range labels {
		row := int(float64(i) / float64(len(labels)-1) * float64(rows-1))
		out[row] = label
	}
	return out
}

// axisLine X轴线，每个刻度位置画一个刻度线，与tickRow的标签中心对齐
func axisLine(ticks []core.Tick, offset, width int) string {
	body := []rune(strings.Repeat("─", width))
	for _, tk := range ticks {
		col := int(tk.Position * float64(width-1))
		if col >= 0 && col < width {
			body[col] = '┴'
		}
	}
	return fmt.Sprintf("%*s└%s┘", offset-1, "", string(body))
}

// tickRow 把刻度标签居中放在各自位置，重叠的标签被跳过
func tickRow(ticks []core.Tick, offset, width int) string {
	row := []byte(strings.Repeat(" ", offset+width+1))
	nextFree := offset
	for _, tk := range ticks {
		label := tk.Label
		if len(label) > width {
			continue
		}
		center := offset + int(tk.Position*float64(width-1))
		start := center - len(label)/2
		if start < offset {
			start = offset
		}
		if start+len(label) > offset+width {
			start = offset + width - len(label)
		}
		if start < nextFree {
			continue
		}
		copy(row[start:], label)
		nextFree = start + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}

// valueToY 将数值映射为高分辨率Y坐标，0为顶部
func valueToY(value, minVal, maxVal float64, pixels int) int {
	valueRange := maxVal - minVal
	if valueRange == 0 {
		return pixels / 2
	}
	normalized := (value - minVal) / valueRange
	y := int((1.0 - normalized) * float64(pixels-1))
	if y < 0 {
		y = 0
	} else if y >= pixels {
		y = pixels - 1
	}
	return y
}

// plotSeries 在画布上按顺序连接各点
func plotSeries(canvas [][]brailleCell, xs []int, values []float64, minVal, maxVal float64, color string) {
	if len(canvas) == 0 || len(canvas[0]) == 0 {
		return
	}
	pixels := len(canvas[0]) * 4

	lastX, lastY := -1, -1
	for i, x := range xs {
		y := valueToY(values[i], minVal, maxVal, pixels)
		if lastX == -1 {
			// 线条的第一个点直接标记
			setDot(canvas, x, y, color)
		} else {
			drawBrailleLine(canvas, lastX, lastY, x, y, color)
		}
		lastX, lastY = x, y
	}
}

// setDot 点亮一个子像素
func setDot(canvas [][]brailleCell, x, y int, color string) {
	canvasX := x / 2
	canvasY := y / 4
	if x < 0 || y < 0 || canvasX >= len(canvas) || canvasY >= len(canvas[0]) {
		return
	}
	canvas[canvasX][canvasY].char |= brailleDotMap[y%4][x%2]
	canvas[canvasX][canvasY].color = color
}

// drawBrailleLine 使用布雷森汉姆算法在盲文画布上绘制线段
func drawBrailleLine(canvas [][]brailleCell, x1, y1, x2, y2 int, color string) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		setDot(canvas, x, y, color)

		// 检查是否到达终点
		if x == x2 && y == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
