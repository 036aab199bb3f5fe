package tui

import (
	"math"
	"strings"

	"github.com/Kevin-Rudy/gochart/pkg/window"
)

const (
	handleColor   = "[yellow]"
	selectedColor = "[white]"
	dimColor      = "[gray]"

	// 拖动中的样式
	activeHandleColor   = "[orange]"
	activeSelectedColor = "[aqua]"
)

const (
	handleRune       = "┃"
	activeHandleRune = "║"
)

// renderSelector 绘制范围选择器：全部数据的抽样曲线、选择框两侧把手和年份标记
// 每次绘制都按当前宽度重建轨道几何，位置来自已提交的比例
// 拖动过程中把手和选中区域换成高亮样式，纯文本模式下把手换成双线
func (t *TUI) renderSelector(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	t.overlay.Resize(float64(width))
	track := t.overlay.Track()

	bodyHeight := height - 1 // 最后一行为年份标记
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	canvas := newCanvas(width, bodyHeight)
	if len(t.background) > 0 {
		minVal, maxVal := t.background[0].value, t.background[0].value
		xs := make([]int, len(t.background))
		values := make([]float64, len(t.background))
		for i, p := range t.background {
			xs[i] = clampInt(int(track.PixelFor(p.ratio)*2), 0, width*2-1)
			values[i] = p.value
			minVal = math.Min(minVal, p.value)
			maxVal = math.Max(maxVal, p.value)
		}
		plotSeries(canvas, xs, values, minVal, maxVal, "")
	}

	left, frameWidth := t.overlay.Frame()
	leftCol := clampInt(int(math.Floor(left)), 0, width-1)
	rightCol := clampInt(int(math.Floor(left+frameWidth)), 0, width-1)

	handle, handleText, inside := handleColor, handleRune, selectedColor
	if t.overlay.Dragging() {
		handle, handleText, inside = activeHandleColor, activeHandleRune, activeSelectedColor
	}

	lines := make([]string, 0, height)
	for row := 0; row < bodyHeight; row++ {
		var sb strings.Builder
		for col := 0; col < width; col++ {
			cell := canvas[col][row]
			switch {
			case col == leftCol || col == rightCol:
				sb.WriteString(t.colorize(handle, handleText))
			case cell.char != 0:
				color := dimColor
				if col > leftCol && col < rightCol {
					color = inside
				}
				sb.WriteString(t.colorize(color, string(rune(0x2800+cell.char))))
			default:
				sb.WriteString(" ")
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	if height > 1 {
		lines = append(lines, t.colorize(dimColor, t.markerRow(track.PixelFor, width)))
	}
	return strings.Join(lines, "\n")
}

// markerRow 在偶数年份首个样本的位置写出年份
func (t *TUI) markerRow(pixelFor func(float64) float64, width int) string {
	row := []byte(strings.Repeat(" ", width))
	last := float64(t.coord.Store().Len() - 1)
	nextFree := 0
	for _, m := range t.markers {
		ratio := 0.0
		if last > 0 {
			ratio = float64(m.Index) / last
		}
		start := int(pixelFor(ratio))
		if start < nextFree || start+len(m.Year) > width {
			continue
		}
		copy(row[start:], m.Year)
		nextFree = start + len(m.Year) + 1
	}
	return strings.TrimRight(string(row), " ")
}

// periodSpan 周期按钮占据的列区间 [start, end)
type periodSpan struct {
	start, end int
	preset     window.Preset
}

// periodLayout 计算各周期按钮的位置，按钮之间空一列
func periodLayout() []periodSpan {
	spans := make([]periodSpan, 0, len(window.Presets))
	x := 0
	for _, p := range window.Presets {
		w := len(p.String()) + 2
		spans = append(spans, periodSpan{start: x, end: x + w, preset: p})
		x += w + 1
	}
	return spans
}

// renderPeriodBar 绘制周期按钮，当前预设高亮
func (t *TUI) renderPeriodBar() string {
	active, ok := t.coord.ActivePreset()
	labels := make([]string, 0, len(window.Presets))
	for _, p := range window.Presets {
		switch {
		case ok && p == active && t.plain:
			labels = append(labels, "<"+p.String()+">")
		case ok && p == active:
			labels = append(labels, "[black:yellow] "+p.String()+" [-:-]")
		default:
			labels = append(labels, t.colorize(selectedColor, " "+p.String()+" "))
		}
	}
	return strings.Join(labels, " ")
}
