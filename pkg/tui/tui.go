// Package tui 提供双坐标轴时间序列的终端用户界面
// 主图、范围选择器和周期按钮都由窗口协调器驱动，界面只负责绘制和转发输入
package tui

import (
	"github.com/Kevin-Rudy/gochart/pkg/core"
	"github.com/Kevin-Rudy/gochart/pkg/overlay"
	"github.com/Kevin-Rudy/gochart/pkg/ticks"
	"github.com/Kevin-Rudy/gochart/pkg/window"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Finance 信息栏显示的当前与历史财务快照
type Finance struct {
	Now  core.FinanceSnapshot
	Past core.FinanceSnapshot
}

// bgPoint 选择器背景曲线上的点，ratio为在全部数据中的比例位置
type bgPoint struct {
	ratio float64
	value float64
}

// chartGeometry 最近一次绘制时主图绘图区的位置
type chartGeometry struct {
	bodyX, bodyWidth, bodyHeight int
}

// TUI 主界面结构
type TUI struct {
	app      *tview.Application
	flex     *tview.Flex
	header   *tview.TextView
	chart    *chartView
	selector *selectorView
	periods  *periodBar
	help     *tview.TextView

	coord   *window.Coordinator
	finance Finance
	log     zerolog.Logger

	// 配置信息
	tuiConfig *Config

	// 选择器状态
	overlay    *overlay.Model
	background []bgPoint
	markers    []ticks.Marker

	// 界面状态
	crosshair int // 十字线所在的存储下标，-1表示未显示
	geometry  chartGeometry
	chartDrag chartDrag
	selDrag   selectorDrag
	throttle  *navThrottle

	// 纯文本输出，不带颜色标签
	plain bool

	// 测试模式标志
	testMode bool
	stopped  bool
}

// NewTUI 创建新的TUI实例
func NewTUI(coord *window.Coordinator, finance Finance, tuiConfig *Config, log zerolog.Logger) *TUI {
	t := newTUI(coord, finance, tuiConfig, log)
	t.app = tview.NewApplication()

	t.setupUI()
	t.setupKeyBindings()

	return t
}

// NewTUIForTest 创建用于测试的TUI实例（不初始化图形组件）
func NewTUIForTest(coord *window.Coordinator, finance Finance, tuiConfig *Config) *TUI {
	t := newTUI(coord, finance, tuiConfig, zerolog.Nop())
	t.testMode = true
	return t
}

// NewHeadless 创建只用于输出纯文本快照的实例
func NewHeadless(coord *window.Coordinator, finance Finance, tuiConfig *Config) *TUI {
	t := NewTUIForTest(coord, finance, tuiConfig)
	t.plain = true
	return t
}

func newTUI(coord *window.Coordinator, finance Finance, tuiConfig *Config, log zerolog.Logger) *TUI {
	t := &TUI{
		coord:     coord,
		finance:   finance,
		log:       log,
		tuiConfig: tuiConfig,
		overlay:   overlay.NewModel(overlay.Track{HandleWidth: tuiConfig.HandleWidth}),
		crosshair: -1,
		throttle:  newNavThrottle(tuiConfig.NavigationThreshold, tuiConfig.NavigationRest),
	}

	t.overlay.SetPosition(coord.Selector())
	t.buildBackground()
	coord.Subscribe(t)

	return t
}

// buildBackground 抽样生成选择器背景曲线（PE）和年份标记
func (t *TUI) buildBackground() {
	store := t.coord.Store()
	last := float64(store.Len() - 1)

	sampled := store.Stride(t.tuiConfig.BackgroundStride)
	t.background = make([]bgPoint, 0, len(sampled))
	for _, p := range sampled {
		ratio := 0.0
		if last > 0 {
			ratio = float64(store.IndexOfFirst(p.Timestamp)) / last
		}
		t.background = append(t.background, bgPoint{ratio: ratio, value: p.PE})
	}

	t.markers = t.coord.Labeler().YearMarkers(store.Timestamps())
}

// OnWindowChange 接收协调器的窗口变化通知
func (t *TUI) OnWindowChange(change core.WindowChange) {
	// 拖动中选择器自己持有位置，SetPosition会忽略回写
	t.overlay.SetPosition(change.Selector)

	if t.crosshair >= 0 && (t.crosshair < change.Window.Start || t.crosshair > change.Window.End) {
		t.crosshair = -1
	}

	t.log.Debug().
		Str("source", change.Source.String()).
		Int("points", change.Window.Len()).
		Msg("界面收到窗口变化")

	t.refreshText()
}

// refreshText 更新信息栏与周期按钮文本
func (t *TUI) refreshText() {
	if t.testMode || t.header == nil {
		return
	}
	t.header.SetText(t.headerText())
}

// Run 启动TUI界面
func (t *TUI) Run() error {
	return t.app.Run()
}

// Stop 停止TUI界面
func (t *TUI) Stop() {
	t.stopped = true
	if t.testMode || t.app == nil {
		return
	}
	t.app.Stop()
}
