// Package window 维护当前可见窗口，并让主图、范围选择器与刻度保持同步
//
// 所有请求（周期预设、显式时间范围、选择器比例、缩放手势）最终都汇聚到
// SetWindow：空结果被忽略并保留上一个窗口，非空结果会重新计算坐标轴范围、
// 刻度和选择器位置，然后只发出一次变化通知。
// 协调器不加锁，所有调用都应在同一个事件循环中进行。
package window

import (
	"math"
	"time"

	"github.com/Kevin-Rudy/gochart/pkg/core"
	"github.com/Kevin-Rudy/gochart/pkg/overlay"
	"github.com/Kevin-Rudy/gochart/pkg/series"
	"github.com/Kevin-Rudy/gochart/pkg/ticks"
	"github.com/rs/zerolog"
)

// DefaultTickCount 默认X轴刻度数
const DefaultTickCount = 9

// Clock 当前时间来源，测试中可替换
type Clock func() time.Time

// Option 协调器配置选项
type Option func(*Coordinator)

// WithClock 设置时间来源
func WithClock(clock Clock) Option {
	return func(c *Coordinator) {
		c.clock = clock
	}
}

// WithLabeler 设置刻度标签生成器
func WithLabeler(l *ticks.Labeler) Option {
	return func(c *Coordinator) {
		c.labeler = l
	}
}

// WithTickCount 设置X轴刻度数
func WithTickCount(n int) Option {
	return func(c *Coordinator) {
		c.tickCount = n
	}
}

// WithLabelStyle 设置刻度标签样式
func WithLabelStyle(style ticks.Style) Option {
	return func(c *Coordinator) {
		c.style = style
	}
}

// WithLogger 设置日志
func WithLogger(log zerolog.Logger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// Coordinator 窗口协调器
type Coordinator struct {
	store     *series.Store
	labeler   *ticks.Labeler
	clock     Clock
	tickCount int
	style     ticks.Style
	log       zerolog.Logger

	window    core.VisibleWindow
	bounds    core.AxisBounds
	ticks     []core.Tick
	selector  core.SelectorPosition
	preset    Preset
	hasPreset bool

	listeners []core.WindowListener
}

// New 创建协调器，初始窗口为全部数据
func New(store *series.Store, opts ...Option) (*Coordinator, error) {
	if store == nil || store.Empty() {
		return nil, core.ErrEmptyDataset
	}

	c := &Coordinator{
		store:     store,
		labeler:   ticks.NewLabeler(nil),
		clock:     time.Now,
		tickCount: DefaultTickCount,
		style:     ticks.StyleContext,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tickCount <= 0 {
		c.tickCount = DefaultTickCount
	}

	c.setWindow(0, store.Len()-1, core.SourceProgrammatic, PresetAll, true)
	return c, nil
}

// Subscribe 注册窗口变化监听者
func (c *Coordinator) Subscribe(l core.WindowListener) {
	c.listeners = append(c.listeners, l)
}

// Store 底层数据
func (c *Coordinator) Store() *series.Store {
	return c.store
}

// Labeler 刻度标签生成器
func (c *Coordinator) Labeler() *ticks.Labeler {
	return c.labeler
}

// Window 当前窗口
func (c *Coordinator) Window() core.VisibleWindow {
	return c.window
}

// Bounds 当前坐标轴范围
func (c *Coordinator) Bounds() core.AxisBounds {
	return c.bounds
}

// Ticks 当前X轴刻度
func (c *Coordinator) Ticks() []core.Tick {
	return c.ticks
}

// Selector 当前选择器位置
func (c *Coordinator) Selector() core.SelectorPosition {
	return c.selector
}

// ActivePreset 当前窗口若由周期预设产生，返回该预设
func (c *Coordinator) ActivePreset() (Preset, bool) {
	return c.preset, c.hasPreset
}

// Change 当前状态的快照
func (c *Coordinator) Change() core.WindowChange {
	return core.WindowChange{
		Window:   c.window,
		Bounds:   c.bounds,
		Ticks:    c.ticks,
		Selector: c.selector,
		Source:   core.SourceProgrammatic,
	}
}

// SelectPreset 以协调器的时钟选择周期预设
func (c *Coordinator) SelectPreset(p Preset) bool {
	return c.SelectPresetAt(p, c.clock())
}

// SelectPresetAt 以给定的当前时间选择周期预设，过滤 timestamp >= cutoff
func (c *Coordinator) SelectPresetAt(p Preset, now time.Time) bool {
	cutoff, bounded := p.Cutoff(now)
	if !bounded {
		return c.setWindow(0, c.store.Len()-1, core.SourcePresetButton, p, true)
	}

	first, last, ok := c.store.Since(cutoff)
	if !ok {
		c.log.Debug().Str("preset", p.String()).Int64("cutoff", cutoff).Msg("预设范围内没有数据，保留当前窗口")
		return false
	}
	return c.setWindow(first, last, core.SourcePresetButton, p, true)
}

// SelectExplicitRange 选择闭区间 [start, end] 内的数据
func (c *Coordinator) SelectExplicitRange(start, end int64, src core.UpdateSource) bool {
	first, last, ok := c.store.RangeBetween(start, end)
	if !ok {
		c.log.Debug().Int64("start", start).Int64("end", end).Msg("时间范围内没有数据，保留当前窗口")
		return false
	}
	return c.SetWindow(first, last, src)
}

// SelectByRatio 按选择器比例选择数据
func (c *Coordinator) SelectByRatio(startRatio, endRatio float64, src core.UpdateSource) bool {
	first, last := overlay.IndexRangeFor(startRatio, endRatio, c.store.Len())
	return c.SetWindow(first, last, src)
}

// ZoomToVisible 缩放手势结束后，按渲染层给出的可见X范围选择数据
func (c *Coordinator) ZoomToVisible(lowX, highX int64) bool {
	return c.SelectExplicitRange(lowX, highX, core.SourceExternalGesture)
}

// Pan 保持窗口长度平移samples个样本，正数向右
func (c *Coordinator) Pan(samples int) bool {
	width := c.window.End - c.window.Start
	maxStart := c.store.Len() - 1 - width
	start := c.window.Start + samples
	if start < 0 {
		start = 0
	}
	if start > maxStart {
		start = maxStart
	}
	if start == c.window.Start {
		return false
	}
	return c.SetWindow(start, start+width, core.SourceExternalGesture)
}

// ZoomBy 以窗口内anchor比例处为中心缩放，factor>1放大（样本更少）
// 放大后至少保留两个样本
func (c *Coordinator) ZoomBy(factor, anchor float64) bool {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}
	total := c.store.Len()
	count := c.window.Len()

	newCount := int(math.Round(float64(count) / factor))
	minCount := 2
	if total < minCount {
		minCount = total
	}
	if newCount < minCount {
		newCount = minCount
	}
	if newCount > total {
		newCount = total
	}
	if newCount == count {
		return false
	}

	anchor = overlay.ClampRatio(anchor)
	pivot := float64(c.window.Start) + anchor*float64(count-1)
	start := int(math.Round(pivot - anchor*float64(newCount-1)))
	if start < 0 {
		start = 0
	}
	if start > total-newCount {
		start = total - newCount
	}
	return c.SetWindow(start, start+newCount-1, core.SourceExternalGesture)
}

// Highlight 返回当前窗口内最接近ts的数据点及其在存储中的下标
func (c *Coordinator) Highlight(ts int64) (core.DataPoint, int) {
	i := c.store.Nearest(ts)
	if i < c.window.Start {
		i = c.window.Start
	}
	if i > c.window.End {
		i = c.window.End
	}
	return c.store.At(i), i
}

// HighlightAt 按X轴比例位置查找十字线对应的数据点
func (c *Coordinator) HighlightAt(ratio float64) (core.DataPoint, int) {
	ratio = overlay.ClampRatio(ratio)
	span := float64(c.bounds.XMax - c.bounds.XMin)
	ts := c.bounds.XMin + int64(math.Round(ratio*span))
	return c.Highlight(ts)
}

// SetWindow 把闭区间 [start, end] 设为当前窗口
// start > end 表示空结果，调用不产生任何变化；越界下标会被钳制
func (c *Coordinator) SetWindow(start, end int, src core.UpdateSource) bool {
	return c.setWindow(start, end, src, PresetAll, false)
}

func (c *Coordinator) setWindow(start, end int, src core.UpdateSource, p Preset, fromPreset bool) bool {
	total := c.store.Len()
	if start > end || end < 0 || start > total-1 {
		c.log.Debug().Int("start", start).Int("end", end).Str("source", src.String()).Msg("空窗口，忽略更新")
		return false
	}
	if start < 0 {
		start = 0
	}
	if end > total-1 {
		end = total - 1
	}

	points := c.store.Slice(start, end)
	bounds, ok := core.ComputeBounds(points)
	if !ok {
		return false
	}

	c.window = core.VisibleWindow{Start: start, End: end, Points: points}
	c.bounds = bounds
	c.ticks = c.computeTicks(points, bounds)
	c.selector = overlay.RatioRangeFor(start, end, total)
	c.preset, c.hasPreset = p, fromPreset

	c.log.Debug().
		Str("source", src.String()).
		Int("start", start).
		Int("end", end).
		Int("points", len(points)).
		Msg("窗口更新")

	change := core.WindowChange{
		Window:   c.window,
		Bounds:   c.bounds,
		Ticks:    c.ticks,
		Selector: c.selector,
		Source:   src,
	}
	for _, l := range c.listeners {
		l.OnWindowChange(change)
	}
	return true
}

// computeTicks 在窗口内均匀选取刻度并生成标签
func (c *Coordinator) computeTicks(points []core.DataPoint, bounds core.AxisBounds) []core.Tick {
	indices := ticks.PickEvenly(len(points), c.tickCount)
	stamps := make([]int64, len(indices))
	for i, idx := range indices {
		stamps[i] = points[idx].Timestamp
	}
	labels := c.labeler.Labels(stamps, c.style)

	span := float64(bounds.XMax - bounds.XMin)
	out := make([]core.Tick, len(stamps))
	for i, ts := range stamps {
		pos := 0.0
		if span > 0 {
			pos = float64(ts-bounds.XMin) / span
		}
		out[i] = core.Tick{Position: pos, Label: labels[i], Timestamp: ts}
	}
	return out
}
