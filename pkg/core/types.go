// Package core 定义了图表窗口同步所需的核心数据结构
// 这些类型保证了窗口协调器与具体渲染/输入层的完全解耦
package core

import (
	"errors"
	"time"
)

// ErrEmptyDataset 数据集为空时无法进行任何窗口计算
var ErrEmptyDataset = errors.New("数据集为空")

// DataPoint 表示一个采样点
type DataPoint struct {
	Timestamp int64   // Unix秒，存储内唯一且递增
	PE        float64 // 市盈率，左轴
	Index     float64 // 市场指数，右轴
	LNST      int64   // 净利润，仅透传
	Time      string  // 原始时间文本，仅透传
}

// At 返回数据点对应的时间
func (p DataPoint) At(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(p.Timestamp, 0).In(loc)
}

// FinanceSnapshot 财务指标快照，窗口逻辑不使用，只用于信息栏展示
type FinanceSnapshot struct {
	PB        float64
	PE        float64
	ROA       float64
	ROE       float64
	MarketCap int64
}

// AxisBounds 当前窗口的坐标轴范围
type AxisBounds struct {
	YLeftMin  float64 // PE
	YLeftMax  float64
	YRightMin float64 // Index
	YRightMax float64
	XMin      int64 // 时间戳
	XMax      int64
}

// 坐标轴缓冲比例：下方5%，上方10%
const (
	LowerPaddingRatio = 0.05
	UpperPaddingRatio = 0.10
)

// PadRange 按非对称缓冲扩展原始范围
// 原始范围为0时先扩展为单位范围，避免极值贴边
func PadRange(minVal, maxVal float64) (float64, float64) {
	span := maxVal - minVal
	if span == 0 {
		minVal -= 0.5
		maxVal += 0.5
		span = 1
	}
	return minVal - span*LowerPaddingRatio, maxVal + span*UpperPaddingRatio
}

// ComputeBounds 根据窗口内的数据点计算坐标轴范围
// 空切片返回零值和false
func ComputeBounds(points []DataPoint) (AxisBounds, bool) {
	if len(points) == 0 {
		return AxisBounds{}, false
	}

	first := points[0]
	peMin, peMax := first.PE, first.PE
	idxMin, idxMax := first.Index, first.Index
	for _, p := range points[1:] {
		if p.PE < peMin {
			peMin = p.PE
		}
		if p.PE > peMax {
			peMax = p.PE
		}
		if p.Index < idxMin {
			idxMin = p.Index
		}
		if p.Index > idxMax {
			idxMax = p.Index
		}
	}

	var b AxisBounds
	b.YLeftMin, b.YLeftMax = PadRange(peMin, peMax)
	b.YRightMin, b.YRightMax = PadRange(idxMin, idxMax)
	b.XMin = first.Timestamp
	b.XMax = points[len(points)-1].Timestamp
	return b, true
}

// Tick 坐标轴刻度
type Tick struct {
	Position  float64 // X轴上的比例位置 [0,1]
	Label     string
	Timestamp int64
}

// SelectorPosition 范围选择器在整个数据范围上的归一化位置
type SelectorPosition struct {
	StartRatio float64
	EndRatio   float64
}

// Width 返回选择器宽度比例
func (s SelectorPosition) Width() float64 {
	return s.EndRatio - s.StartRatio
}

// UpdateSource 标记一次窗口变化的来源，供协作方避免反馈循环
type UpdateSource int

const (
	SourceProgrammatic    UpdateSource = iota // 程序内部调用
	SourceExternalGesture                     // 主图平移/缩放手势
	SourcePresetButton                        // 周期按钮
	SourceSelectorDrag                        // 范围选择器拖动
)

// String 返回来源名称
func (s UpdateSource) String() string {
	switch s {
	case SourceExternalGesture:
		return "gesture"
	case SourcePresetButton:
		return "preset"
	case SourceSelectorDrag:
		return "selector"
	default:
		return "programmatic"
	}
}

// VisibleWindow 当前可见窗口，[Start, End] 为存储中的闭区间下标
type VisibleWindow struct {
	Start  int
	End    int
	Points []DataPoint
}

// Len 返回窗口内数据点数
func (w VisibleWindow) Len() int {
	return len(w.Points)
}

// Empty 窗口是否为空
func (w VisibleWindow) Empty() bool {
	return len(w.Points) == 0
}

// Span 返回窗口覆盖的时间长度
func (w VisibleWindow) Span() time.Duration {
	if len(w.Points) < 2 {
		return 0
	}
	return time.Duration(w.Points[len(w.Points)-1].Timestamp-w.Points[0].Timestamp) * time.Second
}

// WindowChange 一次窗口变化的汇总通知
type WindowChange struct {
	Window   VisibleWindow
	Bounds   AxisBounds
	Ticks    []Tick
	Selector SelectorPosition
	Source   UpdateSource
}

// WindowListener 接收窗口变化通知
// 任何渲染层都应实现该接口，而不是直接读取协调器状态
type WindowListener interface {
	OnWindowChange(change WindowChange)
}

// ListenerFunc 把普通函数适配为WindowListener
type ListenerFunc func(change WindowChange)

// OnWindowChange 实现WindowListener
func (f ListenerFunc) OnWindowChange(change WindowChange) {
	f(change)
}
