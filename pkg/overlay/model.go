package overlay

import (
	"github.com/Kevin-Rudy/gochart/pkg/core"
)

// DragKind 拖动对象
type DragKind int

const (
	DragNone        DragKind = iota
	DragLeftHandle           // 左把手，调整起点
	DragRightHandle          // 右把手，调整终点
	DragBody                 // 整体平移，保持宽度
)

// Phase 拖动阶段
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

// Model 范围选择器状态
// 已提交的位置保存在比例空间，与像素几何无关，轨道尺寸变化时据此重建
type Model struct {
	track     Track
	committed core.SelectorPosition
	live      core.SelectorPosition
	active    DragKind
}

// NewModel 创建覆盖全部数据的选择器
func NewModel(track Track) *Model {
	full := core.SelectorPosition{StartRatio: 0, EndRatio: 1}
	return &Model{track: track, committed: full, live: full}
}

// Track 当前轨道几何
func (m *Model) Track() Track {
	return m.track
}

// Committed 最近一次提交的位置
func (m *Model) Committed() core.SelectorPosition {
	return m.committed
}

// Live 当前显示的位置，拖动过程中与提交位置不同
func (m *Model) Live() core.SelectorPosition {
	return m.live
}

// Active 正在进行的拖动
func (m *Model) Active() DragKind {
	return m.active
}

// Dragging 是否处于拖动中
func (m *Model) Dragging() bool {
	return m.active != DragNone
}

// Resize 更新轨道宽度，位置从提交的比例重建
func (m *Model) Resize(width float64) {
	m.track.Width = width
	if !m.Dragging() {
		m.live = m.committed
	}
}

// SetPosition 程序化设置位置，拖动过程中忽略
// 返回值表示是否被接受
func (m *Model) SetPosition(pos core.SelectorPosition) bool {
	if m.Dragging() {
		return false
	}
	pos = normalize(pos)
	m.committed = pos
	m.live = pos
	return true
}

// Frame 返回当前显示位置的像素区间 (x, width)
func (m *Model) Frame() (x, width float64) {
	left := m.track.PixelFor(m.live.StartRatio)
	right := m.track.PixelFor(m.live.EndRatio)
	return left, right - left
}

// HitTest 判断在像素x处按下时应开始哪种拖动
// 把手的命中范围为把手宽度的一半，至少1像素
// 两个把手重叠时见overlappedHandle
func (m *Model) HitTest(px float64) DragKind {
	left, width := m.Frame()
	right := left + width

	grab := m.track.HandleWidth / 2
	if grab < 1 {
		grab = 1
	}

	dl := px - left
	if dl < 0 {
		dl = -dl
	}
	dr := px - right
	if dr < 0 {
		dr = -dr
	}

	switch {
	case dl <= grab && dr <= grab:
		return m.overlappedHandle(px, left, right, dl, dr)
	case dl <= grab:
		return DragLeftHandle
	case dr <= grab:
		return DragRightHandle
	case px > left && px < right:
		return DragBody
	}
	return DragNone
}

// overlappedHandle 两个把手都在命中范围内时选择一个
// 贴在轨道端点的选择器只能朝另一侧展开，否则按按下位置在哪一侧决定
func (m *Model) overlappedHandle(px, left, right, dl, dr float64) DragKind {
	switch {
	case m.live.StartRatio <= 0 && m.live.EndRatio <= m.live.StartRatio:
		return DragRightHandle
	case m.live.EndRatio >= 1 && m.live.StartRatio >= m.live.EndRatio:
		return DragLeftHandle
	case px < left:
		return DragLeftHandle
	case px > right:
		return DragRightHandle
	case dl <= dr:
		return DragLeftHandle
	}
	return DragRightHandle
}

// Drag 处理一次拖动事件，dx为相对上一事件的像素位移
// Changed阶段只移动显示位置；Ended和Cancelled都会提交并返回true，
// 调用方据此发出唯一一次范围变化通知
func (m *Model) Drag(kind DragKind, phase Phase, dx float64) (core.SelectorPosition, bool) {
	if kind == DragNone {
		return m.committed, false
	}

	if phase == PhaseBegan || m.active != kind {
		m.active = kind
		m.live = m.committed
	}

	m.apply(kind, m.track.DeltaRatio(dx))

	switch phase {
	case PhaseEnded, PhaseCancelled:
		m.committed = m.live
		m.active = DragNone
		return m.committed, true
	}
	return m.live, false
}

// Nudge 以一次完整拖动移动dRatio，用于键盘操作
func (m *Model) Nudge(kind DragKind, dRatio float64) core.SelectorPosition {
	if kind == DragNone {
		return m.committed
	}
	m.active = kind
	m.live = m.committed
	m.apply(kind, dRatio)
	m.committed = m.live
	m.active = DragNone
	return m.committed
}

// apply 在比例空间移动显示位置
// 左右把手不能相互越过，整体平移保持宽度且两端不超出[0,1]
func (m *Model) apply(kind DragKind, d float64) {
	pos := m.live
	switch kind {
	case DragLeftHandle:
		pos.StartRatio = clampBetween(pos.StartRatio+d, 0, pos.EndRatio)
	case DragRightHandle:
		pos.EndRatio = clampBetween(pos.EndRatio+d, pos.StartRatio, 1)
	case DragBody:
		width := pos.Width()
		pos.StartRatio = clampBetween(pos.StartRatio+d, 0, 1-width)
		pos.EndRatio = pos.StartRatio + width
	}
	m.live = pos
}

func normalize(pos core.SelectorPosition) core.SelectorPosition {
	pos.StartRatio = ClampRatio(pos.StartRatio)
	pos.EndRatio = ClampRatio(pos.EndRatio)
	if pos.EndRatio < pos.StartRatio {
		pos.StartRatio, pos.EndRatio = pos.EndRatio, pos.StartRatio
	}
	return pos
}

func clampBetween(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
