// Package overlay 实现范围选择器的几何映射
// 在下标空间、比例空间[0,1]与像素空间之间互相转换
package overlay

import (
	"math"

	"github.com/Kevin-Rudy/gochart/pkg/core"
)

// 比例乘回下标时的容差，保证 i/(n-1)*(n-1) 不会因浮点误差落到 i-1
const indexEpsilon = 1e-9

// ClampRatio 把比例钳制到[0,1]，NaN视为0
func ClampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// RatioRangeFor 把闭区间下标 [start, end] 映射为比例区间
func RatioRangeFor(start, end, total int) core.SelectorPosition {
	if total <= 1 {
		return core.SelectorPosition{StartRatio: 0, EndRatio: 1}
	}
	start = clampIndex(start, total)
	end = clampIndex(end, total)
	if end < start {
		start, end = end, start
	}
	last := float64(total - 1)
	return core.SelectorPosition{
		StartRatio: float64(start) / last,
		EndRatio:   float64(end) / last,
	}
}

// IndexRangeFor 把比例区间映射回闭区间下标，两端都钳制到 [0, total-1]
// 结果总是满足 start <= end，即至少覆盖一个样本
func IndexRangeFor(startRatio, endRatio float64, total int) (start, end int) {
	if total <= 1 {
		return 0, 0
	}
	startRatio, endRatio = ClampRatio(startRatio), ClampRatio(endRatio)
	if endRatio < startRatio {
		startRatio, endRatio = endRatio, startRatio
	}
	last := float64(total - 1)
	start = clampIndex(int(math.Floor(startRatio*last+indexEpsilon)), total)
	end = clampIndex(int(math.Floor(endRatio*last+indexEpsilon)), total)
	return start, end
}

// Track 选择器轨道的像素几何
// 两端各保留半个把手宽度，可交互长度为 Width - HandleWidth
type Track struct {
	Width       float64
	HandleWidth float64
}

// Usable 可交互长度
func (t Track) Usable() float64 {
	if u := t.Width - t.HandleWidth; u > 0 {
		return u
	}
	return 0
}

// PixelFor 比例转像素
func (t Track) PixelFor(ratio float64) float64 {
	return t.HandleWidth/2 + ClampRatio(ratio)*t.Usable()
}

// RatioFor 像素转比例，结果钳制到[0,1]
func (t Track) RatioFor(pixel float64) float64 {
	usable := t.Usable()
	if usable == 0 {
		return 0
	}
	return ClampRatio((pixel - t.HandleWidth/2) / usable)
}

// DeltaRatio 像素位移转比例位移
func (t Track) DeltaRatio(dx float64) float64 {
	usable := t.Usable()
	if usable == 0 {
		return 0
	}
	return dx / usable
}

func clampIndex(i, total int) int {
	if i < 0 {
		return 0
	}
	if i > total-1 {
		return total - 1
	}
	return i
}
