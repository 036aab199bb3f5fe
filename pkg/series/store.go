// Package series 提供按时间戳排序的不可变时间序列存储
package series

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Kevin-Rudy/gochart/pkg/core"
)

// ErrDuplicateTimestamp 输入中存在重复的时间戳
var ErrDuplicateTimestamp = errors.New("时间戳重复")

// Store 完整数据集，加载后不可变
type Store struct {
	points []core.DataPoint
}

// Load 复制并按时间戳升序排序输入，重复时间戳会被拒绝
// 空输入返回空存储，由窗口协调器在使用时报告ErrEmptyDataset
func Load(points []core.DataPoint) (*Store, error) {
	sorted := make([]core.DataPoint, len(points))
	copy(sorted, points)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp == sorted[i-1].Timestamp {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTimestamp, sorted[i].Timestamp)
		}
	}

	return &Store{points: sorted}, nil
}

// Len 返回数据点数
func (s *Store) Len() int {
	return len(s.points)
}

// Empty 是否为空
func (s *Store) Empty() bool {
	return len(s.points) == 0
}

// At 返回下标处的数据点，下标会被钳制
func (s *Store) At(i int) core.DataPoint {
	return s.points[s.clamp(i)]
}

// First 第一个数据点
func (s *Store) First() core.DataPoint {
	return s.points[0]
}

// Last 最后一个数据点
func (s *Store) Last() core.DataPoint {
	return s.points[len(s.points)-1]
}

// Points 返回全部数据点（只读视图，调用方不得修改）
func (s *Store) Points() []core.DataPoint {
	return s.points
}

// Timestamps 返回全部时间戳
func (s *Store) Timestamps() []int64 {
	ts := make([]int64, len(s.points))
	for i, p := range s.points {
		ts[i] = p.Timestamp
	}
	return ts
}

// IndexOfFirst 返回第一个 timestamp >= t 的下标
// 所有时间戳都小于t时返回最后一个下标
func (s *Store) IndexOfFirst(t int64) int {
	if len(s.points) == 0 {
		return 0
	}
	i := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Timestamp >= t
	})
	return s.clamp(i)
}

// IndexOfLast 返回最后一个 timestamp <= t 的下标
// 所有时间戳都大于t时返回0
func (s *Store) IndexOfLast(t int64) int {
	if len(s.points) == 0 {
		return 0
	}
	i := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Timestamp > t
	})
	return s.clamp(i - 1)
}

// RangeBetween 返回 [start, end] 时间范围对应的闭区间下标
// ok为false表示范围内没有数据点
func (s *Store) RangeBetween(start, end int64) (first, last int, ok bool) {
	if len(s.points) == 0 || start > end {
		return 0, 0, false
	}
	first = sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Timestamp >= start
	})
	last = sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Timestamp > end
	}) - 1
	if first > last {
		return 0, 0, false
	}
	return first, last, true
}

// Since 返回 timestamp >= cutoff 的闭区间下标
func (s *Store) Since(cutoff int64) (first, last int, ok bool) {
	if len(s.points) == 0 {
		return 0, 0, false
	}
	return s.RangeBetween(cutoff, s.Last().Timestamp)
}

// Slice 返回闭区间 [start, end] 的视图，下标会被钳制
func (s *Store) Slice(start, end int) []core.DataPoint {
	if len(s.points) == 0 {
		return nil
	}
	start, end = s.clamp(start), s.clamp(end)
	if start > end {
		return nil
	}
	return s.points[start : end+1]
}

// Stride 按步长抽样，始终包含首尾两点，用于选择器背景曲线
func (s *Store) Stride(step int) []core.DataPoint {
	if step <= 1 || len(s.points) == 0 {
		return s.points
	}

	sampled := make([]core.DataPoint, 0, len(s.points)/step+2)
	sampled = append(sampled, s.points[0])
	for i := step; i < len(s.points)-1; i += step {
		sampled = append(sampled, s.points[i])
	}
	if last := s.Last(); sampled[len(sampled)-1].Timestamp != last.Timestamp {
		sampled = append(sampled, last)
	}
	return sampled
}

// Nearest 返回与t最接近的数据点下标
func (s *Store) Nearest(t int64) int {
	if len(s.points) == 0 {
		return 0
	}
	i := s.IndexOfFirst(t)
	if i > 0 && abs64(s.points[i-1].Timestamp-t) <= abs64(s.points[i].Timestamp-t) {
		return i - 1
	}
	return i
}

func (s *Store) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s.points)-1 {
		return len(s.points) - 1
	}
	return i
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
