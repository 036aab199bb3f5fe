// Package ticks 生成坐标轴刻度标签
// 标签根据整组时间戳的碰撞情况自适应选择年份、月份或日期格式
package ticks

import (
	"strconv"
	"time"
)

// Style 刻度标签样式
type Style int

const (
	StyleContext   Style = iota // 根据碰撞自动选择 "2021" / "Jun'24" / "17.Feb"
	StyleMonthYear              // 固定 "MM/yyyy"
)

// String 返回样式名称
func (s Style) String() string {
	if s == StyleMonthYear {
		return "month-year"
	}
	return "context"
}

// ParseStyle 解析样式名称
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "context", "":
		return StyleContext, true
	case "month-year", "monthyear":
		return StyleMonthYear, true
	}
	return StyleContext, false
}

// Labeler 在给定时区内读取日历字段
type Labeler struct {
	Location *time.Location
}

// NewLabeler 创建标签生成器，loc为nil时使用本地时区
func NewLabeler(loc *time.Location) *Labeler {
	if loc == nil {
		loc = time.Local
	}
	return &Labeler{Location: loc}
}

func (l *Labeler) at(ts int64) time.Time {
	loc := l.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc)
}

type yearMonth struct {
	year  int
	month time.Month
}

// LabelFor 为整组时间戳生成标签
// 先统计全局的年份与年月频次，再逐个映射：
// 年份只出现一次用 "2021"，年月只出现一次用 "Jun'24"，否则用 "17.Feb"
func (l *Labeler) LabelFor(timestamps []int64) []string {
	dates := make([]time.Time, len(timestamps))
	yearCounts := make(map[int]int)
	yearMonthCounts := make(map[yearMonth]int)

	for i, ts := range timestamps {
		d := l.at(ts)
		dates[i] = d
		yearCounts[d.Year()]++
		yearMonthCounts[yearMonth{d.Year(), d.Month()}]++
	}

	labels := make([]string, len(dates))
	for i, d := range dates {
		switch {
		case yearCounts[d.Year()] == 1:
			labels[i] = strconv.Itoa(d.Year())
		case yearMonthCounts[yearMonth{d.Year(), d.Month()}] == 1:
			labels[i] = d.Format("Jan'06")
		default:
			labels[i] = d.Format("02.Jan")
		}
	}
	return labels
}

// Labels 按样式生成标签
func (l *Labeler) Labels(timestamps []int64, style Style) []string {
	if style == StyleContext {
		return l.LabelFor(timestamps)
	}
	labels := make([]string, len(timestamps))
	for i, ts := range timestamps {
		labels[i] = l.MonthYear(ts)
	}
	return labels
}

// MonthYear "MM/yyyy"
func (l *Labeler) MonthYear(ts int64) string {
	return l.at(ts).Format("01/2006")
}

// ShortMonth "May'21"
func (l *Labeler) ShortMonth(ts int64) string {
	return l.at(ts).Format("Jan'06")
}

// YearOf "2021"
func (l *Labeler) YearOf(ts int64) string {
	return strconv.Itoa(l.at(ts).Year())
}

// DayMonthYear "dd/MM/yyyy"，用于十字线信息栏
func (l *Labeler) DayMonthYear(ts int64) string {
	return l.at(ts).Format("02/01/2006")
}

// Marker 年份分界标记
type Marker struct {
	Index int
	Year  string
}

// YearMarkers 扫描升序时间戳，记录每个偶数年份首次出现的下标
// 奇数年份被跳过，保持选择器背景的标记密度
func (l *Labeler) YearMarkers(timestamps []int64) []Marker {
	var markers []Marker
	lastYear := 0
	for i, ts := range timestamps {
		year := l.at(ts).Year()
		if year == lastYear {
			continue
		}
		lastYear = year
		if year%2 == 0 {
			markers = append(markers, Marker{Index: i, Year: strconv.Itoa(year)})
		}
	}
	return markers
}

// PickEvenly 从count个点中选出n个刻度下标
// 第一个刻度偏移 count%n，之后每隔 count/n 一个，结果去重且不越界
func PickEvenly(count, n int) []int {
	if count <= 0 || n <= 0 {
		return nil
	}
	if count <= n {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	step := count / n
	offset := count % n
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := offset + i*step
		if idx > count-1 {
			idx = count - 1
		}
		if len(indices) > 0 && indices[len(indices)-1] == idx {
			continue
		}
		indices = append(indices, idx)
	}
	return indices
}
