package window

import (
	"time"
)

// Preset 相对当前日期的周期预设
type Preset int

const (
	PresetWeek       Preset = iota // 最近7天
	PresetMonth                    // 最近30天
	PresetQuarter                  // 最近90天
	PresetHalfYear                 // 最近180天
	PresetYearToDate               // 本年至今
	PresetYear                     // 最近365天
	PresetFiveYears                // 最近5年
	PresetAll                      // 全部数据
)

// Presets 周期按钮的显示顺序
var Presets = []Preset{
	PresetWeek, PresetMonth, PresetQuarter, PresetHalfYear,
	PresetYearToDate, PresetYear, PresetFiveYears, PresetAll,
}

// String 返回按钮文本
func (p Preset) String() string {
	switch p {
	case PresetWeek:
		return "1w"
	case PresetMonth:
		return "1m"
	case PresetQuarter:
		return "3m"
	case PresetHalfYear:
		return "6m"
	case PresetYearToDate:
		return "YTD"
	case PresetYear:
		return "1y"
	case PresetFiveYears:
		return "5y"
	case PresetAll:
		return "All"
	default:
		return "?"
	}
}

// Days 返回按天计算的预设长度，YTD与All返回0
func (p Preset) Days() int {
	switch p {
	case PresetWeek:
		return 7
	case PresetMonth:
		return 30
	case PresetQuarter:
		return 90
	case PresetHalfYear:
		return 180
	case PresetYear:
		return 365
	case PresetFiveYears:
		return 365 * 5
	default:
		return 0
	}
}

// Cutoff 计算预设的起始时间戳
// YTD为now所在时区的当年1月1日零点；All没有下限，返回false
func (p Preset) Cutoff(now time.Time) (int64, bool) {
	switch p {
	case PresetAll:
		return 0, false
	case PresetYearToDate:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start.Unix(), true
	}
	if days := p.Days(); days > 0 {
		return now.AddDate(0, 0, -days).Unix(), true
	}
	return 0, false
}

// ParsePreset 解析按钮文本，大小写不敏感的 "all"/"ytd" 也可以接受
func ParsePreset(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.String() == name {
			return p, true
		}
	}
	switch name {
	case "all", "ALL":
		return PresetAll, true
	case "ytd":
		return PresetYearToDate, true
	}
	return PresetAll, false
}
