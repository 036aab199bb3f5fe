// Package tui 配置定义
package tui

import (
	"errors"
	"time"
)

// Config TUI组件的配置结构
type Config struct {
	MinChartWidth    int     // 最小图表宽度
	MinChartHeight   int     // 最小图表高度
	MaxChartSize     int     // 最大图表尺寸（防止极端值）
	YAxisLabelCount  int     // Y轴标签数
	SelectorHeight   int     // 范围选择器高度（行）
	HandleWidth      float64 // 选择器把手宽度（列）
	BackgroundStride int     // 选择器背景曲线的抽样步长
	PanStep          float64 // 每次平移占窗口长度的比例
	ZoomFactor       float64 // 每次缩放倍数
	NudgeRatio       float64 // 键盘微调选择器的比例步长

	NavigationThreshold int           // 连续导航事件数达到此值后休息
	NavigationRest      time.Duration // 休息时长
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		MinChartWidth:       30,
		MinChartHeight:      6,
		MaxChartSize:        1000,
		YAxisLabelCount:     5,
		SelectorHeight:      4,
		HandleWidth:         2,
		BackgroundStride:    10, // 与原始数据相比每10个点取1个
		PanStep:             0.1,
		ZoomFactor:          1.25,
		NudgeRatio:          0.01,
		NavigationThreshold: 5,
		NavigationRest:      100 * time.Millisecond,
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.MinChartWidth <= 0 {
		return errors.New("最小图表宽度必须大于0")
	}

	if c.MinChartHeight <= 0 {
		return errors.New("最小图表高度必须大于0")
	}

	if c.MaxChartSize <= 0 {
		return errors.New("最大图表尺寸必须大于0")
	}

	if c.YAxisLabelCount < 2 {
		return errors.New("Y轴标签数不能小于2")
	}

	if c.SelectorHeight < 2 {
		return errors.New("选择器高度不能小于2")
	}

	if c.HandleWidth < 1 {
		return errors.New("把手宽度不能小于1")
	}

	if c.BackgroundStride < 1 {
		return errors.New("背景抽样步长必须大于0")
	}

	if c.PanStep <= 0 || c.PanStep > 1 {
		return errors.New("平移步长必须在(0,1]之间")
	}

	if c.ZoomFactor <= 1 {
		return errors.New("缩放倍数必须大于1")
	}

	if c.NudgeRatio <= 0 || c.NudgeRatio > 1 {
		return errors.New("微调步长必须在(0,1]之间")
	}

	if c.NavigationThreshold <= 0 {
		return errors.New("导航事件阈值必须大于0")
	}

	if c.NavigationRest < 0 {
		return errors.New("导航休息时长不能为负数")
	}

	return nil
}
