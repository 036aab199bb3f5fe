// Package tui 选项模式支持
package tui

import (
	"time"
)

// Option TUI配置选项函数类型
type Option func(*Config)

// WithChartSize 设置最小图表尺寸
func WithChartSize(width, height int) Option {
	return func(c *Config) {
		c.MinChartWidth = width
		c.MinChartHeight = height
	}
}

// WithSelectorHeight 设置范围选择器高度
func WithSelectorHeight(rows int) Option {
	return func(c *Config) {
		c.SelectorHeight = rows
	}
}

// WithHandleWidth 设置选择器把手宽度
func WithHandleWidth(width float64) Option {
	return func(c *Config) {
		c.HandleWidth = width
	}
}

// WithBackgroundStride 设置选择器背景抽样步长
func WithBackgroundStride(stride int) Option {
	return func(c *Config) {
		c.BackgroundStride = stride
	}
}

// WithPanStep 设置平移步长
func WithPanStep(step float64) Option {
	return func(c *Config) {
		c.PanStep = step
	}
}

// WithZoomFactor 设置缩放倍数
func WithZoomFactor(factor float64) Option {
	return func(c *Config) {
		c.ZoomFactor = factor
	}
}

// WithYAxisLabelCount 设置Y轴标签数
func WithYAxisLabelCount(n int) Option {
	return func(c *Config) {
		c.YAxisLabelCount = n
	}
}

// WithNavigationThrottle 设置导航事件频率控制
func WithNavigationThrottle(threshold int, rest time.Duration) Option {
	return func(c *Config) {
		c.NavigationThreshold = threshold
		c.NavigationRest = rest
	}
}

// NewConfigWithOptions 使用选项模式创建TUI配置
func NewConfigWithOptions(opts ...Option) *Config {
	config := DefaultConfig()

	// 应用所有选项
	for _, opt := range opts {
		opt(config)
	}

	return config
}
