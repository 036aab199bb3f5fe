package main

import "os"

// 程序信息常量
const (
	AppName    = "gochart"
	AppVersion = "0.1.0"
	AppDesc    = "在终端中浏览市盈率与指数走势的双坐标轴图表"
)

// 终端尺寸不可用时的输出大小
const (
	fallbackWidth  = 120
	fallbackHeight = 40
)

// renderSize 决定纯文本输出的尺寸，显式参数优先，其次是终端尺寸
func renderSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}

	termWidth, termHeight, ok := terminalSize(os.Stdout.Fd())
	if !ok {
		termWidth, termHeight = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = termWidth
	}
	if height <= 0 {
		height = termHeight
	}
	return width, height
}
