//go:build windows

package main

import "golang.org/x/sys/windows"

// terminalSize 通过控制台缓冲区信息读取可见窗口大小
func terminalSize(fd uintptr) (int, int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, false
	}
	width := int(info.Window.Right-info.Window.Left) + 1
	height := int(info.Window.Bottom-info.Window.Top) + 1
	return width, height, width > 0 && height > 0
}
