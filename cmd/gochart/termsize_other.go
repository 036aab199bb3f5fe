//go:build !unix && !windows

package main

// terminalSize 其他平台不支持查询终端大小
func terminalSize(fd uintptr) (int, int, bool) {
	return 0, 0, false
}
