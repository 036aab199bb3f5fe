//go:build unix

package main

import "golang.org/x/sys/unix"

// terminalSize 通过ioctl读取终端窗口大小
func terminalSize(fd uintptr) (int, int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
