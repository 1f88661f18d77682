//go:build !windows

package input

import "github.com/go-vgo/robotgo"

// CursorPosition 获取鼠标位置
func CursorPosition() (x, y int, err error) {
	x, y = robotgo.Location()
	return x, y, nil
}

// EnableDPIAwareness 非 Windows 平台无需设置（macOS Retina 由 robotgo 自行处理）
func EnableDPIAwareness() error {
	return nil
}
