//go:build windows

package input

import (
	"fmt"
	"unsafe"
)

type point struct {
	X, Y int32
}

// CursorPosition 获取鼠标位置（物理像素，需先 EnableDPIAwareness）
func CursorPosition() (x, y int, err error) {
	var pt point
	if r, _, e := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt))); r == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos: %w", e)
	}
	return int(pt.X), int(pt.Y), nil
}

// dpiAwarenessPerMonitorV2 DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 (-4)
const dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnableDPIAwareness 让进程按物理像素处理坐标，
// 保证 GetCursorPos 与 ElementFromPoint 使用同一坐标空间。
//
// 方法1: SetProcessDpiAwarenessContext (Windows 10 1703+)
// 方法2: SetProcessDPIAware (Vista+)
func EnableDPIAwareness() error {
	if procSetProcessDpiAwarenessContext.Find() == nil {
		if r, _, _ := procSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2); r != 0 {
			return nil
		}
	}
	if procSetProcessDPIAware.Find() == nil {
		if r, _, e := procSetProcessDPIAware.Call(); r == 0 {
			return fmt.Errorf("SetProcessDPIAware: %w", e)
		}
		return nil
	}
	return fmt.Errorf("no DPI awareness API available")
}
