// Package input 提供剪贴板读写、鼠标位置查询和 DPI 感知设置
package input

import "errors"

// ErrClipboardBusy 剪贴板被其他窗口占用，本次写入放弃（不重试）
var ErrClipboardBusy = errors.New("input: clipboard is in use by another application")

// Clipboard 系统剪贴板
//
// Windows 下直接走 OpenClipboard/SetClipboardData 协议，其他平台委托给 robotgo。
type Clipboard struct{}

// NewClipboard 创建剪贴板写入器
func NewClipboard() *Clipboard {
	return &Clipboard{}
}
