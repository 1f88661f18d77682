//go:build windows

package input

import (
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// WriteText 用 text 替换剪贴板内容 (CF_UNICODETEXT)
//
// 拿不到剪贴板所有权时返回 ErrClipboardBusy，剪贴板保持不变。
// 任何路径上都会 CloseClipboard。
func (c *Clipboard) WriteText(text string) error {
	if r, _, _ := procOpenClipboard.Call(0); r == 0 {
		return ErrClipboardBusy
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()

	buf := append(utf16.Encode([]rune(text)), 0)
	size := uintptr(len(buf)) * unsafe.Sizeof(buf[0])

	h, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return fmt.Errorf("GlobalAlloc(%d): %w", size, err)
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("GlobalLock: %w", err)
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(buf)), buf)
	procGlobalUnlock.Call(h)

	// 成功后内存归剪贴板所有，不能再释放
	if r, _, err := procSetClipboardData.Call(cfUnicodeText, h); r == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("SetClipboardData: %w", err)
	}
	return nil
}

// ReadText 读取剪贴板中的 Unicode 文本，没有文本时返回空字符串
func (c *Clipboard) ReadText() (string, error) {
	if r, _, _ := procOpenClipboard.Call(0); r == 0 {
		return "", ErrClipboardBusy
	}
	defer procCloseClipboard.Call()

	h, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return "", nil
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		return "", fmt.Errorf("GlobalLock: %w", err)
	}
	defer procGlobalUnlock.Call(h)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p))), nil
}
