//go:build windows

package uia

import (
	"runtime"
	"testing"
)

// TestElementFromPoint 需要桌面会话
func TestElementFromPoint(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	uninit, err := Initialize()
	if err != nil {
		t.Fatalf("初始化 COM 失败: %v", err)
	}
	defer uninit()

	a, err := New()
	if err != nil {
		t.Skipf("创建 UI Automation 失败 (可能没有桌面会话): %v", err)
	}
	defer a.Release()

	elem, err := a.ElementFromPoint(0, 0)
	if err != nil {
		t.Skipf("ElementFromPoint 失败: %v", err)
	}
	if elem == nil {
		t.Log("坐标 (0, 0) 处没有元素")
		return
	}
	defer elem.Release()

	t.Logf("元素: %+v", elem.Info())
	t.Logf("Value=%s Name=%s", elem.Value(), elem.Name())

	// 重复释放不应崩溃
	elem.Release()
	a.Release()
}

func TestInitializeTwice(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first, err := Initialize()
	if err != nil {
		t.Fatalf("首次初始化失败: %v", err)
	}
	defer first()

	// 同一线程再次初始化返回 S_FALSE，不应视为错误
	second, err := Initialize()
	if err != nil {
		t.Fatalf("再次初始化不应报错: %v", err)
	}
	second()
}
