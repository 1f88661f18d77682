//go:build windows

package uia

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation   = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
)

// COM 已在当前线程初始化
const sFalse = 0x00000001

// IUIAutomation vtable，只声明到用到的方法为止
type iUIAutomationVtbl struct {
	ole.IUnknownVtbl
	CompareElements   uintptr
	CompareRuntimeIds uintptr
	GetRootElement    uintptr
	ElementFromHandle uintptr
	ElementFromPoint  uintptr
}

// IUIAutomationElement vtable，只声明到 GetCurrentPropertyValue
type iUIAutomationElementVtbl struct {
	ole.IUnknownVtbl
	SetFocus                uintptr
	GetRuntimeId            uintptr
	FindFirst               uintptr
	FindAll                 uintptr
	FindFirstBuildCache     uintptr
	FindAllBuildCache       uintptr
	BuildUpdatedCache       uintptr
	GetCurrentPropertyValue uintptr
}

// Initialize 在当前 OS 线程初始化单线程套间 COM
//
// 调用方需先 runtime.LockOSThread()，并在退出时调用返回的函数。
func Initialize() (func(), error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_DISABLE_OLE1DDE); err != nil {
		// S_FALSE 表示已经初始化过，同样需要配对的 CoUninitialize
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != sFalse {
			return nil, fmt.Errorf("CoInitializeEx: %w", err)
		}
	}
	return ole.CoUninitialize, nil
}

// IsSupported 当前平台是否支持 UI Automation
func IsSupported() bool {
	return true
}

// Automation IUIAutomation 实例
type Automation struct {
	unk *ole.IUnknown
}

// New 创建 CUIAutomation 实例，用完必须 Release
func New() (*Automation, error) {
	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		return nil, fmt.Errorf("CoCreateInstance(CUIAutomation): %w", err)
	}
	if unk == nil {
		return nil, fmt.Errorf("CoCreateInstance(CUIAutomation): nil interface")
	}
	return &Automation{unk: unk}, nil
}

func (a *Automation) vtbl() *iUIAutomationVtbl {
	return (*iUIAutomationVtbl)(unsafe.Pointer(a.unk.RawVTable))
}

// ElementFromPoint 获取屏幕坐标处最上层的 UI 元素
//
// 没有元素时返回 (nil, nil)。
func (a *Automation) ElementFromPoint(x, y int) (*Element, error) {
	var elem *ole.IUnknown

	args := make([]uintptr, 0, 4)
	args = append(args, uintptr(unsafe.Pointer(a.unk)))
	args = append(args, pointArgs(int32(x), int32(y))...)
	args = append(args, uintptr(unsafe.Pointer(&elem)))

	hr, _, _ := syscall.SyscallN(a.vtbl().ElementFromPoint, args...)
	if int32(hr) < 0 {
		return nil, fmt.Errorf("ElementFromPoint(%d, %d): %w", x, y, ole.NewError(hr))
	}
	if elem == nil {
		return nil, nil
	}
	return &Element{unk: elem}, nil
}

// Release 释放 COM 引用，可重复调用
func (a *Automation) Release() {
	if a == nil || a.unk == nil {
		return
	}
	a.unk.Release()
	a.unk = nil
}

// Element IUIAutomationElement
type Element struct {
	unk *ole.IUnknown
}

func (e *Element) vtbl() *iUIAutomationElementVtbl {
	return (*iUIAutomationElementVtbl)(unsafe.Pointer(e.unk.RawVTable))
}

// withProperty 读取属性到临时 VARIANT，fn 返回后 VARIANT 即被清理
func (e *Element) withProperty(id PropertyID, fn func(v *ole.VARIANT)) {
	var v ole.VARIANT
	ole.VariantInit(&v)
	defer ole.VariantClear(&v)

	hr, _, _ := syscall.SyscallN(e.vtbl().GetCurrentPropertyValue,
		uintptr(unsafe.Pointer(e.unk)),
		uintptr(id),
		uintptr(unsafe.Pointer(&v)))
	if int32(hr) < 0 {
		return
	}
	fn(&v)
}

// StringProperty 读取字符串属性，非 BSTR 或空指针视为不存在
func (e *Element) StringProperty(id PropertyID) Property {
	var p Property
	e.withProperty(id, func(v *ole.VARIANT) {
		if v.VT == ole.VT_BSTR && v.Val != 0 {
			p = Property{Text: v.ToString(), Present: true}
		}
	})
	return p
}

// Value UIA_ValueValuePropertyId
func (e *Element) Value() Property {
	return e.StringProperty(PropertyValue)
}

// Name UIA_NamePropertyId
func (e *Element) Name() Property {
	return e.StringProperty(PropertyName)
}

// Info 读取元素的描述信息，仅用于调试输出
func (e *Element) Info() ElementInfo {
	info := ElementInfo{
		AutomationID: e.StringProperty(PropertyAutomationID).Text,
		Name:         e.Name().Text,
		ClassName:    e.StringProperty(PropertyClassName).Text,
		Value:        e.Value().Text,
	}
	e.withProperty(PropertyControlType, func(v *ole.VARIANT) {
		if v.VT == ole.VT_I4 {
			info.ControlType = ControlTypeName(int32(v.Val))
		}
	})
	e.withProperty(PropertyIsEnabled, func(v *ole.VARIANT) {
		if v.VT == ole.VT_BOOL {
			info.IsEnabled = v.Val != 0
		}
	})
	return info
}

// Release 释放 COM 引用，可重复调用
func (e *Element) Release() {
	if e == nil || e.unk == nil {
		return
	}
	e.unk.Release()
	e.unk = nil
}
