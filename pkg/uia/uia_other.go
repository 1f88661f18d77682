//go:build !windows

package uia

// Initialize 非 Windows 平台无需初始化 COM
func Initialize() (func(), error) {
	return func() {}, nil
}

// IsSupported 非 Windows 平台不支持 UI Automation
func IsSupported() bool {
	return false
}

// Automation 非 Windows 平台占位
type Automation struct{}

// New 非 Windows 平台返回 ErrUnsupported
func New() (*Automation, error) {
	return nil, ErrUnsupported
}

// ElementFromPoint 非 Windows 平台返回 ErrUnsupported
func (a *Automation) ElementFromPoint(x, y int) (*Element, error) {
	return nil, ErrUnsupported
}

// Release 空实现
func (a *Automation) Release() {}

// Element 非 Windows 平台占位
type Element struct{}

// StringProperty 空实现
func (e *Element) StringProperty(id PropertyID) Property { return Absent }

// Value 空实现
func (e *Element) Value() Property { return Absent }

// Name 空实现
func (e *Element) Name() Property { return Absent }

// Info 空实现
func (e *Element) Info() ElementInfo { return ElementInfo{} }

// Release 空实现
func (e *Element) Release() {}
