// Package uia 通过 COM 直接调用 Windows UI Automation，读取屏幕坐标处的 UI 元素属性
package uia

import (
	"errors"
	"strconv"
)

// ErrUnsupported 当前平台不支持 UI Automation
var ErrUnsupported = errors.New("uia: UI Automation is not supported on this platform")

// PropertyID UIA 属性 ID (UIA_*PropertyId)
type PropertyID int32

const (
	PropertyControlType  PropertyID = 30003
	PropertyName         PropertyID = 30005
	PropertyIsEnabled    PropertyID = 30010
	PropertyAutomationID PropertyID = 30011
	PropertyClassName    PropertyID = 30012
	PropertyValue        PropertyID = 30045
)

// Property 一个字符串类型的元素属性
//
// Present 为 false 表示 VARIANT 不是非空 BSTR（属性不存在或不支持），
// 这与 Present 为 true 且 Text 为空字符串是两种不同的状态。
type Property struct {
	Text    string
	Present bool
}

// Absent 不存在的属性
var Absent = Property{}

// Text 构造一个存在的属性
func Text(s string) Property {
	return Property{Text: s, Present: true}
}

func (p Property) String() string {
	if !p.Present {
		return "<absent>"
	}
	return strconv.Quote(p.Text)
}

// ElementInfo UI 元素信息
type ElementInfo struct {
	AutomationID string
	Name         string
	ClassName    string
	ControlType  string
	IsEnabled    bool
	Value        string
}

var controlTypeNames = map[int32]string{
	50000: "Button",
	50001: "Calendar",
	50002: "CheckBox",
	50003: "ComboBox",
	50004: "Edit",
	50005: "Hyperlink",
	50006: "Image",
	50007: "ListItem",
	50008: "List",
	50009: "Menu",
	50010: "MenuBar",
	50011: "MenuItem",
	50012: "ProgressBar",
	50013: "RadioButton",
	50014: "ScrollBar",
	50015: "Slider",
	50016: "Spinner",
	50017: "StatusBar",
	50018: "Tab",
	50019: "TabItem",
	50020: "Text",
	50021: "ToolBar",
	50022: "ToolTip",
	50023: "Tree",
	50024: "TreeItem",
	50025: "Custom",
	50026: "Group",
	50027: "Thumb",
	50028: "DataGrid",
	50029: "DataItem",
	50030: "Document",
	50031: "SplitButton",
	50032: "Window",
	50033: "Pane",
	50034: "Header",
	50035: "HeaderItem",
	50036: "Table",
	50037: "TitleBar",
	50038: "Separator",
	50039: "SemanticZoom",
	50040: "AppBar",
}

// ControlTypeName 将 UIA_*ControlTypeId 转换为可读名称
func ControlTypeName(id int32) string {
	if name, ok := controlTypeNames[id]; ok {
		return name
	}
	if id == 0 {
		return ""
	}
	return "ControlType(" + strconv.Itoa(int(id)) + ")"
}
