package extract

import "github.com/zoeyai/textgrab/pkg/uia"

// automationInspector 把 uia.Automation 适配为 Inspector
type automationInspector struct {
	a *uia.Automation
}

// OpenAutomation 每次激活创建一个新的 UI Automation 实例
func OpenAutomation() (Inspector, error) {
	a, err := uia.New()
	if err != nil {
		return nil, err
	}
	return automationInspector{a: a}, nil
}

func (i automationInspector) ElementAt(x, y int) (Element, error) {
	e, err := i.a.ElementFromPoint(x, y)
	if err != nil || e == nil {
		// 不能返回装着 nil 指针的接口
		return nil, err
	}
	return e, nil
}

func (i automationInspector) Release() {
	i.a.Release()
}
