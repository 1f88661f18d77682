package extract

import "github.com/zoeyai/textgrab/pkg/uia"

// Source 文本来源
type Source int

const (
	SourceNone Source = iota
	SourceValue
	SourceName
)

func (s Source) String() string {
	switch s {
	case SourceValue:
		return "value"
	case SourceName:
		return "name"
	default:
		return "none"
	}
}

// Result 一次激活提取到的文本
type Result struct {
	Text   string
	Source Source
}

// Empty 没有可复制的文本
func (r Result) Empty() bool {
	return r.Text == ""
}

// Select 按优先级选择文本：
//  1. Value 存在且非空
//  2. Name 存在（空串或纯空白也算）
//  3. 都没有
//
// Value 要求非空而 Name 只要求存在，两者不对称，保持原有行为。
func Select(value, name uia.Property) Result {
	if value.Present && value.Text != "" {
		return Result{Text: value.Text, Source: SourceValue}
	}
	if name.Present {
		return Result{Text: name.Text, Source: SourceName}
	}
	return Result{Source: SourceNone}
}
