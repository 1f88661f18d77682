// Package extract 把“当前鼠标位置”转换为文本并写入剪贴板
package extract

import (
	"errors"

	"github.com/zoeyai/textgrab/internal/logger"
	"github.com/zoeyai/textgrab/pkg/input"
	"github.com/zoeyai/textgrab/pkg/uia"
)

// Element 屏幕上的一个 UI 元素，用完必须 Release
type Element interface {
	Value() uia.Property
	Name() uia.Property
	Info() uia.ElementInfo
	Release()
}

// Inspector 一次激活内使用的无障碍会话，用完必须 Release
type Inspector interface {
	// ElementAt 没有元素时返回 (nil, nil)
	ElementAt(x, y int) (Element, error)
	Release()
}

// Writer 剪贴板写入
type Writer interface {
	WriteText(text string) error
}

// CursorFunc 读取鼠标位置
type CursorFunc func() (x, y int, err error)

// OpenFunc 打开一个无障碍会话
type OpenFunc func() (Inspector, error)

// Outcome 一次激活的结果
type Outcome int

const (
	OutcomeCopied Outcome = iota
	OutcomeNoCursor
	OutcomeNoElement
	OutcomeNoText
	OutcomeClipboardBusy
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeNoCursor:
		return "no-cursor"
	case OutcomeNoElement:
		return "no-element"
	case OutcomeNoText:
		return "no-text"
	case OutcomeClipboardBusy:
		return "clipboard-busy"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Option 配置选项函数类型
type Option func(*Options)

// Options 提取配置
type Options struct {
	// Echo 复制成功后是否把文本输出到控制台
	Echo bool
	Log  *logger.Logger
}

// DefaultOptions 默认配置
func DefaultOptions() *Options {
	return &Options{
		Echo: true,
		Log:  logger.Default(),
	}
}

// WithEcho 设置是否回显文本
func WithEcho(echo bool) Option {
	return func(o *Options) {
		o.Echo = echo
	}
}

// WithLogger 设置日志输出
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// Extractor 热键触发后的文本提取器
type Extractor struct {
	cursor CursorFunc
	open   OpenFunc
	clip   Writer
	opts   *Options
}

// New 创建提取器
func New(cursor CursorFunc, open OpenFunc, clip Writer, opts ...Option) *Extractor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Extractor{cursor: cursor, open: open, clip: clip, opts: o}
}

// NewDefault 使用系统鼠标、UI Automation 和系统剪贴板
func NewDefault(opts ...Option) *Extractor {
	return New(input.CursorPosition, OpenAutomation, input.NewClipboard(), opts...)
}

// Activate 执行一次提取
//
// 本次激活获取的所有句柄在任何退出路径上都会释放，包括 panic。
func (e *Extractor) Activate() (outcome Outcome) {
	log := e.opts.Log

	defer func() {
		if r := recover(); r != nil {
			log.Error("Extraction aborted: %v", r)
			outcome = OutcomeFailed
		}
	}()

	x, y, err := e.cursor()
	if err != nil {
		log.Info("Could not read the cursor position: %v", err)
		return OutcomeNoCursor
	}

	insp, err := e.open()
	if err != nil {
		log.Error("Failed to create UI Automation instance: %v", err)
		return OutcomeFailed
	}
	defer insp.Release()

	elem, err := insp.ElementAt(x, y)
	if err != nil {
		log.Debug("ElementFromPoint(%d, %d): %v", x, y, err)
	}
	if err != nil || elem == nil {
		log.Info("No UI element found under the cursor.")
		return OutcomeNoElement
	}
	defer elem.Release()

	if log.GetLevel() <= logger.DEBUG {
		log.Debug("element at (%d, %d): %+v", x, y, elem.Info())
	}

	result := Select(elem.Value(), elem.Name())
	if result.Empty() {
		log.Info("Found a UI element, but it has no text in its Name or Value properties.")
		return OutcomeNoText
	}

	if err := e.clip.WriteText(result.Text); err != nil {
		if errors.Is(err, input.ErrClipboardBusy) {
			log.Info("Clipboard is in use by another application; text was not copied.")
			return OutcomeClipboardBusy
		}
		log.Error("Failed to copy text to clipboard: %v", err)
		return OutcomeFailed
	}

	log.OK("Text extracted and copied to clipboard:")
	if e.opts.Echo {
		log.Raw(result.Text)
	}
	log.Debug("source: %s", result.Source)
	return OutcomeCopied
}
