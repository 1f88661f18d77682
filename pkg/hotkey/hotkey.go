// Package hotkey 注册全局热键并把按键事件转发给事件循环
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrHotkeyConflict 系统拒绝注册：热键已被其他程序占用
	ErrHotkeyConflict = errors.New("hotkey: key combination already registered by another application")
	// ErrNoDisplay 没有可用的桌面会话（例如未设置 DISPLAY 的 X11 环境）
	ErrNoDisplay = errors.New("hotkey: no display available")
)

// Modifier 修饰键位掩码
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Chord 一个全局热键组合
type Chord struct {
	Mods Modifier
	// Key 大写字母 A-Z
	Key rune
}

// Default 固定热键 Ctrl+Alt+X
var Default = Chord{Mods: ModCtrl | ModAlt, Key: 'X'}

// String 渲染为 Ctrl+Alt+X 形式
func (c Chord) String() string {
	var parts []string
	if c.Mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if c.Mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if c.Mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	parts = append(parts, string(c.Key))
	return strings.Join(parts, "+")
}

// Backend 热键实现的抽象，测试中使用 mock
//
// 系统拒绝绑定时 Register 返回包装了 ErrHotkeyConflict 的错误，
// 环境或构造错误原样返回。
type Backend interface {
	Register() error
	Unregister() error
	Keydown() <-chan struct{}
}

// BindingID 唯一的热键绑定 ID
const BindingID = 1

// Listener 管理一个全局热键绑定的生命周期
type Listener struct {
	mu         sync.Mutex
	chord      Chord
	backend    Backend
	registered bool
	closeOnce  sync.Once
}

// NewListener 使用真实的系统热键实现
func NewListener(chord Chord) (*Listener, error) {
	b, err := newRealBackend(chord)
	if err != nil {
		return nil, err
	}
	return NewListenerWithBackend(chord, b), nil
}

// NewListenerWithBackend 使用自定义 backend 创建 Listener（测试用）
func NewListenerWithBackend(chord Chord, b Backend) *Listener {
	return &Listener{chord: chord, backend: b}
}

// Chord 返回绑定的组合键
func (l *Listener) Chord() Chord {
	return l.chord
}

// ID 返回绑定 ID，事件循环据此匹配热键事件
func (l *Listener) ID() int {
	return BindingID
}

// Register 独占注册热键（不重试）
//
// 只有系统拒绝绑定时错误才满足 errors.Is(err, ErrHotkeyConflict)。
func (l *Listener) Register() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.registered {
		return nil
	}
	if err := l.backend.Register(); err != nil {
		return fmt.Errorf("hotkey: register %s: %w", l.chord, err)
	}
	l.registered = true
	return nil
}

// Registered 是否已注册
func (l *Listener) Registered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registered
}

// Keydown 每次按下热键产生一个事件
func (l *Listener) Keydown() <-chan struct{} {
	return l.backend.Keydown()
}

// Close 注销热键，只执行一次；未注册时为空操作
func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.registered {
			return
		}
		l.registered = false
		err = l.backend.Unregister()
	})
	return err
}
