package hotkey

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// mockBackend 模拟系统热键
type mockBackend struct {
	mu              sync.Mutex
	registerErr     error
	registerCalls   int
	unregisterCalls int
	keyCh           chan struct{}
}

func newMockBackend() *mockBackend {
	return &mockBackend{keyCh: make(chan struct{}, 4)}
}

func (m *mockBackend) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerCalls++
	return m.registerErr
}

func (m *mockBackend) Unregister() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unregisterCalls++
	return nil
}

func (m *mockBackend) Keydown() <-chan struct{} {
	return m.keyCh
}

func TestChordString(t *testing.T) {
	if got := Default.String(); got != "Ctrl+Alt+X" {
		t.Errorf("Default.String() = %q, 期望 Ctrl+Alt+X", got)
	}
	c := Chord{Mods: ModCtrl | ModShift, Key: 'L'}
	if got := c.String(); got != "Ctrl+Shift+L" {
		t.Errorf("String() = %q", got)
	}
}

func TestRegisterAndClose(t *testing.T) {
	b := newMockBackend()
	l := NewListenerWithBackend(Default, b)

	if err := l.Register(); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if !l.Registered() {
		t.Error("注册后应为已注册状态")
	}
	if l.ID() != BindingID {
		t.Errorf("ID 应为 %d", BindingID)
	}

	// 重复注册不应再次调用 backend
	if err := l.Register(); err != nil {
		t.Fatalf("重复注册失败: %v", err)
	}
	if b.registerCalls != 1 {
		t.Errorf("backend.Register 应只调用一次, 实际 %d", b.registerCalls)
	}

	b.keyCh <- struct{}{}
	select {
	case <-l.Keydown():
	default:
		t.Error("应收到按键事件")
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close 失败: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("重复 Close 失败: %v", err)
	}
	if b.unregisterCalls != 1 {
		t.Errorf("backend.Unregister 应只调用一次, 实际 %d", b.unregisterCalls)
	}
	if l.Registered() {
		t.Error("Close 后不应为已注册状态")
	}
}

func TestRegisterConflict(t *testing.T) {
	b := newMockBackend()
	b.registerErr = fmt.Errorf("%w: RegisterHotKey failed", ErrHotkeyConflict)
	l := NewListenerWithBackend(Default, b)

	err := l.Register()
	if !errors.Is(err, ErrHotkeyConflict) {
		t.Fatalf("期望 ErrHotkeyConflict, 实际 %v", err)
	}
	if l.Registered() {
		t.Error("注册失败后不应为已注册状态")
	}

	// 未注册时 Close 不应调用 Unregister
	if err := l.Close(); err != nil {
		t.Fatalf("Close 失败: %v", err)
	}
	if b.unregisterCalls != 0 {
		t.Errorf("未注册时不应调用 Unregister, 实际 %d", b.unregisterCalls)
	}
	t.Logf("冲突错误: %v", err)
}

// 环境错误不能被误报为热键冲突
func TestRegisterEnvironmentErrorNotConflict(t *testing.T) {
	cases := []error{
		ErrNoDisplay,
		errors.New("hotkey: unsupported key '?'"),
	}
	for _, cause := range cases {
		b := newMockBackend()
		b.registerErr = cause
		l := NewListenerWithBackend(Default, b)

		err := l.Register()
		if err == nil {
			t.Fatalf("%v: 期望返回错误", cause)
		}
		if errors.Is(err, ErrHotkeyConflict) {
			t.Errorf("%v: 不应包装为 ErrHotkeyConflict: %v", cause, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("应保留原始错误 %v, 实际 %v", cause, err)
		}
		if l.Registered() {
			t.Error("注册失败后不应为已注册状态")
		}
	}
}
