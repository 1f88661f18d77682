// Package loop 实现单线程事件循环：热键事件同步分发，收到退出事件后结束
package loop

import (
	"sync"
	"sync/atomic"

	"github.com/zoeyai/textgrab/internal/logger"
)

// State 循环状态，只有 Running → Terminating 一种转换
type State int32

const (
	StateRunning State = iota
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// EventKind 事件类型
type EventKind int

const (
	EventOther EventKind = iota
	EventHotkey
	EventQuit
)

// Event 投递给循环的事件
type Event struct {
	Kind EventKind
	// ID 热键绑定 ID，仅 EventHotkey 使用
	ID int
}

// Loop 事件循环
type Loop struct {
	hotkeyID int
	onHotkey func()
	log      *logger.Logger

	queue    chan Event
	done     chan struct{}
	state    atomic.Int32
	quitOnce sync.Once
	runOnce  sync.Once
}

// New 创建事件循环，匹配 hotkeyID 的热键事件会在循环线程上调用 onHotkey
func New(hotkeyID int, onHotkey func(), log *logger.Logger) *Loop {
	if log == nil {
		log = logger.Default()
	}
	return &Loop{
		hotkeyID: hotkeyID,
		onHotkey: onHotkey,
		log:      log,
		queue:    make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// State 当前状态
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Done 循环退出后关闭
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post 投递事件；循环已结束时返回 false
func (l *Loop) Post(e Event) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- e:
		return true
	case <-l.done:
		return false
	}
}

// PostQuit 投递退出事件，多次调用只投递一次
func (l *Loop) PostQuit() {
	l.quitOnce.Do(func() {
		l.Post(Event{Kind: EventQuit})
	})
}

// Attach 把按键通道转发为热键事件，src 关闭或循环结束时停止
func (l *Loop) Attach(id int, src <-chan struct{}) {
	go func() {
		for {
			select {
			case <-l.done:
				return
			case _, ok := <-src:
				if !ok {
					return
				}
				if !l.Post(Event{Kind: EventHotkey, ID: id}) {
					return
				}
			}
		}
	}()
}

// Run 阻塞处理事件直到收到退出事件，只能调用一次
func (l *Loop) Run() {
	l.runOnce.Do(l.run)
}

func (l *Loop) run() {
	defer close(l.done)

	for ev := range l.queue {
		switch ev.Kind {
		case EventQuit:
			l.state.Store(int32(StateTerminating))
			return
		case EventHotkey:
			if ev.ID != l.hotkeyID {
				l.log.Debug("ignoring hotkey event with id %d", ev.ID)
				continue
			}
			l.dispatch()
		default:
			// 其他事件忽略
		}
	}
}

// dispatch 同步执行一次热键处理，panic 只影响本次激活
func (l *Loop) dispatch() {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("Activation aborted: %v", r)
		}
	}()
	if l.onHotkey != nil {
		l.onHotkey()
	}
}
