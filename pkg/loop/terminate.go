package loop

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultGrace 发出退出事件后等待循环收尾的时间
const DefaultGrace = time.Second

// quitSignals 触发正常退出的信号
//
// Go 在 Windows 上把控制台事件映射为信号：CTRL_C 与 CTRL_BREAK 都是
// os.Interrupt，CTRL_CLOSE、CTRL_LOGOFF、CTRL_SHUTDOWN 都是 syscall.SIGTERM，
// 因此这五种事件都走同一条退出路径，无法区分。
var quitSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Terminator 把中断/关闭信号转换为循环退出
type Terminator struct {
	loop  *Loop
	grace time.Duration
	sigCh chan os.Signal
	stop  chan struct{}
}

// Install 注册信号处理
func Install(l *Loop, grace time.Duration) (*Terminator, error) {
	if l == nil {
		return nil, errors.New("loop: cannot install termination handler without a loop")
	}
	t := &Terminator{
		loop:  l,
		grace: grace,
		sigCh: make(chan os.Signal, 1),
		stop:  make(chan struct{}),
	}
	signal.Notify(t.sigCh, quitSignals...)
	go t.watch()
	return t, nil
}

func (t *Terminator) watch() {
	for {
		select {
		case <-t.stop:
			return
		case <-t.sigCh:
			t.handle()
		}
	}
}

// handle 请求退出，并等待循环收尾或 grace 超时
func (t *Terminator) handle() {
	t.loop.PostQuit()
	// 给循环留出注销热键、释放 COM 的时间
	select {
	case <-t.loop.Done():
	case <-time.After(t.grace):
	}
}

// Stop 取消信号订阅，可重复调用
func (t *Terminator) Stop() {
	select {
	case <-t.stop:
		return
	default:
	}
	signal.Stop(t.sigCh)
	close(t.stop)
}
