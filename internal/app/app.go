// Package app 按顺序启动各组件并运行事件循环
package app

import (
	"errors"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/zoeyai/textgrab/internal/logger"
	"github.com/zoeyai/textgrab/pkg/extract"
	"github.com/zoeyai/textgrab/pkg/hotkey"
	"github.com/zoeyai/textgrab/pkg/loop"
	"github.com/zoeyai/textgrab/pkg/process"
)

// 退出码
const (
	ExitOK    = 0
	ExitFatal = 1
)

// HotkeyListener 全局热键绑定
type HotkeyListener interface {
	Register() error
	Keydown() <-chan struct{}
	ID() int
	Chord() hotkey.Chord
	Close() error
}

// Activator 执行一次提取
type Activator interface {
	Activate() extract.Outcome
}

// Options 启动参数
type Options struct {
	Version   string
	Log       *logger.Logger
	Listener  HotkeyListener
	Extractor Activator
	// InitCOM 在锁定的 OS 线程上初始化无障碍子系统，返回释放函数
	InitCOM func() (func(), error)
	// Grace 收到退出信号后等待循环收尾的时间
	Grace time.Duration
	// Instances 热键冲突时用于诊断的其他实例查询，可为 nil
	Instances func() ([]process.ProcessInfo, error)
}

// App 后台提取程序
type App struct {
	opts    Options
	loop    *loop.Loop
	started chan struct{}
}

// New 创建 App
func New(opts Options) *App {
	if opts.Log == nil {
		opts.Log = logger.Default()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	a := &App{opts: opts, started: make(chan struct{})}

	id := hotkey.BindingID
	if opts.Listener != nil {
		id = opts.Listener.ID()
	}
	a.loop = loop.New(id, a.onHotkey, opts.Log)
	return a
}

// Started 事件循环开始后关闭
func (a *App) Started() <-chan struct{} {
	return a.started
}

// Quit 请求退出事件循环
func (a *App) Quit() {
	a.loop.PostQuit()
}

func (a *App) onHotkey() {
	log := a.opts.Log
	log.Raw("")
	log.Info("Hotkey pressed. Extracting text...")
	outcome := a.opts.Extractor.Activate()
	log.Debug("activation finished: %s", outcome)
}

// Run 启动并阻塞直到退出，返回进程退出码
//
// 启动顺序：信号处理 → COM → 热键 → 事件循环。
// 任一步失败都输出一行 [Error] 并返回 ExitFatal，已获取的资源按逆序释放。
func (a *App) Run() int {
	log := a.opts.Log

	term, err := loop.Install(a.loop, a.opts.Grace)
	if err != nil {
		log.Error("Could not set control handler: %v", err)
		return ExitFatal
	}
	defer term.Stop()

	// COM 套间与线程绑定，热键处理也在这个线程上执行
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	uninit, err := a.opts.InitCOM()
	if err != nil {
		log.Error("Failed to initialize COM: %v", err)
		return ExitFatal
	}
	releaseCOM := sync.OnceFunc(uninit)
	defer releaseCOM()

	listener := a.opts.Listener
	if err := listener.Register(); err != nil {
		if !errors.Is(err, hotkey.ErrHotkeyConflict) {
			log.Error("Failed to register hotkey: %v", err)
			return ExitFatal
		}
		log.Error("Failed to register hotkey. It might be in use by another application.")
		log.Debug("%v", err)
		a.reportOtherInstances()
		return ExitFatal
	}
	defer listener.Close()

	a.printBanner()

	a.loop.Attach(listener.ID(), listener.Keydown())
	close(a.started)
	a.loop.Run()

	if err := listener.Close(); err != nil {
		log.Warn("Failed to unregister hotkey: %v", err)
	}
	releaseCOM()
	log.Raw("")
	log.Info("Hotkey unregistered. Program exited.")
	return ExitOK
}

// reportOtherInstances 热键冲突时提示可能占用热键的本程序其他实例
func (a *App) reportOtherInstances() {
	if a.opts.Instances == nil {
		return
	}
	others, err := a.opts.Instances()
	if err != nil {
		a.opts.Log.Debug("instance lookup failed: %v", err)
		return
	}
	for _, p := range others {
		a.opts.Log.Error("Another instance is already running: %s (PID %d)", p.Name, p.PID)
	}
}

func (a *App) printBanner() {
	log := a.opts.Log
	chord := strings.ReplaceAll(a.opts.Listener.Chord().String(), "+", " + ")

	log.Raw("========================================")
	log.Raw("  textgrab v" + a.opts.Version)
	log.Raw("========================================")
	log.Raw("程序已在后台运行...")
	log.Raw("请按 [" + chord + "] 来提取鼠标下方的文本。")
	log.Raw("请在此窗口中按 [Ctrl + C] 或直接关闭窗口来退出程序。")
}
