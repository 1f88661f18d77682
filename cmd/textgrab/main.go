package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zoeyai/textgrab/internal/app"
	"github.com/zoeyai/textgrab/internal/logger"
	"github.com/zoeyai/textgrab/pkg/config"
	"github.com/zoeyai/textgrab/pkg/extract"
	"github.com/zoeyai/textgrab/pkg/hotkey"
	"github.com/zoeyai/textgrab/pkg/input"
	"github.com/zoeyai/textgrab/pkg/permissions"
	"github.com/zoeyai/textgrab/pkg/process"
	"github.com/zoeyai/textgrab/pkg/uia"
	"golang.design/x/hotkey/mainthread"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// macOS 的热键事件必须在主线程上处理，其他平台 mainthread.Init 直接调用 fn
func main() {
	code := app.ExitFatal
	mainthread.Init(func() { code = run() })
	os.Exit(code)
}

func run() int {
	// 命令行参数
	var (
		logLevel    = flag.String("log-level", "", "日志级别 (debug/info/warn/error)")
		logFile     = flag.String("log-file", "", "同时写入的日志文件")
		timestamps  = flag.Bool("timestamps", false, "日志行前输出时间")
		noEcho      = flag.Bool("no-echo", false, "复制成功后不在控制台回显文本")
		saveConfig  = flag.Bool("save", false, "保存配置到本地")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		return app.ExitOK
	}
	if *showHelp {
		printHelp()
		return app.ExitOK
	}

	// 加载配置
	settings, err := config.Load()
	if err != nil {
		fmt.Printf("[Warn] 加载配置失败: %v\n", err)
	}

	// 命令行参数优先级高于配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			settings.LogLevel = *logLevel
		case "log-file":
			settings.LogFile = *logFile
		case "timestamps":
			settings.Timestamps = *timestamps
		case "no-echo":
			settings.EchoText = !*noEcho
		}
	})

	if *saveConfig {
		if err := config.Save(settings); err != nil {
			fmt.Printf("[Warn] 保存配置失败: %v\n", err)
		} else {
			fmt.Printf("[Info] 配置已保存到 %s\n", config.GetDefaultManager().GetConfigFile())
		}
	}

	log := logger.Default()
	log.SetLevel(logger.ParseLevel(settings.LogLevel))
	log.SetTimestamps(settings.Timestamps)
	if settings.LogFile != "" {
		if err := log.SetFile(true, settings.LogFile); err != nil {
			log.Warn("%v", err)
		}
	}
	defer log.Close()

	// macOS 权限检查
	if status := permissions.CheckPermissions(); !status.Accessibility {
		log.Warn("缺少辅助功能权限，全局热键和鼠标位置将不可用")
		log.Warn("请在 系统设置 > 隐私与安全性 > 辅助功能 中授权，授权后需要重启程序")
		permissions.OpenAccessibilitySettings()
	}

	if err := input.EnableDPIAwareness(); err != nil {
		log.Debug("DPI awareness: %v", err)
	}

	listener, err := hotkey.NewListener(hotkey.Default)
	if err != nil {
		log.Error("Failed to register hotkey: %v", err)
		return app.ExitFatal
	}

	a := app.New(app.Options{
		Version:   Version,
		Log:       log,
		Listener:  listener,
		Extractor: extract.NewDefault(extract.WithEcho(settings.EchoText), extract.WithLogger(log)),
		InitCOM:   uia.Initialize,
		Grace:     settings.QuitGrace(),
		Instances: process.FindOtherInstances,
	})
	return a.Run()
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("textgrab v%s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("textgrab - 按热键提取鼠标下方 UI 元素的文本并复制到剪贴板")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  textgrab [选项]")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  -log-level string   日志级别 (debug/info/warn/error)")
	fmt.Println("  -log-file string    同时写入的日志文件")
	fmt.Println("  -timestamps         日志行前输出时间")
	fmt.Println("  -no-echo            复制成功后不在控制台回显文本")
	fmt.Println("  -save               保存配置到本地")
	fmt.Println("  -version            显示版本信息")
	fmt.Println("  -help               显示帮助信息")
	fmt.Println()
	fmt.Printf("热键: %s (固定)\n", hotkey.Default)
	fmt.Printf("配置文件位置: %s\n", config.GetDefaultManager().GetConfigFile())
}
