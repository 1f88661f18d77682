// Package logger 提供统一的控制台/文件日志工具
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Level 日志级别
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tag 控制台行前缀，例如 [Info]
func (l Level) Tag() string {
	switch l {
	case DEBUG:
		return "[Debug]"
	case INFO:
		return "[Info]"
	case WARN:
		return "[Warn]"
	case ERROR:
		return "[Error]"
	default:
		return "[?]"
	}
}

// ParseLevel 解析日志级别字符串
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DEBUG
	case "INFO", "info":
		return INFO
	case "WARN", "warn", "WARNING", "warning":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

// Logger 日志记录器
type Logger struct {
	mu         sync.Mutex
	level      Level
	enabled    bool
	console    bool
	file       bool
	timestamps bool
	filePath   string
	stdout     io.Writer
	stderr     io.Writer
	logger     *log.Logger
	// errLogger 承载 ERROR 级别，控制台部分写到 stderr
	errLogger *log.Logger
	fileOut   *os.File
}

// 全局默认 logger
var defaultLogger = New()

// New 创建新的 Logger 实例，[Error] 行输出到 stderr，其余输出到 stdout
func New() *Logger {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriter 所有级别共用一个控制台输出（测试中常用 bytes.Buffer）
func NewWithWriter(w io.Writer) *Logger {
	return NewWithWriters(w, w)
}

// NewWithWriters 分别指定普通输出和错误输出
func NewWithWriters(stdout, stderr io.Writer) *Logger {
	return &Logger{
		level:     INFO,
		enabled:   true,
		console:   true,
		file:      false,
		stdout:    stdout,
		stderr:    stderr,
		logger:    log.New(stdout, "", 0),
		errLogger: log.New(stderr, "", 0),
	}
}

// Default 获取默认 logger
func Default() *Logger {
	return defaultLogger
}

// SetLevel 设置日志级别
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel 获取当前日志级别
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetEnabled 设置是否启用日志
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// SetTimestamps 设置是否在每行前输出 15:04:05 时间戳
func (l *Logger) SetTimestamps(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timestamps = enabled
}

// SetConsole 设置是否输出到控制台
func (l *Logger) SetConsole(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = enabled
	l.updateOutput()
}

// SetFile 设置是否输出到文件（追加写入）
func (l *Logger) SetFile(enabled bool, path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// 关闭旧文件
	if l.fileOut != nil {
		l.fileOut.Close()
		l.fileOut = nil
	}

	l.file = enabled
	l.filePath = path

	if enabled && path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.file = false
			l.updateOutput()
			return fmt.Errorf("无法打开日志文件: %w", err)
		}
		l.fileOut = f
	}

	l.updateOutput()
	return nil
}

func (l *Logger) updateOutput() {
	l.logger.SetOutput(l.combine(l.stdout))
	l.errLogger.SetOutput(l.combine(l.stderr))
}

// combine 组合控制台与日志文件输出
func (l *Logger) combine(console io.Writer) io.Writer {
	var writers []io.Writer

	if l.console {
		writers = append(writers, console)
	}
	if l.file && l.fileOut != nil {
		writers = append(writers, l.fileOut)
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

// emit 内部输出方法，tag 为空时输出原始行
func (l *Logger) emit(level Level, tag string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level {
		return
	}

	line := msg
	if tag != "" {
		line = tag + " " + msg
	}
	if l.timestamps {
		line = time.Now().Format("15:04:05") + " " + line
	}
	if level >= ERROR {
		l.errLogger.Print(line)
		return
	}
	l.logger.Print(line)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.emit(level, level.Tag(), fmt.Sprintf(format, args...))
}

// Debug 输出 DEBUG 级别日志
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info 输出 INFO 级别日志
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// OK 输出成功状态行，级别等同 INFO
func (l *Logger) OK(format string, args ...interface{}) {
	l.emit(INFO, "[OK]", fmt.Sprintf(format, args...))
}

// Warn 输出 WARN 级别日志
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error 输出 ERROR 级别日志
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Raw 原样输出一行（不带级别前缀），级别等同 INFO
func (l *Logger) Raw(text string) {
	l.emit(INFO, "", text)
}

// Close 关闭 logger，释放资源
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileOut != nil {
		err := l.fileOut.Close()
		l.fileOut = nil
		l.file = false
		l.updateOutput()
		return err
	}
	return nil
}

// 包级别便捷函数
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.Info(format, args...) }
func OK(format string, args ...interface{})    { defaultLogger.OK(format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.Warn(format, args...) }
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
func Raw(text string)                          { defaultLogger.Raw(text) }
