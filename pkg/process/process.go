// Package process 提供进程查询功能，用于诊断热键冲突
package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo 进程信息
type ProcessInfo struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// CurrentName 当前进程的可执行文件名
func CurrentName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return filepath.Base(exe)
}

// FindByName 按名称精确查找进程 (不区分大小写)
func FindByName(name string) ([]ProcessInfo, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	var matches []ProcessInfo
	for _, pid := range pids {
		proc, err := process.NewProcess(pid)
		if err != nil {
			continue
		}

		procName, err := proc.Name()
		if err != nil || !strings.EqualFold(procName, name) {
			continue
		}

		exe, _ := proc.Exe()
		matches = append(matches, ProcessInfo{
			PID:  int(pid),
			Name: procName,
			Path: exe,
		})
	}

	return matches, nil
}

// FindOtherInstances 查找与当前进程同名的其他进程（排除自身）
func FindOtherInstances() ([]ProcessInfo, error) {
	all, err := FindByName(CurrentName())
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	others := all[:0]
	for _, p := range all {
		if p.PID != self {
			others = append(others, p)
		}
	}
	return others, nil
}
