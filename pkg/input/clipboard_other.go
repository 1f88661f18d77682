//go:build !windows

package input

import "github.com/go-vgo/robotgo"

// WriteText 复制到剪贴板
func (c *Clipboard) WriteText(text string) error {
	return robotgo.WriteAll(text)
}

// ReadText 读取剪贴板
func (c *Clipboard) ReadText() (string, error) {
	return robotgo.ReadAll()
}
