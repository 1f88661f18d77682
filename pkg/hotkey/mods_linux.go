//go:build linux

package hotkey

import (
	"os"

	"golang.design/x/hotkey"
)

// X11 上 Alt 通常映射到 Mod1
func platformModifiers(m Modifier) []hotkey.Modifier {
	var mods []hotkey.Modifier
	if m&ModCtrl != 0 {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m&ModAlt != 0 {
		mods = append(mods, hotkey.Mod1)
	}
	if m&ModShift != 0 {
		mods = append(mods, hotkey.ModShift)
	}
	return mods
}

// checkEnvironment 没有 X11 显示时无法抓取按键
func checkEnvironment() error {
	if os.Getenv("DISPLAY") == "" {
		return ErrNoDisplay
	}
	return nil
}
