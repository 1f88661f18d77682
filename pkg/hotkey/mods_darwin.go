//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// macOS 上 Alt 即 Option
func platformModifiers(m Modifier) []hotkey.Modifier {
	var mods []hotkey.Modifier
	if m&ModCtrl != 0 {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m&ModAlt != 0 {
		mods = append(mods, hotkey.ModOption)
	}
	if m&ModShift != 0 {
		mods = append(mods, hotkey.ModShift)
	}
	return mods
}

func checkEnvironment() error { return nil }
