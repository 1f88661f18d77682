//go:build windows || darwin || linux

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

var letterKeys = map[rune]hotkey.Key{
	'A': hotkey.KeyA, 'B': hotkey.KeyB, 'C': hotkey.KeyC, 'D': hotkey.KeyD,
	'E': hotkey.KeyE, 'F': hotkey.KeyF, 'G': hotkey.KeyG, 'H': hotkey.KeyH,
	'I': hotkey.KeyI, 'J': hotkey.KeyJ, 'K': hotkey.KeyK, 'L': hotkey.KeyL,
	'M': hotkey.KeyM, 'N': hotkey.KeyN, 'O': hotkey.KeyO, 'P': hotkey.KeyP,
	'Q': hotkey.KeyQ, 'R': hotkey.KeyR, 'S': hotkey.KeyS, 'T': hotkey.KeyT,
	'U': hotkey.KeyU, 'V': hotkey.KeyV, 'W': hotkey.KeyW, 'X': hotkey.KeyX,
	'Y': hotkey.KeyY, 'Z': hotkey.KeyZ,
}

// realBackend 基于 golang.design/x/hotkey
//
// hotkey.Hotkey 在 Register 时才创建，避免构造阶段就启动平台线程。
type realBackend struct {
	mods      []hotkey.Modifier
	key       hotkey.Key
	hk        *hotkey.Hotkey
	keyCh     chan struct{}
	closeOnce sync.Once
}

func newRealBackend(c Chord) (*realBackend, error) {
	key, ok := letterKeys[c.Key]
	if !ok {
		return nil, fmt.Errorf("hotkey: unsupported key %q", c.Key)
	}
	return &realBackend{
		mods:  platformModifiers(c.Mods),
		key:   key,
		keyCh: make(chan struct{}, 4),
	}, nil
}

func (r *realBackend) Register() error {
	if err := checkEnvironment(); err != nil {
		return err
	}

	r.hk = hotkey.New(r.mods, r.key)
	if err := r.hk.Register(); err != nil {
		r.hk = nil
		return fmt.Errorf("%w: %v", ErrHotkeyConflict, err)
	}

	// 转发按键事件；缓冲满时丢弃连按
	src := r.hk.Keydown()
	go func() {
		for range src {
			select {
			case r.keyCh <- struct{}{}:
			default:
			}
		}
		r.closeOnce.Do(func() { close(r.keyCh) })
	}()
	return nil
}

func (r *realBackend) Unregister() error {
	if r.hk == nil {
		return nil
	}
	err := r.hk.Unregister()
	r.hk = nil
	return err
}

func (r *realBackend) Keydown() <-chan struct{} {
	return r.keyCh
}
