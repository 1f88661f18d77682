//go:build !windows && !darwin && !linux

package hotkey

import "errors"

type realBackend struct{}

func newRealBackend(c Chord) (*realBackend, error) {
	return nil, errors.New("hotkey: global hotkeys are not supported on this platform")
}

func (r *realBackend) Register() error          { return nil }
func (r *realBackend) Unregister() error        { return nil }
func (r *realBackend) Keydown() <-chan struct{} { return nil }
