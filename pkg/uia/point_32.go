//go:build windows && (386 || arm)

package uia

// pointArgs 按值传递 POINT：32 位 ABI 下拆成两个参数
func pointArgs(x, y int32) []uintptr {
	return []uintptr{uintptr(uint32(x)), uintptr(uint32(y))}
}
