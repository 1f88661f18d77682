//go:build windows && (amd64 || arm64)

package uia

// pointArgs 按值传递 POINT：64 位 ABI 下 8 字节结构体占一个寄存器
func pointArgs(x, y int32) []uintptr {
	return []uintptr{uintptr(uint32(x)) | uintptr(uint32(y))<<32}
}
