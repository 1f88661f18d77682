//go:build !darwin

// Package permissions 提供系统权限检查功能
package permissions

// PermissionStatus 权限状态
type PermissionStatus struct {
	Accessibility bool `json:"accessibility"`
}

// CheckPermissions 非 macOS 系统不需要额外授权
func CheckPermissions() *PermissionStatus {
	return &PermissionStatus{Accessibility: true}
}

// OpenAccessibilitySettings 非 macOS 系统空实现
func OpenAccessibilitySettings() {}
