//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按触摸设备处理（用于本地调试操作提示）
const MobileEmulateEnv = "SLIDER_MOBILE_EMULATE"

// IsMobile 是否按触摸设备处理输入提示
// 桌面端编译时默认返回 false
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
