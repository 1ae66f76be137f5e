package components

import "github.com/decker502/customslider/pkg/slider"

// SnapComponent 程序化吸附动画
//
// 以高优先级会话驱动滑块在 Duration 秒内缓动到 Target，
// 会打断正在进行的用户拖拽。动画结束后组件被移除。
type SnapComponent struct {
	Target   float64 // 目标值 0.0 ~ 1.0
	Duration float64 // 动画时长（秒），0 表示立即完成

	From    float64 // 授予会话时的起始值
	Elapsed float64 // 已播放时长（秒）

	Ticket  *slider.Ticket
	Session *slider.Session
}
