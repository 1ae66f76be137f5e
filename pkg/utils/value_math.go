package utils

import "math"

// 数值工具函数
//
// 滑动条把像素位移换算为 0.0 ~ 1.0 的归一化值，相关的插值、归一化、
// 限幅以及缓动曲线都放在这里，均为无状态纯函数。

// Lerp 线性插值
// t=0 返回 start，t=1 返回 stop；不做限幅，t 超出 [0,1] 时按直线外推
func Lerp(t, start, stop float64) float64 {
	return start + (stop-start)*t
}

// Norm 把 value 归一化到 [0,1]
//
// 公式：clamp(value / (stop - start), 0, 1)
// 注意：分子不减去 start，这是滑动条累加器的既有语义（累加器本身从 0 起算）。
//
// 退化情况：
//   - stop == start（零跨度）返回 0
//   - value 为 NaN 返回 0
func Norm(value, start, stop float64) float64 {
	span := stop - start
	if span == 0 {
		return 0
	}
	return Clamp01(value / span)
}

// Clamp01 将值限制在 [0,1]，NaN 视为 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampMin 将值限制为不小于 min
func ClampMin(v, min float64) float64 {
	if v < min || math.IsNaN(v) {
		return min
	}
	return v
}

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于滑块吸附动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}
