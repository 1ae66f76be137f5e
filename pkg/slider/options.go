// Package slider 实现水平滑动条控件的核心引擎
//
// 引擎由四部分组成：
//   - InteractionTracker：聚合按下/拖拽/悬停交互，输出"是否强调"信号
//   - Measure / Place：两阶段布局，计算滑槽与滑块的尺寸和偏移
//   - Arbiter：按优先级抢占的拖拽会话仲裁器，串行化对累加器的修改
//   - Controller：组合以上部分，维护像素累加器并回调宿主
//
// 引擎不做任何绘制，也不持有权威的滑块值（值由宿主持有，通过回调提出新值）。
// 所有像素单位均为 float64 逻辑像素。
package slider

// Options 滑动条的可配置参数
// 零值不可用，请从 DefaultOptions() 开始修改
type Options struct {
	// ThumbDiameter 滑块直径（像素）
	ThumbDiameter float64
	// ThumbInnerInset 滑块内部白色圆盘的内缩距离（像素）
	ThumbInnerInset float64
	// TrackThickness 滑槽线宽（像素）
	TrackThickness float64
	// MinTouchTarget 最小可交互区域边长（像素），命中检测使用
	MinTouchTarget float64
	// MinWidth / MinHeight 控件的最小尺寸
	MinWidth  float64
	MinHeight float64

	// FlatElevation 无交互时的阴影高度
	FlatElevation float64
	// EmphasizedElevation 按下或拖拽时的阴影高度
	EmphasizedElevation float64
}

// DefaultOptions 返回默认参数
// 滑块 20px，滑槽 4px，最小交互区域 48px，阴影高度 1 / 4
func DefaultOptions() Options {
	return Options{
		ThumbDiameter:       20,
		ThumbInnerInset:     4,
		TrackThickness:      4,
		MinTouchTarget:      48,
		MinWidth:            20,
		MinHeight:           20,
		FlatElevation:       1,
		EmphasizedElevation: 4,
	}
}

// sanitized 把负数或 NaN 参数修正为 0
func (o Options) sanitized() Options {
	fix := func(v float64) float64 {
		if v != v || v < 0 {
			return 0
		}
		return v
	}
	o.ThumbDiameter = fix(o.ThumbDiameter)
	o.ThumbInnerInset = fix(o.ThumbInnerInset)
	o.TrackThickness = fix(o.TrackThickness)
	o.MinTouchTarget = fix(o.MinTouchTarget)
	o.MinWidth = fix(o.MinWidth)
	o.MinHeight = fix(o.MinHeight)
	o.FlatElevation = fix(o.FlatElevation)
	o.EmphasizedElevation = fix(o.EmphasizedElevation)
	return o
}
