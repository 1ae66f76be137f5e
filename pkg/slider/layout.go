package slider

import (
	"math"

	"github.com/decker502/customslider/pkg/utils"
)

// 两阶段布局：Measure 计算子元素尺寸，Place 计算子元素偏移
//
// 坐标系：控件左上角为原点，X 向右，Y 向下，单位为逻辑像素

// Point 二维坐标
type Point struct {
	X, Y float64
}

// Size 尺寸
type Size struct {
	Width, Height float64
}

// Constraints 布局约束
// MaxWidth / MaxHeight 可为 +Inf 表示不受限
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// FixedWidth 返回宽度固定、高度不受限的约束
func FixedWidth(width float64) Constraints {
	width = utils.ClampMin(width, 0)
	return Constraints{
		MinWidth:  0,
		MaxWidth:  width,
		MinHeight: 0,
		MaxHeight: math.Inf(1),
	}
}

// Offset 水平方向上增减可用宽度（horizontal 为负表示缩减），结果不小于 0
func (c Constraints) Offset(horizontal float64) Constraints {
	c.MinWidth = utils.ClampMin(c.MinWidth+horizontal, 0)
	c.MaxWidth = utils.ClampMin(c.MaxWidth+horizontal, 0)
	return c
}

// Constrain 将尺寸限制在约束范围内
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  coerceIn(s.Width, c.MinWidth, c.MaxWidth),
		Height: coerceIn(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// RequiredMin 把最小尺寸并入约束，结果不超出原有的最大值
func (c Constraints) RequiredMin(minWidth, minHeight float64) Constraints {
	c.MinWidth = coerceIn(minWidth, c.MinWidth, c.MaxWidth)
	c.MinHeight = coerceIn(minHeight, c.MinHeight, c.MaxHeight)
	return c
}

// HasBoundedWidth 最大宽度是否有限
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// Sizes 测量结果
type Sizes struct {
	Thumb Size
	Track Size
}

// Measure 第一阶段：测量滑块和滑槽
//
// 规则：
//  1. 滑块按固有直径测量，不会为给滑槽让位而缩小
//  2. 滑槽的可用宽度扣除滑块宽度，最小高度放宽为 0；
//     滑槽填满剩余宽度，高度为线宽
//
// 容器比滑块还窄时，滑槽宽度为 0，不会出现负值
func Measure(c Constraints, opts Options) Sizes {
	opts = opts.sanitized()
	thumb := Size{Width: opts.ThumbDiameter, Height: opts.ThumbDiameter}

	trackConstraints := c.Offset(-thumb.Width)
	trackConstraints.MinHeight = 0

	trackWidth := trackConstraints.MaxWidth
	if !trackConstraints.HasBoundedWidth() {
		trackWidth = trackConstraints.MinWidth
	}
	track := trackConstraints.Constrain(Size{Width: trackWidth, Height: opts.TrackThickness})

	return Sizes{Thumb: thumb, Track: track}
}

// TrackGeometry 滑槽线段几何（控件坐标系）
type TrackGeometry struct {
	// 非激活段：整条滑槽
	InactiveStart, InactiveEnd Point
	// 激活段：从滑槽起点到当前值
	ActiveStart, ActiveEnd Point
	// StrokeWidth 线宽
	StrokeWidth float64
}

// Placement 第二阶段的放置结果
type Placement struct {
	// Size 汇报给宿主的控件尺寸：宽度为约束的最大宽度，高度为滑块高度
	Size Size
	// ContentHeight 内容高度 = max(滑块高度, 滑槽高度)，用于垂直居中
	ContentHeight float64

	Thumb Size
	Track Size

	// TrackOffset / ThumbOffset 子元素左上角偏移
	TrackOffset Point
	ThumbOffset Point

	// ThumbCenter 滑块中心
	ThumbCenter Point
	// TrackLine 滑槽线段
	TrackLine TrackGeometry

	// Value 布局时使用的值（已限幅）
	Value float64
}

// Place 第二阶段：根据测量结果和当前值放置子元素
//
//   - 滑槽左移半个滑块：TrackOffset.X = thumbWidth / 2
//   - 滑块在滑槽测量宽度上移动：ThumbOffset.X = round(trackWidth * value)
//   - 子元素垂直居中于 max(thumbHeight, trackHeight)
//   - 汇报宽度为约束的最大宽度（未扣减），高度只取滑块高度
func Place(c Constraints, sizes Sizes, value float64) Placement {
	value = utils.Clamp01(value)
	thumb, track := sizes.Thumb, sizes.Track

	contentHeight := math.Max(thumb.Height, track.Height)

	trackOffset := Point{
		X: thumb.Width / 2,
		Y: (contentHeight - track.Height) / 2,
	}
	thumbOffset := Point{
		X: math.Round(track.Width * value),
		Y: (contentHeight - thumb.Height) / 2,
	}

	width := c.MaxWidth
	if !c.HasBoundedWidth() {
		width = track.Width + thumb.Width
	}

	centerY := trackOffset.Y + track.Height/2
	start := Point{X: trackOffset.X, Y: centerY}
	end := Point{X: trackOffset.X + track.Width, Y: centerY}

	return Placement{
		Size:          Size{Width: width, Height: thumb.Height},
		ContentHeight: contentHeight,
		Thumb:         thumb,
		Track:         track,
		TrackOffset:   trackOffset,
		ThumbOffset:   thumbOffset,
		ThumbCenter: Point{
			X: thumbOffset.X + thumb.Width/2,
			Y: thumbOffset.Y + thumb.Height/2,
		},
		TrackLine: TrackGeometry{
			InactiveStart: start,
			InactiveEnd:   end,
			ActiveStart:   start,
			ActiveEnd:     Point{X: utils.Lerp(value, start.X, end.X), Y: centerY},
			StrokeWidth:   track.Height,
		},
		Value: value,
	}
}

// Layout 在给定容器宽度下完成测量和放置，先并入 Options 的最小尺寸
func Layout(containerWidth, value float64, opts Options) Placement {
	opts = opts.sanitized()
	c := FixedWidth(containerWidth).RequiredMin(opts.MinWidth, opts.MinHeight)
	return Place(c, Measure(c, opts), value)
}

// HitTest 判断控件坐标系中的点是否落在可交互区域内
// 区域至少为 MinTouchTarget 见方，超出部分在控件两侧/上下均分
func (p Placement) HitTest(x, y float64, opts Options) bool {
	w := math.Max(p.Size.Width, opts.MinTouchTarget)
	h := math.Max(p.Size.Height, opts.MinTouchTarget)
	left := (p.Size.Width - w) / 2
	top := (p.Size.Height - h) / 2
	return x >= left && x <= left+w && y >= top && y <= top+h
}

func coerceIn(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
