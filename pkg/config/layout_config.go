package config

// 演示场景的布局常量
//
// 屏幕尺寸：480x320（逻辑像素），滑动条按行排列

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 480
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 320
)

const (
	// SliderRowX 滑动条左边缘 X 坐标
	SliderRowX = 40.0
	// SliderFirstRowY 第一行滑动条顶部 Y 坐标
	SliderFirstRowY = 60.0
	// SliderRowSpacing 行间距（含标签）
	SliderRowSpacing = 64.0
	// SliderDefaultWidth 滑动条默认容器宽度
	SliderDefaultWidth = 400.0
	// SliderLabelOffsetY 标签相对滑动条顶部的偏移
	SliderLabelOffsetY = -18.0
)

// CalculateSliderRowPosition 计算第 N 行滑动条的位置
//
// 参数：
//   - row: 行索引（从 0 开始）
//
// 返回：
//   - x, y: 滑动条左上角坐标
func CalculateSliderRowPosition(row int) (x, y float64) {
	if row < 0 {
		row = 0
	}
	return SliderRowX, SliderFirstRowY + float64(row)*SliderRowSpacing
}
