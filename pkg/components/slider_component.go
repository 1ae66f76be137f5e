package components

import (
	"image/color"

	"github.com/decker502/customslider/pkg/slider"
)

// SliderComponent 滑动条组件
// 用于音量控制等需要滑动调整数值的UI元素
//
// 值由组件持有（宿主），Controller 只根据它布局并通过回调提出新值
type SliderComponent struct {
	// ID 持久化键
	ID string
	// Label 标签文字
	Label string

	// Width 容器宽度（像素），每帧作为布局约束传给 Controller
	Width float64

	// 当前值（0.0 - 1.0）
	Value float64
	// DefaultValue 右键复位时吸附到的值
	DefaultValue float64

	// Controller 控件引擎
	Controller *slider.Controller
	// Interactions 交互事件源，Controller 已订阅
	Interactions *slider.InteractionSource
	// Placement 最近一次布局结果
	Placement slider.Placement

	// 拖拽状态
	Session      *slider.Session // 已授予的拖拽会话
	Pending      *slider.Ticket  // 排队中的拖拽请求
	PressToken   slider.Interaction
	DragToken    slider.Interaction
	HoverToken   slider.Interaction
	IsPressed    bool    // 指针在本控件上按下且尚未释放
	IsDragging   bool    // 已获得会话并正在拖拽
	IsHovered    bool    // 指针悬停
	LastPointerX float64 // 上一帧指针 X，用于计算位移
	RightPressed bool    // 右键按下状态（用于边沿检测）

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调
	OnDragStopped func(value float64) // 拖拽结束（释放或被取消）时的回调
}

// SliderStyleComponent 滑动条外观
type SliderStyleComponent struct {
	ActiveTrackColor   color.Color
	InactiveTrackColor color.Color
	ThumbColor         color.Color
	ThumbInnerColor    color.Color
	ShadowColor        color.Color
	LabelColor         color.Color
}
