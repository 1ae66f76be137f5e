// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或单指触摸）
func IsPointerPressed() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsSecondaryPressed 检查次级指针是否按下（鼠标右键或双指触摸）
func IsSecondaryPressed() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) >= 2 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

// GetWheel 获取本帧滚轮位移
func GetWheel() (float64, float64) {
	return ebiten.Wheel()
}

// ============================================================================
// 指针跟踪器 - 把逐帧的原始指针状态转换为按下/拖拽/释放边沿和位移
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// PointerFrame 一帧的指针信息
type PointerFrame struct {
	X, Y    int
	Pressed bool
	State   DragState
	// DeltaX 相对上一帧的水平位移，只在拖拽中非零
	DeltaX int
	// SecondaryJustPressed 次级指针本帧刚按下
	SecondaryJustPressed bool
	// WheelX / WheelY 本帧滚轮位移
	WheelX, WheelY float64
}

// JustPressed 本帧刚按下
func (f PointerFrame) JustPressed() bool {
	return f.State == DragStateStarted
}

// JustReleased 本帧刚释放
func (f PointerFrame) JustReleased() bool {
	return f.State == DragStateEnded
}

// PointerTracker 指针跟踪器
// 每帧调用一次 Sample，不直接访问 ebiten，便于测试
type PointerTracker struct {
	state         DragState
	lastX, lastY  int
	secondaryDown bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{state: DragStateNone}
}

// State 当前拖拽状态
func (pt *PointerTracker) State() DragState {
	return pt.state
}

// Sample 输入本帧的原始指针状态，返回边沿和位移
func (pt *PointerTracker) Sample(pressed bool, x, y int, secondary bool, wheelX, wheelY float64) PointerFrame {
	frame := PointerFrame{X: x, Y: y, Pressed: pressed, WheelX: wheelX, WheelY: wheelY}

	switch pt.state {
	case DragStateNone, DragStateEnded:
		if pressed {
			pt.state = DragStateStarted
		} else {
			pt.state = DragStateNone
		}
	case DragStateStarted, DragStateDragging:
		if pressed {
			pt.state = DragStateDragging
			frame.DeltaX = x - pt.lastX
		} else {
			pt.state = DragStateEnded
		}
	}
	frame.State = pt.state

	frame.SecondaryJustPressed = secondary && !pt.secondaryDown
	pt.secondaryDown = secondary
	pt.lastX, pt.lastY = x, y
	return frame
}

// Reset 重置跟踪器
func (pt *PointerTracker) Reset() {
	*pt = PointerTracker{state: DragStateNone}
}
