package components

// PositionComponent 屏幕位置（控件左上角）
type PositionComponent struct {
	X float64
	Y float64
}
