package slider

import (
	"context"
	"math"
	"sync"

	"github.com/decker502/customslider/pkg/utils"
)

// Geometry 最近一次布局得到的几何快照，用于解释后续的拖拽位移
type Geometry struct {
	ThumbWidth float64
	TotalWidth float64
}

// Bounds 累加器换算为归一化值时使用的像素边界
//
//	maxPx = max(totalWidth - thumbWidth/2, 0)
//	minPx = min(thumbWidth/2, maxPx)
func (g Geometry) Bounds() (minPx, maxPx float64) {
	maxPx = math.Max(g.TotalWidth-g.ThumbWidth/2, 0)
	minPx = math.Min(g.ThumbWidth/2, maxPx)
	return minPx, maxPx
}

// Controller 滑动条控制器
//
// 持有像素累加器和几何快照；累加器只能通过仲裁器授予的会话（DragScope）
// 或 DispatchRawDelta 修改。每次修改后把新的归一化值通过回调交给宿主。
//
// 回调只应当作通知使用，不得在回调中同步调用控制器或仲裁器。
type Controller struct {
	opts          Options
	onValueChange func(float64)

	mu        sync.Mutex
	geometry  Geometry
	rawOffset float64
	placement Placement

	arbiter *Arbiter
	tracker *InteractionTracker
}

// NewController 创建控制器
//
// 参数：
//   - opts: 控件参数
//   - onValueChange: 值改变回调，可为 nil
//
// 累加器从 0 开始，几何快照的滑块宽度取 opts.ThumbDiameter，总宽度为 0，
// 直到第一次 Measure
func NewController(opts Options, onValueChange func(float64)) *Controller {
	opts = opts.sanitized()
	c := &Controller{
		opts:          opts,
		onValueChange: onValueChange,
		geometry:      Geometry{ThumbWidth: opts.ThumbDiameter},
		tracker:       NewInteractionTracker(),
	}
	c.arbiter = NewArbiter(c.applyDelta)
	return c
}

// Options 控件参数
func (c *Controller) Options() Options {
	return c.opts
}

// SetOnValueChange 替换值改变回调
func (c *Controller) SetOnValueChange(fn func(float64)) {
	c.mu.Lock()
	c.onValueChange = fn
	c.mu.Unlock()
}

// Measure 布局一次并刷新几何快照
// 拖拽边界因此最多滞后一个布局周期
func (c *Controller) Measure(containerWidth, value float64) Placement {
	cons := FixedWidth(containerWidth).RequiredMin(c.opts.MinWidth, c.opts.MinHeight)
	sizes := Measure(cons, c.opts)
	p := Place(cons, sizes, value)

	c.mu.Lock()
	c.geometry = Geometry{ThumbWidth: sizes.Thumb.Width, TotalWidth: cons.MaxWidth}
	c.placement = p
	c.mu.Unlock()
	return p
}

// Placement 最近一次布局结果
func (c *Controller) Placement() Placement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.placement
}

// Geometry 当前几何快照
func (c *Controller) Geometry() Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.geometry
}

// RawOffset 当前累加器值（未限幅）
func (c *Controller) RawOffset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawOffset
}

// Arbiter 拖拽仲裁器
func (c *Controller) Arbiter() *Arbiter {
	return c.arbiter
}

// Acquire 见 Arbiter.Acquire
func (c *Controller) Acquire(p Priority, granted func(*Session)) *Ticket {
	return c.arbiter.Acquire(p, granted)
}

// Request 见 Arbiter.Request
func (c *Controller) Request(ctx context.Context, p Priority) (*Session, error) {
	return c.arbiter.Request(ctx, p)
}

// Drag 见 Arbiter.Drag
func (c *Controller) Drag(ctx context.Context, p Priority, block func(ctx context.Context, scope DragScope) error) error {
	return c.arbiter.Drag(ctx, p, block)
}

// IsDragging 是否有活动的拖拽会话
func (c *Controller) IsDragging() bool {
	return c.arbiter.IsDragging()
}

// DispatchRawDelta 绕过仲裁器直接应用位移（滚轮等非手势输入）
func (c *Controller) DispatchRawDelta(deltaPx float64) {
	c.applyDelta(deltaPx)
}

// SyncToValue 外部重置：让累加器与给定值对应
func (c *Controller) SyncToValue(value float64) {
	c.mu.Lock()
	minPx, maxPx := c.geometry.Bounds()
	c.rawOffset = utils.Clamp01(value) * (maxPx - minPx)
	c.mu.Unlock()
}

// SnapDelta 把累加器移动到 target 对应位置所需的像素位移
// 越界拖拽积累的偏移会被一并抵消
func (c *Controller) SnapDelta(target float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	minPx, maxPx := c.geometry.Bounds()
	return utils.Clamp01(target)*(maxPx-minPx) - c.rawOffset
}

// OnInteraction 交互事件接收（实现 InteractionSink）
func (c *Controller) OnInteraction(ev InteractionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracker.OnInteraction(ev)
}

// IsEmphasized 是否有活动的按下/拖拽交互
func (c *Controller) IsEmphasized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracker.IsEmphasized()
}

// IsHovered 是否悬停
func (c *Controller) IsHovered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracker.IsHovered()
}

// Elevation 当前阴影高度
func (c *Controller) Elevation() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tracker.Elevation(c.opts)
}

// HitTest 控件坐标系中的点是否在可交互区域内
func (c *Controller) HitTest(x, y float64) bool {
	return c.Placement().HitTest(x, y, c.opts)
}

// applyDelta 累加位移并通知宿主
func (c *Controller) applyDelta(deltaPx float64) {
	if math.IsNaN(deltaPx) || math.IsInf(deltaPx, 0) {
		return
	}
	c.mu.Lock()
	c.rawOffset += deltaPx
	minPx, maxPx := c.geometry.Bounds()
	value := utils.Norm(c.rawOffset, minPx, maxPx)
	notify := c.onValueChange
	c.mu.Unlock()

	if notify != nil {
		notify(value)
	}
}
