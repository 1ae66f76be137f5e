package systems

import (
	"log"

	"github.com/decker502/customslider/pkg/components"
	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/ecs"
	"github.com/decker502/customslider/pkg/slider"
	"github.com/decker502/customslider/pkg/utils"
)

// SliderMouseInput 滑块系统指针输入接口
// 用于依赖注入，支持测试时 mock
type SliderMouseInput interface {
	CursorPosition() (int, int)
	IsPointerPressed() bool
	IsSecondaryPressed() bool
	Wheel() (float64, float64)
}

// ebitenSliderMouseInput Ebitengine 默认实现（鼠标 + 触摸）
type ebitenSliderMouseInput struct{}

func (e *ebitenSliderMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenSliderMouseInput) IsPointerPressed() bool {
	return utils.IsPointerPressed()
}

func (e *ebitenSliderMouseInput) IsSecondaryPressed() bool {
	return utils.IsSecondaryPressed()
}

func (e *ebitenSliderMouseInput) Wheel() (float64, float64) {
	return utils.GetWheel()
}

// defaultSliderMouseInput 默认输入实例
var defaultSliderMouseInput SliderMouseInput = &ebitenSliderMouseInput{}

// SliderSystem 滑块交互系统
// 把逐帧的指针状态转换为交互事件和拖拽位移
//
// 职责：
//   - 每帧以组件宽度和值驱动 Controller 布局
//   - 悬停进入/离开 → Hover 交互
//   - 在可交互区域内按下 → Press 交互，并以默认优先级申请拖拽会话
//   - 会话授予后把水平位移交给会话；被抢占时取消 Drag 交互
//   - 释放 → 撤回排队请求、结束会话、结束交互
//   - 悬停时滚轮 → 绕过仲裁器直接应用位移
//   - 右键（双指）→ 添加 SnapComponent 复位到默认值，可打断正在进行的拖拽
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    SliderMouseInput
	pointer       *utils.PointerTracker

	wheelStep    float64
	snapDuration float64
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager, cfg *config.SliderConfig) *SliderSystem {
	return NewSliderSystemWithInput(em, cfg, defaultSliderMouseInput)
}

// NewSliderSystemWithInput 创建带自定义输入的滑块交互系统（用于测试）
func NewSliderSystemWithInput(em *ecs.EntityManager, cfg *config.SliderConfig, input SliderMouseInput) *SliderSystem {
	if cfg == nil {
		cfg = config.DefaultSliderConfig()
	}
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
		pointer:       utils.NewPointerTracker(),
		wheelStep:     cfg.Interaction.WheelStep,
		snapDuration:  cfg.Interaction.SnapDuration,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update(deltaTime float64) {
	x, y := s.mouseInput.CursorPosition()
	wheelX, wheelY := s.mouseInput.Wheel()
	frame := s.pointer.Sample(s.mouseInput.IsPointerPressed(), x, y, s.mouseInput.IsSecondaryPressed(), wheelX, wheelY)

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		sc, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if sc == nil || pos == nil || sc.Controller == nil {
			continue
		}

		sc.Placement = sc.Controller.Measure(sc.Width, sc.Value)

		localX := float64(frame.X) - pos.X
		localY := float64(frame.Y) - pos.Y
		inside := sc.Controller.HitTest(localX, localY)

		s.updateHover(sc, inside)
		s.checkPreempted(sc)

		switch {
		case frame.JustPressed() && inside && !sc.IsPressed:
			s.beginPress(sc, frame)
		case frame.JustReleased() && sc.IsPressed:
			s.endPress(sc)
		case sc.IsPressed && frame.DeltaX != 0:
			s.dragBy(sc, float64(frame.DeltaX))
		}

		if sc.IsHovered && frame.WheelY != 0 && !sc.IsDragging {
			sc.Controller.DispatchRawDelta(frame.WheelY * s.wheelStep)
		}

		if frame.SecondaryJustPressed && inside {
			s.requestSnap(entityID, sc)
		}
	}
}

// updateHover 悬停状态的进入/离开
func (s *SliderSystem) updateHover(sc *components.SliderComponent, inside bool) {
	switch {
	case inside && !sc.IsHovered:
		sc.HoverToken = sc.Interactions.Start(slider.InteractionHover)
		sc.IsHovered = true
	case !inside && sc.IsHovered:
		sc.Interactions.Finish(sc.HoverToken, false)
		sc.IsHovered = false
	}
}

// beginPress 按下：开始 Press 交互并申请默认优先级会话
// 仲裁器空闲时 granted 同步回调，否则在当前会话结束时回调
func (s *SliderSystem) beginPress(sc *components.SliderComponent, frame utils.PointerFrame) {
	sc.IsPressed = true
	sc.LastPointerX = float64(frame.X)
	sc.PressToken = sc.Interactions.Start(slider.InteractionPress)

	sc.Pending = sc.Controller.Acquire(slider.PriorityDefault, func(session *slider.Session) {
		sc.Session = session
		sc.IsDragging = true
		sc.DragToken = sc.Interactions.Start(slider.InteractionDrag)
	})
	if !sc.IsDragging {
		log.Printf("[SliderSystem] %s: drag request queued behind active session", sc.ID)
	}
}

// dragBy 将位移交给会话；会话失效时按抢占处理
func (s *SliderSystem) dragBy(sc *components.SliderComponent, deltaPx float64) {
	sc.LastPointerX += deltaPx
	if sc.Session == nil {
		return
	}
	if !sc.Session.DragBy(deltaPx) {
		s.cancelDrag(sc)
	}
}

// checkPreempted 会话被更高优先级抢占时取消 Drag 交互
func (s *SliderSystem) checkPreempted(sc *components.SliderComponent) {
	if sc.Session != nil && !sc.Session.Active() {
		s.cancelDrag(sc)
	}
}

// cancelDrag 拖拽被取消（Press 保持到指针释放）
func (s *SliderSystem) cancelDrag(sc *components.SliderComponent) {
	sc.Interactions.Finish(sc.DragToken, true)
	sc.Session = nil
	sc.IsDragging = false
	if sc.OnDragStopped != nil {
		sc.OnDragStopped(sc.Value)
	}
}

// endPress 释放：撤回排队请求、结束会话和交互
func (s *SliderSystem) endPress(sc *components.SliderComponent) {
	if sc.Pending != nil {
		sc.Pending.Withdraw()
		sc.Pending = nil
	}

	if sc.Session != nil {
		sc.Session.End()
		sc.Interactions.Finish(sc.DragToken, false)
		sc.Session = nil
		sc.IsDragging = false
		if sc.OnDragStopped != nil {
			sc.OnDragStopped(sc.Value)
		}
	}

	sc.Interactions.Finish(sc.PressToken, false)
	sc.IsPressed = false
}

// requestSnap 添加复位动画，已有动画时忽略
func (s *SliderSystem) requestSnap(entityID ecs.EntityID, sc *components.SliderComponent) {
	if ecs.HasComponent[*components.SnapComponent](s.entityManager, entityID) {
		return
	}
	ecs.AddComponent(s.entityManager, entityID, &components.SnapComponent{
		Target:   sc.DefaultValue,
		Duration: s.snapDuration,
	})
	log.Printf("[SliderSystem] %s: snap to default %.2f requested", sc.ID, sc.DefaultValue)
}
