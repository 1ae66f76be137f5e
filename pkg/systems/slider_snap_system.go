package systems

import (
	"log"

	"github.com/decker502/customslider/pkg/components"
	"github.com/decker502/customslider/pkg/ecs"
	"github.com/decker502/customslider/pkg/slider"
	"github.com/decker502/customslider/pkg/utils"
)

// SliderSnapSystem 程序化吸附动画系统
//
// 以高优先级会话把滑块缓动到 SnapComponent.Target。
// 会话跨帧持有，期间用户的默认优先级拖拽请求会排队，进行中的拖拽会被抢占。
type SliderSnapSystem struct {
	entityManager *ecs.EntityManager
}

// NewSliderSnapSystem 创建吸附动画系统
func NewSliderSnapSystem(em *ecs.EntityManager) *SliderSnapSystem {
	return &SliderSnapSystem{entityManager: em}
}

// Update 推进所有吸附动画
func (s *SliderSnapSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.SnapComponent](s.entityManager)
	for _, entityID := range entities {
		sc, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		snap, _ := ecs.GetComponent[*components.SnapComponent](s.entityManager, entityID)
		if sc == nil || snap == nil || sc.Controller == nil {
			continue
		}

		// 位移换算依赖最新几何
		sc.Placement = sc.Controller.Measure(sc.Width, sc.Value)

		if snap.Ticket == nil {
			snap.Ticket = sc.Controller.Acquire(slider.PriorityHigh, func(session *slider.Session) {
				snap.Session = session
				snap.From = sc.Value
				snap.Elapsed = 0
			})
		}

		// 排在另一个高优先级会话之后
		if snap.Session == nil {
			continue
		}

		if !snap.Session.Active() {
			log.Printf("[SliderSnapSystem] %s: snap session ended externally", sc.ID)
			ecs.RemoveComponent[*components.SnapComponent](s.entityManager, entityID)
			continue
		}

		snap.Elapsed += deltaTime
		progress := 1.0
		if snap.Duration > 0 {
			progress = utils.Clamp01(snap.Elapsed / snap.Duration)
		}

		target := utils.Lerp(utils.EaseOutCubic(progress), snap.From, utils.Clamp01(snap.Target))
		snap.Session.DragBy(sc.Controller.SnapDelta(target))

		if progress >= 1 {
			snap.Session.End()
			ecs.RemoveComponent[*components.SnapComponent](s.entityManager, entityID)
			log.Printf("[SliderSnapSystem] %s: snapped to %.2f", sc.ID, snap.Target)
		}
	}
}

// Cancel 取消实体上的吸附动画（撤回排队请求或结束会话）
func (s *SliderSnapSystem) Cancel(entityID ecs.EntityID) {
	snap, ok := ecs.GetComponent[*components.SnapComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if snap.Ticket != nil && !snap.Ticket.Withdraw() && snap.Session != nil {
		snap.Session.End()
	}
	ecs.RemoveComponent[*components.SnapComponent](s.entityManager, entityID)
}
