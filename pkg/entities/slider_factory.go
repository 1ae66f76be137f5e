package entities

import (
	"github.com/decker502/customslider/pkg/components"
	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/ecs"
	"github.com/decker502/customslider/pkg/slider"
	"github.com/decker502/customslider/pkg/utils"
)

// SliderParams 创建滑动条实体的参数
type SliderParams struct {
	ID    string
	Label string

	X, Y  float64 // 控件左上角（屏幕坐标）
	Width float64 // 容器宽度

	Value        float64 // 初始值
	DefaultValue float64 // 右键复位值

	Options slider.Options
	Style   *components.SliderStyleComponent // 为 nil 时不添加外观组件（不渲染）

	OnValueChange func(value float64)
	OnDragStopped func(value float64)
}

// NewSliderEntity 创建滑动条实体
//
// 组件持有值：Controller 的回调先写回 SliderComponent.Value，再转发给 OnValueChange。
// 创建时先布局一次并把累加器同步到初始值，之后的拖拽位移从该值开始累计。
//
// 返回：
//   - 滑动条实体ID
func NewSliderEntity(em *ecs.EntityManager, params SliderParams) ecs.EntityID {
	width := params.Width
	if width <= 0 {
		width = config.SliderDefaultWidth
	}
	value := utils.Clamp01(params.Value)

	sc := &components.SliderComponent{
		ID:            params.ID,
		Label:         params.Label,
		Width:         width,
		Value:         value,
		DefaultValue:  utils.Clamp01(params.DefaultValue),
		OnValueChange: params.OnValueChange,
		OnDragStopped: params.OnDragStopped,
	}

	controller := slider.NewController(params.Options, func(v float64) {
		sc.Value = v
		if sc.OnValueChange != nil {
			sc.OnValueChange(v)
		}
	})
	sc.Controller = controller
	sc.Interactions = slider.NewInteractionSource(controller)
	sc.Placement = controller.Measure(width, value)
	controller.SyncToValue(value)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: params.X, Y: params.Y})
	ecs.AddComponent(em, entity, sc)
	if params.Style != nil {
		ecs.AddComponent(em, entity, params.Style)
	}

	return entity
}

// NewSliderStyle 由配置调色板创建外观组件
func NewSliderStyle(palette config.Palette) *components.SliderStyleComponent {
	return &components.SliderStyleComponent{
		ActiveTrackColor:   palette.ActiveTrack.Clamped(),
		InactiveTrackColor: palette.InactiveTrack.Clamped(),
		ThumbColor:         palette.Thumb.Clamped(),
		ThumbInnerColor:    palette.ThumbInner.Clamped(),
		ShadowColor:        palette.Shadow.Clamped(),
		LabelColor:         palette.Label.Clamped(),
	}
}

// SliderHooks 批量创建滑动条时的回调，均可为 nil
type SliderHooks struct {
	// Values 按 ID 查询已保存的值，未保存时返回 fallback
	Values func(id string, fallback float64) float64
	// OnValueChange 值改变（附带滑动条 ID）
	OnValueChange func(id string, value float64)
	// OnDragStopped 拖拽结束（附带滑动条 ID）
	OnDragStopped func(id string, value float64)
}

// NewSliderEntitiesFromConfig 按配置文件中的列表逐行创建滑动条
//
// 返回：
//   - 按配置顺序排列的实体ID
func NewSliderEntitiesFromConfig(
	em *ecs.EntityManager,
	cfg *config.SliderConfig,
	style *components.SliderStyleComponent,
	hooks SliderHooks,
) []ecs.EntityID {
	opts := cfg.Options()
	ids := make([]ecs.EntityID, 0, len(cfg.Sliders))

	for row, entry := range cfg.Sliders {
		x, y := config.CalculateSliderRowPosition(row)
		value := entry.Default
		if hooks.Values != nil {
			value = hooks.Values(entry.ID, entry.Default)
		}

		ids = append(ids, NewSliderEntity(em, SliderParams{
			ID:            entry.ID,
			Label:         entry.Label,
			X:             x,
			Y:             y,
			Width:         entry.Width,
			Value:         value,
			DefaultValue:  entry.Default,
			Options:       opts,
			Style:         style,
			OnValueChange: bindID(entry.ID, hooks.OnValueChange),
			OnDragStopped: bindID(entry.ID, hooks.OnDragStopped),
		}))
	}

	return ids
}

// bindID 把带 ID 的回调绑定为单参数回调
func bindID(id string, fn func(string, float64)) func(float64) {
	if fn == nil {
		return nil
	}
	return func(v float64) { fn(id, v) }
}
