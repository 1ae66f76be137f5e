package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/customslider/pkg/components"
	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/ecs"
	"github.com/decker502/customslider/pkg/entities"
	"github.com/decker502/customslider/pkg/game"
	"github.com/decker502/customslider/pkg/systems"
	"github.com/decker502/customslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SliderSceneName 滑动条演示场景在 SceneManager 中的注册名
const SliderSceneName = "sliders"

// 底部操作提示
const (
	sliderSceneHint      = "Drag: adjust   Wheel: fine tune   Right click: reset   F11: fullscreen"
	sliderSceneTouchHint = "Drag: adjust   Two-finger tap: reset"
)

// SliderScene 滑动条演示场景
// 按配置文件逐行创建滑动条，值来自并写回 SettingsManager，
// 音量类滑动条同时驱动 AudioManager
type SliderScene struct {
	entityManager *ecs.EntityManager
	sliderSystem  *systems.SliderSystem
	snapSystem    *systems.SliderSnapSystem
	renderSystem  *systems.SliderRenderSystem

	settings   *game.SettingsManager
	audio      *game.AudioManager
	background color.Color
	hint       string
	sliders    []ecs.EntityID
}

// NewSliderScene 创建滑动条演示场景
//
// 参数：
//   - cfg: 滑动条配置（选项、颜色、滑动条列表）
//   - settings: 设置管理器，提供已保存的值，可为 nil
//   - audio: 音频管理器，可为 nil
//
// 返回：
//   - *SliderScene: 场景实例
//   - error: 颜色配置无效时返回错误
func NewSliderScene(cfg *config.SliderConfig, settings *game.SettingsManager, audio *game.AudioManager) (*SliderScene, error) {
	return newSliderScene(cfg, settings, audio, nil)
}

// NewSliderSceneWithInput 使用自定义指针输入创建场景（用于测试）
func NewSliderSceneWithInput(cfg *config.SliderConfig, settings *game.SettingsManager, audio *game.AudioManager, input systems.SliderMouseInput) (*SliderScene, error) {
	return newSliderScene(cfg, settings, audio, input)
}

func newSliderScene(cfg *config.SliderConfig, settings *game.SettingsManager, audio *game.AudioManager, input systems.SliderMouseInput) (*SliderScene, error) {
	if cfg == nil {
		cfg = config.DefaultSliderConfig()
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("slider palette: %w", err)
	}

	em := ecs.NewEntityManager()
	s := &SliderScene{
		entityManager: em,
		snapSystem:    systems.NewSliderSnapSystem(em),
		renderSystem:  systems.NewSliderRenderSystem(em),
		settings:      settings,
		audio:         audio,
		background:    palette.Background.Clamped(),
		hint:          sliderSceneHint,
	}
	if utils.IsMobile() {
		s.hint = sliderSceneTouchHint
	}
	if input != nil {
		s.sliderSystem = systems.NewSliderSystemWithInput(em, cfg, input)
	} else {
		s.sliderSystem = systems.NewSliderSystem(em, cfg)
	}

	hooks := entities.SliderHooks{
		OnValueChange: s.onValueChange,
		OnDragStopped: s.onDragStopped,
	}
	if settings != nil {
		hooks.Values = settings.GetValue
	}
	s.sliders = entities.NewSliderEntitiesFromConfig(em, cfg, entities.NewSliderStyle(palette), hooks)

	log.Printf("[SliderScene] Created %d sliders", len(s.sliders))
	return s, nil
}

// Update 按顺序运行输入系统和吸附系统
func (s *SliderScene) Update(deltaTime float64) {
	s.sliderSystem.Update(deltaTime)
	s.snapSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、滑动条和提示文字
func (s *SliderScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen, s.hint, 8, config.GameWindowHeight-20)
}

// onValueChange 写回设置并更新音量
func (s *SliderScene) onValueChange(id string, value float64) {
	if s.settings != nil {
		s.settings.SetValue(id, value)
	}
	if s.audio != nil {
		s.audio.OnSliderValue(id, value)
	}
}

// onDragStopped 音效滑动条松手时试听
func (s *SliderScene) onDragStopped(id string, value float64) {
	if s.audio != nil {
		s.audio.OnSliderReleased(id, value)
	}
}

// SaveOnExit 退出时保存滑动条值（实现 game.Saveable）
func (s *SliderScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.SaveIfDirty(); err != nil {
		log.Printf("[SliderScene] Failed to save slider values: %v", err)
		return false
	}
	return true
}

// Sliders 按配置顺序返回滑动条实体
func (s *SliderScene) Sliders() []ecs.EntityID {
	return s.sliders
}

// Slider 返回指定 ID 的滑动条组件
func (s *SliderScene) Slider(id string) (*components.SliderComponent, bool) {
	for _, entityID := range s.sliders {
		sc, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		if ok && sc.ID == id {
			return sc, true
		}
	}
	return nil, false
}

// EntityManager 返回场景的实体管理器
func (s *SliderScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
