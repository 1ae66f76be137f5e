package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称延迟创建场景，避免 game 包依赖 scenes 包
type SceneFactory func() Scene

// SceneManager 管理当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册命名场景的工厂函数，重复注册会覆盖
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// SwitchTo 切换到给定场景
// 如果当前场景实现了 Saveable，切换前先保存
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		sm.SaveCurrent()
	}
	sm.currentScene = scene
	sm.currentName = ""
}

// Load 通过已注册的工厂创建并切换到命名场景
//
// 返回：
//   - bool: 场景是否创建成功
func (sm *SceneManager) Load(name string) bool {
	factory, ok := sm.factories[name]
	if !ok {
		log.Printf("[SceneManager] 错误: 未注册的场景: %s", name)
		return false
	}

	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %s", name)
	return true
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 加载的场景名，直接 SwitchTo 的场景为空串
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// SaveCurrent 保存当前场景状态（如果场景实现了 Saveable）
//
// 返回：
//   - bool: 无需保存或保存成功返回 true
func (sm *SceneManager) SaveCurrent() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !saveable.SaveOnExit() {
		log.Printf("[SceneManager] 警告: 场景保存失败")
		return false
	}
	return true
}

// Update 更新当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
