package game

import (
	"fmt"
	"log"
	"maps"

	"github.com/decker502/customslider/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 持久化的设置
type Settings struct {
	// Values 各滑动条的值，键为滑动条 ID，值 0.0 ~ 1.0
	Values map[string]float64 `yaml:"values"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置（没有任何已保存的滑动条值）
func DefaultSettings() *Settings {
	return &Settings{
		Values:     make(map[string]float64),
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings      // 当前设置
	dirty        bool           // 是否有未保存的修改
}

// 存储路径常量
const (
	settingsObject   = "sliders"
	settingsProperty = "values"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方的签名，加载失败不会返回错误（降级为默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.dirty = false

	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.Values == nil {
		loaded.Values = make(map[string]float64)
	}
	// 旧数据或手工编辑的文件可能越界
	for id, v := range loaded.Values {
		loaded.Values[id] = utils.Clamp01(v)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully (%d values)", len(loaded.Values))
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		sm.dirty = false
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.dirty = false
	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// SaveIfDirty 仅在有未保存修改时保存
func (sm *SettingsManager) SaveIfDirty() error {
	if !sm.dirty {
		return nil
	}
	return sm.Save()
}

// IsDirty 是否有未保存的修改
func (sm *SettingsManager) IsDirty() bool {
	return sm.dirty
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// GetValue 获取滑动条值
//
// 参数：
//   - id: 滑动条 ID
//   - fallback: 未保存过时返回的默认值
func (sm *SettingsManager) GetValue(id string, fallback float64) float64 {
	if v, ok := sm.settings.Values[id]; ok {
		return v
	}
	return utils.Clamp01(fallback)
}

// SetValue 设置滑动条值
//
// 值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetValue(id string, value float64) {
	value = utils.Clamp01(value)
	if old, ok := sm.settings.Values[id]; ok && old == value {
		return
	}
	sm.settings.Values[id] = value
	sm.dirty = true
}

// Values 返回所有滑动条值的副本
func (sm *SettingsManager) Values() map[string]float64 {
	return maps.Clone(sm.settings.Values)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	if sm.settings.Fullscreen != enabled {
		sm.settings.Fullscreen = enabled
		sm.dirty = true
	}
}
