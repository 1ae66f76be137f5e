package config

import (
	"fmt"
	"log"

	"github.com/decker502/customslider/pkg/embedded"
	"github.com/decker502/customslider/pkg/slider"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultSliderConfigPath 默认配置文件路径（嵌入资源）
const DefaultSliderConfigPath = "data/slider_config.yaml"

// SliderConfig 滑动条配置文件的顶层结构
type SliderConfig struct {
	Thumb       ThumbConfig       `yaml:"thumb"`
	Track       TrackConfig       `yaml:"track"`
	Interaction InteractionConfig `yaml:"interaction"`
	Elevation   ElevationConfig   `yaml:"elevation"`
	Colors      ColorConfig       `yaml:"colors"`
	Audio       AudioConfig       `yaml:"audio"`
	Sliders     []SliderEntry     `yaml:"sliders"`
}

// ThumbConfig 滑块配置
type ThumbConfig struct {
	Diameter   float64 `yaml:"diameter"`    // 滑块直径
	InnerInset float64 `yaml:"inner_inset"` // 内部白色圆盘内缩
}

// TrackConfig 滑槽配置
type TrackConfig struct {
	Thickness float64 `yaml:"thickness"` // 线宽
}

// InteractionConfig 交互配置
type InteractionConfig struct {
	MinTouchTarget float64 `yaml:"min_touch_target"` // 最小可交互区域边长
	MinSize        float64 `yaml:"min_size"`         // 控件最小宽高
	WheelStep      float64 `yaml:"wheel_step"`       // 滚轮每格对应的像素位移
	SnapDuration   float64 `yaml:"snap_duration"`    // 程序化吸附动画时长（秒）
}

// ElevationConfig 阴影高度
type ElevationConfig struct {
	Flat       float64 `yaml:"flat"`
	Emphasized float64 `yaml:"emphasized"`
}

// ColorConfig 颜色配置（十六进制字符串，如 "#4CAF50"）
type ColorConfig struct {
	ActiveTrack   string `yaml:"active_track"`
	InactiveTrack string `yaml:"inactive_track"`
	Thumb         string `yaml:"thumb"`
	ThumbInner    string `yaml:"thumb_inner"`
	Shadow        string `yaml:"shadow"`
	Background    string `yaml:"background"`
	Label         string `yaml:"label"`
}

// AudioConfig 音频配置
// 音量滑动条通过 ID 绑定到背景音乐和音效
type AudioConfig struct {
	MusicPath   string `yaml:"music"`        // 循环播放的背景音乐（WAV，嵌入资源路径）
	ClickPath   string `yaml:"click"`        // 拖拽结束时播放的音效
	MusicSlider string `yaml:"music_slider"` // 控制音乐音量的滑动条 ID
	SoundSlider string `yaml:"sound_slider"` // 控制音效音量的滑动条 ID
}

// SliderEntry 场景中的一个滑动条
type SliderEntry struct {
	ID      string  `yaml:"id"`      // 持久化键
	Label   string  `yaml:"label"`   // 标签文字
	Default float64 `yaml:"default"` // 默认值 0.0 ~ 1.0
	Width   float64 `yaml:"width"`   // 容器宽度，0 表示使用 SliderDefaultWidth
}

// Palette 解析后的颜色
type Palette struct {
	ActiveTrack   colorful.Color
	InactiveTrack colorful.Color
	Thumb         colorful.Color
	ThumbInner    colorful.Color
	Shadow        colorful.Color
	Background    colorful.Color
	Label         colorful.Color
}

// DefaultSliderConfig 返回默认配置
func DefaultSliderConfig() *SliderConfig {
	opts := slider.DefaultOptions()
	return &SliderConfig{
		Thumb: ThumbConfig{
			Diameter:   opts.ThumbDiameter,
			InnerInset: opts.ThumbInnerInset,
		},
		Track: TrackConfig{Thickness: opts.TrackThickness},
		Interaction: InteractionConfig{
			MinTouchTarget: opts.MinTouchTarget,
			MinSize:        opts.MinWidth,
			WheelStep:      8,
			SnapDuration:   0.25,
		},
		Elevation: ElevationConfig{
			Flat:       opts.FlatElevation,
			Emphasized: opts.EmphasizedElevation,
		},
		Colors: ColorConfig{
			ActiveTrack:   "#00ff00",
			InactiveTrack: "#888888",
			Thumb:         "#00ff00",
			ThumbInner:    "#ffffff",
			Shadow:        "#000000",
			Background:    "#1e1e24",
			Label:         "#e0e0e0",
		},
		Audio: AudioConfig{
			MusicPath:   "data/audio/ambient.wav",
			ClickPath:   "data/audio/click.wav",
			MusicSlider: "music",
			SoundSlider: "sound",
		},
		Sliders: []SliderEntry{
			{ID: "music", Label: "Music", Default: 0.7},
			{ID: "sound", Label: "Sound", Default: 0.8},
		},
	}
}

// LoadSliderConfig 从嵌入资源加载配置
//
// 文件中未出现的字段保留默认值。
//
// 返回：
//   - *SliderConfig: 配置
//   - error: 读取、解析或校验失败
func LoadSliderConfig(path string) (*SliderConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}
	cfg, err := ParseSliderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}
	log.Printf("[Config] Loaded slider config %s (%d sliders)", path, len(cfg.Sliders))
	return cfg, nil
}

// LoadSliderConfigOrDefault 加载配置，失败时使用默认配置（非致命）
func LoadSliderConfigOrDefault(path string) *SliderConfig {
	cfg, err := LoadSliderConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return DefaultSliderConfig()
	}
	return cfg
}

// ParseSliderConfig 解析 YAML 配置并校验
func ParseSliderConfig(data []byte) (*SliderConfig, error) {
	cfg := DefaultSliderConfig()
	cfg.Sliders = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Sliders) == 0 {
		cfg.Sliders = DefaultSliderConfig().Sliders
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *SliderConfig) Validate() error {
	nonNegative := map[string]float64{
		"thumb.diameter":               c.Thumb.Diameter,
		"thumb.inner_inset":            c.Thumb.InnerInset,
		"track.thickness":              c.Track.Thickness,
		"interaction.min_touch_target": c.Interaction.MinTouchTarget,
		"interaction.min_size":         c.Interaction.MinSize,
		"interaction.snap_duration":    c.Interaction.SnapDuration,
		"elevation.flat":               c.Elevation.Flat,
		"elevation.emphasized":         c.Elevation.Emphasized,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%s 不能为负数: %v", name, v)
		}
	}
	if c.Thumb.InnerInset*2 > c.Thumb.Diameter {
		return fmt.Errorf("thumb.inner_inset (%v) 超过滑块半径", c.Thumb.InnerInset)
	}

	seen := make(map[string]bool)
	for i, s := range c.Sliders {
		if s.ID == "" {
			return fmt.Errorf("滑动条 #%d 缺少 'id' 字段", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("滑动条 id 重复: %s", s.ID)
		}
		seen[s.ID] = true
		if s.Default < 0 || s.Default > 1 {
			return fmt.Errorf("滑动条 %s 的默认值 %v 超出 [0,1]", s.ID, s.Default)
		}
		if s.Width < 0 {
			return fmt.Errorf("滑动条 %s 的宽度不能为负数", s.ID)
		}
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Options 转换为引擎参数
func (c *SliderConfig) Options() slider.Options {
	return slider.Options{
		ThumbDiameter:       c.Thumb.Diameter,
		ThumbInnerInset:     c.Thumb.InnerInset,
		TrackThickness:      c.Track.Thickness,
		MinTouchTarget:      c.Interaction.MinTouchTarget,
		MinWidth:            c.Interaction.MinSize,
		MinHeight:           c.Interaction.MinSize,
		FlatElevation:       c.Elevation.Flat,
		EmphasizedElevation: c.Elevation.Emphasized,
	}
}

// Palette 解析颜色配置
func (c *SliderConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"colors.active_track", c.Colors.ActiveTrack, &p.ActiveTrack},
		{"colors.inactive_track", c.Colors.InactiveTrack, &p.InactiveTrack},
		{"colors.thumb", c.Colors.Thumb, &p.Thumb},
		{"colors.thumb_inner", c.Colors.ThumbInner, &p.ThumbInner},
		{"colors.shadow", c.Colors.Shadow, &p.Shadow},
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.label", c.Colors.Label, &p.Label},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s 颜色无效 %q: %w", f.name, f.hex, err)
		}
		*f.dst = col
	}
	return p, nil
}
