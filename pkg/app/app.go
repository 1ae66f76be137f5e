// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/game"
	"github.com/decker502/customslider/pkg/scenes"
	"github.com/decker502/customslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "customslider"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 滑动条配置文件路径（嵌入资源），为空使用默认路径
	ConfigPath string
	// AppName gdata 应用名，为空使用 DefaultAppName
	AppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	audio                    *game.AudioManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时配置加载失败，使用默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultSliderConfigPath
	}
	sliderConfig := config.LoadSliderConfigOrDefault(configPath)

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// gdata 打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	audioManager := newAudioManager(sliderConfig, settings)

	sceneManager := game.NewSceneManager()
	scenes.Register(sceneManager, func() (scenes.Scene, error) {
		return scenes.NewSliderScene(sliderConfig, settings, audioManager)
	})
	if !sceneManager.Load(scenes.SliderSceneName) {
		return nil, fmt.Errorf("场景初始化失败: %s", scenes.SliderSceneName)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started (config=%s, app=%s)", configPath, appName)
	audioManager.PlayMusic()

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		audio:        audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// newAudioManager 创建音频上下文并加载音频，音量取已保存的滑动条值
// 音频文件缺失不是致命错误，只是没有声音
func newAudioManager(cfg *config.SliderConfig, settings *game.SettingsManager) *game.AudioManager {
	am := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), cfg.Audio.MusicSlider, cfg.Audio.SoundSlider)

	for _, entry := range cfg.Sliders {
		am.OnSliderValue(entry.ID, settings.GetValue(entry.ID, entry.Default))
	}

	if cfg.Audio.MusicPath != "" {
		if err := am.LoadMusic(cfg.Audio.MusicPath); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
	if cfg.Audio.ClickPath != "" {
		if err := am.LoadClick(cfg.Audio.ClickPath); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
	return am
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：保存后退出
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth*2, config.GameWindowHeight*2)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth*2, config.GameWindowHeight*2)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存当前场景和设置
// 返回 false 表示有保存失败（程序仍会正常退出）
func (a *App) Shutdown() bool {
	a.audio.StopMusic()
	ok := a.sceneManager.SaveCurrent()
	if err := a.settings.SaveIfDirty(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
		ok = false
	}
	return ok
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
