package main

import (
	"flag"
	"log"

	"github.com/decker502/customslider/pkg/app"
	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", config.DefaultSliderConfigPath, "滑动条配置文件（嵌入资源路径）")
	appName := flag.String("app", app.DefaultAppName, "设置存储使用的应用名")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		AppName:    *appName,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth*2, config.GameWindowHeight*2)
	ebiten.SetWindowTitle("Custom Slider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 由 App.Update 处理关闭，确保退出前保存
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
