package scenes

import (
	"log"

	"github.com/decker502/customslider/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现直接满足 game.Scene 接口
type Scene = game.Scene

// 编译期检查
var (
	_ Scene         = (*SliderScene)(nil)
	_ game.Saveable = (*SliderScene)(nil)
)

// Register 把本包的场景注册到场景管理器
func Register(sm *game.SceneManager, build func() (Scene, error)) {
	sm.Register(SliderSceneName, func() game.Scene {
		scene, err := build()
		if err != nil {
			log.Printf("[Scenes] 创建场景 %s 失败: %v", SliderSceneName, err)
			return nil
		}
		return scene
	})
}
