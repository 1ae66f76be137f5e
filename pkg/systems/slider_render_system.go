package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/customslider/pkg/components"
	"github.com/decker502/customslider/pkg/config"
	"github.com/decker502/customslider/pkg/ecs"
	"github.com/decker502/customslider/pkg/slider"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"
)

// 渲染视觉常量
const (
	// hoverTintAmount 悬停时滑块向白色混合的比例
	hoverTintAmount = 0.2
	// shadowBaseAlpha / shadowAlphaPerDp 阴影透明度随高度线性增长
	shadowBaseAlpha  = 0.10
	shadowAlphaPerDp = 0.06
	shadowMaxAlpha   = 0.45
	// sliderLabelFontSize 标签字号
	sliderLabelFontSize = 12.0
)

var hoverTintTarget = colorful.Color{R: 1, G: 1, B: 1}

// SliderRenderSystem 滑动条渲染系统
//
// 绘制顺序：非激活滑槽 → 激活滑槽 → 阴影 → 滑块外圈 → 滑块内圈 → 标签。
// 几何全部来自 SliderComponent.Placement（控件坐标系），加上 PositionComponent 偏移。
type SliderRenderSystem struct {
	entityManager *ecs.EntityManager
	labelFont     *text.GoTextFace // 为 nil 时退回调试字体
}

// NewSliderRenderSystem 创建滑动条渲染系统
func NewSliderRenderSystem(em *ecs.EntityManager) *SliderRenderSystem {
	sys := &SliderRenderSystem{entityManager: em}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[SliderRenderSystem] Warning: Failed to load label font: %v (using debug font)", err)
	} else {
		sys.labelFont = &text.GoTextFace{Source: source, Size: sliderLabelFontSize}
	}

	return sys
}

// Draw 渲染所有滑动条
func (s *SliderRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[*components.SliderComponent, *components.PositionComponent, *components.SliderStyleComponent](s.entityManager)
	for _, entityID := range entities {
		sc, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		style, _ := ecs.GetComponent[*components.SliderStyleComponent](s.entityManager, entityID)
		if sc == nil || pos == nil || style == nil || sc.Controller == nil {
			continue
		}
		s.drawSlider(screen, sc, pos, style)
	}
}

// drawSlider 绘制单个滑动条
func (s *SliderRenderSystem) drawSlider(screen *ebiten.Image, sc *components.SliderComponent, pos *components.PositionComponent, style *components.SliderStyleComponent) {
	p := sc.Placement
	opts := sc.Controller.Options()
	line := p.TrackLine

	// 滑槽（圆头线段）
	drawRoundLine(screen, pos, line.InactiveStart, line.InactiveEnd, line.StrokeWidth, style.InactiveTrackColor)
	if line.ActiveEnd.X > line.ActiveStart.X {
		drawRoundLine(screen, pos, line.ActiveStart, line.ActiveEnd, line.StrokeWidth, style.ActiveTrackColor)
	}

	cx := float32(pos.X + p.ThumbCenter.X)
	cy := float32(pos.Y + p.ThumbCenter.Y)
	radius := p.Thumb.Width / 2

	// 阴影随交互高度变化
	elevation := sc.Controller.Elevation()
	if elevation > 0 && radius > 0 {
		vector.DrawFilledCircle(screen, cx, cy+float32(elevation/2), float32(radius+elevation/2), shadowColor(style.ShadowColor, elevation), true)
	}

	if radius > 0 {
		vector.DrawFilledCircle(screen, cx, cy, float32(radius), thumbColor(style.ThumbColor, sc.IsHovered), true)
		if inner := innerRadius(radius, opts.ThumbInnerInset); inner > 0 {
			vector.DrawFilledCircle(screen, cx, cy, float32(inner), style.ThumbInnerColor, true)
		}
	}

	if sc.Label != "" {
		s.drawLabel(screen, formatSliderLabel(sc.Label, sc.Value), pos.X, pos.Y+config.SliderLabelOffsetY, style.LabelColor)
	}
}

// drawLabel 绘制标签文字
func (s *SliderRenderSystem) drawLabel(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	if s.labelFont == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(screen, str, s.labelFont, op)
}

// drawRoundLine 绘制两端为半圆的线段
func drawRoundLine(screen *ebiten.Image, pos *components.PositionComponent, from, to slider.Point, width float64, clr color.Color) {
	if width <= 0 || clr == nil {
		return
	}
	x0, y0 := float32(pos.X+from.X), float32(pos.Y+from.Y)
	x1, y1 := float32(pos.X+to.X), float32(pos.Y+to.Y)
	r := float32(width / 2)

	vector.StrokeLine(screen, x0, y0, x1, y1, float32(width), clr, true)
	vector.DrawFilledCircle(screen, x0, y0, r, clr, true)
	vector.DrawFilledCircle(screen, x1, y1, r, clr, true)
}

// innerRadius 内圈半径，内缩超过外圈时为 0
func innerRadius(outer, inset float64) float64 {
	return math.Max(outer-inset, 0)
}

// thumbColor 悬停时在 Lab 空间向白色混合
func thumbColor(base color.Color, hovered bool) color.Color {
	if !hovered || base == nil {
		return base
	}
	c, ok := colorful.MakeColor(base)
	if !ok {
		return base
	}
	return c.BlendLab(hoverTintTarget, hoverTintAmount).Clamped()
}

// shadowColor 阴影颜色，透明度随高度增加并封顶
func shadowColor(base color.Color, elevation float64) color.NRGBA {
	var c colorful.Color
	if base != nil {
		if mc, ok := colorful.MakeColor(base); ok {
			c = mc
		}
	}
	alpha := math.Min(shadowBaseAlpha+shadowAlphaPerDp*math.Max(elevation, 0), shadowMaxAlpha)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

// formatSliderLabel 标签文字：名称和百分比
func formatSliderLabel(label string, value float64) string {
	return fmt.Sprintf("%s  %3d%%", label, int(math.Round(value*100)))
}
