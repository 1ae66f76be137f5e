package systems

import (
	"image/color"
	"testing"
)

func TestInnerRadius(t *testing.T) {
	tests := []struct {
		name  string
		outer float64
		inset float64
		want  float64
	}{
		{"默认内缩", 10, 4, 6},
		{"无内缩", 10, 0, 10},
		{"内缩等于半径", 10, 10, 0},
		{"内缩超过半径", 10, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := innerRadius(tt.outer, tt.inset); got != tt.want {
				t.Errorf("innerRadius(%v, %v) = %v, want %v", tt.outer, tt.inset, got, tt.want)
			}
		})
	}
}

func TestShadowColor(t *testing.T) {
	black := color.RGBA{A: 255}

	flat := shadowColor(black, 1)
	emphasized := shadowColor(black, 4)
	if emphasized.A <= flat.A {
		t.Errorf("shadow alpha should grow with elevation: flat=%d emphasized=%d", flat.A, emphasized.A)
	}

	capped := shadowColor(black, 100)
	maxAlpha := 0.45
	if want := uint8(maxAlpha*255 + 0.5); capped.A != want {
		t.Errorf("capped alpha: got %d, want %d", capped.A, want)
	}

	if got := shadowColor(nil, 4); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("nil base should fall back to black, got %+v", got)
	}
}

func TestThumbColor(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}

	if got := thumbColor(green, false); got != color.Color(green) {
		t.Errorf("not hovered should keep the base colour, got %v", got)
	}

	r, g, b, _ := thumbColor(green, true).RGBA()
	if r == 0 || b == 0 {
		t.Errorf("hover tint should move towards white: r=%d g=%d b=%d", r, g, b)
	}

	if got := thumbColor(nil, true); got != nil {
		t.Errorf("nil base: got %v", got)
	}
}

func TestFormatSliderLabel(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "Music    0%"},
		{0.5, "Music   50%"},
		{0.704, "Music   70%"},
		{1, "Music  100%"},
	}

	for _, tt := range tests {
		if got := formatSliderLabel("Music", tt.value); got != tt.want {
			t.Errorf("formatSliderLabel(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestNewSliderRenderSystem_LoadsLabelFont(t *testing.T) {
	sys := NewSliderRenderSystem(nil)
	if sys.labelFont == nil {
		t.Fatal("label font should load from the embedded Go Regular face")
	}
	if sys.labelFont.Size != sliderLabelFontSize {
		t.Errorf("font size: got %v, want %v", sys.labelFont.Size, sliderLabelFontSize)
	}
}
