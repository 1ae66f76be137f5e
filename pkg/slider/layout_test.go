package slider

import (
	"math"
	"testing"
)

func testOptions(thumb float64) Options {
	opts := DefaultOptions()
	opts.ThumbDiameter = thumb
	return opts
}

// TestLayout_Basic 100px 容器、20px 滑块、值 0.5
func TestLayout_Basic(t *testing.T) {
	p := Layout(100, 0.5, testOptions(20))

	if p.Track.Width != 80 {
		t.Errorf("Track.Width = %v, want 80", p.Track.Width)
	}
	if p.ThumbOffset.X != 40 {
		t.Errorf("ThumbOffset.X = %v, want 40", p.ThumbOffset.X)
	}
	if p.TrackOffset.X != 10 {
		t.Errorf("TrackOffset.X = %v, want 10", p.TrackOffset.X)
	}
	if p.Size.Width != 100 {
		t.Errorf("Size.Width = %v, want 100（汇报未扣减的容器宽度）", p.Size.Width)
	}
	if p.Size.Height != 20 {
		t.Errorf("Size.Height = %v, want 20（只取滑块高度）", p.Size.Height)
	}
}

// TestLayout_ThumbWiderThanContainer 容器比滑块窄
func TestLayout_ThumbWiderThanContainer(t *testing.T) {
	for _, value := range []float64{0, 0.5, 1} {
		p := Layout(10, value, testOptions(20))
		if p.Track.Width != 0 {
			t.Errorf("value=%v: Track.Width = %v, want 0", value, p.Track.Width)
		}
		offsets := []float64{p.TrackOffset.X, p.TrackOffset.Y, p.ThumbOffset.X, p.ThumbOffset.Y}
		for _, o := range offsets {
			if o < 0 {
				t.Errorf("value=%v: 出现负偏移 %v", value, o)
			}
		}
	}
}

// TestLayout_ZeroWidth 零宽容器：滑块在原点，滑槽退化为点
func TestLayout_ZeroWidth(t *testing.T) {
	p := Layout(0, 0.8, testOptions(20))
	if p.ThumbOffset.X != 0 {
		t.Errorf("ThumbOffset.X = %v, want 0", p.ThumbOffset.X)
	}
	if p.Track.Width != 0 {
		t.Errorf("Track.Width = %v, want 0", p.Track.Width)
	}
	if p.TrackLine.InactiveStart != p.TrackLine.InactiveEnd {
		t.Errorf("滑槽应退化为一个点: %+v", p.TrackLine)
	}
}

// TestLayout_VerticalCentering 子元素在 max(滑块, 滑槽) 高度内垂直居中
func TestLayout_VerticalCentering(t *testing.T) {
	tests := []struct {
		name       string
		thumb      float64
		thickness  float64
		wantHeight float64
		wantTrackY float64
		wantThumbY float64
	}{
		{"滑块更高", 20, 4, 20, 8, 0},
		{"滑槽更高", 10, 16, 16, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(tt.thumb)
			opts.TrackThickness = tt.thickness
			p := Layout(200, 0.3, opts)
			if p.ContentHeight != tt.wantHeight {
				t.Errorf("ContentHeight = %v, want %v", p.ContentHeight, tt.wantHeight)
			}
			if p.TrackOffset.Y != tt.wantTrackY {
				t.Errorf("TrackOffset.Y = %v, want %v", p.TrackOffset.Y, tt.wantTrackY)
			}
			if p.ThumbOffset.Y != tt.wantThumbY {
				t.Errorf("ThumbOffset.Y = %v, want %v", p.ThumbOffset.Y, tt.wantThumbY)
			}
			if p.Size.Height != tt.thumb {
				t.Errorf("Size.Height = %v, want %v", p.Size.Height, tt.thumb)
			}
		})
	}
}

// TestLayout_ThumbTravelsTrackWidth 滑块最远到达滑槽测量宽度，而不是容器宽度
func TestLayout_ThumbTravelsTrackWidth(t *testing.T) {
	p := Layout(200, 1, testOptions(20))
	if p.ThumbOffset.X != 180 {
		t.Errorf("ThumbOffset.X = %v, want 180", p.ThumbOffset.X)
	}
	if p.ThumbCenter.X != 190 {
		t.Errorf("ThumbCenter.X = %v, want 190", p.ThumbCenter.X)
	}
}

// TestLayout_Rounding 滑块偏移四舍五入到整数像素
func TestLayout_Rounding(t *testing.T) {
	p := Layout(100, 0.333, testOptions(20)) // 80 * 0.333 = 26.64
	if p.ThumbOffset.X != 27 {
		t.Errorf("ThumbOffset.X = %v, want 27", p.ThumbOffset.X)
	}
}

// TestLayout_TrackSegments 激活段从起点插值到当前值
func TestLayout_TrackSegments(t *testing.T) {
	p := Layout(100, 0.25, testOptions(20))
	line := p.TrackLine

	if line.InactiveStart.X != 10 || line.InactiveEnd.X != 90 {
		t.Errorf("非激活段 = [%v, %v], want [10, 90]", line.InactiveStart.X, line.InactiveEnd.X)
	}
	if line.ActiveStart != line.InactiveStart {
		t.Errorf("激活段起点 = %+v, want %+v", line.ActiveStart, line.InactiveStart)
	}
	if math.Abs(line.ActiveEnd.X-30) > 1e-9 {
		t.Errorf("激活段终点 X = %v, want 30", line.ActiveEnd.X)
	}
	if line.StrokeWidth != 4 {
		t.Errorf("StrokeWidth = %v, want 4", line.StrokeWidth)
	}
	if line.ActiveEnd.Y != 10 {
		t.Errorf("线段应位于滑槽中心, Y = %v", line.ActiveEnd.Y)
	}
}

// TestLayout_ValueClamped 越界值在布局前被限幅
func TestLayout_ValueClamped(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"负值", -3, 0},
		{"超过 1", 7, 80},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Layout(100, tt.value, testOptions(20))
			if p.ThumbOffset.X != tt.want {
				t.Errorf("ThumbOffset.X = %v, want %v", p.ThumbOffset.X, tt.want)
			}
		})
	}
}

// TestMeasure_UnboundedWidth 宽度不受限时滑槽取最小宽度
func TestMeasure_UnboundedWidth(t *testing.T) {
	c := Constraints{MinWidth: 120, MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
	sizes := Measure(c, testOptions(20))
	if sizes.Track.Width != 100 {
		t.Errorf("Track.Width = %v, want 100", sizes.Track.Width)
	}
	p := Place(c, sizes, 0.5)
	if p.Size.Width != 120 {
		t.Errorf("Size.Width = %v, want 120", p.Size.Width)
	}
}

// TestConstraints_Offset 缩减宽度不会出现负值
func TestConstraints_Offset(t *testing.T) {
	c := Constraints{MinWidth: 5, MaxWidth: 30, MinHeight: 2, MaxHeight: 9}.Offset(-20)
	if c.MinWidth != 0 || c.MaxWidth != 10 {
		t.Errorf("Offset(-20) = %+v", c)
	}
	if c.MinHeight != 2 || c.MaxHeight != 9 {
		t.Errorf("高度约束不应改变: %+v", c)
	}
}

// TestPlacement_HitTest 命中区域至少为最小交互尺寸
func TestPlacement_HitTest(t *testing.T) {
	opts := testOptions(20)
	p := Layout(200, 0.5, opts)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"中心", 100, 10, true},
		{"上方扩展区", 100, -12, true},
		{"下方扩展区", 100, 33, true},
		{"上方之外", 100, -15, false},
		{"右侧之外", 201, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.HitTest(tt.x, tt.y, opts); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestConstraints_RequiredMin(t *testing.T) {
	tests := []struct {
		name          string
		c             Constraints
		wantMinWidth  float64
		wantMinHeight float64
	}{
		{"宽容器取最小尺寸", FixedWidth(200), 20, 20},
		{"窄容器不超过最大宽度", FixedWidth(10), 10, 20},
		{"零宽容器", FixedWidth(0), 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.RequiredMin(20, 20)
			if got.MinWidth != tt.wantMinWidth || got.MinHeight != tt.wantMinHeight {
				t.Errorf("RequiredMin: got min (%v, %v), want (%v, %v)",
					got.MinWidth, got.MinHeight, tt.wantMinWidth, tt.wantMinHeight)
			}
			if got.MaxWidth != tt.c.MaxWidth {
				t.Errorf("MaxWidth changed: got %v, want %v", got.MaxWidth, tt.c.MaxWidth)
			}
		})
	}
}

func TestMeasure_UnboundedWidthUsesMinimum(t *testing.T) {
	c := Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}.RequiredMin(60, 20)
	sizes := Measure(c, DefaultOptions())
	if sizes.Track.Width != 40 {
		t.Errorf("track width: got %v, want 40", sizes.Track.Width)
	}
}
