package slider

import (
	"context"
	"math"
	"testing"
)

// TestController_EndToEndDrag 初始值 0.2、容器 200、滑块 20，拖拽 +10 三次
func TestController_EndToEndDrag(t *testing.T) {
	var values []float64
	c := NewController(testOptions(20), func(v float64) { values = append(values, v) })
	c.Measure(200, 0.2)

	minPx, maxPx := c.Geometry().Bounds()
	if minPx != 10 || maxPx != 190 {
		t.Fatalf("Bounds() = (%v, %v), want (10, 190)", minPx, maxPx)
	}

	err := c.Drag(context.Background(), PriorityDefault, func(ctx context.Context, scope DragScope) error {
		for i := 0; i < 3; i++ {
			if !scope.DragBy(10) {
				t.Errorf("第 %d 次位移被拒绝", i)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Drag() error: %v", err)
	}

	if len(values) != 3 {
		t.Fatalf("回调次数 = %d, want 3", len(values))
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			t.Errorf("回调值应单调递增: %v", values)
		}
	}
	if math.Abs(values[2]-30.0/180.0) > 1e-9 {
		t.Errorf("最终值 = %v, want %v", values[2], 30.0/180.0)
	}
	if c.RawOffset() != 30 {
		t.Errorf("RawOffset() = %v, want 30", c.RawOffset())
	}
}

// TestController_ClampAtEdges 越界拖拽被限幅，但累加器保留原始值
func TestController_ClampAtEdges(t *testing.T) {
	var last float64
	c := NewController(testOptions(20), func(v float64) { last = v })
	c.Measure(200, 0)

	c.DispatchRawDelta(-50)
	if last != 0 {
		t.Errorf("左越界值 = %v, want 0", last)
	}
	c.DispatchRawDelta(1000)
	if last != 1 {
		t.Errorf("右越界值 = %v, want 1", last)
	}
	if c.RawOffset() != 950 {
		t.Errorf("RawOffset() = %v, want 950", c.RawOffset())
	}
}

// TestController_DegenerateGeometry 容器比滑块窄时值恒为 0
func TestController_DegenerateGeometry(t *testing.T) {
	var values []float64
	c := NewController(testOptions(20), func(v float64) { values = append(values, v) })
	c.Measure(10, 0.5)

	c.DispatchRawDelta(5)
	c.DispatchRawDelta(-20)
	for _, v := range values {
		if v != 0 || math.IsNaN(v) {
			t.Errorf("退化几何下的值 = %v, want 0", v)
		}
	}
}

// TestController_IgnoresInvalidDelta NaN/Inf 位移被丢弃
func TestController_IgnoresInvalidDelta(t *testing.T) {
	calls := 0
	c := NewController(testOptions(20), func(float64) { calls++ })
	c.Measure(200, 0)
	c.DispatchRawDelta(math.NaN())
	c.DispatchRawDelta(math.Inf(1))
	if calls != 0 || c.RawOffset() != 0 {
		t.Errorf("calls = %d, RawOffset = %v", calls, c.RawOffset())
	}
}

// TestController_PreemptedSessionRejected 被抢占的用户拖拽不能再修改累加器
func TestController_PreemptedSessionRejected(t *testing.T) {
	var last float64
	c := NewController(testOptions(20), func(v float64) { last = v })
	c.Measure(200, 0)

	user, ok := c.Arbiter().TryRequest(PriorityDefault)
	if !ok {
		t.Fatal("用户会话应被授予")
	}
	user.DragBy(18)

	snap, ok := c.Arbiter().TryRequest(PriorityHigh)
	if !ok {
		t.Fatal("高优先级会话应抢占")
	}
	if user.DragBy(90) {
		t.Error("被抢占会话的位移应被拒绝")
	}
	snap.DragBy(c.SnapDelta(0.5))
	snap.End()

	if math.Abs(last-0.5) > 1e-9 {
		t.Errorf("吸附后值 = %v, want 0.5", last)
	}
}

// TestController_SyncToValue 外部重置后继续拖拽从给定值出发
func TestController_SyncToValue(t *testing.T) {
	var last float64
	c := NewController(testOptions(20), func(v float64) { last = v })
	c.Measure(200, 0.5)
	c.SyncToValue(0.5)

	if c.RawOffset() != 90 {
		t.Fatalf("RawOffset() = %v, want 90", c.RawOffset())
	}
	c.DispatchRawDelta(18)
	if math.Abs(last-0.6) > 1e-9 {
		t.Errorf("值 = %v, want 0.6", last)
	}
}

// TestController_SnapDelta 吸附位移抵消越界积累
func TestController_SnapDelta(t *testing.T) {
	var last float64
	c := NewController(testOptions(20), func(v float64) { last = v })
	c.Measure(200, 0)
	c.DispatchRawDelta(-500)

	d := c.SnapDelta(0.25)
	if d != 545 {
		t.Fatalf("SnapDelta(0.25) = %v, want 545", d)
	}
	c.DispatchRawDelta(d)
	if math.Abs(last-0.25) > 1e-9 {
		t.Errorf("吸附后值 = %v, want 0.25", last)
	}
}

// TestController_MeasureRefreshesGeometry 布局刷新拖拽边界
func TestController_MeasureRefreshesGeometry(t *testing.T) {
	c := NewController(testOptions(20), nil)
	if g := c.Geometry(); g.TotalWidth != 0 || g.ThumbWidth != 20 {
		t.Errorf("初始几何 = %+v", g)
	}
	p := c.Measure(300, 0.5)
	if g := c.Geometry(); g.TotalWidth != 300 || g.ThumbWidth != 20 {
		t.Errorf("Measure 后几何 = %+v", g)
	}
	if c.Placement() != p {
		t.Error("Placement() 应返回最近一次布局结果")
	}
}

// TestController_Emphasis 交互事件驱动阴影高度
func TestController_Emphasis(t *testing.T) {
	c := NewController(DefaultOptions(), nil)
	source := NewInteractionSource(c)

	if c.Elevation() != 1 {
		t.Errorf("初始 Elevation() = %v, want 1", c.Elevation())
	}
	hover := source.Start(InteractionHover)
	if c.IsEmphasized() || !c.IsHovered() {
		t.Error("悬停只影响 IsHovered")
	}
	press := source.Start(InteractionPress)
	if c.Elevation() != 4 {
		t.Errorf("按下时 Elevation() = %v, want 4", c.Elevation())
	}
	source.Finish(press, false)
	source.Finish(hover, false)
	if c.IsEmphasized() || c.IsHovered() {
		t.Error("所有交互结束后应恢复平面状态")
	}
}
