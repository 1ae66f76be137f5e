package utils

import "testing"

func TestPointerTrackerInitialState(t *testing.T) {
	pt := NewPointerTracker()
	if pt.State() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", pt.State())
	}
}

func TestPointerTrackerTransitions(t *testing.T) {
	type sample struct {
		pressed bool
		x       int
	}
	tests := []struct {
		name       string
		samples    []sample
		wantStates []DragState
		wantDeltas []int
	}{
		{
			name:       "按下-拖动-释放",
			samples:    []sample{{false, 0}, {true, 10}, {true, 15}, {true, 12}, {false, 12}, {false, 12}},
			wantStates: []DragState{DragStateNone, DragStateStarted, DragStateDragging, DragStateDragging, DragStateEnded, DragStateNone},
			wantDeltas: []int{0, 0, 5, -3, 0, 0},
		},
		{
			name:       "释放后立即再次按下",
			samples:    []sample{{true, 0}, {false, 0}, {true, 50}, {true, 70}},
			wantStates: []DragState{DragStateStarted, DragStateEnded, DragStateStarted, DragStateDragging},
			wantDeltas: []int{0, 0, 0, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := NewPointerTracker()
			for i, s := range tt.samples {
				frame := pt.Sample(s.pressed, s.x, 0, false, 0, 0)
				if frame.State != tt.wantStates[i] {
					t.Errorf("第 %d 帧 State = %v, want %v", i, frame.State, tt.wantStates[i])
				}
				if frame.DeltaX != tt.wantDeltas[i] {
					t.Errorf("第 %d 帧 DeltaX = %d, want %d", i, frame.DeltaX, tt.wantDeltas[i])
				}
			}
		})
	}
}

func TestPointerFrameEdges(t *testing.T) {
	pt := NewPointerTracker()
	if f := pt.Sample(true, 1, 1, false, 0, 0); !f.JustPressed() || f.JustReleased() {
		t.Error("第一帧应为 JustPressed")
	}
	if f := pt.Sample(false, 1, 1, false, 0, 0); !f.JustReleased() || f.JustPressed() {
		t.Error("释放帧应为 JustReleased")
	}
}

func TestPointerTrackerSecondaryEdge(t *testing.T) {
	pt := NewPointerTracker()
	presses := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}
	for i, p := range presses {
		f := pt.Sample(false, 0, 0, p, 0, 0)
		if f.SecondaryJustPressed != want[i] {
			t.Errorf("第 %d 帧 SecondaryJustPressed = %v, want %v", i, f.SecondaryJustPressed, want[i])
		}
	}
}

func TestPointerTrackerWheelAndReset(t *testing.T) {
	pt := NewPointerTracker()
	f := pt.Sample(true, 3, 4, false, 0, -1.5)
	if f.WheelY != -1.5 || f.X != 3 || f.Y != 4 {
		t.Errorf("frame = %+v", f)
	}
	pt.Reset()
	if pt.State() != DragStateNone {
		t.Errorf("Reset 后 State = %v", pt.State())
	}
}
