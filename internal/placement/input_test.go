package placement

import (
	"slices"
	"testing"
)

// TestTapAdapter verifies taps toggle fragments through the engine.
func TestTapAdapter(t *testing.T) {
	e := New(3, 2)
	tap := NewTap(e)
	tap.Tap(2)
	tap.Tap(0)
	if got := e.CurrentOrder(); !slices.Equal(got, []int{2, 0}) {
		t.Fatalf("expected [2 0], got %v", got)
	}
	tap.Tap(2)
	if got := e.CurrentOrder(); !slices.Equal(got, []int{Empty, 0}) {
		t.Fatalf("expected slot 0 freed, got %v", got)
	}
	tap.Tap(1)
	if got := e.CurrentOrder(); !slices.Equal(got, []int{1, 0}) {
		t.Fatalf("expected lowest empty slot reused, got %v", got)
	}
}

// TestDragAdapter verifies pick and drop funnel into Place and Remove.
func TestDragAdapter(t *testing.T) {
	e := New(3, 3)
	drag := NewDrag(e)

	drag.Pick(1)
	if drag.Holding() != 1 {
		t.Fatalf("expected to hold fragment 1")
	}
	if res := drag.DropOnSlot(2); res.Outcome != Placed {
		t.Fatalf("expected placed, got %+v", res)
	}
	if drag.Dragging() {
		t.Fatalf("expected drop to release the fragment")
	}

	drag.Pick(0)
	if res := drag.DropOnSlot(2); res.Changed() {
		t.Fatalf("expected occupied slot to reject drop, got %+v", res)
	}
	if e.Location(0) != Empty {
		t.Fatalf("expected rejected fragment to stay pooled")
	}

	drag.Pick(1)
	if res := drag.DropOnPool(); res.Outcome != Removed {
		t.Fatalf("expected removed, got %+v", res)
	}
	if res := drag.DropOnPool(); res.Changed() {
		t.Fatalf("expected empty drop to be ignored")
	}

	drag.Pick(2)
	drag.Cancel()
	if res := drag.DropOnSlot(0); res.Changed() {
		t.Fatalf("expected cancelled drag to drop nothing")
	}
	if got := e.CurrentOrder(); !slices.Equal(got, []int{Empty, Empty, Empty}) {
		t.Fatalf("expected empty slots, got %v", got)
	}
}

// TestParseMode verifies mode names and their instructions.
func TestParseMode(t *testing.T) {
	mode, err := ParseMode(" Drag ")
	if err != nil || mode != ModeDrag {
		t.Fatalf("expected drag, got %v (%v)", mode, err)
	}
	if _, err := ParseMode("swipe"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if got := ModeTap.Instructions(); got != TapInstructions+"\n"+GoalInstructions {
		t.Fatalf("unexpected tap instructions %q", got)
	}
	if ModeDrag.String() != "drag" || ModeTap.String() != "tap" {
		t.Fatalf("unexpected mode names")
	}
}
