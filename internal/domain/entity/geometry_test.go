package entity

import "testing"

func TestVisibleRegion_ClipsToWindowThenScreen(t *testing.T) {
	screen := NewBoundingBox(0, 0, 1920, 1080)
	window := NewBoundingBox(100, 100, 800, 700)
	// Element sticks out of the window on the right.
	element := NewBoundingBox(700, 200, 1000, 300)

	got := VisibleRegion(window, element, screen)

	want := NewBoundingBox(700, 200, 800, 300)
	if got != want {
		t.Errorf("VisibleRegion = %+v, want %+v", got, want)
	}
}

func TestVisibleRegion_ElementOutsideWindow(t *testing.T) {
	screen := NewBoundingBox(0, 0, 1920, 1080)
	window := NewBoundingBox(0, 0, 400, 400)
	element := NewBoundingBox(500, 500, 600, 600)

	got := VisibleRegion(window, element, screen)

	if got != (BoundingBox{}) {
		t.Errorf("expected zero box for non-overlapping element, got %+v", got)
	}
	if !got.IsEmpty() {
		t.Error("zero box must report IsEmpty")
	}
}

func TestVisibleRegion_WindowPartiallyOffScreen(t *testing.T) {
	screen := NewBoundingBox(0, 0, 1920, 1080)
	// Window dragged half past the left screen edge.
	window := NewBoundingBox(-300, 0, 500, 600)
	element := NewBoundingBox(-200, 100, 100, 200)

	got := VisibleRegion(window, element, screen)

	want := NewBoundingBox(0, 100, 100, 200)
	if got != want {
		t.Errorf("VisibleRegion = %+v, want %+v", got, want)
	}
	if !screen.Contains(got.Center()) {
		t.Errorf("clipped center %+v must lie on screen", got.Center())
	}
}

func TestBoundingBox_Center(t *testing.T) {
	box := NewBoundingBox(10, 20, 110, 80)
	center := box.Center()
	if center.X != 60 || center.Y != 50 {
		t.Errorf("Center = %+v, want (60,50)", center)
	}
}

func TestBoundingBox_Contains(t *testing.T) {
	box := NewBoundingBox(0, 0, 100, 100)

	if !box.Contains(Point{X: 0, Y: 0}) {
		t.Error("top-left corner must be inside")
	}
	if box.Contains(Point{X: 100, Y: 100}) {
		t.Error("bottom-right corner is exclusive")
	}
	if box.Contains(Point{X: -1, Y: 50}) {
		t.Error("point left of box must be outside")
	}
}

func TestBoundingBox_CoverageOf(t *testing.T) {
	surface := NewBoundingBox(0, 0, 100, 100)
	dialog := NewBoundingBox(0, 0, 100, 60)

	got := dialog.CoverageOf(surface)
	if got != 0.6 {
		t.Errorf("CoverageOf = %v, want 0.6", got)
	}

	if (BoundingBox{}).CoverageOf(surface) != 0 {
		t.Error("empty box covers nothing")
	}
	if dialog.CoverageOf(BoundingBox{}) != 0 {
		t.Error("coverage of an empty box is zero, not NaN")
	}
}

func TestBoundingBox_Area(t *testing.T) {
	if (BoundingBox{}).Area() != 0 {
		t.Error("zero box has zero area")
	}
	inverted := BoundingBox{Left: 10, Top: 10, Right: 5, Bottom: 5, Width: -5, Height: -5}
	if inverted.Area() != 0 {
		t.Error("degenerate box has zero area")
	}
}
