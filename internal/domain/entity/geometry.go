package entity

// Point is an absolute screen coordinate in physical pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingBox is an axis-aligned rectangle in absolute screen pixels.
// A zero-value box (all fields 0) means "no visible area" and must never
// be used as a click target.
type BoundingBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewBoundingBox builds a box from its corners and derives width/height.
func NewBoundingBox(left, top, right, bottom int) BoundingBox {
	return BoundingBox{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Width:  right - left,
		Height: bottom - top,
	}
}

// IsEmpty reports whether the box has no area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Area returns the box area in square pixels, zero for degenerate boxes.
func (b BoundingBox) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Width * b.Height
}

// Center returns the click point of the box.
func (b BoundingBox) Center() Point {
	return Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// Contains reports whether p lies inside the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X < b.Right && p.Y >= b.Top && p.Y < b.Bottom
}

// CoverageOf returns the fraction of other's area covered by b, in [0, 1].
func (b BoundingBox) CoverageOf(other BoundingBox) float64 {
	if other.Area() == 0 {
		return 0
	}
	inter := intersect(b, other)
	return float64(inter.Area()) / float64(other.Area())
}

// VisibleRegion clips an element's raw rectangle to its owning window and
// then to the physical screen. Accessibility APIs report the full logical
// rectangle even when the element is covered or off-screen; clicking an
// unclipped center hits the wrong window. A zero box is returned when the
// element and window do not overlap; callers skip those.
func VisibleRegion(window, element, screen BoundingBox) BoundingBox {
	box := intersect(window, element)
	if box.IsEmpty() {
		return BoundingBox{}
	}
	box = intersect(box, screen)
	if box.IsEmpty() {
		return BoundingBox{}
	}
	return box
}

func intersect(a, b BoundingBox) BoundingBox {
	left := max(a.Left, b.Left)
	top := max(a.Top, b.Top)
	right := min(a.Right, b.Right)
	bottom := min(a.Bottom, b.Bottom)
	if right <= left || bottom <= top {
		return BoundingBox{}
	}
	return NewBoundingBox(left, top, right, bottom)
}
