package detect

import (
	"testing"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

func box(w, h int) entity.BoundingBox {
	return entity.NewBoundingBox(0, 0, w, h)
}

func TestIsVisible_SizeThreshold(t *testing.T) {
	tiny := button("x", box(3, 3))
	if IsVisible(tiny) {
		t.Error("9px² node must be invisible")
	}
	ok := button("x", box(4, 4))
	if !IsVisible(ok) {
		t.Error("16px² node must be visible")
	}
	degenerate := button("x", entity.BoundingBox{})
	if IsVisible(degenerate) {
		t.Error("zero box must be invisible")
	}
}

func TestIsVisible_OffscreenExemption(t *testing.T) {
	edit := &fakeNode{controlType: "EditControl", bounds: box(100, 20), enabled: true, offscreen: true}
	if !IsVisible(edit) {
		t.Error("edit fields are exempt from the off-screen flag")
	}

	btn := &fakeNode{controlType: "ButtonControl", bounds: box(100, 20), enabled: true, offscreen: true}
	if IsVisible(btn) {
		t.Error("off-screen buttons must be invisible")
	}
}

func TestIsInteractive_Roles(t *testing.T) {
	if !IsInteractive(button("OK", box(80, 24)), false) {
		t.Error("button must be interactive")
	}
	if IsInteractive(&fakeNode{controlType: "ButtonControl", bounds: box(80, 24)}, false) {
		t.Error("disabled button must not be interactive")
	}
	if IsInteractive(textNode("hello", box(80, 24)), false) {
		t.Error("text must not be interactive")
	}
}

func TestIsInteractive_GroupOnlyInDOM(t *testing.T) {
	group := &fakeNode{controlType: "GroupControl", bounds: box(80, 24), enabled: true, defaultAction: true}

	if IsInteractive(group, false) {
		t.Error("group outside DOM must not be interactive")
	}
	if !IsInteractive(group, true) {
		t.Error("group with default action inside DOM must be interactive")
	}

	inert := &fakeNode{controlType: "GroupControl", bounds: box(80, 24), enabled: true}
	if IsInteractive(inert, true) {
		t.Error("group without action or focus must not be interactive even in DOM")
	}
}

func TestIsInteractive_DecorativeImages(t *testing.T) {
	decorative := &fakeNode{controlType: "ImageControl", bounds: box(80, 24), enabled: true}
	if IsInteractive(decorative, true) {
		t.Error("unnamed image must not be interactive")
	}
	logo := &fakeNode{name: "Home", controlType: "ImageControl", bounds: box(80, 24), enabled: true, focusable: true}
	if !IsInteractive(logo, true) {
		t.Error("named focusable image must be interactive")
	}
}

func TestIsInformative_RequiresName(t *testing.T) {
	if IsInformative(textNode("", box(80, 24))) {
		t.Error("unnamed text carries no information")
	}
	if !IsInformative(textNode("Ready", box(80, 24))) {
		t.Error("named text must be informative")
	}
}

func TestIsScrollable(t *testing.T) {
	doc := &fakeNode{controlType: "DocumentControl", bounds: box(800, 600), enabled: true,
		scroll: &output.ScrollInfo{Vertical: true}}
	if !IsScrollable(doc) {
		t.Error("document with vertical scroll must be scrollable")
	}

	still := &fakeNode{controlType: "DocumentControl", bounds: box(800, 600), enabled: true,
		scroll: &output.ScrollInfo{}}
	if IsScrollable(still) {
		t.Error("scroll pattern without a scrollable axis does not count")
	}

	none := &fakeNode{controlType: "PaneControl", bounds: box(800, 600), enabled: true}
	if IsScrollable(none) {
		t.Error("node without scroll pattern must not be scrollable")
	}
}

// Each node lands in at most one of the three element classes.
func TestClassification_Disjoint(t *testing.T) {
	nodes := []output.UINode{
		button("OK", box(80, 24)),
		textNode("Ready", box(80, 24)),
		&fakeNode{controlType: "ListControl", bounds: box(400, 300), enabled: true,
			scroll: &output.ScrollInfo{Vertical: true}},
		&fakeNode{name: "scrolling edit", controlType: "EditControl", bounds: box(400, 300), enabled: true,
			scroll: &output.ScrollInfo{Vertical: true}},
		&fakeNode{controlType: "GroupControl", bounds: box(400, 300), enabled: true, defaultAction: true,
			scroll: &output.ScrollInfo{Vertical: true}},
	}
	for _, inDOM := range []bool{false, true} {
		for i, n := range nodes {
			count := 0
			if IsInteractive(n, inDOM) {
				count++
			}
			if IsInformative(n) {
				count++
			}
			if IsScrollable(n) {
				count++
			}
			if count > 1 {
				t.Errorf("node %d (inDOM=%v) matched %d classes", i, inDOM, count)
			}
		}
	}
}
