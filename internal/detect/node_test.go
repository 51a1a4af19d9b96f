package detect

import (
	"time"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
	"yuki/internal/infrastructure/logger"
)

// fakeNode is the synthetic accessibility node used across the detect
// tests.
type fakeNode struct {
	name          string
	controlType   string
	className     string
	shortcut      string
	bounds        entity.BoundingBox
	enabled       bool
	offscreen     bool
	focusable     bool
	focused       bool
	defaultAction bool
	modal         bool
	scroll        *output.ScrollInfo
	children      []output.UINode

	// childDelay simulates a blocked accessibility call.
	childDelay time.Duration
}

var _ output.UINode = (*fakeNode)(nil)

func (n *fakeNode) Name() string                    { return n.name }
func (n *fakeNode) ControlType() string             { return n.controlType }
func (n *fakeNode) ClassName() string               { return n.className }
func (n *fakeNode) Bounds() entity.BoundingBox      { return n.bounds }
func (n *fakeNode) Enabled() bool                   { return n.enabled }
func (n *fakeNode) Offscreen() bool                 { return n.offscreen }
func (n *fakeNode) Focusable() bool                 { return n.focusable }
func (n *fakeNode) Focused() bool                   { return n.focused }
func (n *fakeNode) HasDefaultAction() bool          { return n.defaultAction }
func (n *fakeNode) Modal() bool                     { return n.modal }
func (n *fakeNode) Shortcut() string                { return n.shortcut }
func (n *fakeNode) Scroll() *output.ScrollInfo      { return n.scroll }
func (n *fakeNode) Children() []output.UINode {
	if n.childDelay > 0 {
		time.Sleep(n.childDelay)
	}
	return n.children
}

func button(name string, bounds entity.BoundingBox) *fakeNode {
	return &fakeNode{name: name, controlType: "ButtonControl", bounds: bounds, enabled: true}
}

func textNode(name string, bounds entity.BoundingBox) *fakeNode {
	return &fakeNode{name: name, controlType: "TextControl", bounds: bounds, enabled: true}
}

func pane(bounds entity.BoundingBox, children ...output.UINode) *fakeNode {
	return &fakeNode{controlType: "PaneControl", bounds: bounds, enabled: true, children: children}
}

func window(name string, bounds entity.BoundingBox, children ...output.UINode) *fakeNode {
	return &fakeNode{name: name, controlType: "WindowControl", bounds: bounds, enabled: true, children: children}
}

var testScreen = entity.NewBoundingBox(0, 0, 1920, 1080)

func testWalker() *Walker {
	return NewWalker(DefaultWalkConfig(), testScreen, logger.NewNop())
}
