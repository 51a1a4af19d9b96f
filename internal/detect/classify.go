package detect

import (
	"yuki/internal/application/port/output"
)

// minVisibleArea filters out the thousands of zero-size and decorative
// nodes a raw accessibility tree contains. Anything smaller is noise for
// the oracle and unusable as a click target.
const minVisibleArea = 16

var interactiveRoles = map[string]bool{
	"ButtonControl":      true,
	"EditControl":        true,
	"ComboBoxControl":    true,
	"ListItemControl":    true,
	"MenuItemControl":    true,
	"HyperlinkControl":   true,
	"CheckBoxControl":    true,
	"RadioButtonControl": true,
	"SliderControl":      true,
	"TabItemControl":     true,
	"ToggleControl":      true,
	"SplitButtonControl": true,
}

var informativeRoles = map[string]bool{
	"TextControl": true,
}

// offscreenExempt lists roles whose off-screen flag is unreliable.
// Editable fields in particular report off-screen while fully visible.
var offscreenExempt = map[string]bool{
	"EditControl":     true,
	"ComboBoxControl": true,
	"DocumentControl": true,
}

// IsVisible is the shared visibility sub-check: a non-degenerate raw
// rectangle of meaningful size, and not flagged off-screen unless the
// role is exempt from that flag.
func IsVisible(node output.UINode) bool {
	bounds := node.Bounds()
	if bounds.IsEmpty() || bounds.Area() < minVisibleArea {
		return false
	}
	if node.Offscreen() && !offscreenExempt[node.ControlType()] {
		return false
	}
	return true
}

// IsInteractive reports whether the node is an actionable control. A
// generic group counts only inside browser DOM content, and only when it
// exposes a default action or can take keyboard focus.
func IsInteractive(node output.UINode, inDOM bool) bool {
	if !node.Enabled() || !IsVisible(node) {
		return false
	}
	role := node.ControlType()
	if role == "GroupControl" {
		return inDOM && (node.HasDefaultAction() || node.Focusable())
	}
	if role == "ImageControl" {
		// Decorative images are unnamed and unfocusable.
		return node.Name() != "" && (node.Focusable() || node.HasDefaultAction())
	}
	return interactiveRoles[role]
}

// IsInformative reports whether the node is static readable text.
func IsInformative(node output.UINode) bool {
	if !node.Enabled() || !IsVisible(node) {
		return false
	}
	return informativeRoles[node.ControlType()] && node.Name() != ""
}

// IsScrollable reports whether the node is a scroll container with at
// least one scrollable axis. Interactive and text roles are excluded so
// that the three predicates never overlap on one node.
func IsScrollable(node output.UINode) bool {
	role := node.ControlType()
	if interactiveRoles[role] || informativeRoles[role] || role == "GroupControl" || role == "ImageControl" {
		return false
	}
	if !IsVisible(node) {
		return false
	}
	info := node.Scroll()
	return info != nil && (info.Horizontal || info.Vertical)
}
