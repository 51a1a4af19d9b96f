package output

import "yuki/internal/domain/entity"

// ScrollInfo describes a node's scroll capability. A nil ScrollInfo means
// the node does not support the scroll pattern at all; absence of a
// capability is reported as absence, never as an error.
type ScrollInfo struct {
	Horizontal bool
	Vertical   bool
}

// UINode is the fixed capability set the core requires from one live
// accessibility node. Platform backends implement it over the OS API;
// tests implement it over synthetic fixtures. Everything the classifiers
// and the tree walker do goes through this interface, no ad hoc
// attribute probing.
type UINode interface {
	// Name is the human-visible label of the control.
	Name() string
	// ControlType is the platform role name, e.g. "ButtonControl",
	// "EditControl", "GroupControl", "WindowControl".
	ControlType() string
	// ClassName is the native window class, used to recognize browser
	// render surfaces (DOM roots).
	ClassName() string
	// Bounds is the raw rectangle as reported by the accessibility API,
	// in absolute screen pixels, before any clipping.
	Bounds() entity.BoundingBox
	// Enabled reports whether the control accepts input.
	Enabled() bool
	// Offscreen is the platform's off-screen flag. Unreliable for some
	// roles (editable fields), which the classifier exempts.
	Offscreen() bool
	// Focusable reports whether the control can take keyboard focus.
	Focusable() bool
	// Focused reports whether the control currently has keyboard focus.
	Focused() bool
	// HasDefaultAction reports whether the node exposes an invokable
	// default action (legacy accessibility pattern).
	HasDefaultAction() bool
	// Modal reports whether a Window-typed node is a modal dialog.
	Modal() bool
	// Shortcut is the accelerator key advertised by the control, if any.
	Shortcut() string
	// Scroll returns the node's scroll capability, nil when unsupported.
	Scroll() *ScrollInfo
	// Children enumerates direct child nodes. The call may block on the
	// OS; the walker bounds it by depth and visit caps, the scanner by
	// wall-clock deadlines.
	Children() []UINode
}

// UITreePort resolves window handles to live accessibility roots.
type UITreePort interface {
	// WindowRoot returns the window-level node for a top-level window.
	WindowRoot(handle entity.WindowHandle) (UINode, error)
	// FocusedControl returns the currently keyboard-focused control, if
	// any.
	FocusedControl() (UINode, bool)
}
