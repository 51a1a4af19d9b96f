package detect

import (
	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

// WalkConfig bounds one window traversal. Raw accessibility trees can be
// pathologically deep and wide; once any cap is hit the walk stops early
// with whatever was collected so far.
type WalkConfig struct {
	MaxDepth       int
	MaxVisited     int
	MaxInteractive int
}

func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		MaxDepth:       30,
		MaxVisited:     10000,
		MaxInteractive: 500,
	}
}

// domRootClasses are the native window classes hosting embedded browser
// page content. Their subtrees report rectangles relative to the render
// surface rather than the outer chrome.
var domRootClasses = map[string]bool{
	"Chrome_RenderWidgetHostHWND": true,
	"Intermediate D3D Window":     true,
}

// domDialogCoverage: a DOM dialog covering at least this fraction of the
// render surface occludes everything collected under it so far.
const domDialogCoverage = 0.6

// Walker performs the depth-, count- and element-bounded traversal of a
// single top-level window, producing interactive, informative and
// scrollable element lists with absolute, clipped screen coordinates.
type Walker struct {
	cfg    WalkConfig
	screen entity.BoundingBox
	log    output.LoggerPort
}

func NewWalker(cfg WalkConfig, screen entity.BoundingBox, log output.LoggerPort) *Walker {
	return &Walker{cfg: cfg, screen: screen, log: log}
}

type walkState struct {
	visited int
	stopped bool
	tree    entity.TreeState
	// domStart marks the interactive count at the moment the walk
	// entered DOM mode; a covering DOM dialog truncates back to it.
	domStart int
}

// WalkWindow traverses one window-level node. isBrowser marks windows
// hosting embedded DOM content, which switches child ordering and the
// coordinate reference once the render surface is found.
func (w *Walker) WalkWindow(root output.UINode, appName string, isBrowser bool) entity.TreeState {
	if root == nil {
		return entity.TreeState{}
	}
	st := &walkState{}
	ref := entity.VisibleRegion(w.screen, root.Bounds(), w.screen)
	if ref.IsEmpty() {
		return st.tree
	}
	w.walk(root, 0, ref, appName, isBrowser, false, st)
	if st.stopped {
		w.log.Debug("tree walk stopped at cap",
			"app", appName,
			"visited", st.visited,
			"interactive", len(st.tree.Interactive))
	}
	return st.tree
}

func (w *Walker) walk(node output.UINode, depth int, ref entity.BoundingBox, appName string, isBrowser, inDOM bool, st *walkState) {
	// Depth caps prune one branch; visit and element caps stop the whole
	// walk.
	if st.stopped || depth >= w.cfg.MaxDepth {
		return
	}

	children := node.Children()
	// Ordinary windows are visited in reverse child order so that
	// later-drawn siblings (higher z-order) are classified first. DOM
	// content keeps document order. The port may hand out a shared
	// slice, so reversal works on a copy.
	if !inDOM {
		children = reversed(children)
	}

	for _, child := range children {
		if st.stopped {
			return
		}
		st.visited++
		if st.visited >= w.cfg.MaxVisited {
			st.stopped = true
			return
		}

		if child.ControlType() == "WindowControl" {
			w.enterDialog(child, depth, ref, appName, isBrowser, inDOM, st)
			continue
		}

		if isBrowser && !inDOM && domRootClasses[child.ClassName()] {
			// The render surface becomes the new coordinate reference
			// for everything beneath it.
			domRef := entity.VisibleRegion(w.screen, child.Bounds(), w.screen)
			if !domRef.IsEmpty() {
				st.domStart = len(st.tree.Interactive)
				w.walk(child, depth+1, domRef, appName, isBrowser, true, st)
			}
			continue
		}

		if w.classify(child, ref, appName, inDOM, st) {
			// A DOM wrapper correction already consumed this subtree;
			// descending again would duplicate the inner element.
			continue
		}
		w.walk(child, depth+1, ref, appName, isBrowser, inDOM, st)
	}
}

// enterDialog handles a Window-typed child appearing mid-traversal: a
// nested dialog. A modal native dialog, or a DOM dialog covering most of
// the render surface, obsoletes the click targets collected beneath it.
func (w *Walker) enterDialog(dialog output.UINode, depth int, ref entity.BoundingBox, appName string, isBrowser, inDOM bool, st *walkState) {
	if inDOM {
		if dialog.Bounds().CoverageOf(ref) >= domDialogCoverage {
			st.tree.Interactive = st.tree.Interactive[:st.domStart]
			w.log.Debug("dom dialog occludes collected elements", "app", appName, "dialog", dialog.Name())
		}
	} else if dialog.Modal() {
		st.tree.Interactive = st.tree.Interactive[:0]
		w.log.Debug("modal dialog discards native elements", "app", appName, "dialog", dialog.Name())
	}
	w.walk(dialog, depth+1, ref, appName, isBrowser, inDOM, st)
}

// classify sorts one node into the element lists. The returned flag is
// true when a DOM wrapper correction consumed the node's children, so
// the caller must not descend into them.
func (w *Walker) classify(node output.UINode, ref entity.BoundingBox, appName string, inDOM bool, st *walkState) bool {
	switch {
	case IsInteractive(node, inDOM):
		if len(st.tree.Interactive) >= w.cfg.MaxInteractive {
			st.stopped = true
			return false
		}
		el, consumed, ok := w.interactiveElement(node, ref, appName, inDOM)
		if ok {
			st.tree.Interactive = append(st.tree.Interactive, el)
		}
		return consumed
	case IsInformative(node):
		box := entity.VisibleRegion(ref, node.Bounds(), w.screen)
		if box.IsEmpty() {
			return false
		}
		st.tree.Informative = append(st.tree.Informative, entity.TextElement{
			Name:        node.Name(),
			AppName:     appName,
			BoundingBox: box,
		})
	case IsScrollable(node):
		box := entity.VisibleRegion(ref, node.Bounds(), w.screen)
		if box.IsEmpty() {
			return false
		}
		info := node.Scroll()
		st.tree.Scrollable = append(st.tree.Scrollable, entity.ScrollableElement{
			Name:        node.Name(),
			ControlType: node.ControlType(),
			BoundingBox: box,
			Center:      box.Center(),
			AppName:     appName,
			Horizontal:  info.Horizontal,
			Vertical:    info.Vertical,
		})
	}
	return false
}

// interactiveElement builds the element for an accepted node, applying
// the DOM wrapper corrections: generic groups that merely wrap a text
// leaf take the leaf's geometry, and decorative wrappers around a
// link/heading pair yield the inner link instead. consumed is true when
// a correction replaced the node with one of its children.
func (w *Walker) interactiveElement(node output.UINode, ref entity.BoundingBox, appName string, inDOM bool) (el entity.InteractiveElement, consumed, ok bool) {
	target := node
	controlType := node.ControlType()
	name := node.Name()

	if inDOM && controlType == "GroupControl" {
		children := node.Children()
		if leaf, found := singleTextChild(children); found {
			// Ghost click target: the group adds nothing but a second
			// rectangle over its own text.
			target = leaf
			if name == "" {
				name = leaf.Name()
			}
			controlType = "ButtonControl"
			consumed = true
		} else if link, found := wrappedLink(children); found {
			target = link
			name = link.Name()
			controlType = link.ControlType()
			consumed = true
		}
	}

	box := entity.VisibleRegion(ref, target.Bounds(), w.screen)
	if box.IsEmpty() {
		return entity.InteractiveElement{}, consumed, false
	}
	return entity.InteractiveElement{
		Name:        name,
		ControlType: controlType,
		Shortcut:    node.Shortcut(),
		BoundingBox: box,
		Center:      box.Center(),
		AppName:     appName,
	}, consumed, true
}

func singleTextChild(children []output.UINode) (output.UINode, bool) {
	if len(children) == 1 && children[0].ControlType() == "TextControl" {
		return children[0], true
	}
	return nil, false
}

// wrappedLink detects the decorative wrapper pattern: one hyperlink among
// otherwise text-only children.
func wrappedLink(children []output.UINode) (output.UINode, bool) {
	var link output.UINode
	for _, c := range children {
		switch c.ControlType() {
		case "HyperlinkControl":
			if link != nil {
				return nil, false
			}
			link = c
		case "TextControl":
		default:
			return nil, false
		}
	}
	if link == nil {
		return nil, false
	}
	return link, true
}

func reversed(nodes []output.UINode) []output.UINode {
	out := make([]output.UINode, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
