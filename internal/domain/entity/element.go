package entity

import (
	"fmt"
	"strings"
)

// InteractiveElement is one actionable control (button, edit field, menu
// item, ...). Center is derived from the clipped BoundingBox, never from
// the raw accessibility rectangle. Elements are created fresh on every
// tree walk and superseded, not mutated, by the next snapshot.
type InteractiveElement struct {
	Name        string      `json:"name"`
	ControlType string      `json:"control_type"`
	Shortcut    string      `json:"shortcut,omitempty"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Center      Point       `json:"center"`
	AppName     string      `json:"app_name"`
}

// TextElement is a static label or paragraph. Never a click or type target.
type TextElement struct {
	Name        string      `json:"name"`
	AppName     string      `json:"app_name"`
	BoundingBox BoundingBox `json:"bounding_box,omitempty"`
}

// ScrollableElement is a container exposing at least one scrollable axis.
type ScrollableElement struct {
	Name        string      `json:"name"`
	ControlType string      `json:"control_type"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Center      Point       `json:"center"`
	AppName     string      `json:"app_name"`
	Horizontal  bool        `json:"horizontal_scrollable"`
	Vertical    bool        `json:"vertical_scrollable"`
}

// TreeState is the immutable result of one traversal pass.
type TreeState struct {
	Interactive []InteractiveElement
	Informative []TextElement
	Scrollable  []ScrollableElement
}

// Merge concatenates another pass's results. Order across windows is not
// significant, only order within one window's own lists.
func (t *TreeState) Merge(other TreeState) {
	t.Interactive = append(t.Interactive, other.Interactive...)
	t.Informative = append(t.Informative, other.Informative...)
	t.Scrollable = append(t.Scrollable, other.Scrollable...)
}

// InteractiveDescription renders the interactive elements as the numbered
// listing embedded into the oracle prompt.
func (t *TreeState) InteractiveDescription() string {
	var sb strings.Builder
	for i, el := range t.Interactive {
		fmt.Fprintf(&sb, "Label: %d|App: %s|Type: %s|Name: %s|Shortcut: %s|Loc: (%d,%d)\n",
			i, el.AppName, el.ControlType, el.Name, el.Shortcut, el.Center.X, el.Center.Y)
	}
	return sb.String()
}

// InformativeDescription renders visible text content grouped per app.
func (t *TreeState) InformativeDescription() string {
	var sb strings.Builder
	for _, el := range t.Informative {
		fmt.Fprintf(&sb, "App: %s|Text: %s\n", el.AppName, el.Name)
	}
	return sb.String()
}

// ScrollableDescription renders scroll containers for the oracle prompt.
func (t *TreeState) ScrollableDescription() string {
	var sb strings.Builder
	for i, el := range t.Scrollable {
		fmt.Fprintf(&sb, "Label: %d|App: %s|Type: %s|Name: %s|Loc: (%d,%d)|Horizontal: %t|Vertical: %t\n",
			i, el.AppName, el.ControlType, el.Name, el.Center.X, el.Center.Y, el.Horizontal, el.Vertical)
	}
	return sb.String()
}
