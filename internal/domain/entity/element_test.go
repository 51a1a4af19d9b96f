package entity

import (
	"strings"
	"testing"
)

func TestTreeState_Merge(t *testing.T) {
	a := TreeState{
		Interactive: []InteractiveElement{{Name: "Save"}},
		Informative: []TextElement{{Name: "Untitled"}},
	}
	b := TreeState{
		Interactive: []InteractiveElement{{Name: "Cancel"}},
		Scrollable:  []ScrollableElement{{Name: "Document", Vertical: true}},
	}

	a.Merge(b)

	if len(a.Interactive) != 2 || a.Interactive[1].Name != "Cancel" {
		t.Errorf("merge must append in order, got %+v", a.Interactive)
	}
	if len(a.Informative) != 1 || len(a.Scrollable) != 1 {
		t.Errorf("merge lost elements: %+v", a)
	}
}

func TestInteractiveDescription_LabelsAndCoordinates(t *testing.T) {
	tree := TreeState{Interactive: []InteractiveElement{
		{Name: "Seven", ControlType: "ButtonControl", AppName: "Calculator", Center: Point{X: 120, Y: 340}},
		{Name: "Eight", ControlType: "ButtonControl", AppName: "Calculator", Center: Point{X: 180, Y: 340}},
	}}

	desc := tree.InteractiveDescription()

	if !strings.Contains(desc, "Label: 0|App: Calculator|Type: ButtonControl|Name: Seven") {
		t.Errorf("missing first element line:\n%s", desc)
	}
	if !strings.Contains(desc, "Loc: (120,340)") {
		t.Errorf("missing coordinates:\n%s", desc)
	}
	if !strings.Contains(desc, "Label: 1|") {
		t.Errorf("labels must be sequential:\n%s", desc)
	}
}

func TestScrollableDescription_Axes(t *testing.T) {
	tree := TreeState{Scrollable: []ScrollableElement{
		{Name: "Page", ControlType: "PaneControl", AppName: "Chrome", Center: Point{X: 500, Y: 400}, Vertical: true},
	}}

	desc := tree.ScrollableDescription()
	if !strings.Contains(desc, "Horizontal: false|Vertical: true") {
		t.Errorf("missing axis flags:\n%s", desc)
	}
}

func TestAppsDescription(t *testing.T) {
	apps := []App{
		{Name: "Notepad", Status: StatusNormal, Size: NewBoundingBox(0, 0, 800, 600)},
	}
	desc := AppsDescription(apps)
	if !strings.Contains(desc, "Name: Notepad|Status: Normal|Size: (800,600)") {
		t.Errorf("unexpected rendering:\n%s", desc)
	}
}
