package entity

import (
	"fmt"
	"strings"
)

// WindowStatus describes the visibility state of a top-level window.
type WindowStatus string

const (
	StatusMaximized WindowStatus = "Maximized"
	StatusMinimized WindowStatus = "Minimized"
	StatusNormal    WindowStatus = "Normal"
	StatusHidden    WindowStatus = "Hidden"
)

// WindowHandle is the opaque OS identifier of a top-level window. It is
// the join key between an App and its live accessibility control.
type WindowHandle uintptr

// App is one enumerated top-level window. Re-derived on every listing,
// never persisted.
type App struct {
	Name        string       `json:"name"`
	Depth       int          `json:"depth"`
	Status      WindowStatus `json:"status"`
	Size        BoundingBox  `json:"size"`
	Handle      WindowHandle `json:"handle"`
	ProcessName string       `json:"process_name,omitempty"`
}

// AppsDescription renders the app list for the oracle prompt.
func AppsDescription(apps []App) string {
	var sb strings.Builder
	for _, app := range apps {
		fmt.Fprintf(&sb, "Name: %s|Status: %s|Size: (%d,%d)\n",
			app.Name, app.Status, app.Size.Width, app.Size.Height)
	}
	return sb.String()
}

// DesktopState is one point-in-time view of the machine. The tree state
// is always produced in the same call that captured apps and active_app;
// a partial refresh must not silently pair a new app list with an old
// tree.
type DesktopState struct {
	Apps       []App
	ActiveApp  *App
	Screenshot []byte
	TreeState  TreeState
}

// ActiveAppName returns the foreground app name or a placeholder when
// nothing is focused (e.g. the bare desktop).
func (s *DesktopState) ActiveAppName() string {
	if s.ActiveApp == nil {
		return "No active app"
	}
	return s.ActiveApp.Name
}
