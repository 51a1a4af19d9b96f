package output

import (
	"context"

	"yuki/internal/domain/entity"
)

// WindowManagerPort enumerates and manipulates top-level windows.
type WindowManagerPort interface {
	// ListApps returns all visible top-level windows, foreground first.
	ListApps() ([]entity.App, error)
	// ForegroundApp returns the currently focused window, nil when the
	// bare desktop has focus.
	ForegroundApp() (*entity.App, error)
	// SwitchTo brings the named app's window to the foreground.
	SwitchTo(name string) error
	// Launch starts an application by name. started is true when a new
	// process was spawned, false when an already-running instance was
	// brought forward.
	Launch(ctx context.Context, name string) (started bool, err error)
	// Screen returns the physical screen bounds.
	Screen() entity.BoundingBox
}

// InputPort simulates mouse and keyboard input at absolute screen
// coordinates.
type InputPort interface {
	Click(x, y int, button string, clicks int) error
	Move(x, y int) error
	Drag(fromX, fromY, toX, toY int) error
	Scroll(x, y int, dx, dy int) error
	TypeText(text string) error
	KeyCombo(keys []string) error
}

// ScreenshotPort captures the full screen. Raw PNG bytes; downscaling
// and JPEG re-encode for the oracle happen in the screenshot service.
type ScreenshotPort interface {
	Capture() ([]byte, error)
}

// ShellPort runs one shell command and returns its combined output and
// exit status.
type ShellPort interface {
	Run(ctx context.Context, command string) (output string, status int, err error)
}
