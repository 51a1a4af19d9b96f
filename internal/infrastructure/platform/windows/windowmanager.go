//go:build windows

package windows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"

	"golang.org/x/sys/windows"
)

const (
	gwlExStyle      int32 = -20
	wsExToolWindow  = 0x00000080
	swRestore       = 9
	swShowNormal    = 1
	swShowMinimized = 2
	swShowMaximized = 3
	smCxScreen      = 0
	smCyScreen      = 1
	dwmwaCloaked    = 14
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type windowPlacement struct {
	Length           uint32
	Flags            uint32
	ShowCmd          uint32
	MinPosition      [2]int32
	MaxPosition      [2]int32
	NormalPosition   rect
}

// Manager implements the window manager port over user32.
type Manager struct {
	log output.LoggerPort
}

var _ output.WindowManagerPort = (*Manager)(nil)

func NewManager(log output.LoggerPort) *Manager {
	return &Manager{log: log}
}

func (m *Manager) ListApps() ([]entity.App, error) {
	var apps []entity.App
	depth := 0

	cb := windows.NewCallback(func(hwnd windows.HWND, _ unsafe.Pointer) uintptr {
		app, ok := m.describe(hwnd, depth)
		if ok {
			apps = append(apps, app)
			depth++
		}
		return 1 // continue enumeration
	})

	if err := windows.EnumWindows(cb, nil); err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}
	return apps, nil
}

// describe builds an App for one candidate top-level window. Untitled,
// tool and cloaked windows are not apps.
func (m *Manager) describe(hwnd windows.HWND, depth int) (entity.App, bool) {
	visible, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
	if visible == 0 {
		return entity.App{}, false
	}

	exStyle, _, _ := procGetWindowLongW.Call(uintptr(hwnd), uintptr(uint32(gwlExStyle)))
	if exStyle&wsExToolWindow != 0 {
		return entity.App{}, false
	}

	title := windowText(hwnd)
	if title == "" {
		return entity.App{}, false
	}

	status := windowStatus(hwnd)
	if cloaked(hwnd) {
		status = entity.StatusHidden
	}

	var r rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))

	return entity.App{
		Name:        title,
		Depth:       depth,
		Status:      status,
		Size:        entity.NewBoundingBox(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)),
		Handle:      entity.WindowHandle(hwnd),
		ProcessName: processName(hwnd),
	}, true
}

func (m *Manager) ForegroundApp() (*entity.App, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return nil, nil
	}
	app, ok := m.describe(windows.HWND(hwnd), 0)
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (m *Manager) SwitchTo(name string) error {
	apps, err := m.ListApps()
	if err != nil {
		return err
	}
	for _, app := range apps {
		if !strings.EqualFold(app.Name, name) &&
			!strings.Contains(strings.ToLower(app.Name), strings.ToLower(name)) {
			continue
		}
		if app.Status == entity.StatusMinimized {
			procShowWindow.Call(uintptr(app.Handle), uintptr(swRestore))
		}
		ok, _, _ := procSetForegroundWindow.Call(uintptr(app.Handle))
		if ok == 0 {
			return fmt.Errorf("failed to focus window %q", app.Name)
		}
		return nil
	}
	return fmt.Errorf("no window matching %q", name)
}

func (m *Manager) Launch(ctx context.Context, name string) (bool, error) {
	apps, err := m.ListApps()
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(name)
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), lower) ||
			strings.Contains(app.ProcessName, lower) {
			return false, m.SwitchTo(app.Name)
		}
	}

	verb, _ := windows.UTF16PtrFromString("open")
	file, _ := windows.UTF16PtrFromString(name)
	if err := windows.ShellExecute(0, verb, file, nil, nil, swShowNormal); err != nil {
		return false, fmt.Errorf("launch %q: %w", name, err)
	}
	return true, nil
}

func (m *Manager) Screen() entity.BoundingBox {
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	return entity.NewBoundingBox(0, 0, int(w), int(h))
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowClass(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowStatus(hwnd windows.HWND) entity.WindowStatus {
	wp := windowPlacement{Length: uint32(unsafe.Sizeof(windowPlacement{}))}
	ok, _, _ := procGetWindowPlacement.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&wp)))
	if ok == 0 {
		return entity.StatusNormal
	}
	switch wp.ShowCmd {
	case swShowMinimized:
		return entity.StatusMinimized
	case swShowMaximized:
		return entity.StatusMaximized
	default:
		return entity.StatusNormal
	}
}

// cloaked reports DWM-cloaked windows, e.g. suspended UWP apps that
// EnumWindows still lists as visible.
func cloaked(hwnd windows.HWND) bool {
	var value uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(hwnd),
		uintptr(dwmwaCloaked),
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	return hr == 0 && value != 0
}

func processName(hwnd windows.HWND) string {
	var pid uint32
	windows.GetWindowThreadProcessId(hwnd, &pid)
	if pid == 0 {
		return ""
	}
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	base := filepath.Base(windows.UTF16ToString(buf[:size]))
	return strings.ToLower(strings.TrimSuffix(base, ".exe"))
}
