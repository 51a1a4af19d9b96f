package desktop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yuki/internal/domain/entity"
)

// The operations below are what the tool bodies call. Every action known
// to change window geometry invalidates the caches here, in one place,
// rather than trusting each tool to remember.

// LaunchApp starts or foregrounds an application. The started flag feeds
// the control loop's settle-delay decision after a Launch action.
func (d *Desktop) LaunchApp(ctx context.Context, name string) (bool, error) {
	started, err := d.windows.Launch(ctx, name)
	if err != nil {
		return false, fmt.Errorf("launch %q: %w", name, err)
	}
	d.mu.Lock()
	d.lastLaunchStarted = started
	d.invalidateLocked()
	d.mu.Unlock()
	return started, nil
}

// LastLaunchStarted reports whether the most recent LaunchApp spawned a
// new process (true) or foregrounded a running one (false).
func (d *Desktop) LastLaunchStarted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastLaunchStarted
}

// SwitchApp brings the named window to the foreground. A switch to the
// window already switched to within the debounce interval is a no-op, so
// the loop's focus-restoration checks do not thrash the foreground.
func (d *Desktop) SwitchApp(name string) error {
	apps, err := d.Apps()
	if err != nil {
		return err
	}
	app, ok := findApp(apps, name)
	if !ok {
		return fmt.Errorf("no window matching %q", name)
	}

	d.mu.Lock()
	if d.lastSwitch.handle == app.Handle && time.Since(d.lastSwitch.at) < d.cfg.SwitchDebounce {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	if err := d.windows.SwitchTo(app.Name); err != nil {
		return fmt.Errorf("switch to %q: %w", name, err)
	}

	d.mu.Lock()
	d.lastSwitch.handle = app.Handle
	d.lastSwitch.at = time.Now()
	d.invalidateLocked()
	d.mu.Unlock()
	return nil
}

// EnsureForeground switches back to the tracked target app when it has
// lost focus, before coordinates captured for it are used.
func (d *Desktop) EnsureForeground(name string) error {
	fg, err := d.windows.ForegroundApp()
	if err != nil {
		return err
	}
	if fg != nil && strings.EqualFold(fg.Name, name) {
		return nil
	}
	return d.SwitchApp(name)
}

func (d *Desktop) ClickAt(x, y int, button string, clicks int) error {
	if !d.onScreen(x, y) {
		return fmt.Errorf("click (%d,%d) outside screen bounds", x, y)
	}
	return d.input.Click(x, y, button, clicks)
}

// TypeAt clicks into the field at (x, y) and types the text. clear
// selects and overwrites existing content first.
func (d *Desktop) TypeAt(x, y int, text string, clear bool) error {
	if !d.onScreen(x, y) {
		return fmt.Errorf("type at (%d,%d) outside screen bounds", x, y)
	}
	if err := d.input.Click(x, y, "left", 1); err != nil {
		return err
	}
	if clear {
		if err := d.input.KeyCombo([]string{"ctrl", "a"}); err != nil {
			return err
		}
	}
	return d.input.TypeText(text)
}

func (d *Desktop) ScrollAt(x, y, dx, dy int) error {
	if !d.onScreen(x, y) {
		return fmt.Errorf("scroll at (%d,%d) outside screen bounds", x, y)
	}
	return d.input.Scroll(x, y, dx, dy)
}

func (d *Desktop) DragTo(fromX, fromY, toX, toY int) error {
	if !d.onScreen(fromX, fromY) || !d.onScreen(toX, toY) {
		return fmt.Errorf("drag (%d,%d)->(%d,%d) outside screen bounds", fromX, fromY, toX, toY)
	}
	return d.input.Drag(fromX, fromY, toX, toY)
}

func (d *Desktop) MoveTo(x, y int) error {
	if !d.onScreen(x, y) {
		return fmt.Errorf("move to (%d,%d) outside screen bounds", x, y)
	}
	return d.input.Move(x, y)
}

// PressShortcut sends a key combination like {"ctrl","s"}. Shortcuts do
// not invalidate caches: they cannot move element geometry, and a
// refresh here risks an unwanted focus shift.
func (d *Desktop) PressShortcut(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty shortcut")
	}
	return d.input.KeyCombo(keys)
}

// RunShell executes one shell command and returns its output and status.
func (d *Desktop) RunShell(ctx context.Context, command string) (string, int, error) {
	return d.shell.Run(ctx, command)
}

func (d *Desktop) onScreen(x, y int) bool {
	return d.windows.Screen().Contains(entity.Point{X: x, Y: y})
}
