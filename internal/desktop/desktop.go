package desktop

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"yuki/internal/application/port/output"
	"yuki/internal/detect"
	"yuki/internal/domain/entity"
)

// Config holds the cache lifetimes. Each cache exists purely for
// latency; the invalidation triggers (launch, switch, explicit clear)
// are what keep served coordinates honest.
type Config struct {
	AppsCacheTTL  time.Duration
	ScreenshotTTL time.Duration
	TreeCacheTTL  time.Duration
	// SwitchDebounce suppresses a redundant foreground switch to a
	// window that was switched to moments ago.
	SwitchDebounce time.Duration
}

func DefaultConfig() Config {
	return Config{
		AppsCacheTTL:   2 * time.Second,
		ScreenshotTTL:  2 * time.Second,
		TreeCacheTTL:   3 * time.Second,
		SwitchDebounce: time.Second,
	}
}

// StateOptions parameterize one snapshot request.
type StateOptions struct {
	// UseVision attaches a screenshot; skipped otherwise, the image
	// encode is expensive.
	UseVision bool
	// TargetApp narrows detection to one named window when set.
	TargetApp string
	// Query is the task text driving the detection-mode policy.
	Query string
	// ForceRefresh bypasses the tree cache entirely.
	ForceRefresh bool
}

// Desktop owns the single most-recent DesktopState and every cache
// around it. All mutation happens under one mutex; callers get internal
// consistency only within one State call's return value, never across
// separate accessor calls.
type Desktop struct {
	windows output.WindowManagerPort
	tree    output.UITreePort
	input   output.InputPort
	shell   output.ShellPort
	shot    output.ScreenshotPort
	scanner *detect.Scanner
	walker  *detect.Walker
	log     output.LoggerPort
	cfg     Config

	mu            sync.Mutex
	state         *entity.DesktopState
	lastStateTime time.Time

	appsCache struct {
		apps []entity.App
		at   time.Time
	}
	shotCache struct {
		data []byte
		at   time.Time
	}
	treeCache struct {
		tree entity.TreeState
		at   time.Time
	}
	lastSwitch struct {
		handle entity.WindowHandle
		at     time.Time
	}

	targetApp         string
	lastLaunchStarted bool
}

func New(
	windows output.WindowManagerPort,
	tree output.UITreePort,
	input output.InputPort,
	shell output.ShellPort,
	shot output.ScreenshotPort,
	scanner *detect.Scanner,
	walker *detect.Walker,
	cfg Config,
	log output.LoggerPort,
) *Desktop {
	return &Desktop{
		windows: windows,
		tree:    tree,
		input:   input,
		shell:   shell,
		shot:    shot,
		scanner: scanner,
		walker:  walker,
		cfg:     cfg,
		log:     log,
	}
}

// State re-derives apps and the active app, runs tree detection per the
// mode policy, optionally captures a screenshot, and publishes the new
// snapshot. The tree state and app list in the returned value always
// come from the same call.
func (d *Desktop) State(ctx context.Context, opts StateOptions) (*entity.DesktopState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	apps, err := d.appsLocked()
	if err != nil {
		return nil, fmt.Errorf("enumerate apps: %w", err)
	}
	active, err := d.windows.ForegroundApp()
	if err != nil {
		d.log.Warn("foreground app unavailable", "error", err)
	}

	mode := detect.ChooseMode(detect.PolicyInput{
		Query:        opts.Query,
		TargetApp:    opts.TargetApp,
		CacheAge:     time.Since(d.treeCache.at),
		CacheTimeout: d.cfg.TreeCacheTTL,
		ForceRefresh: opts.ForceRefresh,
		HasSnapshot:  !d.treeCache.at.IsZero(),
	})

	tree := d.detectLocked(ctx, mode, apps, opts)
	if mode != detect.ModeCached {
		d.treeCache.tree = tree
		d.treeCache.at = time.Now()
	}

	state := &entity.DesktopState{
		Apps:      apps,
		ActiveApp: active,
		TreeState: tree,
	}
	if opts.UseVision {
		if shot, err := d.screenshotLocked(); err == nil {
			state.Screenshot = shot
		} else {
			d.log.Warn("screenshot failed", "error", err)
		}
	}

	d.state = state
	d.lastStateTime = time.Now()
	d.log.Debug("desktop state refreshed",
		"mode", mode.String(),
		"apps", len(apps),
		"interactive", len(tree.Interactive))
	return state, nil
}

func (d *Desktop) detectLocked(ctx context.Context, mode detect.Mode, apps []entity.App, opts StateOptions) entity.TreeState {
	switch mode {
	case detect.ModeCached:
		return d.treeCache.tree
	case detect.ModePrecise:
		if app, ok := findApp(apps, opts.TargetApp); ok {
			tree := d.scanner.ScanWindow(app)
			if len(tree.Interactive) > 0 || len(tree.Informative) > 0 {
				return tree
			}
			// Apps without standard top-level controls yield nothing;
			// fall through to a full scan rather than a blind snapshot.
			d.log.Debug("precise scan empty, falling back to full", "app", app.Name)
		}
		return d.scanner.ScanDesktop(ctx, apps)
	case detect.ModeFocused:
		if tree, ok := d.focusedTree(); ok {
			return tree
		}
		return d.scanner.ScanDesktop(ctx, apps)
	case detect.ModeRanked:
		return detect.RankByIntent(d.scanner.ScanDesktop(ctx, apps), opts.Query)
	default:
		return d.scanner.ScanDesktop(ctx, apps)
	}
}

// focusedTree builds a one-element snapshot from the keyboard-focused
// control, for pure text-entry steps.
func (d *Desktop) focusedTree() (entity.TreeState, bool) {
	node, ok := d.tree.FocusedControl()
	if !ok || !detect.IsVisible(node) {
		return entity.TreeState{}, false
	}
	screen := d.windows.Screen()
	box := entity.VisibleRegion(screen, node.Bounds(), screen)
	if box.IsEmpty() {
		return entity.TreeState{}, false
	}
	appName := ""
	if fg, err := d.windows.ForegroundApp(); err == nil && fg != nil {
		appName = fg.Name
	}
	return entity.TreeState{
		Interactive: []entity.InteractiveElement{{
			Name:        node.Name(),
			ControlType: node.ControlType(),
			Shortcut:    node.Shortcut(),
			BoundingBox: box,
			Center:      box.Center(),
			AppName:     appName,
		}},
	}, true
}

// Snapshot returns the last published state, nil before the first State
// call. Fields read across two calls are not atomic; only one State
// call's return value is internally consistent.
func (d *Desktop) Snapshot() *entity.DesktopState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// StateAge is the time since the last snapshot was published.
func (d *Desktop) StateAge() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastStateTime.IsZero() {
		return time.Duration(1<<62 - 1)
	}
	return time.Since(d.lastStateTime)
}

// Invalidate drops every cache. The next State call rebuilds from the
// OS.
func (d *Desktop) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.invalidateLocked()
}

func (d *Desktop) invalidateLocked() {
	d.appsCache.apps = nil
	d.appsCache.at = time.Time{}
	d.shotCache.data = nil
	d.shotCache.at = time.Time{}
	d.treeCache.tree = entity.TreeState{}
	d.treeCache.at = time.Time{}
}

// TrackTarget records the app precise detection should follow. Set after
// a launch or switch to an app known to expose a clean top-level tree.
func (d *Desktop) TrackTarget(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targetApp = name
}

func (d *Desktop) TrackedTarget() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.targetApp
}

// Apps returns the top-level window list, served from a short-lived
// cache to avoid redundant OS calls in a tight loop.
func (d *Desktop) Apps() ([]entity.App, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.appsLocked()
}

func (d *Desktop) appsLocked() ([]entity.App, error) {
	if d.appsCache.apps != nil && time.Since(d.appsCache.at) < d.cfg.AppsCacheTTL {
		return d.appsCache.apps, nil
	}
	apps, err := d.windows.ListApps()
	if err != nil {
		return nil, err
	}
	d.appsCache.apps = apps
	d.appsCache.at = time.Now()
	return apps, nil
}

func (d *Desktop) screenshotLocked() ([]byte, error) {
	if d.shotCache.data != nil && time.Since(d.shotCache.at) < d.cfg.ScreenshotTTL {
		return d.shotCache.data, nil
	}
	data, err := d.shot.Capture()
	if err != nil {
		return nil, err
	}
	d.shotCache.data = data
	d.shotCache.at = time.Now()
	return data, nil
}

// ForegroundApp reports the currently focused window.
func (d *Desktop) ForegroundApp() (*entity.App, error) {
	return d.windows.ForegroundApp()
}

// preciseApps expose standard controls at the top of their tree, which
// makes single-window precise detection reliable for them.
var preciseApps = map[string]bool{
	"calculator":    true,
	"notepad":       true,
	"paint":         true,
	"file explorer": true,
	"settings":      true,
	"chrome":        true,
	"microsoft edge": true,
	"firefox":       true,
	"brave":         true,
}

// PreciseDetectable reports whether precise detection should track the
// named app after a launch or switch.
func PreciseDetectable(name string) bool {
	lower := strings.ToLower(name)
	for app := range preciseApps {
		if strings.Contains(lower, app) {
			return true
		}
	}
	return false
}

func findApp(apps []entity.App, name string) (entity.App, bool) {
	for _, app := range apps {
		if strings.EqualFold(app.Name, name) {
			return app, true
		}
	}
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), strings.ToLower(name)) {
			return app, true
		}
	}
	return entity.App{}, false
}
